package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func leasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leases",
		Short: "Manage leases",
	}

	cmd.AddCommand(leasesCreateCmd())
	cmd.AddCommand(leasesListCmd())
	cmd.AddCommand(leasesTerminateCmd())
	cmd.AddCommand(leasesExtendCmd())
	cmd.AddCommand(leasesPaymentCmd())
	cmd.AddCommand(leasesSummaryCmd())
	cmd.AddCommand(leasesOverdueCmd())
	cmd.AddCommand(leasesRemainingCmd())
	return cmd
}

func leasesCreateCmd() *cobra.Command {
	var tenantName string
	var unit string
	var start string
	var end string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Lease an apartment to a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tenantName == "" || unit == "" || start == "" || end == "" {
				return fmt.Errorf("--tenant, --unit, --start, and --end are required")
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			lease, err := reg.LeaseApartment(tenantName, unit, start, end)
			if err != nil {
				return err
			}
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Printf("Lease created:\n%s\n", lease)
			return nil
		},
	}

	cmd.Flags().StringVar(&tenantName, "tenant", "", "Tenant name")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit number")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	return cmd
}

func leasesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leases",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			if outputJSON {
				return writeJSON(reg.Leases)
			}
			if len(reg.Leases) == 0 {
				fmt.Println("No leases found.")
				return nil
			}
			printLines(reg.ListLeases())
			return nil
		},
	}

	return cmd
}

func leasesTerminateCmd() *cobra.Command {
	var keepRecord bool

	cmd := &cobra.Command{
		Use:   "terminate <unit>",
		Short: "Terminate the lease on a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := strings.TrimSpace(args[0])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			message, ok := reg.TerminateLease(unit)
			if !ok {
				fmt.Println("Lease not found.")
				return nil
			}
			if !keepRecord {
				reg.RemoveLease(unit)
			}
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Println(message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepRecord, "keep-record", false, "Free the unit but keep the lease record")
	return cmd
}

func leasesExtendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extend <unit> <new-end>",
		Short: "Extend a lease to a new end date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := strings.TrimSpace(args[0])
			newEnd := strings.TrimSpace(args[1])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			message, err := reg.ExtendLease(unit, newEnd)
			if err != nil {
				return err
			}
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Println(message)
			return nil
		},
	}

	return cmd
}

func leasesPaymentCmd() *cobra.Command {
	var unit string
	var amount float64
	var date string

	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Record a payment against a lease",
		RunE: func(cmd *cobra.Command, args []string) error {
			if unit == "" || date == "" {
				return fmt.Errorf("--unit and --date are required")
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			if !reg.AddLeasePayment(unit, amount, date) {
				fmt.Println("Lease not found.")
				return nil
			}
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Printf("Payment of $%s recorded for Unit %s.\n",
				strconv.FormatFloat(amount, 'f', -1, 64), unit)
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "Unit number")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Payment amount")
	cmd.Flags().StringVar(&date, "date", "", "Payment date (YYYY-MM-DD)")
	return cmd
}

func leasesSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <unit>",
		Short: "Show the lease summary for a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := strings.TrimSpace(args[0])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.LeaseSummary(unit))
			return nil
		},
	}

	return cmd
}

func leasesOverdueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overdue",
		Short: "List leases past their end date",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.TrackOverdueLeases())
			return nil
		},
	}

	return cmd
}

func leasesRemainingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remaining <unit>",
		Short: "Show days remaining on a lease",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := strings.TrimSpace(args[0])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			days, ok := reg.RemainingLeaseDays(unit)
			if !ok {
				fmt.Println("Lease not found.")
				return nil
			}
			fmt.Printf("%d days remaining on the lease for Unit %s.\n", days, unit)
			return nil
		},
	}

	return cmd
}
