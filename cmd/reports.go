package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Generate reports",
	}

	cmd.AddCommand(reportsOccupancyCmd())
	cmd.AddCommand(reportsMonthlyCmd())
	cmd.AddCommand(reportsOutstandingCmd())
	cmd.AddCommand(reportsOverdueCmd())
	cmd.AddCommand(reportsAverageRentCmd())
	cmd.AddCommand(reportsAnnualRentCmd())
	cmd.AddCommand(reportsLateFeesCmd())
	return cmd
}

func reportsOccupancyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "occupancy",
		Short: "Show occupancy totals and rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.OccupancyReport())
			return nil
		},
	}

	return cmd
}

func reportsMonthlyCmd() *cobra.Command {
	var year int
	var month int

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show rent collected in a month and current balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 || month == 0 {
				return fmt.Errorf("--year and --month are required")
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.MonthlyReport(year, month))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Report year")
	cmd.Flags().IntVar(&month, "month", 0, "Report month (1-12)")
	return cmd
}

func reportsOutstandingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outstanding",
		Short: "List tenants with outstanding balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.OutstandingReport())
			return nil
		},
	}

	return cmd
}

func reportsOverdueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overdue",
		Short: "List overdue payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			overdue := reg.OverduePayments()
			if len(overdue) == 0 {
				fmt.Println("No overdue payments.")
				return nil
			}
			printLines(overdue)
			return nil
		},
	}

	return cmd
}

func reportsAverageRentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "average-rent",
		Short: "Show the average rent across all apartments",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.AverageRent())
			return nil
		},
	}

	return cmd
}

func reportsAnnualRentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annual-rent",
		Short: "Show total annual rent across all apartments",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Printf("Total annual rent: $%s\n",
				strconv.FormatFloat(reg.TotalAnnualRent(), 'f', -1, 64))
			return nil
		},
	}

	return cmd
}

func reportsLateFeesCmd() *cobra.Command {
	var fee float64

	cmd := &cobra.Command{
		Use:   "late-fees",
		Short: "Apply a flat late fee to tenants owing money",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("fee") {
				fee = cfg.DefaultLateFee
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			message := reg.ApplyLateFees(fee)
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Println(message)
			return nil
		},
	}

	cmd.Flags().Float64Var(&fee, "fee", 0, "Late fee amount (default: config default_late_fee)")
	return cmd
}
