package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func maintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Manage maintenance requests",
	}

	cmd.AddCommand(maintenanceSubmitCmd())
	cmd.AddCommand(maintenanceSetStatusCmd())
	cmd.AddCommand(maintenanceAssignCmd())
	cmd.AddCommand(maintenanceViewCmd())
	cmd.AddCommand(maintenanceTrackCmd())
	cmd.AddCommand(maintenanceSummaryCmd())
	return cmd
}

func maintenanceSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <unit> <description>",
		Short: "Submit a maintenance request",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := strings.TrimSpace(args[0])
			description := strings.Join(args[1:], " ")

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			if !reg.SubmitMaintenanceRequest(unit, description) {
				fmt.Println("Apartment not found.")
				return nil
			}
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Println("Maintenance request submitted.")
			return nil
		},
	}

	return cmd
}

func maintenanceSetStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-status <unit> <index> <status>",
		Short: "Update the status of a request by position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := strings.TrimSpace(args[0])
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[1])
			}
			status := args[2]

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			if !reg.SetRequestStatus(unit, index, status) {
				fmt.Println("Apartment not found.")
				return nil
			}
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Printf("Request %d for Unit %s set to %s.\n", index, unit, status)
			return nil
		},
	}

	return cmd
}

func maintenanceAssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <unit> <staff>",
		Short: "Assign staff to all pending requests for a unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := strings.TrimSpace(args[0])
			staff := strings.TrimSpace(args[1])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			message := reg.AssignMaintenanceStaff(unit, staff)
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Println(message)
			return nil
		},
	}

	return cmd
}

func maintenanceViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <unit>",
		Short: "View a unit's maintenance requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := strings.TrimSpace(args[0])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.MaintenanceRequests(unit))
			return nil
		},
	}

	return cmd
}

func maintenanceTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Track all maintenance requests by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.TrackMaintenanceStatus())
			return nil
		},
	}

	return cmd
}

func maintenanceSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize maintenance requests and staffing",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.MaintenanceSummary())
			return nil
		},
	}

	return cmd
}
