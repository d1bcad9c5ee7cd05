package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func tenantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "Manage tenants",
	}

	cmd.AddCommand(tenantsAddCmd())
	cmd.AddCommand(tenantsListCmd())
	cmd.AddCommand(tenantsRemoveCmd())
	cmd.AddCommand(tenantsPayCmd())
	cmd.AddCommand(tenantsHistoryCmd())
	cmd.AddCommand(tenantsProfileCmd())
	cmd.AddCommand(tenantsBalancesCmd())
	return cmd
}

func tenantsAddCmd() *cobra.Command {
	var name string
	var phone string
	var email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			tenant := reg.AddTenant(name, phone, email)
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Printf("Tenant added: %s\n", tenant)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tenant name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	return cmd
}

func tenantsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			if outputJSON {
				return writeJSON(reg.Tenants)
			}
			if len(reg.Tenants) == 0 {
				fmt.Println("No tenants found.")
				return nil
			}
			printLines(reg.ListTenants())
			return nil
		},
	}

	return cmd
}

func tenantsRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			message := reg.DeleteTenant(name)
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Println(message)
			return nil
		},
	}

	return cmd
}

func tenantsPayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay <name> <amount>",
		Short: "Record a tenant payment dated today",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			message, ok := reg.RecordTenantPayment(name, amount)
			if !ok {
				fmt.Println("Tenant not found.")
				return nil
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

func tenantsHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <name>",
		Short: "Show a tenant's payment history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			tenant, ok := reg.FindTenant(name)
			if !ok {
				fmt.Println("Tenant not found.")
				return nil
			}
			if outputJSON {
				return writeJSON(tenant.Payments)
			}
			fmt.Println(tenant.PaymentHistory())
			return nil
		},
	}

	return cmd
}

func tenantsProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile <name>",
		Short: "Show a tenant profile with leases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Println(reg.TenantProfile(name))
			return nil
		},
	}

	return cmd
}

func tenantsBalancesCmd() *cobra.Command {
	var above float64

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "List tenants owing more than a threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			printLines(reg.TenantsWithBalanceAbove(above))
			return nil
		},
	}

	cmd.Flags().Float64Var(&above, "above", 0, "Balance threshold (strictly greater than)")
	return cmd
}
