package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"landlord-cli/registry"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func shellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive apartment management menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("shell requires an interactive terminal")
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			runShell(reg, bufio.NewScanner(os.Stdin))
			return saveRegistry(db, reg)
		},
	}

	return cmd
}

func runShell(reg *registry.Registry, scanner *bufio.Scanner) {
	for {
		fmt.Println("\nApartment Management System")
		fmt.Println("1. Add Apartment")
		fmt.Println("2. Add Tenant")
		fmt.Println("3. Lease Apartment")
		fmt.Println("4. Search Apartments")
		fmt.Println("5. List Apartments")
		fmt.Println("6. List Tenants")
		fmt.Println("7. List Leases")
		fmt.Println("8. Make Payment")
		fmt.Println("9. Submit Maintenance Request")
		fmt.Println("10. View Overdue Payments")
		fmt.Println("11. Terminate Lease")
		fmt.Println("12. Generate Lease Summary")
		fmt.Println("13. View Maintenance Requests")
		fmt.Println("14. Exit")

		choice, ok := prompt(scanner, "Enter your choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			shellAddApartment(reg, scanner)
		case "2":
			shellAddTenant(reg, scanner)
		case "3":
			shellLeaseApartment(reg, scanner)
		case "4":
			shellSearchApartments(reg, scanner)
		case "5":
			fmt.Println("\nApartments:")
			printLines(reg.ListApartments())
		case "6":
			fmt.Println("\nTenants:")
			printLines(reg.ListTenants())
		case "7":
			fmt.Println("\nLeases:")
			printLines(reg.ListLeases())
		case "8":
			shellMakePayment(reg, scanner)
		case "9":
			shellSubmitRequest(reg, scanner)
		case "10":
			overdue := reg.OverduePayments()
			fmt.Println("\nOverdue Payments:")
			if len(overdue) == 0 {
				fmt.Println("No overdue payments.")
			} else {
				printLines(overdue)
			}
		case "11":
			shellTerminateLease(reg, scanner)
		case "12":
			unit, ok := prompt(scanner, "Enter apartment unit number: ")
			if !ok {
				return
			}
			fmt.Println(reg.LeaseSummary(unit))
		case "13":
			unit, ok := prompt(scanner, "Enter apartment unit number: ")
			if !ok {
				return
			}
			fmt.Println(reg.MaintenanceRequests(unit))
		case "14":
			fmt.Println("Exiting...")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func shellAddApartment(reg *registry.Registry, scanner *bufio.Scanner) {
	unit, ok := prompt(scanner, "Enter unit number: ")
	if !ok {
		return
	}
	bedrooms, ok := promptInt(scanner, "Enter number of bedrooms: ")
	if !ok {
		return
	}
	bathrooms, ok := promptInt(scanner, "Enter number of bathrooms: ")
	if !ok {
		return
	}
	rent, ok := promptFloat(scanner, "Enter rent: ")
	if !ok {
		return
	}
	reg.AddApartment(unit, bedrooms, bathrooms, rent)
	fmt.Println("Apartment added.")
}

func shellAddTenant(reg *registry.Registry, scanner *bufio.Scanner) {
	name, ok := prompt(scanner, "Enter tenant name: ")
	if !ok {
		return
	}
	phone, ok := prompt(scanner, "Enter tenant phone: ")
	if !ok {
		return
	}
	email, ok := prompt(scanner, "Enter tenant email: ")
	if !ok {
		return
	}
	tenant := reg.AddTenant(name, phone, email)
	fmt.Printf("Tenant added: %s\n", tenant)
}

func shellLeaseApartment(reg *registry.Registry, scanner *bufio.Scanner) {
	tenantName, ok := prompt(scanner, "Enter tenant name: ")
	if !ok {
		return
	}
	unit, ok := prompt(scanner, "Enter unit number: ")
	if !ok {
		return
	}
	start, ok := prompt(scanner, "Enter lease start date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	end, ok := prompt(scanner, "Enter lease end date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	lease, err := reg.LeaseApartment(tenantName, unit, start, end)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		return
	}
	fmt.Printf("Lease created:\n%s\n", lease)
}

func shellSearchApartments(reg *registry.Registry, scanner *bufio.Scanner) {
	filter := registry.SearchFilter{}
	if value, ok := promptOptionalFloat(scanner, "Enter minimum rent (or press Enter to skip): "); ok {
		filter.MinRent = value
	}
	if value, ok := promptOptionalFloat(scanner, "Enter maximum rent (or press Enter to skip): "); ok {
		filter.MaxRent = value
	}
	if value, ok := promptOptionalInt(scanner, "Enter bedrooms (or press Enter to skip): "); ok {
		filter.Bedrooms = value
	}
	if value, ok := promptOptionalInt(scanner, "Enter bathrooms (or press Enter to skip): "); ok {
		filter.Bathrooms = value
	}
	fmt.Println("\nAvailable Apartments:")
	printLines(reg.SearchApartments(filter))
}

func shellMakePayment(reg *registry.Registry, scanner *bufio.Scanner) {
	name, ok := prompt(scanner, "Enter tenant name: ")
	if !ok {
		return
	}
	amount, ok := promptFloat(scanner, "Enter payment amount: ")
	if !ok {
		return
	}
	message, found := reg.RecordTenantPayment(name, amount)
	if !found {
		fmt.Println("Tenant not found.")
		return
	}
	fmt.Println(message)
}

func shellSubmitRequest(reg *registry.Registry, scanner *bufio.Scanner) {
	unit, ok := prompt(scanner, "Enter apartment unit number: ")
	if !ok {
		return
	}
	description, ok := prompt(scanner, "Enter maintenance request details: ")
	if !ok {
		return
	}
	if !reg.SubmitMaintenanceRequest(unit, description) {
		fmt.Println("Apartment not found.")
		return
	}
	fmt.Println("Maintenance request submitted.")
}

func shellTerminateLease(reg *registry.Registry, scanner *bufio.Scanner) {
	unit, ok := prompt(scanner, "Enter apartment unit number: ")
	if !ok {
		return
	}
	message, found := reg.TerminateLease(unit)
	if !found {
		fmt.Println("Lease not found.")
		return
	}
	reg.RemoveLease(unit)
	fmt.Println(message)
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func promptInt(scanner *bufio.Scanner, label string) (int, bool) {
	value, ok := prompt(scanner, label)
	if !ok {
		return 0, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		fmt.Printf("Invalid number %q.\n", value)
		return 0, false
	}
	return parsed, true
}

func promptFloat(scanner *bufio.Scanner, label string) (float64, bool) {
	value, ok := prompt(scanner, label)
	if !ok {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		fmt.Printf("Invalid amount %q.\n", value)
		return 0, false
	}
	return parsed, true
}

func promptOptionalFloat(scanner *bufio.Scanner, label string) (*float64, bool) {
	value, ok := prompt(scanner, label)
	if !ok || value == "" {
		return nil, false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		fmt.Printf("Invalid amount %q, skipping.\n", value)
		return nil, false
	}
	return &parsed, true
}

func promptOptionalInt(scanner *bufio.Scanner, label string) (*int, bool) {
	value, ok := prompt(scanner, label)
	if !ok || value == "" {
		return nil, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		fmt.Printf("Invalid number %q, skipping.\n", value)
		return nil, false
	}
	return &parsed, true
}
