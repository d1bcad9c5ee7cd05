package cmd

import (
	"fmt"
	"strings"

	"landlord-cli/registry"

	"github.com/spf13/cobra"
)

func apartmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apartments",
		Short: "Manage apartment units",
	}

	cmd.AddCommand(apartmentsAddCmd())
	cmd.AddCommand(apartmentsListCmd())
	cmd.AddCommand(apartmentsSearchCmd())
	cmd.AddCommand(apartmentsRemoveCmd())
	return cmd
}

func apartmentsAddCmd() *cobra.Command {
	var unit string
	var bedrooms int
	var bathrooms int
	var rent float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an apartment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if unit == "" {
				return fmt.Errorf("--unit is required")
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			apartment := reg.AddApartment(unit, bedrooms, bathrooms, rent)
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Printf("Added %s\n", apartment)
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "Unit number")
	cmd.Flags().IntVar(&bedrooms, "bedrooms", 0, "Bedroom count")
	cmd.Flags().IntVar(&bathrooms, "bathrooms", 0, "Bathroom count")
	cmd.Flags().Float64Var(&rent, "rent", 0, "Monthly rent")
	return cmd
}

func apartmentsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List apartments",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			if outputJSON {
				return writeJSON(reg.Apartments)
			}
			if len(reg.Apartments) == 0 {
				fmt.Println("No apartments found.")
				return nil
			}
			printLines(reg.ListApartments())
			return nil
		},
	}

	return cmd
}

func apartmentsSearchCmd() *cobra.Command {
	var minRent, maxRent float64
	var bedrooms, bathrooms int
	var minBedrooms, maxBedrooms int
	var minBathrooms, maxBathrooms int
	var includeOccupied bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search apartments",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := registry.SearchFilter{IncludeOccupied: includeOccupied}
			flags := cmd.Flags()
			if flags.Changed("min-rent") {
				filter.MinRent = &minRent
			}
			if flags.Changed("max-rent") {
				filter.MaxRent = &maxRent
			}
			if flags.Changed("bedrooms") {
				filter.Bedrooms = &bedrooms
			}
			if flags.Changed("bathrooms") {
				filter.Bathrooms = &bathrooms
			}
			if flags.Changed("min-bedrooms") {
				filter.MinBedrooms = &minBedrooms
			}
			if flags.Changed("max-bedrooms") {
				filter.MaxBedrooms = &maxBedrooms
			}
			if flags.Changed("min-bathrooms") {
				filter.MinBathrooms = &minBathrooms
			}
			if flags.Changed("max-bathrooms") {
				filter.MaxBathrooms = &maxBathrooms
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			printLines(reg.SearchApartments(filter))
			return nil
		},
	}

	cmd.Flags().Float64Var(&minRent, "min-rent", 0, "Minimum rent (inclusive)")
	cmd.Flags().Float64Var(&maxRent, "max-rent", 0, "Maximum rent (inclusive)")
	cmd.Flags().IntVar(&bedrooms, "bedrooms", 0, "Exact bedroom count")
	cmd.Flags().IntVar(&bathrooms, "bathrooms", 0, "Exact bathroom count")
	cmd.Flags().IntVar(&minBedrooms, "min-bedrooms", 0, "Minimum bedrooms (inclusive)")
	cmd.Flags().IntVar(&maxBedrooms, "max-bedrooms", 0, "Maximum bedrooms (inclusive)")
	cmd.Flags().IntVar(&minBathrooms, "min-bathrooms", 0, "Minimum bathrooms (inclusive)")
	cmd.Flags().IntVar(&maxBathrooms, "max-bathrooms", 0, "Maximum bathrooms (inclusive)")
	cmd.Flags().BoolVar(&includeOccupied, "include-occupied", false, "Include occupied units")
	return cmd
}

func apartmentsRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <unit>",
		Short: "Delete an apartment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := strings.TrimSpace(args[0])

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			message := reg.DeleteApartment(unit)
			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Println(message)
			return nil
		},
	}

	return cmd
}
