package cmd

import (
	"fmt"

	"landlord-cli/storage"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the registry to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				defaultPath, err := storage.ExportPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			db, reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := storage.ExportRegistry(path, reg); err != nil {
				return err
			}

			fmt.Printf("Exported registry to %s.\n", path)
			return nil
		},
	}

	return cmd
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [path]",
		Short: "Replace the registry with a JSON export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				defaultPath, err := storage.ExportPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			reg, err := storage.ImportRegistry(path)
			if err != nil {
				return err
			}

			db, err := storage.OpenDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := saveRegistry(db, reg); err != nil {
				return err
			}

			fmt.Printf("Imported registry from %s.\n", path)
			return nil
		},
	}

	return cmd
}
