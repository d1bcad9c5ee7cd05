package cmd

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"landlord-cli/registry"
	"landlord-cli/storage"
)

// openRegistry loads the persisted snapshot; commands that mutate it must
// call saveRegistry before closing the database.
func openRegistry() (*sql.DB, *registry.Registry, error) {
	db, err := storage.OpenDB()
	if err != nil {
		return nil, nil, err
	}
	reg, err := storage.LoadRegistry(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, reg, nil
}

func saveRegistry(db *sql.DB, reg *registry.Registry) error {
	if err := storage.SaveRegistry(db, reg); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	return nil
}

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}
