package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"landlord-cli/storage"

	"github.com/spf13/cobra"
)

var (
	outputJSON bool
	cfg        Config
)

type Config struct {
	DefaultLateFee float64 `json:"default_late_fee"`
}

var rootCmd = &cobra.Command{
	Use:          "landlord",
	Short:        "Landlord CLI for apartments, tenants, and leases",
	SilenceUsage: true,
}

func Execute() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(apartmentsCmd())
	rootCmd.AddCommand(tenantsCmd())
	rootCmd.AddCommand(leasesCmd())
	rootCmd.AddCommand(maintenanceCmd())
	rootCmd.AddCommand(reportsCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(shellCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
}

func initConfig() {
	loaded, err := loadConfig()
	if err == nil {
		cfg = loaded
	}
}

func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("config path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var conf Config
	if err := json.NewDecoder(file).Decode(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func configPath() (string, error) {
	dir, err := storage.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
