package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/config"
)

var cfg config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		loaded, err := config.Load(configPath)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, os.ErrNotExist) && !rootCmd.PersistentFlags().Changed("config"):
			// No config.yaml next to the binary is fine; an explicit
			// --config that does not exist is not.
			cfg = config.Default()
		default:
			log.Fatalf("Error loading %s: %v", configPath, err)
		}
	}
}
