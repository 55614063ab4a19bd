package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ohada-dev/fisc/internal/config"
	"github.com/ohada-dev/fisc/internal/ledger"
	"github.com/ohada-dev/fisc/internal/rates"
)

func newInitCommand() *cobra.Command {
	var (
		name    string
		country string
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new fisc project",
		Long: `Creates the project layout: a fisc.yaml configuration, an empty
entries.csv ledger and the exports/ and logs/ directories.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, name, country)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	cmd.Flags().StringVar(&country, "country", string(rates.DefaultCountry), "jurisdiction code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, country string) error {
	cfgPath := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	for _, sub := range []string{"exports", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", sub, err)
		}
	}

	if err := config.Save(cfgPath, config.Default(name, country)); err != nil {
		return err
	}

	entriesPath := filepath.Join(dir, "entries.csv")
	if err := os.WriteFile(entriesPath, []byte(ledger.Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", entriesPath, err)
	}

	gitignore := "logs/\nexports/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "initialized fisc project in %s\n", dir)
	return nil
}
