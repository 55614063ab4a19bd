// Package commands wires the calculators into the fisc CLI. Commands
// talk to the engine through the toolkit boundary and print flat JSON,
// so CLI output matches what the HTTP layer serves.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ohada-dev/fisc/internal/auditlog"
	"github.com/ohada-dev/fisc/internal/buildinfo"
	"github.com/ohada-dev/fisc/internal/config"
	"github.com/ohada-dev/fisc/internal/toolkit"
)

// ConfigFile is the project file looked up in the working directory.
const ConfigFile = "fisc.yaml"

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fisc",
		Short:   "OHADA fiscal and accounting calculation engine",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newISCommand(),
		newVATCommand(),
		newIRPPCommand(),
		newPayrollCommand(),
		newWithholdingCommand(),
		newSIGCommand(),
		newRatiosCommand(),
		newCashflowCommand(),
		newBreakEvenCommand(),
		newEntryCommand(),
		newValidateCommand(),
		newBenfordCommand(),
		newServeCommand(),
		newInitCommand(),
	)

	return rootCmd
}

// runID groups the audit rows of one process.
var runID = auditlog.NewRunID()

// runTool calls a tool, records the call when the project config
// enables auditing, and prints the result.
func runTool(cmd *cobra.Command, name string, kwargs map[string]any) error {
	result, err := toolkit.New().Call(name, kwargs)
	recordAudit(name, kwargs, err)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func recordAudit(tool string, kwargs map[string]any, callErr error) {
	cfg, err := config.Load(ConfigFile)
	if err != nil || !cfg.Audit.Enabled {
		return
	}

	e := auditlog.Entry{
		Timestamp: time.Now().UTC(),
		RunID:     runID,
		Tool:      tool,
		Status:    "ok",
		Summary:   auditlog.Summarize(kwargs),
	}
	if callErr != nil {
		e.Status = "error"
		e.Summary = callErr.Error()
	}
	if err := auditlog.Append(cfg.Audit.Path, []auditlog.Entry{e}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
	}
}

// defaultCountry falls back to the project config's jurisdiction when
// the flag is not given. An empty result is fine: the rate tables have
// their own documented fallback.
func defaultCountry(flag string) string {
	if flag != "" {
		return flag
	}
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return ""
	}
	return cfg.Business.Country
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
