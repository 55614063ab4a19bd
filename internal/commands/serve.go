package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/ohada-dev/fisc/internal/api"
	"github.com/ohada-dev/fisc/internal/auditlog"
	"github.com/ohada-dev/fisc/internal/config"
	"github.com/ohada-dev/fisc/internal/toolkit"
)

const defaultListen = "127.0.0.1:8487"

func newServeCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation tools over HTTP",
		Long: `Starts an HTTP server exposing every tool under /v1/tools. When a
fisc.yaml is present in the working directory its server and audit
settings apply; the --listen flag overrides the configured address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := &api.Handler{Registry: toolkit.New()}

			addr := defaultListen
			if cfg, err := config.Load(ConfigFile); err == nil {
				if cfg.Server.Listen != "" {
					addr = cfg.Server.Listen
				}
				if cfg.Audit.Enabled {
					h.Recorder = auditRecorder(cfg.Audit.Path)
				}
			}
			if listen != "" {
				addr = listen
			}

			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			return http.ListenAndServe(addr, api.NewRouter(h))
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (host:port)")

	return cmd
}

func auditRecorder(path string) func(auditlog.Entry) {
	return func(e auditlog.Entry) {
		e.RunID = runID
		if err := auditlog.Append(path, []auditlog.Entry{e}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
		}
	}
}
