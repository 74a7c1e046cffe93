package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/gofetch/errors"
)

const (
	serviceName = "gofetch"
	envPrefix   = "GOFETCH"
)

type rootFlags struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   serviceName,
		Short: "Fetch and decode HTTP resources through an interceptor chain",
		Long: `gofetch issues GET requests against a base URL, runs them through the
configured interceptors and decodes the body by content type.

Configuration is loaded from config.yml and .env files. Environment variables
prefixed with GOFETCH_ override file values, e.g. GOFETCH_HTTP_BASE_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "path to config file (default: search for config.yml)")
	pf.StringVar(&flags.envFile, "env-file", "", "path to .env file (default: search for .env)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: console, pretty, json")

	cmd.AddCommand(newGetCmd(flags), newVersionCmd())
	return cmd
}

// run executes the CLI and returns the process exit code. Failures are
// written to errOut; AppErrors are rendered as JSON.
func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if appErr, ok := errors.AsAppError(err); ok {
		enc := json.NewEncoder(errOut)
		enc.SetIndent("", "  ")
		_ = enc.Encode(appErr.ToResponse())
		return 1
	}
	fmt.Fprintf(errOut, "Error: %v\n", err)
	return 1
}
