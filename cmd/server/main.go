package main

import (
	"fmt"
	"os"

	"github.com/sleipnirhq/sleipnir/internal/config"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sleipnir",
		Short: "Sleipnir is an issue hierarchy and sprint tracker served over MCP",
	}
	cmd.Version = version

	cmd.AddCommand(newServeCmd(cfg))

	return cmd
}
