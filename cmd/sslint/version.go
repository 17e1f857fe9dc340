package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/sslint/internal/csslint"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/sslint
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of sslint",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sslint %s (csslint rules %s)\n", version, csslint.Version)
	},
}
