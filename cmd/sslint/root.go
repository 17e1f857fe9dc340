package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/sslint/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sslint [file|dir|glob]...",
	Short: "Lint CSS, LESS and SCSS against the files you actually wrote",
	Long: `sslint compiles LESS and SCSS with lessc and sass, checks the generated CSS
with CSSLint rules, and maps every finding back to the authored file and line.
Findings in imported files are dropped unless listed with --imports.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		logging.Configure(cmd.ErrOrStderr(), getBool("verbose", false))
		return nil
	},
	// Default behavior: lint the arguments when no subcommand is given.
	RunE:          runLint,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.BoolP("quiet", "q", false, "Only output when errors are present")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")

	addLintFlags(rootCmd.Flags())

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
