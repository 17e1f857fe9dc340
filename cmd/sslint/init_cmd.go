package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigFile = ".sslint.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .sslint.yaml config file",
	Long:  `Create a .sslint.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# sslint configuration
# Precedence: flags > SSLINT_* environment variables > this file

format: issues   # issues | compact | json | checkstyle
quiet: false
verbose: false
jobs: 0          # 0 = number of CPUs

lint:
  errors: []     # rule ids reported as errors
  warnings: []   # rule ids reported as warnings
  ignore: []     # rule ids turned off
  exclude: []    # files, directories or patterns to skip
  imports: []    # imported files whose findings are reported, e.g. "styles/_*.scss"
  no-gitignore: false
  print-lines: true
  print-rule-id: true

less:
  binary: lessc
  include-paths: []

sass:
  binary: sass
  include-paths: []
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
