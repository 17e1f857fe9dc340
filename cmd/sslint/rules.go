package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/sslint"
	"github.com/yacobolo/sslint/internal/csslint"
)

var rulesCmd = &cobra.Command{
	Use:     "rules",
	Aliases: []string{"list-rules"},
	Short:   "List the available rules and their configured severity",
	Run: func(cmd *cobra.Command, _ []string) {
		ruleset := buildConfig().Ruleset
		useColors := getBool("color", false)
		w := cmd.OutOrStdout()

		for _, rule := range csslint.Rules() {
			fmt.Fprintf(w, "%s %s\n",
				sslint.RenderStyle(sslint.StyleCyan, fmt.Sprintf("%-22s", rule.ID), useColors),
				severityLabel(ruleset[rule.ID]))
			fmt.Fprintf(w, "  %s: %s\n", rule.Name, rule.Desc)
		}
	},
}

func severityLabel(code int) string {
	switch code {
	case csslint.Error:
		return "error"
	case csslint.Warning:
		return "warning"
	default:
		return "off"
	}
}
