// Package sslint lints CSS, LESS and SCSS stylesheets and reports every
// finding against the file and line that was actually authored.
//
// # Pipeline
//
// Each file goes through four steps:
//
//  1. Read the entry file.
//  2. Compile LESS/SCSS to CSS with a source map (lessc, sass).
//  3. Check the CSS with the built-in CSSLint rules.
//  4. Reconcile: map positions back through the source map, drop findings
//     from imported files, collapse duplicates from mixins and loops, and
//     group by authored file.
//
// A failure in any step is reported for that file only; other files are
// still linted.
//
// # Usage
//
//	config := sslint.Config{
//		Ruleset:          map[string]int{"ids": 2, "zero-units": 1},
//		PrintIssuedLines: true,
//	}
//	result := sslint.Run(ctx, config, []string{"web/styles/site.less"})
//	sslint.WriteOutput(os.Stdout, result, sslint.OutputIssues, config)
//	os.Exit(result.ExitCode())
//
// See cmd/sslint for the CLI.
package sslint
