// Package cli wires the glintlex command-line front end for the lexer,
// in the spirit of the teacher's own cmd/root.go: a package-level
// rootCmd, one file per subcommand, flags registered in Execute.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "glintlex",
		Short:        "glintlex",
		SilenceUsage: true,
		Long:         `CLI tool for running glint's lexer over source files, for debugging and golden-file generation.`,
	}

	verbose  bool
	literate bool
	log      = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging of the lex session")
	rootCmd.PersistentFlags().BoolVarP(&literate, "literate", "l", false, "treat input as literate source")
	return rootCmd.Execute()
}

func logger() *logrus.Logger {
	if !verbose {
		return nil
	}
	log.SetLevel(logrus.DebugLevel)
	return log
}
