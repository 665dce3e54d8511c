package cli

import (
	"fmt"
	"os"

	"github.com/glintlang/glint/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Lex a source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		tokens, err := lexer.Tokenize(string(src), lexer.Options{
			Literate: literate,
			Logger:   logger(),
		})
		if err != nil {
			return err
		}
		fmt.Print(lexer.Dump(tokens))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
