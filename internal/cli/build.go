// internal/cli/build.go
package glossgen

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Extract and define technical terms from a document",
	Long: `Build runs the full glossary pipeline on one document: the text is split
into chunks, candidate terms are extracted per chunk, merged into a ranked
capped list, and each surviving term is defined for the selected audience.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("level", "e", "junior", "target audience expertise level (junior, mid, senior)")
	buildCmd.Flags().StringP("format", "f", "markdown", "output format (markdown, json, html, plain, table)")
	buildCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")
	buildCmd.Flags().Bool("estimate-cost", false, "print the API cost estimate and exit without processing")
}
