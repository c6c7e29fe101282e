// internal/cli/estimate.go
package glossgen

import (
	"github.com/spf13/cobra"

	"glossgen/internal/glossary"
	"glossgen/internal/pipeline"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <file>",
	Short: "Predict API token volume and cost without processing",
	Long: `Estimate computes the chunk plan for a document and prices the extraction
and definition phases at the configured per-model rates. No provider call is
made, so estimating is free and repeatable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")

		cfg := getConfig()
		profile, err := glossary.ProfileFor(glossary.Level(level))
		if err != nil {
			return err
		}
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		return printEstimate(cfg, doc, profile, pipeline.ChunkOptions{
			MaxSize: cfg.MaxChunkSize(),
			Overlap: cfg.OverlapSize(),
		})
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().StringP("level", "e", "junior", "target audience expertise level (junior, mid, senior)")
}
