// internal/cli/build_entry.go
package glossgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"glossgen/internal/appconfig"
	"glossgen/internal/cost"
	"glossgen/internal/doclinks"
	"glossgen/internal/glossary"
	"glossgen/internal/pipeline"
	"glossgen/internal/progress"
	"glossgen/internal/providers/openai"
	"glossgen/internal/render"
)

// buildParams carries the resolved flag values for one build invocation.
type buildParams struct {
	docPath      string
	level        string
	format       string
	outputPath   string
	estimateOnly bool
}

func runBuild(cmd *cobra.Command, docPath string) error {
	level, _ := cmd.Flags().GetString("level")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	estimateOnly, _ := cmd.Flags().GetBool("estimate-cost")

	return buildEntry(getConfig(), buildParams{
		docPath:      docPath,
		level:        level,
		format:       format,
		outputPath:   output,
		estimateOnly: estimateOnly,
	})
}

// buildEntry validates inputs, loads the document, and either estimates or
// runs the pipeline. Split from the cobra handler so it is testable without
// a command tree.
func buildEntry(cfg *appconfig.Config, params buildParams) error {
	profile, err := glossary.ProfileFor(glossary.Level(params.level))
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(params.format)
	if err != nil {
		return err
	}

	doc, err := loadDocument(params.docPath)
	if err != nil {
		return err
	}

	chunkOpts := pipeline.ChunkOptions{
		MaxSize: cfg.MaxChunkSize(),
		Overlap: cfg.OverlapSize(),
	}

	if params.estimateOnly {
		return printEstimate(cfg, doc, profile, chunkOpts)
	}

	if cfg.Debug {
		pp.Println(cfg)
	}

	gen, err := openai.New(cfg)
	if err != nil {
		return err
	}

	reporter := progress.New(cfg.NoProgress)
	result, err := pipeline.Run(context.Background(), gen, doc, pipeline.Options{
		Profile:  profile,
		MaxTerms: cfg.MaxTerms(),
		Chunk:    chunkOpts,
		Links:    doclinks.New(cfg.DocLinks),
		Status:   reporter.Statusf,
	})
	reporter.Done()
	if err != nil {
		return err
	}

	reportOutcome(result)
	if cfg.Debug {
		pp.Println(result.Glossary)
	}

	content, err := render.Render(result.Glossary, format)
	if err != nil {
		return err
	}
	return writeOutput(content, params.outputPath)
}

// loadDocument reads the whole document up front. Unreadable input is fatal
// before any pipeline stage runs.
func loadDocument(path string) (glossary.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return glossary.Document{}, fmt.Errorf("could not read document %q: %w", path, err)
	}
	return glossary.Document{Source: filepath.Base(path), Text: string(data)}, nil
}

func printEstimate(cfg *appconfig.Config, doc glossary.Document, profile glossary.Profile, chunkOpts pipeline.ChunkOptions) error {
	chunks := pipeline.Split(doc.Text, chunkOpts)
	est := cost.ForRun(chunks, profile, *cfg)

	fmt.Printf("Document: %s (%d chunk(s))\n", doc.Source, est.ChunkCount)
	fmt.Printf("Extraction model: %s  (~%d input / %d output tokens)\n",
		est.Extraction.Model, est.Extraction.InputTokens, est.Extraction.OutputTokens)
	fmt.Printf("Definition model: %s  (~%d input / %d output tokens)\n",
		est.Definition.Model, est.Definition.InputTokens, est.Definition.OutputTokens)
	color.Yellow("Estimated API cost: $%.4f", est.Total())
	fmt.Println(est.Breakdown())
	return nil
}

// reportOutcome prints the run summary and any absorbed warnings to stderr.
func reportOutcome(result pipeline.Result) {
	if len(result.Glossary.Entries) > 0 {
		color.New(color.FgGreen).Fprintf(os.Stderr, "Generated glossary with %d term(s)\n", len(result.Glossary.Entries))
	} else {
		color.New(color.FgYellow).Fprintln(os.Stderr, "No technical terms found requiring clarification.")
	}
	for _, warning := range result.Warnings {
		color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
}

func writeOutput(content, outputPath string) error {
	if outputPath == "" {
		fmt.Print(content)
		return nil
	}
	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, "Glossary saved to: %s\n", outputPath)
	return nil
}
