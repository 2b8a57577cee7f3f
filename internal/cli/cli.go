package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"vue-i18n-extractor/internal/catalog"
	"vue-i18n-extractor/internal/config"
	"vue-i18n-extractor/internal/filewalker"
	"vue-i18n-extractor/internal/langfile"
	"vue-i18n-extractor/internal/localize"
	"vue-i18n-extractor/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "vue-i18n-extractor",
		Short: "Extract Chinese text from Vue components into i18n tables",
		Long: `Walks a source tree of Vue single-file components, replaces Chinese
template text with $t() translation calls, and generates bilingual
zh/en translation modules seeded for manual translation.`,
	}

	rootCmd.AddCommand(extractCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [source-dir] [output-dir]",
		Short: "Rewrite components under source-dir and emit lang modules under output-dir",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var srcDir, outDir string
			if len(args) > 0 {
				srcDir = args[0]
			}
			if len(args) > 1 {
				outDir = args[1]
			}
			return runExtract(srcDir, outDir)
		},
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// rewriteResult is the output of transforming one component file: the
// rewritten file text and the translation entries it discovered.
type rewriteResult struct {
	Output  string
	Catalog *catalog.Catalog
}

// runExtract handles the `extract` command.
func runExtract(srcDir, outDir string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	if srcDir == "" {
		srcDir = cfg.SourceDir
	}
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	entries, err := filewalker.Walk(srcDir)
	if err != nil {
		return fmt.Errorf("walk source directory: %w", err)
	}
	if len(entries) == 0 {
		log.Warn().Str("root", srcDir).Msg("No files found under source root, nothing to do")
		return nil
	}

	outAbs, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	var components []filewalker.FileEntry
	for _, e := range entries {
		if e.Component {
			components = append(components, e)
		}
	}

	log.Info().
		Int("files", len(entries)).
		Int("components", len(components)).
		Msg("Starting extraction")

	// Each task accumulates into its own catalog; results come back in
	// walk order, so the merge below stays deterministic regardless of
	// worker scheduling.
	pool := worker.NewPool[filewalker.FileEntry, rewriteResult](cfg.WorkerCount,
		func(ctx context.Context, entry filewalker.FileEntry) (rewriteResult, error) {
			raw, err := os.ReadFile(entry.Path)
			if err != nil {
				return rewriteResult{}, fmt.Errorf("read component: %w", err)
			}
			fileCat := catalog.New()
			out, err := localize.Component(string(raw), fileCat)
			if err != nil {
				return rewriteResult{}, err
			}
			return rewriteResult{Output: out, Catalog: fileCat}, nil
		},
	)
	results := pool.Execute(ctx, components)

	batchCat := catalog.New()
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Error().Err(r.Err).Str("file", r.Input.RelPath).Msg("Component rewrite failed")
			continue
		}

		outPath := filepath.Join(outAbs, r.Input.RelPath)
		if err := writeOutput(outPath, []byte(r.Result.Output)); err != nil {
			failed++
			log.Error().Err(err).Str("file", r.Input.RelPath).Msg("Write rewritten component failed")
			continue
		}

		batchCat.Merge(r.Result.Catalog)
		log.Info().
			Str("file", r.Input.RelPath).
			Int("entries", r.Result.Catalog.Len()).
			Msg("Component rewritten")
	}

	// Mirror everything else byte-for-byte.
	copied := 0
	for _, e := range entries {
		if e.Component {
			continue
		}
		data, err := os.ReadFile(e.Path)
		if err != nil {
			failed++
			log.Error().Err(err).Str("file", e.RelPath).Msg("Read file failed")
			continue
		}
		if err := writeOutput(filepath.Join(outAbs, e.RelPath), data); err != nil {
			failed++
			log.Error().Err(err).Str("file", e.RelPath).Msg("Copy file failed")
			continue
		}
		copied++
	}

	if err := langfile.WriteModules(outAbs, batchCat); err != nil {
		return fmt.Errorf("write translation modules: %w", err)
	}

	log.Info().
		Int("components", len(components)).
		Int("copied", copied).
		Int("failed", failed).
		Int("entries", batchCat.Len()).
		Str("output", outAbs).
		Msg("Extraction complete")

	return nil
}

// writeOutput writes a file under the output root, creating parents.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
