package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/katakuxiko/infinitegpt/internal/chunk"
	"github.com/katakuxiko/infinitegpt/internal/config"
	"github.com/katakuxiko/infinitegpt/internal/service"
	"github.com/katakuxiko/infinitegpt/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "infinitegpt <task> <input_file> <output_file>",
	Short: "Process text chunks with the OpenAI API",
	Long: `Splits the input file into chunks of 1500 words, asks the model to
perform the task on every chunk in parallel and writes the answers to the
output file, one line per chunk.

Example:
  OPENAI_API_KEY=sk-... infinitegpt summarize book.txt summary.txt`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runProcess,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// runProcess: сначала конфиг, чтобы без ключа не трогать файлы
func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return processChunks(cmd.Context(), cfg, args[0], args[1], args[2])
}

func processChunks(ctx context.Context, cfg *config.Config, task, inputFile, outputFile string) error {
	files := store.NewFileStore()

	text, err := files.Load(inputFile)
	if err != nil {
		return err
	}
	chunks := chunk.ByWords(text, cfg.ChunkWords)
	logger.Info("Input loaded",
		zap.String("input", inputFile),
		zap.Int("chunks", len(chunks)),
		zap.Int("workers", cfg.Concurrency))

	llm := service.NewLLMClient(cfg)
	proc := service.NewProcessor(llm, cfg.Concurrency, logger)
	results := proc.Process(ctx, task, chunks)

	if err := files.Save(outputFile, results); err != nil {
		return err
	}
	logger.Info("Output written", zap.String("output", outputFile), zap.Int("lines", len(results)))
	return nil
}

func main() {
	// Ctrl-C отменяет запросы в полёте; недоделанные чанки станут пустыми строками
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
