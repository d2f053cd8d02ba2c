package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/jobfit/internal/engine"
	"github.com/spigell/jobfit/internal/logger"
	"github.com/spigell/jobfit/internal/request"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Evaluate every request file in a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		batch(args[0])
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntP("concurrency", "c", defaultConcurrency, "how many files to evaluate at once")
	batchCmd.Flags().StringP("pattern", "p", defaultBatchPattern, "glob for request files inside the directory")
	batchCmd.Flags().Bool("fail-fast", false, "stop at the first file that cannot be loaded")

	viper.BindPFlag("batch.concurrency", batchCmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("batch.pattern", batchCmd.Flags().Lookup("pattern"))
	viper.BindPFlag("batch.fail-fast", batchCmd.Flags().Lookup("fail-fast"))
}

// BatchLine is one output line of the batch command.
type BatchLine struct {
	File   string         `json:"file"`
	Result *engine.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func batch(dir string) {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	files, err := requestFiles(dir, config.Batch.Pattern)
	if err != nil {
		logger.Fatal("listing request files", zap.Error(err))
	}

	logger.Info("starting the batch",
		zap.String("dir", dir),
		zap.Int("files", len(files)),
		zap.Int("concurrency", config.Batch.Concurrency),
	)

	lines, err := runBatch(ctx, engine.New(logger), logger, files, config.Batch)
	if err != nil {
		logger.Fatal("batch failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	for _, line := range lines {
		if err := enc.Encode(line); err != nil {
			logger.Fatal("writing results", zap.Error(err))
		}
	}
}

func requestFiles(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "reading batch dir %q", dir)
	}
	if !info.IsDir() {
		return nil, eris.Errorf("%q is not a directory", dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, eris.Wrapf(err, "bad pattern %q", pattern)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if request.Supported(m) {
			files = append(files, m)
		}
	}
	sort.Strings(files)

	return files, nil
}

// runBatch evaluates files concurrently. Lines come back in file order no
// matter how the work was scheduled.
func runBatch(ctx context.Context, e *engine.Engine, l *zap.Logger, files []string, cfg *BatchConfig) ([]BatchLine, error) {
	lines := make([]BatchLine, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			line := BatchLine{File: filepath.Base(file)}
			log := l.With(zap.String(logger.FieldSource, line.File))

			req, err := request.Load(file)
			if err == nil {
				err = request.Validate(req)
			}
			if err != nil {
				if cfg.FailFast {
					return eris.Wrapf(err, "file %s", file)
				}
				log.Warn("skipping request", zap.Error(err))
				line.Error = err.Error()
				lines[i] = line
				return nil
			}

			result := e.Evaluate(req)
			line.Result = &result
			lines[i] = line

			log.Debug("evaluated", zap.String(logger.FieldDecision, result.Decision))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lines, nil
}
