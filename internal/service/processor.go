package service

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/katakuxiko/infinitegpt/internal/model"
	"github.com/katakuxiko/infinitegpt/internal/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const previewRunes = 80

// Processor прогоняет все чанки через Completer с ограниченным параллелизмом
type Processor struct {
	llm    Completer
	limit  int
	logger *zap.Logger
}

// NewProcessor: limit <= 0 означает по числу CPU, nil logger заменяется на Nop
func NewProcessor(llm Completer, limit int, logger *zap.Logger) *Processor {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{llm: llm, limit: limit, logger: logger}
}

// Process возвращает по результату на чанк, results[i] соответствует chunks[i].
// Упавший чанк даёт "" и не останавливает остальные.
func (p *Processor) Process(ctx context.Context, task string, chunks []model.Chunk) []string {
	results := make([]string, len(chunks))
	total := len(chunks)
	var done, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(p.limit)
	for i, ch := range chunks {
		g.Go(func() error {
			c := p.llm.Complete(ctx, task, ch)
			if c.OK() {
				results[i] = c.Text
			} else {
				failed.Add(1)
				p.logger.Error("Error processing chunk",
					zap.Int("chunk", i),
					zap.String("preview", util.TruncateRunes(ch.Text, previewRunes)),
					zap.Error(c.Err))
			}
			p.logger.Info("Processing chunks",
				zap.Int64("done", done.Add(1)),
				zap.Int("total", total))
			return nil
		})
	}
	_ = g.Wait()

	p.logger.Info("All chunks processed",
		zap.Int("total", total),
		zap.Int64("failed", failed.Load()),
		zap.Int("workers", p.limit))
	return results
}
