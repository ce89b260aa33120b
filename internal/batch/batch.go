// Package batch evaluates many decimal additions concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/leapstack-labs/digitadd/pkg/decimal"
	"golang.org/x/sync/errgroup"
)

// Pair is one line of batch input.
type Pair struct {
	Line int
	A, B string
}

// Result holds the outcome for the Pair at the same index.
type Result struct {
	Pair Pair
	Sum  string
	Err  error
}

// LineError reports a malformed input line.
type LineError struct {
	Line   int
	Fields int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: expected 2 operands, got %d", e.Line, e.Fields)
}

// Options configures Run.
type Options struct {
	// Workers bounds concurrent additions. Zero or less means GOMAXPROCS.
	Workers int
	Logger  *slog.Logger
}

// Parse reads one pair of whitespace-separated operands per line.
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	scanner := bufio.NewScanner(r)
	// Operands are unbounded, so allow long lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, &LineError{Line: line, Fields: len(fields)}
		}
		pairs = append(pairs, Pair{Line: line, A: fields[0], B: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return pairs, nil
}

// Run adds every pair and returns results in input order. A pair that fails
// validation records its error in its Result; only context cancellation
// aborts the whole batch.
func Run(ctx context.Context, pairs []Pair, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	logger.Debug("running batch", "pairs", len(pairs), "workers", workers)

	results := make([]Result, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := decimal.Add(p.A, p.B)
			if err != nil {
				logger.Debug("pair rejected", "line", p.Line, "error", err)
			}
			results[i] = Result{Pair: p, Sum: sum, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Failed counts results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
