package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/digitadd/internal/batch"
	"github.com/leapstack-labs/digitadd/internal/cli/output"
	"github.com/spf13/cobra"
)

// ErrBatchFailed is returned when at least one pair in a batch failed.
var ErrBatchFailed = errors.New("batch had failures")

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Add many pairs of decimal digit strings",
		Long: `Read one pair of operands per line and add each pair concurrently.

Input comes from the given file, or standard input when no file (or "-")
is given. Blank lines and lines starting with # are ignored. Results are
printed in input order; a pair that fails does not stop the others, but
the command exits non-zero.`,
		Example: `  digitadd batch pairs.txt
  printf '999 1\n5 5\n' | digitadd batch --workers 4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("batch: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			if !cmd.Flags().Changed("workers") {
				workers = cmdCtx.Cfg.Workers
			}
			return runBatch(cmd, cmdCtx, in, workers)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent additions (0 = number of CPUs)")

	return cmd
}

func runBatch(cmd *cobra.Command, cmdCtx *CommandContext, in io.Reader, workers int) error {
	pairs, err := batch.Parse(in)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	results, err := batch.Run(cmd.Context(), pairs, batch.Options{
		Workers: workers,
		Logger:  cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	rows := make([]output.BatchRow, len(results))
	for i, res := range results {
		rows[i] = output.BatchRow{Line: res.Pair.Line, A: res.Pair.A, B: res.Pair.B, Result: res.Sum}
		if res.Err != nil {
			rows[i].Error = res.Err.Error()
		}
	}
	if err := cmdCtx.Renderer.Batch(rows); err != nil {
		return err
	}

	if failed := batch.Failed(results); failed > 0 {
		cmdCtx.Renderer.Warning(fmt.Sprintf("%d of %d pairs failed", failed, len(results)))
		return fmt.Errorf("%w: %d of %d pairs", ErrBatchFailed, failed, len(results))
	}
	return nil
}
