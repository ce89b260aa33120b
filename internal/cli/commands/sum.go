package commands

import (
	"fmt"

	"github.com/leapstack-labs/digitadd/internal/cli/output"
	"github.com/leapstack-labs/digitadd/pkg/decimal"
	"github.com/spf13/cobra"
)

// NewSumCommand creates the sum command.
func NewSumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sum <n>...",
		Short: "Add any number of decimal digit strings",
		Long: `Add one or more non-negative decimal integers, left to right.

Errors name the failing operand by its zero-based position.`,
		Example: `  digitadd sum 1 22 333 4444`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			total, err := decimal.Sum(args...)
			if err != nil {
				return fmt.Errorf("sum: %w", err)
			}

			cmdCtx.Logger.Debug("summed", "operands", len(args), "result_digits", len(total))
			return cmdCtx.Renderer.Addition(output.Addition{
				Kind:     "decimal",
				Operands: args,
				Result:   total,
			})
		},
	}
}
