package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/digitadd/internal/cli/output"
	"github.com/leapstack-labs/digitadd/pkg/decimal"
	"github.com/spf13/cobra"
)

// AddOptions holds options for the add command.
type AddOptions struct {
	Trace     bool // Show the column-by-column carry table
	Normalize bool // Strip leading zeros from operands first
}

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	opts := &AddOptions{}
	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two decimal digit strings",
		Long: `Add two non-negative integers written as decimal digit strings.

Operands may have any length; the result is exact. Only the characters
0-9 are accepted: no sign, separators, or whitespace.`,
		Example: `  # Add two numbers
  digitadd add 1234512345 1357912345

  # Show how each column carries
  digitadd add --trace 999 1

  # Output as JSON
  digitadd add -o json 123 45678`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "Show the carry table")
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", false, "Strip leading zeros from operands before adding")

	return cmd
}

func runAdd(cmd *cobra.Command, a, b string, opts *AddOptions) error {
	cmdCtx := NewCommandContext(cmd)
	trace := opts.Trace || cmdCtx.Cfg.Trace

	if opts.Normalize || cmdCtx.Cfg.NormalizeInputs {
		var err error
		if a, err = normalizeOperand(a, decimal.OperandA); err != nil {
			return err
		}
		if b, err = normalizeOperand(b, decimal.OperandB); err != nil {
			return err
		}
	}

	result := output.Addition{Kind: "decimal", Operands: []string{a, b}}
	var err error
	if trace {
		result.Result, result.Steps, err = decimal.Trace(a, b)
	} else {
		result.Result, err = decimal.Add(a, b)
	}
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	cmdCtx.Logger.Debug("added", "a_digits", len(a), "b_digits", len(b), "result_digits", len(result.Result))
	return cmdCtx.Renderer.Addition(result)
}

// normalizeOperand is decimal.Normalize with errors attributed to op.
func normalizeOperand(s string, op decimal.Operand) (string, error) {
	if s == "" {
		return "", fmt.Errorf("add: %w", &decimal.EmptyInputError{Operand: op})
	}
	n, err := decimal.Normalize(s)
	if err != nil {
		var digitErr *decimal.InvalidDigitError
		if errors.As(err, &digitErr) {
			digitErr.Operand = op
		}
		return "", fmt.Errorf("add: %w", err)
	}
	return n, nil
}
