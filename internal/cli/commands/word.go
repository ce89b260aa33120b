package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/digitadd/internal/cli/output"
	"github.com/leapstack-labs/digitadd/pkg/word"
	"github.com/spf13/cobra"
)

// NewWordCommand creates the word command.
func NewWordCommand() *cobra.Command {
	var wrap bool
	cmd := &cobra.Command{
		Use:   "word <a> <b>",
		Short: "Add two 64-bit signed integers",
		Long: `Add two int64 values with native machine arithmetic.

Overflow is an error unless --wrap is given, in which case the sum wraps
around in two's complement.`,
		Example: `  digitadd word 1234512345 1357912345
  digitadd word --wrap 9223372036854775807 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			a, err := parseWord(args[0])
			if err != nil {
				return err
			}
			b, err := parseWord(args[1])
			if err != nil {
				return err
			}

			var sum int64
			if wrap {
				sum = word.AddWrapping(a, b)
			} else if sum, err = word.AddChecked(a, b); err != nil {
				return fmt.Errorf("word: %w (use --wrap to allow wraparound)", err)
			}

			cmdCtx.Logger.Debug("word add", "a", a, "b", b, "wrap", wrap)
			return cmdCtx.Renderer.Addition(output.Addition{
				Kind:     "word",
				Operands: []string{args[0], args[1]},
				Result:   strconv.FormatInt(sum, 10),
			})
		},
	}

	cmd.Flags().BoolVar(&wrap, "wrap", false, "Wrap around on overflow instead of failing")

	return cmd
}

func parseWord(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("word: invalid int64 %q: %w", s, err)
	}
	return v, nil
}
