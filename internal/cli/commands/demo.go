package commands

import (
	"strconv"

	"github.com/leapstack-labs/digitadd/internal/cli/output"
	"github.com/leapstack-labs/digitadd/pkg/decimal"
	"github.com/leapstack-labs/digitadd/pkg/word"
	"github.com/spf13/cobra"
)

// Demo operands, added both as digit strings and as machine words.
const (
	DemoA = "1234512345"
	DemoB = "1357912345"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Add the built-in example operands",
		Long: `Add 1234512345 and 1357912345 twice: once as decimal digit strings
and once as 64-bit integers using the XOR/AND carry chain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)

			sum, err := decimal.Add(DemoA, DemoB)
			if err != nil {
				return err
			}
			if err := cmdCtx.Renderer.Addition(output.Addition{
				Kind:     "decimal",
				Operands: []string{DemoA, DemoB},
				Result:   sum,
			}); err != nil {
				return err
			}

			// The constants are valid int64 literals.
			a, _ := strconv.ParseInt(DemoA, 10, 64)
			b, _ := strconv.ParseInt(DemoB, 10, 64)
			return cmdCtx.Renderer.Addition(output.Addition{
				Kind:     "word",
				Operands: []string{DemoA, DemoB},
				Result:   strconv.FormatInt(word.AddCarryChain(a, b), 10),
			})
		},
	}
}
