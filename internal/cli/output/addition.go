package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/digitadd/pkg/decimal"
)

// Addition is a rendered sum of two or more operands.
type Addition struct {
	Kind     string         `json:"kind"` // decimal or word
	Operands []string       `json:"operands"`
	Result   string         `json:"result"`
	Steps    []decimal.Step `json:"steps,omitempty"`
}

// BatchRow is one line of batch output.
type BatchRow struct {
	Line   int    `json:"line"`
	A      string `json:"a"`
	B      string `json:"b"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Addition renders a single result, followed by its carry trace if present.
func (r *Renderer) Addition(a Addition) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(a)
	case ModeText:
		operands := make([]string, len(a.Operands))
		for i, op := range a.Operands {
			operands[i] = operandStyle.Render(op)
		}
		_, _ = fmt.Fprintf(r.out, "%s %s %s\n",
			strings.Join(operands, mutedStyle.Render(" + ")),
			mutedStyle.Render("="),
			resultStyle.Render(a.Result))
	default:
		_, _ = fmt.Fprintf(r.out, "%s = %s\n", strings.Join(a.Operands, " + "), a.Result)
	}

	if len(a.Steps) > 0 {
		_, _ = fmt.Fprintln(r.out)
		r.renderTable(traceHeader(), traceRows(a.Steps))
	}
	return nil
}

// Batch renders batch results in input order.
func (r *Renderer) Batch(rows []BatchRow) error {
	if r.EffectiveMode() == ModeJSON {
		return r.JSON(rows)
	}
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(r.out, r.Muted("(0 pairs)"))
		return nil
	}

	body := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		result := row.Result
		if row.Error != "" {
			result = "error: " + row.Error
		}
		body = append(body, table.Row{row.Line, row.A, row.B, result})
	}
	r.renderTable(table.Row{"Line", "A", "B", "Sum"}, body)
	return nil
}

func (r *Renderer) renderTable(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(header)
	t.AppendRows(rows)

	if r.EffectiveMode() != ModeText {
		t.Style().Format.Header = text.FormatDefault
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Render()
}

func traceHeader() table.Row {
	return table.Row{"Pos", "A", "B", "Carry in", "Sum", "Digit", "Carry out"}
}

// traceRows lists the most significant column first, as the digits read.
func traceRows(steps []decimal.Step) []table.Row {
	rows := make([]table.Row, 0, len(steps))
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		rows = append(rows, table.Row{
			s.Position,
			strconv.Itoa(s.DigitA),
			strconv.Itoa(s.DigitB),
			s.CarryIn,
			s.Sum,
			s.Digit,
			s.CarryOut,
		})
	}
	return rows
}
