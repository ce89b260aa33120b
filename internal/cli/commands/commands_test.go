package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/digitadd/internal/cli/config"
	"github.com/leapstack-labs/digitadd/internal/cli/output"
	"github.com/leapstack-labs/digitadd/internal/testutil"
	"github.com/leapstack-labs/digitadd/pkg/decimal"
	"github.com/leapstack-labs/digitadd/pkg/word"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs cmd with args and returns stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, stdin string, args ...string) (string, string, error) {
	t.Helper()

	if cfg == nil {
		cfg = config.Default()
	}
	ctx := config.WithLogger(config.WithConfig(context.Background(), cfg), testutil.NewTestLogger(t))

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{cmd: NewAddCommand(), use: "add <a> <b>", flags: []string{"trace", "normalize"}},
		{cmd: NewSumCommand(), use: "sum <n>..."},
		{cmd: NewWordCommand(), use: "word <a> <b>", flags: []string{"wrap"}},
		{cmd: NewBatchCommand(), use: "batch [file]", flags: []string{"workers"}},
		{cmd: NewDemoCommand(), use: "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Long, "Long should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestAddCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "demo operands", args: []string{"1234512345", "1357912345"}, want: "1234512345 + 1357912345 = 2592424690\n"},
		{name: "carry out", args: []string{"999", "1"}, want: "999 + 1 = 1000\n"},
		{name: "zeros", args: []string{"0", "0"}, want: "0 + 0 = 0\n"},
		{name: "unequal lengths", args: []string{"123", "45678"}, want: "123 + 45678 = 45801\n"},
		{name: "normalize", args: []string{"--normalize", "007", "0003"}, want: "7 + 3 = 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, NewAddCommand(), nil, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestAddCommand_Errors(t *testing.T) {
	_, _, err := execute(t, NewAddCommand(), nil, "", "12a3", "45")
	require.Error(t, err)
	assert.ErrorIs(t, err, decimal.ErrInvalidDigit)
	assert.Contains(t, err.Error(), "add: a: invalid digit 'a' at index 2")

	_, _, err = execute(t, NewAddCommand(), nil, "", "", "45")
	assert.ErrorIs(t, err, decimal.ErrEmptyInput)

	_, _, err = execute(t, NewAddCommand(), nil, "", "--normalize", "1", "0x")
	var digitErr *decimal.InvalidDigitError
	require.ErrorAs(t, err, &digitErr)
	assert.Equal(t, decimal.OperandB, digitErr.Operand)

	_, _, err = execute(t, NewAddCommand(), nil, "", "1")
	assert.Error(t, err, "add needs exactly two operands")
}

func TestAddCommand_TraceFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Trace = true
	cfg.OutputFormat = "json"

	out, _, err := execute(t, NewAddCommand(), cfg, "", "5", "5")
	require.NoError(t, err)

	var got output.Addition
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "10", got.Result)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, 1, got.Steps[0].CarryOut)
}

func TestSumCommand(t *testing.T) {
	out, _, err := execute(t, NewSumCommand(), nil, "", "1", "22", "333", "4444")
	require.NoError(t, err)
	assert.Equal(t, "1 + 22 + 333 + 4444 = 4800\n", out)

	_, _, err = execute(t, NewSumCommand(), nil, "", "1", "x")
	assert.ErrorIs(t, err, decimal.ErrInvalidDigit)
}

func TestWordCommand(t *testing.T) {
	out, _, err := execute(t, NewWordCommand(), nil, "", "1234512345", "1357912345")
	require.NoError(t, err)
	assert.Equal(t, "1234512345 + 1357912345 = 2592424690\n", out)

	_, _, err = execute(t, NewWordCommand(), nil, "", "9223372036854775807", "1")
	assert.ErrorIs(t, err, word.ErrOverflow)

	out, _, err = execute(t, NewWordCommand(), nil, "", "--wrap", "9223372036854775807", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "= -9223372036854775808")

	_, _, err = execute(t, NewWordCommand(), nil, "", "1.5", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid int64")
}

func TestBatchCommand_Stdin(t *testing.T) {
	cfg := config.Default()
	cfg.OutputFormat = "json"

	out, _, err := execute(t, NewBatchCommand(), cfg, "999 1\n# skip\n5 5\n", "--workers", "2")
	require.NoError(t, err)

	var rows []output.BatchRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []output.BatchRow{
		{Line: 1, A: "999", B: "1", Result: "1000"},
		{Line: 3, A: "5", B: "5", Result: "10"},
	}, rows)
}

func TestBatchCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt")
	require.NoError(t, os.WriteFile(path, []byte("1234512345 1357912345\n12a3 45\n"), 0600))

	out, errOut, err := execute(t, NewBatchCommand(), nil, "", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBatchFailed)
	assert.Contains(t, out, "2592424690")
	assert.Contains(t, out, "invalid digit")
	assert.Contains(t, errOut, "1 of 2 pairs failed")
}

func TestBatchCommand_MalformedLine(t *testing.T) {
	_, _, err := execute(t, NewBatchCommand(), nil, "1 2 3\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1: expected 2 operands, got 3")
}

func TestBatchCommand_MissingFile(t *testing.T) {
	_, _, err := execute(t, NewBatchCommand(), nil, "", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemoCommand(t *testing.T) {
	out, _, err := execute(t, NewDemoCommand(), nil, "")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "1234512345 + 1357912345 = 2592424690"), "decimal and word results: %s", out)
}
