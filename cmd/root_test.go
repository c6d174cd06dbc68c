package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewConway/make-exam-numbers/internal/codefile"
)

// newRootForTest builds a fresh command wired to runRoot so tests do not
// share flag state through the package-level rootCmd.
func newRootForTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "make-exam-numbers <min_hamming_distance> <digits> [prefix:count ...]",
		Args: cobra.MinimumNArgs(2),
		RunE: runRoot,
	}
	cmd.Flags().Int64("seed", 0, "")
	cmd.Flags().StringArray("existing", nil, "")
	cmd.Flags().String("output-dir", "", "")
	cmd.Flags().Bool("parallel", false, "")
	cmd.Flags().Int("max-attempts", 0, "")
	cmd.Flags().Bool("quiet", false, "")
	cmd.Flags().String("log-level", "", "")
	cmd.Flags().Bool("pretty", false, "")
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd
}

func TestRoot_GeneratesGroupFiles(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootForTest()
	cmd.SetArgs([]string{"2", "4", "T:10", "--output-dir", dir, "--quiet", "--seed", "5", "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	codes, err := codefile.ReadCodes(filepath.Join(dir, "prefix_T.txt"))
	require.NoError(t, err)
	assert.Len(t, codes, 10)
	for _, code := range codes {
		assert.Len(t, code, 5)
		assert.Equal(t, byte('T'), code[0])
	}
}

func TestRoot_DefaultGroupWhenNoPairs(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootForTest()
	cmd.SetArgs([]string{"1", "3", "--output-dir", dir, "--quiet", "--seed", "9", "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	codes, err := codefile.ReadCodes(filepath.Join(dir, "prefix_.txt"))
	require.NoError(t, err)
	assert.Len(t, codes, 100)
}

func TestRoot_RejectsBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "distance not a number", args: []string{"x", "4", "--quiet"}},
		{name: "digits not a number", args: []string{"2", "x", "--quiet"}},
		{name: "malformed pair", args: []string{"2", "4", "A:B:3", "--quiet"}},
		{name: "negative count", args: []string{"2", "4", "A:-1", "--quiet"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootForTest()
			cmd.SetArgs(append(tt.args, "--output-dir", t.TempDir()))
			require.Error(t, cmd.Execute())
		})
	}
}

func TestRoot_SeedGivesIdenticalFiles(t *testing.T) {
	run := func(dir string) []string {
		cmd := newRootForTest()
		cmd.SetArgs([]string{"2", "5", "E:15", "--output-dir", dir, "--quiet", "--seed", "77", "--log-level", "error"})
		require.NoError(t, cmd.Execute())

		codes, err := codefile.ReadCodes(filepath.Join(dir, "prefix_E.txt"))
		require.NoError(t, err)
		return codes
	}

	first := run(t.TempDir())
	second := run(t.TempDir())
	assert.Equal(t, first, second)
}
