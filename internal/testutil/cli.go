package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// CaptureOutput returns what fn writes to stdout. Commands print with fmt
// directly, so cobra's SetOut is not enough.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err, "create stdout pipe")

	saved := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = saved }()

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()
	_ = w.Close()

	return <-done
}

// ExecuteCommand runs an already configured command and returns its stdout
func ExecuteCommand(t *testing.T, cmd *cobra.Command) (string, error) {
	t.Helper()

	var err error
	out := CaptureOutput(t, func() { err = cmd.Execute() })
	return out, err
}

// SetupCobraCommand sets args and keeps cobra from printing usage or errors
// into the captured output
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}

// ParseJSON decodes the object printed by a --json command
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output: %s", output)
	return result
}

// JSONList returns field of a --json result as a list of objects, such as
// the games of a list or the columns of the board
func JSONList(t *testing.T, result map[string]any, field string) []map[string]any {
	t.Helper()

	raw, ok := result[field].([]any)
	require.True(t, ok, "field %q is not a list: %v", field, result[field])

	items := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		item, ok := r.(map[string]any)
		require.True(t, ok, "item of %q is not an object: %v", field, r)
		items = append(items, item)
	}
	return items
}

// QuietIDs splits --quiet output into the printed ids
func QuietIDs(output string) []string {
	return strings.Fields(output)
}
