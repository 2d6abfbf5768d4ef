package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter picks between the three output modes of every command:
// human text, --json for scripts and --quiet for ids only
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// JSONResult writes {"success": true, ...fields} to stdout
func (f *OutputFormatter) JSONResult(fields map[string]any) error {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["success"] = true
	return json.NewEncoder(os.Stdout).Encode(out)
}

type jsonError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ErrorWithSuggestion reports a failure. JSON mode writes it to stdout so
// scripts read one document either way. Text goes to stderr.
func (f *OutputFormatter) ErrorWithSuggestion(code, message, suggestion string) error {
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   jsonError{Code: code, Message: message, Suggestion: suggestion},
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it carrying exitCode for Execute
func (f *OutputFormatter) Fail(exitCode int, code string, err error) error {
	return f.FailWithSuggestion(exitCode, code, err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(exitCode int, code string, err error, suggestion string) error {
	if reportErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); reportErr != nil {
		return Exit(ExitError, reportErr)
	}
	return Exit(exitCode, err)
}
