// Package cli holds the output and exit-code conventions shared by the
// one-shot subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// Success outputs a successful result. message is the human-readable line;
// quiet mode prints only the task id when data carries one.
func (f *OutputFormatter) Success(data any, message string) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int64 }); ok {
			_, err := fmt.Fprintf(f.Out, "%d\n", idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	_, err := fmt.Fprintln(f.Out, message)
	return err
}

// Error outputs error information. In JSON mode the error goes to Out so
// callers parsing stdout see it; otherwise it goes to ErrOut.
func (f *OutputFormatter) Error(code string, message string) error {
	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		})
	}

	_, err := fmt.Fprintf(f.ErrOut, "Error: %s\n", message)
	return err
}
