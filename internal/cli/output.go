package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteOutput writes v as indented JSON.
func WriteOutput(out io.Writer, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Exitf(ExitCodeFailure, "encode output: %v", err)
	}
	_, err = fmt.Fprintln(out, string(payload))
	return err
}
