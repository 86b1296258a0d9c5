package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON renders the run result as a single JSON object with stable
// field names: documents (per-document diagnostic arrays) and summary
// (counts and exit code).
func WriteJSON(w io.Writer, run *RunResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
