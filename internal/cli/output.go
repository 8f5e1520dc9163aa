package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// print - text as is, or body encoded as JSON.
func (that *env) print(w io.Writer, text string, body any) error {
	if that.output == outputJSON {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}

		return nil
	}

	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
