package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes an embedded JSON file into T. Unknown keys are rejected.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("theme: read %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("theme: decode %s: %w", filename, err)
	}

	return result, nil
}
