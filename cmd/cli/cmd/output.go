package cmd

import (
	"encoding/json"
	"fmt"
	"io"
)

// render writes v as indented JSON when --format json is selected and
// calls text otherwise
func render(w io.Writer, v interface{}, text func(w io.Writer)) error {
	switch format() {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "cli", "":
		text(w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want cli or json)", format())
	}
}
