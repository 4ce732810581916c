package commands

import (
	"fmt"
	"io"

	"github.com/robbyt/go-bfscript/platform"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatValues, formatHex:
		return nil
	default:
		return fmt.Errorf("unknown --format %q", format)
	}
}

// render writes resp to w. text prints the low byte of each value as a
// character, values prints the numbers, hex prints the low bytes in hex.
func render(w io.Writer, resp platform.EvaluatorResponse, format string) error {
	var err error
	switch format {
	case formatText:
		_, err = w.Write(resp.Bytes())
	case formatValues:
		_, err = fmt.Fprintln(w, resp.Inspect())
	case formatHex:
		_, err = fmt.Fprintf(w, "% x\n", resp.Bytes())
	default:
		err = validateFormat(format)
	}
	return err
}
