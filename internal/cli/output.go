package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rentdiv/rent"
	"github.com/katalvlaran/rentdiv/report"
)

// writeAllocation renders a in the requested format.
func writeAllocation(w io.Writer, format string, a *rent.Allocation, labels report.Labels) error {
	switch format {
	case "table":
		out, err := report.Table(a, labels)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case "yaml":
		s, err := report.Summarize(a, labels)
		if err != nil {
			return err
		}
		return encodeYAML(w, s)
	default:
		return report.WriteText(w, a, labels)
	}
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
