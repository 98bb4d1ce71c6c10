package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/upgradesim/internal/simulate"
	"github.com/xtding233/upgradesim/internal/upgrade"
)

// Header is the first line of a text report.
const Header = "The list of counts on each lvl"

// Format selects how a result is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates a format name; "" means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
	}
}

// WriteHistogram writes the header and one "<level>: <count>" line for every level 0..10.
func WriteHistogram(w io.Writer, h upgrade.Histogram) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for level := 0; level <= upgrade.MaxLevel; level++ {
		if _, err := fmt.Fprintf(w, "%d: %d\n", level, h.Count(level)); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes res in the given format.
func Write(w io.Writer, f Format, res simulate.Result) error {
	switch f {
	case FormatText, "":
		return WriteHistogram(w, res.Histogram)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteTable prints the chance table, one tier per line.
func WriteTable(w io.Writer, rows []upgrade.TableRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-10s", row.Name+":"); err != nil {
			return err
		}
		for _, c := range row.Chances {
			if _, err := fmt.Fprintf(w, " %3d", c); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
