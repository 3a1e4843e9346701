// Package output renders collected student records.
package output

import (
	"fmt"
	"strings"

	"github.com/orsinium-labs/enum"
)

// Format represents an output format for the collected records.
type Format enum.Member[string]

var (
	// FormatText prints one Name/Average block per record.
	FormatText = Format{Value: "text"}
	// FormatTable prints the records as a table.
	FormatTable = Format{Value: "table"}
	// FormatJSON prints the records as a JSON array.
	FormatJSON = Format{Value: "json"}

	Formats = enum.New(FormatText, FormatTable, FormatJSON)
)

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	format := Formats.Parse(name)
	if format == nil {
		return Format{}, fmt.Errorf(
			"invalid format %q, valid values are: %s",
			name, strings.Join(Formats.Values(), ", "),
		)
	}
	return *format, nil
}
