package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/studentquery/internal/collect"
	"github.com/nsqlite/studentquery/internal/studentquery/styled"
	"github.com/nsqlite/studentquery/internal/util/numutil"
)

// Write renders records to w in the given format, keeping their order.
func Write(w io.Writer, format Format, records []collect.Record) error {
	switch format {
	case FormatText:
		return writeText(w, records)
	case FormatTable:
		return writeTable(w, records)
	case FormatJSON:
		return writeJSON(w, records)
	}
	return fmt.Errorf("unsupported format %q", format.Value)
}

func writeText(w io.Writer, records []collect.Record) error {
	if _, err := fmt.Fprintf(w, "%s records found\n\n", numutil.IntWithCommas(len(records))); err != nil {
		return err
	}

	for _, r := range records {
		_, err := fmt.Fprintf(w, "Name:    %s\nAverage: %f\n\n", r.Name, r.Average)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeTable(w io.Writer, records []collect.Record) error {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"#", "Name", "Average"})

	for i, r := range records {
		tw.AppendRow(table.Row{i + 1, r.Name, fmt.Sprintf("%.2f", r.Average)})
	}
	tw.AppendFooter(table.Row{"", "Total", numutil.IntWithCommas(len(records))})

	_, err := fmt.Fprintf(
		w, "%s records found\n%s\n",
		numutil.IntWithCommas(len(records)), tw.Render(),
	)
	return err
}

// jsonRecord is the JSON shape of a collect.Record.
type jsonRecord struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

func writeJSON(w io.Writer, records []collect.Record) error {
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		out = append(out, jsonRecord{Name: r.Name, Average: r.Average})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
