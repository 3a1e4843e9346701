package collect

import (
	"database/sql"
	"slices"
)

// Collector accumulates one Record per accepted row, in the order the rows
// are delivered.
//
// A Collector has a single writer, the execution callback, and must only
// be read once execution has returned.
type Collector struct {
	records []Record
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		records: []Record{},
	}
}

// Accept builds a Record from the positional columns of one row and
// appends it. Its signature matches db.RowFunc.
//
// Column 0 is the name and column 1 is the average; column names are not
// consulted. Missing or NULL columns are treated as absent: an absent
// name becomes "" and an absent average becomes 0. Accept never fails.
func (c *Collector) Accept(values []sql.NullString, _ []string) error {
	name := column(values, 0)
	average := column(values, 1)

	record := Record{
		Average: ParseAverage(average),
	}
	if name.Valid {
		record.Name = TruncateName(name.String)
	}

	c.records = append(c.records, record)
	return nil
}

// Records returns a copy of the collected records in delivery order.
func (c *Collector) Records() []Record {
	return slices.Clone(c.records)
}

// Len returns the number of collected records.
func (c *Collector) Len() int {
	return len(c.records)
}

func column(values []sql.NullString, index int) sql.NullString {
	if index >= len(values) {
		return sql.NullString{}
	}
	return values[index]
}
