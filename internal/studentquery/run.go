// Package studentquery lists the students stored in a local SQLite
// database together with their averages.
package studentquery

import (
	"context"
	"fmt"
	"io"

	"github.com/nsqlite/studentquery/internal/collect"
	"github.com/nsqlite/studentquery/internal/db"
	"github.com/nsqlite/studentquery/internal/log"
	"github.com/nsqlite/studentquery/internal/studentquery/config"
	"github.com/nsqlite/studentquery/internal/studentquery/output"
	"github.com/nsqlite/studentquery/internal/studentquery/styled"
)

// StudentsQuery is the only query run by studentquery. The column order is
// bound to collect.Collector: name first, average second.
const StudentsQuery = "SELECT name, average FROM students;"

// rowExecutor runs a query delivering every result row to a callback.
type rowExecutor interface {
	ExecRows(ctx context.Context, query string, fn db.RowFunc) error
}

// Run opens the configured database, collects every student and prints
// them to stdout. Logs are written to stderr.
//
// The database is always closed before Run returns. Any returned error is
// fatal for the run, no partial results are printed.
func Run(ctx context.Context, conf config.Config, stdout, stderr io.Writer) error {
	logger := log.NewLogger(stderr, conf.Debug)

	database, err := db.Open(ctx, db.Config{
		Path:   conf.DatabasePath,
		Driver: conf.ParsedDriver,
	})
	if err != nil {
		return fmt.Errorf("can't open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.ErrorNs("db", "Failed to close database", log.KV{
				"error": err.Error(),
			})
		}
	}()

	logger.InfoNs("db", "Opened database successfully", log.KV{
		"path":   conf.DatabasePath,
		"driver": conf.ParsedDriver.Value,
	})

	records, err := collectStudents(ctx, database)
	if err != nil {
		return fmt.Errorf("SQL error: %w", err)
	}

	logger.DebugNs("query", "Query finished", log.KV{
		"query":   StudentsQuery,
		"records": len(records),
	})

	if err := output.Write(stdout, conf.ParsedFormat, records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	// The JSON output must stay parseable.
	if conf.ParsedFormat == output.FormatJSON {
		logger.Info("Done!")
		return nil
	}

	if _, err := styled.DimmedColor().Fprintln(stdout, "Done!"); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// collectStudents runs StudentsQuery and returns one record per row, in the
// order the rows were delivered.
func collectStudents(ctx context.Context, executor rowExecutor) ([]collect.Record, error) {
	collector := collect.NewCollector()
	if err := executor.ExecRows(ctx, StudentsQuery, collector.Accept); err != nil {
		return nil, err
	}
	return collector.Records(), nil
}
