package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/nsqlite/studentquery/internal/db"
	"github.com/nsqlite/studentquery/internal/studentquery/output"
	"github.com/nsqlite/studentquery/internal/version"
)

// Config represents the configuration for studentquery.
type Config struct {
	DatabasePath string        `arg:"positional" help:"Path to an existing SQLite database file with a students table" default:"test_db.sqlite3"`
	Driver       string        `arg:"--driver,env:STUDENTQUERY_DRIVER" help:"SQLite driver used to open the database (sqlite3, sqlite)" default:"sqlite3"`
	Format       string        `arg:"--format,env:STUDENTQUERY_FORMAT" help:"Output format for the records (text, table, json)" default:"text"`
	Debug        bool          `arg:"--debug,env:STUDENTQUERY_DEBUG" help:"Enable debug logs" default:"false"`
	ParsedDriver db.Driver     `arg:"-"`
	ParsedFormat output.Format `arg:"-"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.CLIVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := validateDatabasePath(cfg.DatabasePath); err != nil {
		log.Fatal(err)
	}

	cfg.ParsedDriver, err = db.ParseDriver(cfg.Driver)
	if err != nil {
		log.Fatal(err)
	}

	cfg.ParsedFormat, err = output.ParseFormat(cfg.Format)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

// validateDatabasePath validates that path is not empty.
func validateDatabasePath(path string) error {
	if path == "" {
		return errors.New("database path is required")
	}
	return nil
}
