package db

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/orsinium-labs/enum"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Driver represents a database/sql driver able to open SQLite files.
type Driver enum.Member[string]

var (
	// DriverMattn is the cgo based github.com/mattn/go-sqlite3 driver.
	DriverMattn = Driver{Value: "sqlite3"}
	// DriverModernc is the pure Go modernc.org/sqlite driver.
	DriverModernc = Driver{Value: "sqlite"}

	Drivers = enum.New(DriverMattn, DriverModernc)
)

// ParseDriver returns the Driver registered under the given name.
func ParseDriver(name string) (Driver, error) {
	driver := Drivers.Parse(name)
	if driver == nil {
		return Driver{}, fmt.Errorf(
			"invalid driver %q, valid values are: %s",
			name, strings.Join(Drivers.Values(), ", "),
		)
	}
	return *driver, nil
}

// dsn returns a connection string that opens path read/write without
// creating it when it does not exist.
//
// Both drivers read the string as a SQLite URI, so the path is percent
// escaped: a raw "?", "#" or "%" would otherwise cut or alter the file name
// and drop the mode parameter.
func dsn(path string) string {
	escaped := (&url.URL{Path: path}).EscapedPath()
	return "file:" + escaped + "?mode=rw"
}
