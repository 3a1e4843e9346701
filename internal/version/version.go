package version

import (
	"fmt"

	"github.com/fatih/color"
)

const Version = "v0.1.0"

// banner returns the colored name and version line of studentquery.
func banner() string {
	return color.New(color.FgCyan, color.Bold).Sprintf("studentquery %s", Version)
}

// CLIVersion returns the version text printed by --version.
func CLIVersion() string {
	return fmt.Sprintf(
		"%s\nLists the students of a local SQLite database with their averages",
		banner(),
	)
}
