package collect

import "unicode/utf8"

const (
	// NameCapacity is the size of the name buffer in the original record
	// layout, terminator included.
	NameCapacity = 80
	// MaxNameLength is the maximum number of characters kept for a name.
	MaxNameLength = NameCapacity - 1
)

// Record represents one row of the students query.
type Record struct {
	Name    string
	Average float64
}

// TruncateName returns name cut down to at most MaxNameLength characters.
//
// Longer names are truncated, never rejected. Characters are counted as
// runes so multi-byte names are not split in the middle of a character.
func TruncateName(name string) string {
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}

	count := 0
	for i := range name {
		if count == MaxNameLength {
			return name[:i]
		}
		count++
	}
	return name
}
