package collect

import (
	"database/sql"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAverage(t *testing.T) {
	tests := []struct {
		name     string
		input    sql.NullString
		expected float64
	}{
		{name: "absent", input: sql.NullString{}, expected: 0},
		{name: "empty", input: sql.NullString{String: "", Valid: true}, expected: 0},
		{name: "integer", input: sql.NullString{String: "8", Valid: true}, expected: 8},
		{name: "decimal", input: sql.NullString{String: "9.5", Valid: true}, expected: 9.5},
		{name: "negative", input: sql.NullString{String: "-2.25", Valid: true}, expected: -2.25},
		{name: "explicit plus", input: sql.NullString{String: "+7", Valid: true}, expected: 7},
		{name: "leading dot", input: sql.NullString{String: ".5", Valid: true}, expected: 0.5},
		{name: "trailing dot", input: sql.NullString{String: "5.", Valid: true}, expected: 5},
		{name: "exponent", input: sql.NullString{String: "1.5e1", Valid: true}, expected: 15},
		{name: "incomplete exponent", input: sql.NullString{String: "3e", Valid: true}, expected: 3},
		{name: "leading whitespace", input: sql.NullString{String: "  \t6.75", Valid: true}, expected: 6.75},
		{name: "trailing garbage", input: sql.NullString{String: "9.5 pts", Valid: true}, expected: 9.5},
		{name: "not a number", input: sql.NullString{String: "abc", Valid: true}, expected: 0},
		{name: "only sign", input: sql.NullString{String: "-", Valid: true}, expected: 0},
		{name: "only dot", input: sql.NullString{String: ".", Valid: true}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAverage(tt.input))
		})
	}

	t.Run("Overflow", func(t *testing.T) {
		result := ParseAverage(sql.NullString{String: "1e400", Valid: true})
		assert.True(t, math.IsInf(result, 1))
	})
}
