package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nsqlite/studentquery/internal/collect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var students = []collect.Record{
	{Name: "Ana", Average: 9.5},
	{Name: "Luis", Average: 8.0},
}

func TestWrite(t *testing.T) {
	t.Run("TextEmpty", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, Write(buf, FormatText, []collect.Record{}))
		assert.Equal(t, "0 records found\n\n", buf.String())
	})

	t.Run("Text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, Write(buf, FormatText, students))
		assert.Equal(t,
			"2 records found\n\n"+
				"Name:    Ana\nAverage: 9.500000\n\n"+
				"Name:    Luis\nAverage: 8.000000\n\n",
			buf.String(),
		)
	})

	t.Run("Table", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, Write(buf, FormatTable, students))

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "2 records found\n"))
		assert.Contains(t, out, "Name")
		assert.Contains(t, out, "9.50")
		assert.Contains(t, out, "8.00")
		assert.Less(t, strings.Index(out, "Ana"), strings.Index(out, "Luis"))
	})

	t.Run("JSON", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, Write(buf, FormatJSON, students))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, []map[string]any{
			{"name": "Ana", "average": 9.5},
			{"name": "Luis", "average": 8.0},
		}, decoded)
		assert.Contains(t, buf.String(), `"name": "Ana"`)
	})

	t.Run("JSONNil", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, Write(buf, FormatJSON, nil))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.Error(t, Write(buf, Format{Value: "csv"}, students))
	})
}
