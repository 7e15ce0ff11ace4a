package utils

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscoverColumnsEmpty(t *testing.T) {
	columns := DiscoverColumns(nil)
	assert.Empty(t, columns)
}

func TestDiscoverColumnsIDFirst(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "a", "id": int64(1), "email": "a@b.c"},
	}
	columns := DiscoverColumns(rows)
	assert.Equal(t, []string{"id", "email", "name"}, columns)
}

func TestRecordsToCSVQuoting(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": int64(1), "message": `He said "hello", twice`, "count": int64(3)},
		{"id": int64(2), "message": "plain", "count": int64(0)},
	}
	columns := []string{"id", "count", "message"}

	out := RecordsToCSV(columns, rows)

	// CRLF row terminator, strings quoted with embedded quotes doubled,
	// numbers unquoted.
	assert.True(t, strings.HasSuffix(out, "\r\n"))
	assert.Contains(t, out, `"He said ""hello"", twice"`)
	assert.Contains(t, out, "1,3,")

	// A standard CSV parser must recover the original string exactly.
	reader := csv.NewReader(strings.NewReader(out))
	records, err := reader.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3) // header + 2 rows
	assert.Equal(t, []string{"id", "count", "message"}, records[0])
	assert.Equal(t, `He said "hello", twice`, records[1][2])
	assert.Equal(t, "plain", records[2][2])
}

func TestRecordsToCSVNilField(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": int64(1), "note": nil},
	}
	out := RecordsToCSV([]string{"id", "note"}, rows)
	assert.Contains(t, out, "1,\r\n")
}

func TestRecordsToJSONRoundTrip(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": float64(1), "name": "Acme", "active": true},
		{"id": float64(2), "name": `Quote "Inc"`, "active": false},
	}

	out, err := RecordsToJSON(rows)
	assert.NoError(t, err)
	assert.Contains(t, out, "  \"id\"") // 2-space indent

	var parsed []map[string]interface{}
	err = json.Unmarshal([]byte(out), &parsed)
	assert.NoError(t, err)
	assert.Equal(t, rows, parsed)
}
