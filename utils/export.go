package utils

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DiscoverColumns returns the column set of the first row. An empty result
// set yields an empty column list. Map iteration order is not stable, so
// columns come back sorted with "id" forced to the front.
func DiscoverColumns(rows []map[string]interface{}) []string {
	if len(rows) == 0 {
		return []string{}
	}

	columns := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		if col == "id" {
			continue
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	if _, hasID := rows[0]["id"]; hasID {
		columns = append([]string{"id"}, columns...)
	}
	return columns
}

// RecordsToCSV serializes rows with the export contract: every string field
// is double-quoted with embedded quotes doubled, non-string values are
// stringified unquoted, fields joined by commas and rows by CRLF. The header
// row carries the column names as quoted strings.
func RecordsToCSV(columns []string, rows []map[string]interface{}) string {
	var sb strings.Builder

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = quoteCSVString(col)
	}
	sb.WriteString(strings.Join(header, ","))
	sb.WriteString("\r\n")

	for _, row := range rows {
		fields := make([]string, len(columns))
		for i, col := range columns {
			fields[i] = csvField(row[col])
		}
		sb.WriteString(strings.Join(fields, ","))
		sb.WriteString("\r\n")
	}

	return sb.String()
}

func csvField(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return quoteCSVString(val)
	case []byte:
		return quoteCSVString(string(val))
	default:
		return fmt.Sprintf("%v", val)
	}
}

func quoteCSVString(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// RecordsToJSON pretty-prints rows with 2-space indentation.
func RecordsToJSON(rows []map[string]interface{}) (string, error) {
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
