// Parses the raw table exports (CSV/TSV) the federation tools produce.
// The delimiter is unknown up front and the files are frequently ragged,
// so this is deliberately more tolerant than encoding/csv.
package parser

import "strings"

// Row maps a trimmed header name to the trimmed cell value.
type Row map[string]string

// Parse turns delimited text into one Row per data line.
//
// The first line is the header. The delimiter is sniffed on it: tab wins when
// present and at least as frequent as the others, then semicolon over comma.
// Double-quoted fields are honored and a doubled quote inside one is a
// literal quote. Missing trailing cells become "". Empty input yields nil.
func Parse(text string) []Row {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	sep := detectDelimiter(lines[0])
	headers := splitLine(lines[0], sep)

	var rows []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := splitLine(line, sep)
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(cols) {
				row[h] = cols[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func detectDelimiter(header string) rune {
	tabs := strings.Count(header, "\t")
	semis := strings.Count(header, ";")
	commas := strings.Count(header, ",")

	switch {
	case tabs > 0 && tabs >= semis && tabs >= commas:
		return '\t'
	case semis >= commas:
		return ';'
	default:
		return ','
	}
}

// splitLine splits one line on sep, honoring double-quoted fields.
// Every field comes back trimmed.
func splitLine(line string, sep rune) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				b.WriteRune('"') // "" inside quotes = literal quote
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == sep && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}
