package menu

import "strings"

// SplitLine splits one CSV line into trimmed fields. A comma inside a
// double-quoted span does not terminate a field. Quote characters toggle
// the quoted state and are dropped from the output; escaped quotes ("")
// inside a quoted field are not supported and simply yield an empty span.
func SplitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// HeaderIndex maps each header name to its column index. Header names are
// matched verbatim by the normalizer ("sub category" keeps its space), so
// no normalization happens here beyond trimming.
func HeaderIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	return index
}
