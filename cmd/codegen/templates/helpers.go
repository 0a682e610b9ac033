package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings renders comma-joined indexed names, e.g. "T0, T1, T2".
func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
