package resolver

import (
	"fmt"
	"strconv"
	"strings"
)

// queryString flattens a weakly typed identifier into the string the match
// rules operate on. nil yields "".
func queryString(query any) string {
	switch q := query.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(q)
	case *string:
		if q == nil {
			return ""
		}
		return strings.TrimSpace(*q)
	case int:
		return strconv.Itoa(q)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", q)
	case fmt.Stringer:
		return strings.TrimSpace(q.String())
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", q))
	}
}
