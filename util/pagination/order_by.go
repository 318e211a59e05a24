package pagination

import (
	"fmt"
	"strings"
)

// OrderBy is the sort direction for a paginated query.
type OrderBy string

const (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)

// SplitOrderByParam splits a user-supplied order specification of the form
// "field [ASC|DESC]" into the sorting field and order. Order defaults to
// ascending when omitted.
func SplitOrderByParam(param string) (string, OrderBy, error) {
	parts := strings.Fields(param)

	switch len(parts) {
	case 1:
		return parts[0], OrderByAsc, nil
	case 2:
		switch strings.ToUpper(parts[1]) {
		case "ASC":
			return parts[0], OrderByAsc, nil
		case "DESC":
			return parts[0], OrderByDesc, nil
		default:
			return "", OrderByAsc, fmt.Errorf("invalid order '%s'; must be ASC or DESC", parts[1])
		}
	default:
		return "", OrderByAsc, fmt.Errorf("invalid order by param '%s'", param)
	}
}
