package httputil

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Ordering translates the "ordering" query parameter into an ORDER BY
// clause.
//
// The parameter is a comma separated list of field names, each optionally
// prefixed with "-" for descending order. Only fields present in the
// whitelist are used, which maps the query parameter name to the database
// column. If no usable field remains, the fallback clause is returned.
func Ordering(c *gin.Context, whitelist map[string]string, fallback string) string {
	var clauses []string

	for _, field := range strings.Split(c.Query("ordering"), ",") {
		direction := " ASC"
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			direction = " DESC"
		}

		column, ok := whitelist[field]
		if !ok {
			continue
		}

		clauses = append(clauses, column+direction)
	}

	if len(clauses) == 0 {
		return fallback
	}

	return strings.Join(clauses, ", ")
}
