package api

import (
	"strconv"
	"strings"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NotFound(strings.TrimSuffix(name, "_id"))
	}
	return id, nil
}

// queryIDs parses "?name=1,2,3". A missing parameter yields nil, meaning no filter.
func queryIDs(c *gin.Context, name string) ([]int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, domain.NewValidationError(domain.CodeInvalid, map[string]string{
				name: "enter a comma separated list of ids",
			})
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// queryList parses "?name=a,b". A missing parameter yields nil.
func queryList(c *gin.Context, name string) []string {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
