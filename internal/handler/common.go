package handler // handler defines the HTTP handlers of the API

import (
	"errors"  // sentinel values used in getUserID
	"strconv" // string-to-number conversions
	"strings" // trimming helpers

	"github.com/labstack/echo/v4"
)

// getUserID extracts the user_id placed in the context by the JWT
// middleware and converts it to uint64. JWT numeric claims decode as
// float64, so several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// coerceInt converts a loosely typed JSON value into an int. Mobile client
// revisions send year and page count sometimes as numbers and sometimes as
// text-input strings; anything unparseable becomes 0.
func coerceInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return 0
}

// SplitKeywords turns the free-text keyword field into individual tags:
// split on commas, trim whitespace, drop empty segments. "AI, SQL, , Design"
// yields exactly [AI SQL Design].
func SplitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if w := strings.TrimSpace(p); w != "" {
			out = append(out, w)
		}
	}
	return out
}
