package utils

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ParseOffsetLimit reads the offset/limit query parameters. Absent
// parameters fall back to the defaults; present-but-malformed values are an
// error so a bad window never silently becomes the default one. Bounds
// (offset >= 0, 1 <= limit <= 100) are enforced by the repository.
func ParseOffsetLimit(c echo.Context, defaultLimit int) (int, int, error) {
	offset := 0
	limit := defaultLimit

	if raw := c.QueryParam("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("offset is invalid")
		}
		offset = v
	}

	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("limit is invalid")
		}
		limit = v
	}

	return offset, limit, nil
}

// ParseOptionalFloat reads a numeric query parameter, returning nil when it
// is absent and an error naming the parameter when it is malformed.
func ParseOptionalFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s is invalid", name)
	}
	return &v, nil
}

// ParseOptionalBool reads a boolean query parameter ("true"/"false").
func ParseOptionalBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s is invalid", name)
	}
	return &v, nil
}
