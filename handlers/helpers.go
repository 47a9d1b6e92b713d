package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// digits parses a query parameter the way the listing filters expect: only a
// non-empty all-digit string counts, anything else is treated as absent.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// paramID reads a numeric path parameter; a non-numeric value is a 404, not
// a bad request, since no resource can live at that path.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return uint(n), nil
}
