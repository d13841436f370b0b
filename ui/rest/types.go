package rest

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	pkgError "github.com/mirtechlab/mt-analytics/pkg/error"
)

// Query parsing shared by the listing handlers. Absent and empty parameters
// read as nil so they key the cache distinctly from real values; malformed
// values become ValidationError instead of silently filtering nothing.

func queryStrPtr(c *fiber.Ctx, name string) *string {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	return &v
}

func queryFloatPtr(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, pkgError.ValidationError(fmt.Sprintf("%s: %q is not a number", name, raw))
	}
	return &v, nil
}

func queryIntPtr(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgError.ValidationError(fmt.Sprintf("%s: %q is not an integer", name, raw))
	}
	return &v, nil
}

func queryBoolPtr(c *fiber.Ctx, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, pkgError.ValidationError(fmt.Sprintf("%s: %q is not a boolean", name, raw))
	}
	return &v, nil
}

func queryUUIDPtr(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := uuid.Parse(raw)
	if err != nil {
		return nil, pkgError.ValidationError(fmt.Sprintf("%s: %q is not a UUID", name, raw))
	}
	return &v, nil
}

func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := c.Params(name)
	v, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgError.ValidationError(fmt.Sprintf("%s: %q is not a UUID", name, raw))
	}
	return v, nil
}

// pagination reads skip and limit with the given defaults. Negative skip
// reads as 0; limit is clamped into [1, max].
func pagination(c *fiber.Ctx, defaultLimit, maxLimit int) (int, int, error) {
	skip := 0
	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, pkgError.ValidationError(fmt.Sprintf("skip: %q is not an integer", raw))
		}
		if v > 0 {
			skip = v
		}
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, pkgError.ValidationError(fmt.Sprintf("limit: %q is not an integer", raw))
		}
		limit = v
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return skip, limit, nil
}
