package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Invoicing-api/internal/application/dto"
	"github.com/jhoicas/Invoicing-api/internal/domain"
)

// parsePage lee skip y limit; ausentes quedan en nil para que el caso de uso aplique los valores por defecto.
func parsePage(c *fiber.Ctx) (dto.PageRequest, error) {
	var page dto.PageRequest
	var err error
	if page.Skip, err = optionalInt(c, "skip"); err != nil {
		return page, err
	}
	if page.Limit, err = optionalInt(c, "limit"); err != nil {
		return page, err
	}
	return page, nil
}

func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser un entero", domain.ErrInvalidInput, key)
	}
	return &n, nil
}
