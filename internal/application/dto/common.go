package dto

import (
	"fmt"

	"github.com/jhoicas/Invoicing-api/internal/domain"
)

// DefaultLimit tamaño de página cuando no se indica limit.
const DefaultLimit = 100

// PageRequest paginación skip/limit de los listados. nil = no enviado.
type PageRequest struct {
	Skip  *int `query:"skip"`
	Limit *int `query:"limit"`
}

// Resolve aplica valores por defecto (skip 0, limit 100) y rechaza negativos.
func (p PageRequest) Resolve() (skip, limit int, err error) {
	limit = DefaultLimit
	if p.Skip != nil {
		skip = *p.Skip
	}
	if p.Limit != nil {
		limit = *p.Limit
	}
	if skip < 0 || limit < 0 {
		return 0, 0, fmt.Errorf("%w: skip y limit no pueden ser negativos", domain.ErrInvalidInput)
	}
	return skip, limit, nil
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}
