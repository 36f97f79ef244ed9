package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Invoicing-api/internal/application/dto"
	"github.com/jhoicas/Invoicing-api/internal/domain"
	"github.com/jhoicas/Invoicing-api/pkg/logger"
)

// Códigos de error del cuerpo {"code","detail"}.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInactiveAccount    = "INACTIVE_ACCOUNT"
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidFilter      = "INVALID_FILTER"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInternal           = "INTERNAL"
)

// errorMapping estado, código y detalle de una respuesta de error.
type errorMapping struct {
	status int
	code   string
	detail string
}

// mapError traduce un error de dominio. Los errores sin clasificar son 500.
func mapError(err error) errorMapping {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		// el mismo detalle para email desconocido y contraseña incorrecta
		return errorMapping{fiber.StatusUnauthorized, CodeInvalidCredentials, domain.ErrInvalidCredentials.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return errorMapping{fiber.StatusUnauthorized, CodeUnauthorized, domain.ErrUnauthorized.Error()}
	case errors.Is(err, domain.ErrInactiveAccount):
		return errorMapping{fiber.StatusBadRequest, CodeInactiveAccount, domain.ErrInactiveAccount.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return errorMapping{fiber.StatusBadRequest, CodeDuplicateKey, err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return errorMapping{fiber.StatusNotFound, CodeNotFound, domain.ErrNotFound.Error()}
	case errors.Is(err, domain.ErrInvalidFilter):
		return errorMapping{fiber.StatusBadRequest, CodeInvalidFilter, err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return errorMapping{fiber.StatusUnprocessableEntity, CodeValidation, err.Error()}
	default:
		return errorMapping{fiber.StatusInternalServerError, CodeInternal, "error interno"}
	}
}

// writeError responde con el cuerpo de error. Los 5xx se registran una sola vez aquí.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	m := mapError(err)
	if m.status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("error no controlado")
	}
	if m.status == fiber.StatusUnauthorized && m.code == CodeUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}
	return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Detail: m.detail})
}

// ErrorHandler manejador global de fiber (rutas inexistentes, pánicos recuperados, errores devueltos).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			switch fe.Code {
			case fiber.StatusNotFound:
				code = CodeNotFound
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusUnprocessableEntity, fiber.StatusBadRequest:
				code = CodeValidation
			}
			if fe.Code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("error de fiber")
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Detail: fe.Message})
		}
		return writeError(c, log, err)
	}
}

func requestID(c *fiber.Ctx) string {
	if rid, ok := c.Locals("requestid").(string); ok {
		return rid
	}
	return ""
}
