package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Invoicing-api/internal/application/auth"
	"github.com/jhoicas/Invoicing-api/internal/application/dto"
	"github.com/jhoicas/Invoicing-api/internal/observability/metrics"
	"github.com/jhoicas/Invoicing-api/pkg/logger"
)

// AuthHandler maneja registro, emisión de token y perfil.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, full_name"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := parseBody(c, &in); err != nil {
		metrics.ObserveAuth(metrics.OpRegister, CodeValidation)
		return writeError(c, h.log, err)
	}
	user, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		metrics.ObserveAuth(metrics.OpRegister, mapError(err).code)
		return writeError(c, h.log, err)
	}
	metrics.ObserveAuth(metrics.OpRegister, "success")
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Token godoc
// @Summary      Obtener token (password flow)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "email"
// @Param        password  formData  string  true  "password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		metrics.ObserveAuth(metrics.OpLogin, CodeValidation)
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		metrics.ObserveAuth(metrics.OpLogin, mapError(err).code)
		return writeError(c, h.log, err)
	}
	metrics.ObserveAuth(metrics.OpLogin, "success")
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.UserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(h.uc.Me(CurrentUser(c)))
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query  int  false  "offset"
// @Param        limit  query  int  false  "tamaño de página (100)"
// @Success      200   {array}   dto.UserResponse
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	users, err := h.uc.ListUsers(c.UserContext(), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(users)
}
