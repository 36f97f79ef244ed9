package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Invoicing-api/internal/application/billing"
	"github.com/jhoicas/Invoicing-api/internal/application/dto"
	"github.com/jhoicas/Invoicing-api/pkg/logger"
)

// ClientHandler CRUD de clientes (protegido).
type ClientHandler struct {
	uc  *billing.ClientUseCase
	log *logger.Logger
}

func NewClientHandler(uc *billing.ClientUseCase, log *logger.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateClientRequest  true  "cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	client, err := h.uc.Create(c.UserContext(), ownerID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.ClientResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	list, err := h.uc.List(c.UserContext(), ownerID(c), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

// GetByID GET /clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.Get(c.UserContext(), ownerID(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(client)
}

// Update PUT /clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	client, err := h.uc.Update(c.UserContext(), ownerID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(client)
}

// Delete DELETE /clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), ownerID(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
