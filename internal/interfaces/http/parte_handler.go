package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/galindoptbr/orcamentos-app/internal/application/catalogo"
	"github.com/galindoptbr/orcamentos-app/internal/application/dto"
	"github.com/galindoptbr/orcamentos-app/internal/domain"
)

// ParteHandler trata os pedidos HTTP das partes do processo.
type ParteHandler struct {
	uc *catalogo.UseCase
}

// NewParteHandler constrói o handler.
func NewParteHandler(uc *catalogo.UseCase) *ParteHandler {
	return &ParteHandler{uc: uc}
}

// Create godoc
// @Summary      Criar parte do processo
// @Tags         partes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateParteRequest  true  "Dados da parte"
// @Success      201   {object}  dto.ParteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/partes [post]
func (h *ParteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateParteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateParte(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "parte já existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar partes do processo
// @Tags         partes
// @Produce      json
// @Success      200  {array}  dto.ParteResponse
// @Router       /api/partes [get]
func (h *ParteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListPartes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Apagar parte do processo
// @Tags         partes
// @Produce      json
// @Param        id   path  string  true  "ID da parte"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partes/{id} [delete]
func (h *ParteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.DeleteParte(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "parte não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
