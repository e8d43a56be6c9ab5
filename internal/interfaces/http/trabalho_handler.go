package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/galindoptbr/orcamentos-app/internal/application/catalogo"
	"github.com/galindoptbr/orcamentos-app/internal/application/dto"
	"github.com/galindoptbr/orcamentos-app/internal/domain"
)

// TrabalhoHandler trata os pedidos HTTP dos modelos de trabalho.
type TrabalhoHandler struct {
	uc *catalogo.UseCase
}

// NewTrabalhoHandler constrói o handler.
func NewTrabalhoHandler(uc *catalogo.UseCase) *TrabalhoHandler {
	return &TrabalhoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar modelo de trabalho
// @Tags         trabalhos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrabalhoRequest  true  "Dados do trabalho"
// @Success      201   {object}  dto.TrabalhoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trabalhos [post]
func (h *TrabalhoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrabalhoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateTrabalho(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parteProcessoId, descricao e unidade são obrigatórios"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "parte do processo não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar modelos de trabalho
// @Tags         trabalhos
// @Produce      json
// @Param        parteId  query  string  false  "Filtrar por parte do processo"
// @Success      200      {array}  dto.TrabalhoResponse
// @Router       /api/trabalhos [get]
func (h *TrabalhoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListTrabalhos(c.Query("parteId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Apagar modelo de trabalho
// @Tags         trabalhos
// @Produce      json
// @Param        id   path  string  true  "ID do trabalho"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabalhos/{id} [delete]
func (h *TrabalhoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.DeleteTrabalho(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabalho não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
