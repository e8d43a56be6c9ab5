package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/galindoptbr/orcamentos-app/internal/application/dto"
	apporcamento "github.com/galindoptbr/orcamentos-app/internal/application/orcamento"
	"github.com/galindoptbr/orcamentos-app/internal/domain"
)

// OrcamentoHandler trata os pedidos HTTP dos orçamentos.
type OrcamentoHandler struct {
	uc    *apporcamento.UseCase
	pdfUC *apporcamento.PDFUseCase
}

// NewOrcamentoHandler constrói o handler.
func NewOrcamentoHandler(uc *apporcamento.UseCase, pdfUC *apporcamento.PDFUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Criar orçamento
// @Tags         orcamentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalvarOrcamentoRequest  true  "Cliente e secções do orçamento"
// @Success      201   {object}  dto.OrcamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orcamentos [post]
func (h *OrcamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.SalvarOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return orcamentoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar orçamentos
// @Tags         orcamentos
// @Produce      json
// @Success      200  {array}  dto.OrcamentoResumo
// @Router       /api/orcamentos [get]
func (h *OrcamentoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter orçamento por ID
// @Tags         orcamentos
// @Produce      json
// @Param        id   path  string  true  "ID do orçamento"
// @Success      200  {object}  dto.OrcamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id} [get]
func (h *OrcamentoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return orcamentoError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar orçamento
// @Tags         orcamentos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do orçamento"
// @Param        body  body  dto.SalvarOrcamentoRequest  true  "Cliente e secções do orçamento"
// @Success      200   {object}  dto.OrcamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id} [put]
func (h *OrcamentoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.SalvarOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(id, in)
	if err != nil {
		return orcamentoError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Apagar orçamento
// @Tags         orcamentos
// @Produce      json
// @Param        id   path  string  true  "ID do orçamento"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id} [delete]
func (h *OrcamentoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return orcamentoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Descarregar o PDF de um orçamento salvo
// @Tags         orcamentos
// @Produce      application/pdf
// @Param        id   path  string  true  "ID do orçamento"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id}/pdf [get]
func (h *OrcamentoHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadPDF(c.Context(), id)
	if err != nil {
		return orcamentoError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// PreviaPDF godoc
// @Summary      Gerar o PDF de pré-visualização de um orçamento não salvo
// @Tags         orcamentos
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.SalvarOrcamentoRequest  true  "Cliente e secções do orçamento"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orcamentos/previa/pdf [post]
func (h *OrcamentoHandler) PreviaPDF(c *fiber.Ctx) error {
	var in dto.SalvarOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	pdfBytes, err := h.pdfUC.PreviaPDF(c.Context(), in)
	if err != nil {
		return orcamentoError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

// orcamentoError mapeia erros de domínio para respostas HTTP.
func orcamentoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome do cliente e pelo menos um trabalho são obrigatórios"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
	case errors.Is(err, domain.ErrNumberingExhausted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NUMBERING", Message: "numeração anual esgotada"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "número de orçamento já atribuído"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
