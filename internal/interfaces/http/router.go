package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/galindoptbr/orcamentos-app/internal/application/catalogo"
	apporcamento "github.com/galindoptbr/orcamentos-app/internal/application/orcamento"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CatalogoUC   *catalogo.UseCase
	OrcamentoUC  *apporcamento.UseCase
	OrcamentoPDF *apporcamento.PDFUseCase
}

// Router regista as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo: partes do processo
	partes := api.Group("/partes")
	parteHandler := NewParteHandler(deps.CatalogoUC)
	partes.Post("/", parteHandler.Create)
	partes.Get("/", parteHandler.List)
	partes.Delete("/:id", parteHandler.Delete)

	// Catálogo: modelos de trabalho
	trabalhos := api.Group("/trabalhos")
	trabalhoHandler := NewTrabalhoHandler(deps.CatalogoUC)
	trabalhos.Post("/", trabalhoHandler.Create)
	trabalhos.Get("/", trabalhoHandler.List)
	trabalhos.Delete("/:id", trabalhoHandler.Delete)

	// Orçamentos
	orcamentos := api.Group("/orcamentos")
	orcamentoHandler := NewOrcamentoHandler(deps.OrcamentoUC, deps.OrcamentoPDF)
	orcamentos.Post("/", orcamentoHandler.Create)
	orcamentos.Get("/", orcamentoHandler.List)
	orcamentos.Post("/previa/pdf", orcamentoHandler.PreviaPDF)
	orcamentos.Get("/:id", orcamentoHandler.GetByID)
	orcamentos.Put("/:id", orcamentoHandler.Update)
	orcamentos.Delete("/:id", orcamentoHandler.Delete)
	orcamentos.Get("/:id/pdf", orcamentoHandler.DownloadPDF)
}
