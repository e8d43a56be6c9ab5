package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/galindoptbr/orcamentos-app/internal/application/catalogo"
	apporcamento "github.com/galindoptbr/orcamentos-app/internal/application/orcamento"
	infrapdf "github.com/galindoptbr/orcamentos-app/internal/infrastructure/pdf"
	"github.com/galindoptbr/orcamentos-app/internal/infrastructure/postgres"
	httpRouter "github.com/galindoptbr/orcamentos-app/internal/interfaces/http"
	"github.com/galindoptbr/orcamentos-app/pkg/config"
	"github.com/galindoptbr/orcamentos-app/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("a iniciar aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("ligação ao PostgreSQL")
	}
	defer pool.Close()

	parteRepo := postgres.NewParteProcessoRepository(pool)
	trabalhoRepo := postgres.NewTrabalhoRepository(pool)
	orcamentoRepo := postgres.NewOrcamentoRepository(pool)

	catalogoUC := catalogo.NewUseCase(parteRepo, trabalhoRepo)
	numerador := apporcamento.NewNumerador(orcamentoRepo)
	orcamentoUC := apporcamento.NewUseCase(orcamentoRepo, parteRepo, trabalhoRepo, numerador)

	// PDF: documento de orçamento pronto a enviar ao cliente
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	orcamentoPDFUC := apporcamento.NewPDFUseCase(orcamentoRepo, trabalhoRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Orçamentos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogoUC:   catalogoUC,
		OrcamentoUC:  orcamentoUC,
		OrcamentoPDF: orcamentoPDFUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP terminado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de paragem recebido, a fechar o servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("paragem do servidor")
	}

	log.Info().Msg("aplicação parada")
}
