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

	"github.com/acuasoft/acueducto-api/internal/application/auth"
	"github.com/acuasoft/acueducto-api/internal/application/catalog"
	"github.com/acuasoft/acueducto-api/internal/application/deferred"
	"github.com/acuasoft/acueducto-api/internal/application/export"
	"github.com/acuasoft/acueducto-api/internal/application/payment"
	"github.com/acuasoft/acueducto-api/internal/application/payroll"
	"github.com/acuasoft/acueducto-api/internal/application/reading"
	"github.com/acuasoft/acueducto-api/internal/infrastructure/dianpayroll"
	infraexcel "github.com/acuasoft/acueducto-api/internal/infrastructure/excel"
	infrapdf "github.com/acuasoft/acueducto-api/internal/infrastructure/pdf"
	"github.com/acuasoft/acueducto-api/internal/infrastructure/postgres"
	httpRouter "github.com/acuasoft/acueducto-api/internal/interfaces/http"
	"github.com/acuasoft/acueducto-api/pkg/config"
	"github.com/acuasoft/acueducto-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	installationRepo := postgres.NewInstallationRepository(pool)
	conceptRepo := postgres.NewBillingConceptRepository(pool)
	tariffRepo := postgres.NewTariffRepository(pool)
	planRepo := postgres.NewDeferredPlanRepository(pool)
	readingRepo := postgres.NewMeterReadingRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	payrollRepo := postgres.NewPayrollRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := catalog.NewCompanyUseCase(companyRepo)
	customerUC := catalog.NewCustomerUseCase(customerRepo)
	installationUC := catalog.NewInstallationUseCase(installationRepo)
	conceptUC := catalog.NewConceptUseCase(conceptRepo)
	tariffUC := catalog.NewTariffUseCase(tariffRepo)

	deferredUC := deferred.NewDeferredPlanUseCase(planRepo, installationUC, conceptUC)
	readingUC := reading.NewReadingUseCase(readingRepo, installationUC, tariffUC)
	paymentUC := payment.NewPaymentUseCase(paymentRepo, installationUC, planRepo)

	// Exportes del libro de diferidos: libro completo en Excel y extracto por
	// plan en PDF.
	planBook := infraexcel.NewPlanBook()
	planStatement := infrapdf.NewPlanStatement(cfg.App.Name)
	exportUC := export.NewExportUseCase(planRepo, planBook, planStatement)

	// Nómina electrónica DIAN: el cliente HTTP solo se configura si hay URL
	// base; sin él, el envío responde conflicto.
	var submitter payroll.Submitter
	if cfg.DIAN.BaseURL != "" {
		submitter = dianpayroll.NewClient(cfg.DIAN)
	}
	payrollUC := payroll.NewPayrollUseCase(
		txRunner, payrollRepo, workerRepo, companyRepo,
		submitter, cfg.DIAN.SoftwareID, cfg.DIAN.Environment,
	)
	workerUC := payroll.NewWorkerUseCase(workerRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// El JSON se genera con `make docs` (swag); si no existe se omite la UI.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Acueducto API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:      companyUC,
		CustomerUC:     customerUC,
		InstallationUC: installationUC,
		ConceptUC:      conceptUC,
		TariffUC:       tariffUC,
		DeferredUC:     deferredUC,
		ExportUC:       exportUC,
		ReadingUC:      readingUC,
		PaymentUC:      paymentUC,
		PayrollUC:      payrollUC,
		WorkerUC:       workerUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
