package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuasoft/acueducto-api/internal/application/auth"
	"github.com/acuasoft/acueducto-api/internal/application/catalog"
	"github.com/acuasoft/acueducto-api/internal/application/deferred"
	"github.com/acuasoft/acueducto-api/internal/application/export"
	"github.com/acuasoft/acueducto-api/internal/application/payment"
	"github.com/acuasoft/acueducto-api/internal/application/payroll"
	"github.com/acuasoft/acueducto-api/internal/application/reading"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC      *catalog.CompanyUseCase
	CustomerUC     *catalog.CustomerUseCase
	InstallationUC *catalog.InstallationUseCase
	ConceptUC      *catalog.ConceptUseCase
	TariffUC       *catalog.TariffUseCase
	DeferredUC     *deferred.DeferredPlanUseCase
	ExportUC       *export.ExportUseCase
	ReadingUC      *reading.ReadingUseCase
	PaymentUC      *payment.PaymentUseCase
	PayrollUC      *payroll.PayrollUseCase
	WorkerUC       *payroll.WorkerUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; alta inicial de empresas del sistema)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	gestion := RequireRole("admin", "tesorero")

	// Suscriptores (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", gestion, customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", gestion, customerHandler.Update)
	customers.Delete("/:id", gestion, customerHandler.Delete)

	// Instalaciones (protegido)
	installations := protected.Group("/installations")
	installationHandler := NewInstallationHandler(deps.InstallationUC)
	installations.Post("/", gestion, installationHandler.Create)
	installations.Get("/", installationHandler.List)
	installations.Get("/:id", installationHandler.GetByID)
	installations.Put("/:id", gestion, installationHandler.Update)

	// Lecturas de medidor (protegido; registro solo para lecturistas o admin)
	readingHandler := NewReadingHandler(deps.ReadingUC)
	installations.Post("/:code/readings", RequireRole("admin", "lecturista"), readingHandler.Register)
	installations.Get("/:code/readings", readingHandler.ListByInstallation)

	// Recaudos (protegido)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	installations.Post("/:code/payments", gestion, paymentHandler.Register)
	installations.Get("/:code/payments", paymentHandler.ListByInstallation)

	// Conceptos de facturación (protegido)
	concepts := protected.Group("/concepts")
	conceptHandler := NewConceptHandler(deps.ConceptUC)
	concepts.Post("/", gestion, conceptHandler.Create)
	concepts.Get("/", conceptHandler.List)
	concepts.Get("/:id", conceptHandler.GetByID)
	concepts.Put("/:id", gestion, conceptHandler.Update)

	// Tarifas (protegido)
	tariffs := protected.Group("/tariffs")
	tariffHandler := NewTariffHandler(deps.TariffUC)
	tariffs.Post("/", gestion, tariffHandler.Create)
	tariffs.Get("/", tariffHandler.List)

	// Diferidos (protegido; escritura solo admin/tesorero)
	plans := protected.Group("/deferred-plans")
	deferredHandler := NewDeferredPlanHandler(deps.DeferredUC, deps.ExportUC)
	plans.Post("/", gestion, deferredHandler.Create)
	plans.Get("/", deferredHandler.List)
	plans.Get("/export", deferredHandler.ExportBook)
	plans.Get("/:id", deferredHandler.GetByID)
	plans.Get("/:id/schedule", deferredHandler.Schedule)
	plans.Get("/:id/statement", deferredHandler.ExportStatement)
	plans.Patch("/:id", gestion, deferredHandler.Update)
	plans.Delete("/:id", gestion, deferredHandler.Cancel)

	// Nómina (protegido, admin/tesorero)
	payrollHandler := NewPayrollHandler(deps.PayrollUC, deps.WorkerUC)
	workers := protected.Group("/workers", gestion)
	workers.Post("/", payrollHandler.CreateWorker)
	workers.Get("/", payrollHandler.ListWorkers)
	workers.Delete("/:id", payrollHandler.DeactivateWorker)

	payrollGroup := protected.Group("/payroll", gestion)
	payrollGroup.Post("/periods", payrollHandler.Liquidate)
	payrollGroup.Get("/periods", payrollHandler.ListPeriods)
	payrollGroup.Get("/periods/:id", payrollHandler.GetPeriod)
	payrollGroup.Post("/periods/:id/dian", payrollHandler.SubmitToDIAN)
}
