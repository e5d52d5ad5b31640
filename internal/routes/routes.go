package routes

import (
	"seguranca-backend/internal/audit"
	"seguranca-backend/internal/auth"
	"seguranca-backend/internal/config"
	"seguranca-backend/internal/dashboard"
	"seguranca-backend/internal/health"
	"seguranca-backend/internal/incidentes"
	"seguranca-backend/internal/recursos"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup registra todas as rotas da API. Fica fora do main para os testes de
// handler montarem a mesma app contra um banco em memória.
func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	// Públicas
	app.Get("/health", health.Handler(db))
	app.Post("/setup-admin", auth.SetupAdminHandler(db))
	app.Post("/token", auth.LoginHandler(cfg, db))

	// Protegidas (token bearer obrigatório)
	protegido := app.Group("", auth.JWTMiddleware(cfg, db))

	protegido.Get("/recursos", recursos.ListarHandler(db))
	protegido.Post("/recursos", auth.RequirePermission(auth.AcaoCriarRecurso), recursos.CriarHandler(db))
	protegido.Delete("/recursos/:id", auth.RequirePermission(auth.AcaoRemoverRecurso), recursos.RemoverHandler(db))

	protegido.Get("/incidentes", incidentes.ListarHandler(db))
	protegido.Post("/incidentes", incidentes.CriarHandler(db))
	protegido.Delete("/incidentes/:id", auth.RequirePermission(auth.AcaoRemoverIncidente), incidentes.RemoverHandler(db))

	protegido.Get("/dashboard/stats", dashboard.StatsHandler(db))

	protegido.Get("/audit-logs", auth.RequirePermission(auth.AcaoVerAuditoria), audit.ListarHandler(db))
}
