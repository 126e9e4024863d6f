package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateProduct productCreator
	Alerts        alertReader
	Errors        *ErrorResponder
	JWTSecret     string
}

// Router registra las rutas de la API. Toda ruta bajo /api/companies/:companyId exige token
// y que la empresa del token sea la de la ruta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	company := api.Group("/companies/:companyId",
		AuthMiddleware(deps.JWTSecret),
		RequireCompanyParam("companyId"),
	)

	// Products: alta restringida a admin y manager.
	productHandler := NewProductHandler(deps.CreateProduct, deps.Errors)
	company.Post("/products",
		RequireRole(entity.RoleAdmin, entity.RoleManager),
		productHandler.Create,
	)

	// Alerts: lectura para cualquier rol de la empresa.
	alertHandler := NewAlertHandler(deps.Alerts, deps.Errors)
	alerts := company.Group("/alerts", RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff))
	alerts.Get("/low-stock", alertHandler.LowStock)
	alerts.Get("/low-stock/summary", alertHandler.Summary)
}
