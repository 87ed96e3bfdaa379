package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smart-helpdesk/helpdesk/internal/api/http/handlers"
	"github.com/smart-helpdesk/helpdesk/internal/auth"
	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

// RouteConfig bundles everything route registration needs.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Users   *handlers.UsersHandler
	Tickets *handlers.TicketsHandler
	KB      *handlers.KBHandler
	Agent   *handlers.AgentHandler
	Config  *handlers.ConfigHandler
	Audit   *handlers.AuditHandler
	Auth    *auth.AuthMiddleware
}

// RegisterRoutes mounts the full API surface.
func RegisterRoutes(app *fiber.App, rc RouteConfig) {
	app.Get("/health", rc.Health.Check)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", rc.Users.Register)
	authGroup.Post("/login", rc.Users.Login)

	tickets := api.Group("/tickets", rc.Auth.Handle)
	tickets.Post("/", rc.Tickets.Create)
	tickets.Get("/", rc.Tickets.List)
	tickets.Get("/:id", rc.Tickets.Get)
	tickets.Get("/:id/audit", rc.Tickets.Audit)
	tickets.Patch("/:id/status", auth.RequireStaff(), rc.Tickets.UpdateStatus)
	tickets.Post("/:id/reply", auth.RequireStaff(), rc.Tickets.Reply)

	kb := api.Group("/kb", rc.Auth.Handle)
	kb.Get("/", rc.KB.List)
	kb.Get("/:id", rc.KB.Get)
	kb.Post("/", auth.RequireRole(domain.RoleAdmin), rc.KB.Create)
	kb.Put("/:id", auth.RequireRole(domain.RoleAdmin), rc.KB.Update)
	kb.Delete("/:id", auth.RequireRole(domain.RoleAdmin), rc.KB.Delete)

	agent := api.Group("/agent", rc.Auth.Handle)
	agent.Get("/suggestion/:ticketId", auth.RequireStaff(), rc.Agent.Suggestion)
	agent.Post("/triage/:ticketId", auth.RequireRole(domain.RoleAdmin), rc.Agent.Triage)

	configGroup := api.Group("/config", rc.Auth.Handle, auth.RequireRole(domain.RoleAdmin))
	configGroup.Get("/", rc.Config.Get)
	configGroup.Put("/", rc.Config.Update)

	audit := api.Group("/audit", rc.Auth.Handle, auth.RequireStaff())
	audit.Get("/trace/:traceId", rc.Audit.ByTrace)
}
