package route

import (
	"bank-sampah-service/src/internal/delivery/http"
	"bank-sampah-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                  *fiber.App
	UserController       *http.UserController
	SubmissionController *http.SubmissionController
	WasteBankController  *http.WasteBankController
	StatsController      *http.StatsController
	AuthMiddleware       fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupPublicRoute()
	c.SetupAuthRoute()
	c.SetupAdminRoute()
}

func (c *RouteConfig) SetupPublicRoute() {
	c.App.Post("/auth/v1/register", c.UserController.Register)
	c.App.Post("/auth/v1/login", c.UserController.Login)
	c.App.Get("/waste-banks/v1", c.WasteBankController.Search)
	c.App.Get("/waste-banks/v1/:id", c.WasteBankController.Get)
	c.App.Get("/waste-banks/v1/:id/reviews", c.WasteBankController.ListReviews)
	c.App.Get("/submissions/v1/prices", c.SubmissionController.PriceList)
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)
	c.App.Get("/users/v1/profile", c.UserController.GetProfile)
	c.App.Put("/users/v1/profile", c.UserController.UpdateProfile)
	c.App.Put("/users/v1/password", c.UserController.ChangePassword)
	c.App.Post("/users/v1/ewallets", c.UserController.RegisterEwallet)

	c.App.Post("/submissions/v1", c.SubmissionController.Create)
	c.App.Get("/submissions/v1", c.SubmissionController.List)
	c.App.Get("/submissions/v1/:id", c.SubmissionController.Get)
	c.App.Post("/submissions/v1/:id/cancel", c.SubmissionController.Cancel)

	c.App.Post("/waste-banks/v1/:id/reviews", c.WasteBankController.SubmitReview)

	c.App.Get("/stats/v1/me", c.StatsController.MyStats)
	c.App.Get("/stats/v1/leaderboard", c.StatsController.Leaderboard)
}

func (c *RouteConfig) SetupAdminRoute() {
	admin := c.App.Group("/admin/v1", middleware.AdminOnly())
	admin.Get("/submissions", c.SubmissionController.ListAll)
	admin.Patch("/submissions/:id/status", c.SubmissionController.UpdateStatus)
	admin.Post("/waste-banks", c.WasteBankController.Create)
	admin.Put("/waste-banks/:id", c.WasteBankController.Update)
	admin.Patch("/users/:id/active", c.UserController.SetUserActive)
	admin.Get("/stats/platform", c.StatsController.PlatformStats)
	admin.Get("/stats/comparison", c.StatsController.MonthComparison)
	admin.Get("/stats/users/:id", c.StatsController.UserStats)
}
