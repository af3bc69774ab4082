package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tugascript/devlogs/appsearch/internal/controllers/paths"
)

func (r *Routes) SearchRoutes(app *fiber.App) {
	app.Get(paths.Home, r.controllers.Home)
	app.Get(paths.Search, r.controllers.SearchApps)
}
