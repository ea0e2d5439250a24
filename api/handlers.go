package api

import (
	"github.com/anand7670/portfolio-backend/database"
	"github.com/anand7670/portfolio-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store storage.Store, jwtSecret string) *routeHandlers {
	return &routeHandlers{
		authHandler:      newAuthHandler(database.UserRepo(), jwtSecret),
		portfolioHandler: newPortfolioHandler(database.PortfolioRepo(), database.ProjectRepo(), store),
		projectHandler:   newProjectHandler(database.ProjectRepo(), store),
		contactHandler:   newContactHandler(database.ContactRepo()),
	}
}
