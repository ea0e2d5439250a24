package database

import (
	"gorm.io/gorm"

	"github.com/anand7670/portfolio-backend/models"
)

type Database struct {
	db            *gorm.DB
	portfolioRepo *PortfolioRepo
	projectRepo   *ProjectRepo
	contactRepo   *ContactRepo
	userRepo      *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:            db,
		portfolioRepo: NewPortfolioRepo(db),
		projectRepo:   NewProjectRepo(db),
		contactRepo:   NewContactRepo(db),
		userRepo:      NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PortfolioRepo() *PortfolioRepo {
	return d.portfolioRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// Migrate creates or updates the schema for every entity table
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.User{},
		&models.Portfolio{},
		&models.Project{},
		&models.ContactMessage{},
	)
}
