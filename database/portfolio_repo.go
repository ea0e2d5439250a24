package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/anand7670/portfolio-backend/models"
)

type PortfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepo(db *gorm.DB) *PortfolioRepo {
	return &PortfolioRepo{db}
}

// Find returns the portfolio singleton, or nil if none has been created yet
func (r *PortfolioRepo) Find() (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := r.db.First(&portfolio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// FindOrCreate returns the portfolio singleton, lazily creating it with
// default owner data when no row exists
func (r *PortfolioRepo) FindOrCreate() (*models.Portfolio, error) {
	portfolio, err := r.Find()
	if err != nil {
		return nil, err
	}
	if portfolio != nil {
		return portfolio, nil
	}

	portfolio = models.DefaultPortfolio()
	if err := r.db.Create(portfolio).Error; err != nil {
		return nil, err
	}
	return portfolio, nil
}

// Save persists changes to the portfolio singleton
func (r *PortfolioRepo) Save(portfolio *models.Portfolio) error {
	return r.db.Save(portfolio).Error
}
