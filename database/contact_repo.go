package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anand7670/portfolio-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a new contact message, assigning an ID when absent
func (r *ContactRepo) Add(message *models.ContactMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Status == "" {
		message.Status = models.ContactStatusNew
	}
	return r.db.Create(message).Error
}

// FindPage returns one page of messages ordered newest first, plus the total count
func (r *ContactRepo) FindPage(page, limit int) ([]*models.ContactMessage, int64, error) {
	var total int64
	if err := r.db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*models.ContactMessage
	err := r.db.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	return messages, total, err
}

// FindByID returns a contact message by its ID, or nil if no such message exists
func (r *ContactRepo) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.Where("id = ?", id).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// UpdateStatus sets the status field; any recognized value may follow any other
func (r *ContactRepo) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes a contact message from the database by id
func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.ContactMessage{}).Error
}
