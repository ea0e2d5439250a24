package models

import (
	"time"

	"github.com/google/uuid"
)

// Project status values
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusPlanned    = "planned"
)

// Project represents a portfolio project with its image gallery
type Project struct {
	ID              uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title           string         `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string         `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription string         `json:"longDescription" db:"long_description" gorm:"type:text"`
	Technologies    []string       `json:"technologies" gorm:"serializer:json;type:text"`
	Images          []ProjectImage `json:"images" gorm:"serializer:json;type:text"`
	LiveURL         string         `json:"liveUrl" db:"live_url" gorm:"type:text"`
	GithubURL       string         `json:"githubUrl" db:"github_url" gorm:"type:text"`
	DemoURL         string         `json:"demoUrl" db:"demo_url" gorm:"type:text"`
	Featured        bool           `json:"featured" db:"featured"`
	Status          string         `json:"status" db:"status" gorm:"type:text;default:completed"`
	Order           int            `json:"order" db:"sort_order" gorm:"column:sort_order;default:0"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`
}

// ProjectImage references one stored image asset attached to a project
type ProjectImage struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Alt      string `json:"alt"`
}

// ValidProjectStatus reports whether s is one of the recognized status values
func ValidProjectStatus(s string) bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusPlanned:
		return true
	}
	return false
}
