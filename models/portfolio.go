package models

import (
	"time"

	"github.com/google/uuid"
)

// Portfolio is the single-owner profile document. At most one row exists;
// it is lazily created with defaults on first read.
type Portfolio struct {
	ID           uuid.UUID    `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	PersonalInfo PersonalInfo `json:"personalInfo" gorm:"embedded;embeddedPrefix:personal_"`
	AboutMe      string       `json:"aboutMe" db:"about_me" gorm:"type:text"`
	Skills       []Skill      `json:"skills" gorm:"serializer:json;type:text"`
	CVFile       *CVFile      `json:"cvFile,omitempty" gorm:"serializer:json;type:text"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}

// PersonalInfo holds the owner's contact card fields
type PersonalInfo struct {
	Name         string `json:"name" db:"name" gorm:"type:text"`
	Role         string `json:"role" db:"role" gorm:"type:text"`
	Tagline      string `json:"tagline" db:"tagline" gorm:"type:text"`
	Phone        string `json:"phone" db:"phone" gorm:"type:text"`
	Email        string `json:"email" db:"email" gorm:"type:text"`
	Github       string `json:"github" db:"github" gorm:"type:text"`
	Linkedin     string `json:"linkedin" db:"linkedin" gorm:"type:text"`
	ProfileImage string `json:"profileImage" db:"profile_image" gorm:"type:text"`
}

// Skill is a named proficiency on a 1..100 scale
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// CVFile references the stored CV asset
type CVFile struct {
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UploadDate time.Time `json:"uploadDate"`
}

// DefaultPortfolio returns a portfolio populated with the baseline owner data
func DefaultPortfolio() *Portfolio {
	return &Portfolio{
		ID: uuid.New(),
		PersonalInfo: PersonalInfo{
			Name:     "Anand Yadav",
			Role:     "Full Stack Developer",
			Tagline:  "Building innovative web solutions with modern technologies",
			Phone:    "9390154730",
			Email:    "er.anandkumaryadav09@gmail.com",
			Github:   "https://github.com/anand7670",
			Linkedin: "https://www.linkedin.com/in/anand-kumar-yadav-9041b2326",
		},
		AboutMe: "I am a passionate Full Stack Developer with expertise in React.js, Node.js, MongoDB, and modern web technologies. I love creating innovative solutions and bringing ideas to life through clean, efficient code.",
		Skills: []Skill{
			{Name: "JavaScript", Level: 90},
			{Name: "React.js", Level: 85},
			{Name: "Node.js", Level: 80},
			{Name: "MongoDB", Level: 75},
			{Name: "Express.js", Level: 80},
			{Name: "HTML/CSS", Level: 95},
			{Name: "Git", Level: 85},
		},
	}
}
