package models

import (
	"time"

	"github.com/google/uuid"
)

type BootcampSignup struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName        string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone           string    `gorm:"type:varchar(50);not null"`
	ExperienceLevel string    `gorm:"type:varchar(20);not null;default:'beginner'"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (BootcampSignup) TableName() string {
	return "bootcamp_signups"
}
