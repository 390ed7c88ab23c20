package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Type        string      `json:"type"`
	Thumbnail   string      `json:"thumbnail"`
	StartDate   time.Time   `json:"start_date" gorm:"index"`
	EndDate     time.Time   `json:"end_date"`
	Capacity    *int        `json:"capacity"` // nil means unlimited
	Status      EventStatus `json:"status" gorm:"type:varchar(20);index;default:'upcoming'"`
}

// EventRegistration is one user's seat at an event.
type EventRegistration struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	EventID   uint               `json:"event_id" gorm:"uniqueIndex:idx_registration_event_user;not null"`
	UserID    uint               `json:"user_id" gorm:"uniqueIndex:idx_registration_event_user;index;not null"`
	Status    RegistrationStatus `json:"status" gorm:"type:varchar(20);not null;default:'registered'"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
