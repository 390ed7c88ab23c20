package models

import (
	"time"

	"gorm.io/gorm"
)

type MentorshipProgram struct {
	gorm.Model
	MentorID    uint          `json:"mentor_id" gorm:"index;not null"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Duration    string        `json:"duration"` // free text, e.g. "12 weeks"
	Capacity    *int          `json:"capacity"` // limits accepted applications; nil means unlimited
	Status      ProgramStatus `json:"status" gorm:"type:varchar(20);index;default:'open'"`

	Mentor *User `json:"mentor,omitempty" gorm:"foreignKey:MentorID"`
}

type MentorshipApplication struct {
	ID         uint              `json:"id" gorm:"primaryKey"`
	ProgramID  uint              `json:"program_id" gorm:"uniqueIndex:idx_application_program_user;not null"`
	UserID     uint              `json:"user_id" gorm:"uniqueIndex:idx_application_program_user;index;not null"`
	Motivation string            `json:"motivation" gorm:"type:text"`
	Status     ApplicationStatus `json:"status" gorm:"type:varchar(20);index;not null;default:'applied'"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Program *MentorshipProgram `json:"program,omitempty" gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE"`
	User    *User              `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type MentorshipSession struct {
	gorm.Model
	ProgramID   uint          `json:"program_id" gorm:"index;not null"`
	MentorID    uint          `json:"mentor_id" gorm:"index;not null"`
	MenteeID    uint          `json:"mentee_id" gorm:"index;not null"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Duration    int           `json:"duration"` // minutes
	MeetingLink string        `json:"meeting_link"`
	MeetingCode string        `json:"meeting_code" gorm:"type:varchar(36);uniqueIndex"`
	Status      SessionStatus `json:"status" gorm:"type:varchar(20);default:'scheduled'"`
	Notes       string        `json:"notes" gorm:"type:text"`

	Program *MentorshipProgram `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	Mentor  *User              `json:"mentor,omitempty" gorm:"foreignKey:MentorID"`
	Mentee  *User              `json:"mentee,omitempty" gorm:"foreignKey:MenteeID"`
}
