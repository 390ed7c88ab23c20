package models

import (
	"time"
)

// Enrollment tracks a user's membership in a course with progress
type Enrollment struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	UserID      uint             `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID    uint             `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;index;not null"`
	Status      EnrollmentStatus `json:"status" gorm:"type:varchar(20);index;not null;default:'active'"`
	Progress    float64          `json:"progress" gorm:"default:0"` // Completion percentage (0-100)
	CompletedAt *time.Time       `json:"completed_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
