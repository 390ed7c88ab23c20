package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course represents a learning course owned by an instructor.
type Course struct {
	gorm.Model
	InstructorID uint                        `json:"instructor_id" gorm:"index;not null"`
	Title        string                      `json:"title" gorm:"not null"`
	Slug         string                      `json:"slug" gorm:"index"`
	Description  string                      `json:"description"`
	Category     string                      `json:"category"`
	Level        string                      `json:"level"`
	Price        float64                     `json:"price" gorm:"default:0"`
	Duration     int                         `json:"duration" gorm:"default:0"` // duration in hours
	Thumbnail    string                      `json:"thumbnail"`
	Requirements datatypes.JSONSlice[string] `json:"requirements"`
	Outcomes     datatypes.JSONSlice[string] `json:"what_you_will_learn"`
	Status       CourseStatus                `json:"status" gorm:"type:varchar(20);default:'draft'"`

	// Denormalized count of active and completed enrollments.
	// Written only by the enrollment service and the reconciler.
	StudentsCount int64 `json:"students_count" gorm:"default:0;not null"`

	Instructor *User `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
}
