package services

import (
	"time"

	"learnhub/models"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Window counts rows created since the start of a period.
type Window struct {
	Today    int64 `json:"today"`
	ThisWeek int64 `json:"this_week"`
}

type DashboardStats struct {
	Users                int64  `json:"users"`
	Students             int64  `json:"students"`
	Instructors          int64  `json:"instructors"`
	Courses              int64  `json:"courses"`
	PublishedCourses     int64  `json:"published_courses"`
	ActiveEnrollments    int64  `json:"active_enrollments"`
	CompletedEnrollments int64  `json:"completed_enrollments"`
	UpcomingEvents       int64  `json:"upcoming_events"`
	Registrations        int64  `json:"registrations"`
	OpenPrograms         int64  `json:"open_programs"`
	PendingApplications  int64  `json:"pending_applications"`
	ScheduledSessions    int64  `json:"scheduled_sessions"`
	NewEnrollments       Window `json:"new_enrollments"`
	NewRegistrations     Window `json:"new_registrations"`
	NewUsers             Window `json:"new_users"`
}

// Dashboard gathers the admin dashboard counters as of at. Weeks start on Monday.
func Dashboard(db *gorm.DB, at time.Time) (*DashboardStats, error) {
	clock := (&now.Config{WeekStartDay: time.Monday}).With(at)
	today, week := clock.BeginningOfDay(), clock.BeginningOfWeek()

	stats := &DashboardStats{}
	counts := []struct {
		dst   *int64
		model interface{}
		query string
		args  []interface{}
	}{
		{&stats.Users, &models.User{}, "", nil},
		{&stats.Students, &models.User{}, "role = ?", []interface{}{models.RoleStudent}},
		{&stats.Instructors, &models.User{}, "role = ?", []interface{}{models.RoleInstructor}},
		{&stats.Courses, &models.Course{}, "", nil},
		{&stats.PublishedCourses, &models.Course{}, "status = ?", []interface{}{models.CoursePublished}},
		{&stats.ActiveEnrollments, &models.Enrollment{}, "status = ?", []interface{}{models.EnrollmentActive}},
		{&stats.CompletedEnrollments, &models.Enrollment{}, "status = ?", []interface{}{models.EnrollmentCompleted}},
		{&stats.UpcomingEvents, &models.Event{}, "status = ?", []interface{}{models.EventUpcoming}},
		{&stats.Registrations, &models.EventRegistration{}, "status <> ?", []interface{}{models.RegistrationCancelled}},
		{&stats.OpenPrograms, &models.MentorshipProgram{}, "status = ?", []interface{}{models.ProgramOpen}},
		{&stats.PendingApplications, &models.MentorshipApplication{}, "status = ?", []interface{}{models.ApplicationApplied}},
		{&stats.ScheduledSessions, &models.MentorshipSession{}, "status = ?", []interface{}{models.SessionScheduled}},
		{&stats.NewEnrollments.Today, &models.Enrollment{}, "created_at >= ?", []interface{}{today}},
		{&stats.NewEnrollments.ThisWeek, &models.Enrollment{}, "created_at >= ?", []interface{}{week}},
		{&stats.NewRegistrations.Today, &models.EventRegistration{}, "created_at >= ?", []interface{}{today}},
		{&stats.NewRegistrations.ThisWeek, &models.EventRegistration{}, "created_at >= ?", []interface{}{week}},
		{&stats.NewUsers.Today, &models.User{}, "created_at >= ?", []interface{}{today}},
		{&stats.NewUsers.ThisWeek, &models.User{}, "created_at >= ?", []interface{}{week}},
	}

	for _, c := range counts {
		q := db.Model(c.model)
		if c.query != "" {
			q = q.Where(c.query, c.args...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, storageError("dashboard stats", err)
		}
	}

	return stats, nil
}
