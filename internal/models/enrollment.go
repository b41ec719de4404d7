package models

import "time"

// Enrollment links a user to a course they own.
type Enrollment struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	CourseID   int64     `db:"course_id" json:"course_id"`
	EnrolledAt time.Time `db:"enrolled_at" json:"enrolled_at"`
}

// EnrollmentDetail joins the owning user and course for list views.
type EnrollmentDetail struct {
	Enrollment
	CourseName   string  `db:"course_name" json:"course_name"`
	CoursePrice  float64 `db:"course_price" json:"course_price"`
	UserFullName string  `db:"user_full_name" json:"user_full_name"`
	UserEmail    string  `db:"user_email" json:"user_email"`
}
