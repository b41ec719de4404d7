package models

import "time"

// Review is a user's rating and comment for a course.
type Review struct {
	ID         int64     `db:"id" json:"id"`
	CourseID   int64     `db:"course_id" json:"course_id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Rating     int       `db:"rating" json:"rating"`
	Comment    *string   `db:"comment" json:"comment,omitempty"`
	ReviewDate time.Time `db:"review_date" json:"review_date"`
}

// PreTest is a screening question attached to a course.
type PreTest struct {
	ID       int64  `db:"id" json:"id"`
	CourseID int64  `db:"course_id" json:"course_id"`
	Question string `db:"question" json:"question"`
}
