package models

import "time"

// CourseCategory groups course listings.
type CourseCategory struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Tutor teaches one or more courses.
type Tutor struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Expertise string `db:"expertise" json:"expertise"`
}

// Course is a purchasable course listing.
type Course struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Price       float64   `db:"price" json:"price"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	CategoryID  *int64    `db:"category_id" json:"category_id,omitempty"`
	TutorID     *int64    `db:"tutor_id" json:"tutor_id,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// CourseFilter captures the query parameters accepted by the course list
// endpoint: category filter, case-insensitive name search, single-field
// sort. The two predicates combine with AND when both are given.
type CourseFilter struct {
	CategoryID *int64
	Search     string
	SortBy     string
	SortOrder  string
}

// CourseUpdate carries a partial field replacement; nil fields are left
// untouched.
type CourseUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	CategoryID  *int64
	TutorID     *int64
}
