package models

// CourseModule is a chapter inside a course.
type CourseModule struct {
	ID       int64  `db:"id" json:"id"`
	CourseID int64  `db:"course_id" json:"course_id"`
	Title    string `db:"title" json:"title"`
}

// MaterialKind enumerates the supported material types.
type MaterialKind string

const (
	MaterialSummary MaterialKind = "Summary"
	MaterialVideo   MaterialKind = "Video"
	MaterialQuiz    MaterialKind = "Quiz"
)

// Valid reports whether the kind belongs to the enumerated set.
func (k MaterialKind) Valid() bool {
	switch k {
	case MaterialSummary, MaterialVideo, MaterialQuiz:
		return true
	}
	return false
}

// Material is a single learning asset inside a module.
type Material struct {
	ID       int64        `db:"id" json:"id"`
	ModuleID int64        `db:"module_id" json:"module_id"`
	Kind     MaterialKind `db:"kind" json:"kind"`
	Link     *string      `db:"link" json:"link,omitempty"`
}
