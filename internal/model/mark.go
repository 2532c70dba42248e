package model

import "time"

// Mark holds the internal (CIE) and end exam (SEE) marks of one student in one
// subject for one semester. The (usn, subject_code, semester) triple is unique.
type Mark struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	USN         string    `json:"usn" gorm:"column:usn;size:20;not null;uniqueIndex:idx_marks_usn_subject_semester,priority:1" validate:"required,max=20"`
	SubjectCode string    `json:"subject_code" gorm:"column:subject_code;size:20;not null;index;uniqueIndex:idx_marks_usn_subject_semester,priority:2" validate:"required,max=20"`
	Semester    int       `json:"semester" gorm:"not null;uniqueIndex:idx_marks_usn_subject_semester,priority:3;check:chk_marks_semester,semester BETWEEN 1 AND 8" validate:"min=1,max=8"`
	CIEMarks    int       `json:"cie_marks" gorm:"column:cie_marks;not null;check:chk_marks_cie,cie_marks BETWEEN 0 AND 50" validate:"min=0,max=50"`
	SEEMarks    int       `json:"see_marks" gorm:"column:see_marks;not null;check:chk_marks_see,see_marks BETWEEN 0 AND 100" validate:"min=0,max=100"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Total is the combined mark out of 150.
func (m *Mark) Total() int {
	return m.CIEMarks + m.SEEMarks
}

// Normalize uppercases the foreign keys.
func (m *Mark) Normalize() {
	m.USN = NormalizeKey(m.USN)
	m.SubjectCode = NormalizeKey(m.SubjectCode)
}

// Validate checks field ranges.
func (m *Mark) Validate() error {
	return validate.Struct(m)
}

// MarkDetail is a mark joined with student and subject names.
type MarkDetail struct {
	ID          uint   `json:"id" db:"id"`
	USN         string `json:"usn" db:"usn"`
	StudentName string `json:"student_name" db:"student_name"`
	SubjectCode string `json:"subject_code" db:"subject_code"`
	SubjectName string `json:"subject_name" db:"subject_name"`
	Credits     int    `json:"credits" db:"credits"`
	Semester    int    `json:"semester" db:"semester"`
	CIEMarks    int    `json:"cie_marks" db:"cie_marks"`
	SEEMarks    int    `json:"see_marks" db:"see_marks"`
	Total       int    `json:"total" db:"-"`
	GradePoint  int    `json:"grade_point" db:"-"`
}
