package model

import "strings"

// DefaultSubjectType is used when a subject is created without a type.
const DefaultSubjectType = "Theory"

// Subject is a course offered in a given semester.
type Subject struct {
	Code        string `json:"code" gorm:"primaryKey;size:20" validate:"required,max=20"`
	Name        string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Credits     int    `json:"credits" gorm:"not null;check:chk_subjects_credits,credits BETWEEN 1 AND 6" validate:"min=1,max=6"`
	Semester    int    `json:"semester" gorm:"not null;index;check:chk_subjects_semester,semester BETWEEN 1 AND 8" validate:"min=1,max=8"`
	SubjectType string `json:"subject_type" gorm:"size:20;default:'Theory'" validate:"max=20"`

	Marks []Mark `json:"-" gorm:"foreignKey:SubjectCode;references:Code;constraint:OnDelete:CASCADE"`
}

// Normalize uppercases the code and fills the default type.
func (s *Subject) Normalize() {
	s.Code = NormalizeKey(s.Code)
	s.Name = strings.TrimSpace(s.Name)
	s.SubjectType = strings.TrimSpace(s.SubjectType)
	if s.SubjectType == "" {
		s.SubjectType = DefaultSubjectType
	}
}

// Validate checks field ranges.
func (s *Subject) Validate() error {
	return validate.Struct(s)
}
