package model

import (
	"strings"
	"time"
)

// Student is identified by its university serial number (USN), stored uppercased.
type Student struct {
	USN             string    `json:"usn" gorm:"column:usn;primaryKey;size:20" validate:"required,max=20"`
	Name            string    `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Branch          string    `json:"branch" gorm:"size:50;not null" validate:"required,max=50"`
	AdmissionYear   int       `json:"admission_year" gorm:"not null" validate:"required,min=1900,max=2100"`
	CurrentSemester int       `json:"current_semester" gorm:"not null;check:chk_students_semester,current_semester BETWEEN 1 AND 8" validate:"min=1,max=8"`
	Email           string    `json:"email" gorm:"size:100" validate:"omitempty,email,max=100"`
	Phone           string    `json:"phone" gorm:"size:15" validate:"omitempty,max=15"`
	CreatedAt       time.Time `json:"created_at" gorm:"index"`

	Marks []Mark `json:"-" gorm:"foreignKey:USN;references:USN;constraint:OnDelete:CASCADE"`
}

// Normalize trims free text and uppercases the USN.
func (s *Student) Normalize() {
	s.USN = NormalizeKey(s.USN)
	s.Name = strings.TrimSpace(s.Name)
	s.Branch = strings.TrimSpace(s.Branch)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
}

// Validate checks field ranges.
func (s *Student) Validate() error {
	return validate.Struct(s)
}

// NormalizeKey is the canonical form of a USN or subject code.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
