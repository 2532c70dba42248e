// Package seed loads default accounts and sample records.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"sedbms/internal/auth"
	apperrors "sedbms/internal/errors"
	"sedbms/internal/model"
	"sedbms/internal/repository"
)

//go:embed fixtures.toml
var defaultFixture []byte

// Fixture is the TOML document describing bootstrap data.
type Fixture struct {
	Users []struct {
		Username string `toml:"username"`
		Password string `toml:"password"`
		Role     string `toml:"role"`
	} `toml:"users"`
	Students []struct {
		USN             string `toml:"usn"`
		Name            string `toml:"name"`
		Branch          string `toml:"branch"`
		AdmissionYear   int    `toml:"admission_year"`
		CurrentSemester int    `toml:"current_semester"`
		Email           string `toml:"email"`
		Phone           string `toml:"phone"`
	} `toml:"students"`
	Subjects []struct {
		Code        string `toml:"code"`
		Name        string `toml:"name"`
		Credits     int    `toml:"credits"`
		Semester    int    `toml:"semester"`
		SubjectType string `toml:"subject_type"`
	} `toml:"subjects"`
	Marks []struct {
		USN         string `toml:"usn"`
		SubjectCode string `toml:"subject_code"`
		Semester    int    `toml:"semester"`
		CIE         int    `toml:"cie"`
		SEE         int    `toml:"see"`
	} `toml:"marks"`
}

// Load parses the fixture at path, or the embedded default when path is empty.
func Load(path string) (*Fixture, error) {
	data := defaultFixture
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
	}

	var f Fixture
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

// CGPAInvalidator drops a cached CGPA after a mark changes.
type CGPAInvalidator interface {
	InvalidateCGPA(ctx context.Context, usn string)
}

// Repos are the stores the bootstrap writes to. Reports may be nil when no
// CGPA cache is in front of the store.
type Repos struct {
	Users    repository.UserRepository
	Students repository.StudentRepository
	Subjects repository.SubjectRepository
	Marks    repository.MarkRepository
	Reports  CGPAInvalidator
}

// Result counts the records created by a run.
type Result struct {
	Users    int
	Students int
	Subjects int
	Marks    int
}

// Apply inserts every fixture record that is not already present. Existing
// rows, including edited marks, are never overwritten, so it is safe to run on
// every start.
func Apply(ctx context.Context, repos Repos, f *Fixture) (Result, error) {
	var res Result

	for _, u := range f.Users {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return res, fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		err = repos.Users.Create(ctx, &model.User{Username: u.Username, PasswordHash: hash, Role: model.Role(u.Role)})
		if created, err := counted(err, "user "+u.Username); err != nil {
			return res, err
		} else if created {
			res.Users++
		}
	}

	for _, s := range f.Students {
		err := repos.Students.Create(ctx, &model.Student{
			USN:             s.USN,
			Name:            s.Name,
			Branch:          s.Branch,
			AdmissionYear:   s.AdmissionYear,
			CurrentSemester: s.CurrentSemester,
			Email:           s.Email,
			Phone:           s.Phone,
		})
		if created, err := counted(err, "student "+s.USN); err != nil {
			return res, err
		} else if created {
			res.Students++
		}
	}

	for _, s := range f.Subjects {
		err := repos.Subjects.Create(ctx, &model.Subject{
			Code:        s.Code,
			Name:        s.Name,
			Credits:     s.Credits,
			Semester:    s.Semester,
			SubjectType: s.SubjectType,
		})
		if created, err := counted(err, "subject "+s.Code); err != nil {
			return res, err
		} else if created {
			res.Subjects++
		}
	}

	for _, m := range f.Marks {
		_, err := repos.Marks.Find(ctx, m.USN, m.SubjectCode, m.Semester)
		if err == nil {
			continue
		}
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			return res, fmt.Errorf("check mark %s/%s: %w", m.USN, m.SubjectCode, err)
		}
		if _, err := repos.Marks.Upsert(ctx, &model.Mark{
			USN:         m.USN,
			SubjectCode: m.SubjectCode,
			Semester:    m.Semester,
			CIEMarks:    m.CIE,
			SEEMarks:    m.SEE,
		}); err != nil {
			return res, fmt.Errorf("mark %s/%s: %w", m.USN, m.SubjectCode, err)
		}
		if repos.Reports != nil {
			repos.Reports.InvalidateCGPA(ctx, m.USN)
		}
		res.Marks++
	}

	return res, nil
}

// counted treats DuplicateKey as "already there".
func counted(err error, what string) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case apperrors.Is(err, apperrors.ErrDuplicateKey):
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w", what, err)
	}
}
