package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "sedbms/internal/errors"
	"sedbms/internal/model"
)

// MarkRepository defines mark persistence operations.
type MarkRepository interface {
	// Upsert inserts the mark or, when the (usn, subject, semester) row exists,
	// replaces its CIE and SEE marks keeping id and created_at. It reports
	// whether a new row was created.
	Upsert(ctx context.Context, mark *model.Mark) (created bool, err error)
	Find(ctx context.Context, usn, subjectCode string, semester int) (*model.Mark, error)
}

type markRepository struct {
	db *gorm.DB
}

// NewMarkRepository creates a new mark repository.
func NewMarkRepository(db *gorm.DB) MarkRepository {
	return &markRepository{db: db}
}

func (r *markRepository) Upsert(ctx context.Context, mark *model.Mark) (bool, error) {
	mark.Normalize()
	if err := mark.Validate(); err != nil {
		return false, invalid(err)
	}

	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &model.Student{}, "usn = ?", mark.USN)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: student %s does not exist", apperrors.ErrReferentialViolation, mark.USN)
		}
		found, err = exists(tx, &model.Subject{}, "code = ?", mark.SubjectCode)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: subject %s does not exist", apperrors.ErrReferentialViolation, mark.SubjectCode)
		}

		existed, err := exists(tx, &model.Mark{}, "usn = ? AND subject_code = ? AND semester = ?",
			mark.USN, mark.SubjectCode, mark.Semester)
		if err != nil {
			return err
		}

		row := model.Mark{
			USN:         mark.USN,
			SubjectCode: mark.SubjectCode,
			Semester:    mark.Semester,
			CIEMarks:    mark.CIEMarks,
			SEEMarks:    mark.SEEMarks,
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "usn"}, {Name: "subject_code"}, {Name: "semester"}},
			DoUpdates: clause.AssignmentColumns([]string{"cie_marks", "see_marks", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return translate(err, "mark")
		}

		var stored model.Mark
		if err := tx.Where("usn = ? AND subject_code = ? AND semester = ?",
			mark.USN, mark.SubjectCode, mark.Semester).First(&stored).Error; err != nil {
			return translate(err, "mark")
		}
		*mark = stored
		created = !existed
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *markRepository) Find(ctx context.Context, usn, subjectCode string, semester int) (*model.Mark, error) {
	usn, subjectCode = model.NormalizeKey(usn), model.NormalizeKey(subjectCode)
	var mark model.Mark
	err := r.db.WithContext(ctx).
		Where("usn = ? AND subject_code = ? AND semester = ?", usn, subjectCode, semester).
		First(&mark).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("mark %s/%s/%d", usn, subjectCode, semester))
	}
	return &mark, nil
}
