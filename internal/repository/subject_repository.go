package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "sedbms/internal/errors"
	"sedbms/internal/model"
)

// SubjectRepository defines subject persistence operations.
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	// List returns subjects of one semester ordered by code, or all subjects
	// ordered by semester then code when semester is 0.
	List(ctx context.Context, semester int) ([]model.Subject, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, code string) error
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a new subject repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	subject.Normalize()
	if err := subject.Validate(); err != nil {
		return invalid(err)
	}

	what := "subject " + subject.Code
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &model.Subject{}, "code = ?", subject.Code)
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicateKey, what)
		}
		return translate(tx.Omit("Marks").Create(subject).Error, what)
	})
}

func (r *subjectRepository) List(ctx context.Context, semester int) ([]model.Subject, error) {
	q := r.db.WithContext(ctx)
	if semester > 0 {
		q = q.Where("semester = ?", semester).Order("code")
	} else {
		q = q.Order("semester").Order("code")
	}

	var subjects []model.Subject
	if err := q.Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Subject{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Delete removes a subject and every mark recorded against it.
func (r *subjectRepository) Delete(ctx context.Context, code string) error {
	code = model.NormalizeKey(code)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &model.Subject{}, "code = ?", code)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: subject %s", apperrors.ErrNotFound, code)
		}
		if err := tx.Where("subject_code = ?", code).Delete(&model.Mark{}).Error; err != nil {
			return fmt.Errorf("delete marks: %w", err)
		}
		return tx.Where("code = ?", code).Delete(&model.Subject{}).Error
	})
}
