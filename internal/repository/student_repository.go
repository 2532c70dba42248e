package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "sedbms/internal/errors"
	"sedbms/internal/model"
)

// StudentRepository defines student persistence operations.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByUSN(ctx context.Context, usn string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	ListRecent(ctx context.Context, limit int) ([]model.Student, error)
	Count(ctx context.Context) (int64, error)
	// Delete removes the student and its marks and returns the deleted name.
	Delete(ctx context.Context, usn string) (string, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Create inserts a student. An existing USN is reported as DuplicateKey and the
// stored row is left untouched.
func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	student.Normalize()
	if err := student.Validate(); err != nil {
		return invalid(err)
	}

	what := "student " + student.USN
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &model.Student{}, "usn = ?", student.USN)
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicateKey, what)
		}
		return translate(tx.Omit("Marks").Create(student).Error, what)
	})
}

// FindByUSN finds a student by USN, case-insensitively.
func (r *studentRepository) FindByUSN(ctx context.Context, usn string) (*model.Student, error) {
	usn = model.NormalizeKey(usn)
	var student model.Student
	if err := r.db.WithContext(ctx).Where("usn = ?", usn).First(&student).Error; err != nil {
		return nil, translate(err, "student "+usn)
	}
	return &student, nil
}

// List returns all students ordered by USN.
func (r *studentRepository) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.WithContext(ctx).Order("usn").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// ListRecent returns the most recently created students first.
func (r *studentRepository) ListRecent(ctx context.Context, limit int) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("usn").Limit(limit).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Delete removes marks explicitly before the student so the cascade holds on
// backends where foreign keys are not enforced.
func (r *studentRepository) Delete(ctx context.Context, usn string) (string, error) {
	usn = model.NormalizeKey(usn)
	var name string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student model.Student
		if err := tx.Where("usn = ?", usn).First(&student).Error; err != nil {
			return translate(err, "student "+usn)
		}
		if err := tx.Where("usn = ?", usn).Delete(&model.Mark{}).Error; err != nil {
			return fmt.Errorf("delete marks: %w", err)
		}
		if err := tx.Delete(&student).Error; err != nil {
			return fmt.Errorf("delete student: %w", err)
		}
		name = student.Name
		return nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}
