package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"sedbms/internal/model"
)

const markDetailSelect = `
	SELECT m.id, m.usn, s.name AS student_name, m.subject_code,
	       sub.name AS subject_name, sub.credits, m.semester,
	       m.cie_marks, m.see_marks
	FROM marks m
	JOIN students s ON s.usn = m.usn
	JOIN subjects sub ON sub.code = m.subject_code`

// ReportRepository runs the read-side joins behind the marks list and reports.
type ReportRepository interface {
	ListMarkDetails(ctx context.Context) ([]model.MarkDetail, error)
	MarkDetailsForStudent(ctx context.Context, usn string) ([]model.MarkDetail, error)
}

type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository shares the GORM connection pool with sqlx. driverName is
// the database/sql driver name and selects the bind variable style.
func NewReportRepository(gormDB *gorm.DB, driverName string) (ReportRepository, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	return &reportRepository{db: sqlx.NewDb(sqlDB, driverName)}, nil
}

// ListMarkDetails returns every mark ordered by usn then semester.
func (r *reportRepository) ListMarkDetails(ctx context.Context) ([]model.MarkDetail, error) {
	details := []model.MarkDetail{}
	query := markDetailSelect + ` ORDER BY m.usn, m.semester, m.subject_code`
	if err := r.db.SelectContext(ctx, &details, query); err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}
	return details, nil
}

// MarkDetailsForStudent returns one student's marks ordered by semester then subject.
func (r *reportRepository) MarkDetailsForStudent(ctx context.Context, usn string) ([]model.MarkDetail, error) {
	details := []model.MarkDetail{}
	query := r.db.Rebind(markDetailSelect + ` WHERE m.usn = ? ORDER BY m.semester, m.subject_code`)
	if err := r.db.SelectContext(ctx, &details, query, model.NormalizeKey(usn)); err != nil {
		return nil, fmt.Errorf("student marks: %w", err)
	}
	return details, nil
}
