package service

import (
	"context"

	"sedbms/internal/logger"
	"sedbms/internal/metrics"
	"sedbms/internal/model"
	"sedbms/internal/repository"
)

// StudentService handles student records.
type StudentService interface {
	Create(ctx context.Context, student *model.Student) error
	Get(ctx context.Context, usn string) (*model.Student, error)
	ListWithCGPA(ctx context.Context) ([]StudentSummary, error)
	// Delete removes the student and its marks, returning the deleted name.
	Delete(ctx context.Context, usn string) (string, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	reports     ReportService
}

// NewStudentService creates a new student service.
func NewStudentService(studentRepo repository.StudentRepository, reports ReportService) StudentService {
	return &studentService{studentRepo: studentRepo, reports: reports}
}

func (s *studentService) Create(ctx context.Context, student *model.Student) error {
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}
	logger.GetInstance().Infof("student %s created", student.USN)
	return nil
}

func (s *studentService) Get(ctx context.Context, usn string) (*model.Student, error) {
	return s.studentRepo.FindByUSN(ctx, usn)
}

func (s *studentService) ListWithCGPA(ctx context.Context) ([]StudentSummary, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.reports.Summaries(ctx, students)
}

func (s *studentService) Delete(ctx context.Context, usn string) (string, error) {
	name, err := s.studentRepo.Delete(ctx, usn)
	if err != nil {
		return "", err
	}
	s.reports.InvalidateCGPA(ctx, usn)
	metrics.StudentsDeleted.Inc()
	logger.GetInstance().Infof("student %s (%s) deleted", model.NormalizeKey(usn), name)
	return name, nil
}
