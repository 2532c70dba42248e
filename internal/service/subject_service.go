package service

import (
	"context"

	"sedbms/internal/model"
	"sedbms/internal/repository"
)

// SubjectService handles the subject catalogue.
type SubjectService interface {
	Create(ctx context.Context, subject *model.Subject) error
	List(ctx context.Context, semester int) ([]model.Subject, error)
}

type subjectService struct {
	subjectRepo repository.SubjectRepository
}

// NewSubjectService creates a new subject service.
func NewSubjectService(subjectRepo repository.SubjectRepository) SubjectService {
	return &subjectService{subjectRepo: subjectRepo}
}

func (s *subjectService) Create(ctx context.Context, subject *model.Subject) error {
	return s.subjectRepo.Create(ctx, subject)
}

func (s *subjectService) List(ctx context.Context, semester int) ([]model.Subject, error) {
	return s.subjectRepo.List(ctx, semester)
}
