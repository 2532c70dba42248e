package service

import (
	"context"

	"sedbms/internal/metrics"
	"sedbms/internal/model"
	"sedbms/internal/repository"
)

// MarkService handles marks entry and listing.
type MarkService interface {
	Upsert(ctx context.Context, mark *model.Mark) (created bool, err error)
	List(ctx context.Context) ([]model.MarkDetail, error)
}

type markService struct {
	markRepo   repository.MarkRepository
	reportRepo repository.ReportRepository
	reports    ReportService
}

// NewMarkService creates a new mark service.
func NewMarkService(markRepo repository.MarkRepository, reportRepo repository.ReportRepository, reports ReportService) MarkService {
	return &markService{markRepo: markRepo, reportRepo: reportRepo, reports: reports}
}

func (s *markService) Upsert(ctx context.Context, mark *model.Mark) (bool, error) {
	created, err := s.markRepo.Upsert(ctx, mark)
	if err != nil {
		return false, err
	}
	s.reports.InvalidateCGPA(ctx, mark.USN)

	op := "updated"
	if created {
		op = "created"
	}
	metrics.MarksUpserted.WithLabelValues(op).Inc()
	return created, nil
}

// List returns every mark with its total and grade point.
func (s *markService) List(ctx context.Context) ([]model.MarkDetail, error) {
	details, err := s.reportRepo.ListMarkDetails(ctx)
	if err != nil {
		return nil, err
	}
	for i := range details {
		details[i] = withGrade(details[i])
	}
	return details, nil
}
