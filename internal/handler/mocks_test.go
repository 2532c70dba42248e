package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"sedbms/internal/access"
	"sedbms/internal/auth"
	"sedbms/internal/model"
	"sedbms/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *access.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*access.Session), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthService) Resume(ctx context.Context, claims *auth.Claims) (*access.Session, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.Session), args.Error(1)
}

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) Create(ctx context.Context, student *model.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentService) Get(ctx context.Context, usn string) (*model.Student, error) {
	args := m.Called(ctx, usn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentService) ListWithCGPA(ctx context.Context) ([]service.StudentSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.StudentSummary), args.Error(1)
}

func (m *MockStudentService) Delete(ctx context.Context, usn string) (string, error) {
	args := m.Called(ctx, usn)
	return args.String(0), args.Error(1)
}

type MockSubjectService struct {
	mock.Mock
}

func (m *MockSubjectService) Create(ctx context.Context, subject *model.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectService) List(ctx context.Context, semester int) ([]model.Subject, error) {
	args := m.Called(ctx, semester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

type MockMarkService struct {
	mock.Mock
}

func (m *MockMarkService) Upsert(ctx context.Context, mark *model.Mark) (bool, error) {
	args := m.Called(ctx, mark)
	return args.Bool(0), args.Error(1)
}

func (m *MockMarkService) List(ctx context.Context) ([]model.MarkDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MarkDetail), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) StudentReport(ctx context.Context, usn string) (*service.StudentReport, error) {
	args := m.Called(ctx, usn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StudentReport), args.Error(1)
}

func (m *MockReportService) CGPA(ctx context.Context, usn string) (decimal.Decimal, error) {
	args := m.Called(ctx, usn)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportService) InvalidateCGPA(ctx context.Context, usn string) {
	m.Called(ctx, usn)
}

func (m *MockReportService) Summaries(ctx context.Context, students []model.Student) ([]service.StudentSummary, error) {
	args := m.Called(ctx, students)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.StudentSummary), args.Error(1)
}

func (m *MockReportService) Dashboard(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}
