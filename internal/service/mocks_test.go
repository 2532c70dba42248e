package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sedbms/internal/model"
	"sedbms/internal/auth"
	"sedbms/internal/repository"
)

var (
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.StudentRepository = (*MockStudentRepository)(nil)
	_ repository.SubjectRepository = (*MockSubjectRepository)(nil)
	_ repository.MarkRepository    = (*MockMarkRepository)(nil)
	_ repository.ReportRepository  = (*MockReportRepository)(nil)
	_ auth.TokenStoreInterface     = (*MockTokenStore)(nil)
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockStudentRepository is a mock implementation of StudentRepository.
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *model.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) FindByUSN(ctx context.Context, usn string) (*model.Student, error) {
	args := m.Called(ctx, usn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) List(ctx context.Context) ([]model.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) ListRecent(ctx context.Context, limit int) ([]model.Student, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepository) Delete(ctx context.Context, usn string) (string, error) {
	args := m.Called(ctx, usn)
	return args.String(0), args.Error(1)
}

// MockSubjectRepository is a mock implementation of SubjectRepository.
type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) List(ctx context.Context, semester int) ([]model.Subject, error) {
	args := m.Called(ctx, semester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubjectRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockMarkRepository is a mock implementation of MarkRepository.
type MockMarkRepository struct {
	mock.Mock
}

func (m *MockMarkRepository) Upsert(ctx context.Context, mark *model.Mark) (bool, error) {
	args := m.Called(ctx, mark)
	return args.Bool(0), args.Error(1)
}

func (m *MockMarkRepository) Find(ctx context.Context, usn, subjectCode string, semester int) (*model.Mark, error) {
	args := m.Called(ctx, usn, subjectCode, semester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mark), args.Error(1)
}

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ListMarkDetails(ctx context.Context) ([]model.MarkDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MarkDetail), args.Error(1)
}

func (m *MockReportRepository) MarkDetailsForStudent(ctx context.Context, usn string) ([]model.MarkDetail, error) {
	args := m.Called(ctx, usn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MarkDetail), args.Error(1)
}
