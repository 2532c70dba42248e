package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sedbms/internal/auth"
	apperrors "sedbms/internal/errors"
	"sedbms/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	bcryptHash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedRole  model.Role
		expectedError error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "admin123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(&model.User{
					ID: 1, Username: "admin", PasswordHash: bcryptHash, Role: model.RoleAdmin,
				}, nil)
			},
			expectedRole: model.RoleAdmin,
		},
		{
			name:     "legacy digest is upgraded",
			username: "faculty",
			password: "faculty123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "faculty").Return(&model.User{
					ID: 2, Username: "faculty", PasswordHash: auth.LegacyDigest("faculty123"), Role: model.RoleFaculty,
				}, nil)
				m.On("UpdatePasswordHash", mock.Anything, uint(2), mock.MatchedBy(func(h string) bool {
					return !auth.IsLegacyDigest(h)
				})).Return(nil)
			},
			expectedRole: model.RoleFaculty,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "nope",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(&model.User{
					ID: 1, Username: "admin", PasswordHash: bcryptHash, Role: model.RoleAdmin,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "admin123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			svc := NewAuthService(mockRepo, jwtService, new(MockTokenStore))

			token, session, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedRole, session.Role)
				claims, err := jwtService.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, tt.username, claims.Username)
				assert.Equal(t, claims.ID, session.TokenID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LogoutThenResume(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	mockStore := new(MockTokenStore)
	svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)

	_, claims, err := jwtService.GenerateToken("student", model.RoleStudent)
	require.NoError(t, err)

	mockStore.On("IsTokenRevoked", mock.Anything, claims.ID).Return(false, nil).Once()
	session, err := svc.Resume(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, "student", session.Username)

	mockStore.On("RevokeToken", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 59*time.Minute && ttl <= time.Hour
	})).Return(nil)
	require.NoError(t, svc.Logout(context.Background(), claims))

	mockStore.On("IsTokenRevoked", mock.Anything, claims.ID).Return(true, nil).Once()
	_, err = svc.Resume(context.Background(), claims)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	mockStore.AssertExpectations(t)
}

func TestAuthService_ResumeRejectsBadClaims(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), auth.NewJWTService("s", time.Hour), new(MockTokenStore))

	_, err := svc.Resume(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	_, err = svc.Resume(context.Background(), &auth.Claims{Username: "x", Role: "root"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	assert.ErrorIs(t, svc.Logout(context.Background(), nil), apperrors.ErrUnauthenticated)
}
