package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sedbms/internal/model"
)

// SessionRepository persists logged-out session token IDs.
type SessionRepository interface {
	// Revoke records tokenID as ended until expiresAt. Revoking twice is a no-op.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	// RevokedUntil reports whether tokenID is revoked and until when.
	RevokedUntil(ctx context.Context, tokenID string) (time.Time, bool, error)
	// PurgeExpired drops rows whose token has expired and returns how many.
	PurgeExpired(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	row := model.RevokedSession{TokenID: tokenID, ExpiresAt: expiresAt.UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

func (r *sessionRepository) RevokedUntil(ctx context.Context, tokenID string) (time.Time, bool, error) {
	var row model.RevokedSession
	err := r.db.WithContext(ctx).
		Where("token_id = ? AND expires_at > ?", tokenID, time.Now().UTC()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return row.ExpiresAt, true, nil
}

func (r *sessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", time.Now().UTC()).Delete(&model.RevokedSession{})
	return res.RowsAffected, res.Error
}
