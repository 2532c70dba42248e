package auth

import (
	"context"
	"fmt"
	"time"

	"sedbms/internal/cache"
)

const revokedTokenKeyPrefix = "revoked:session:"

// TokenStoreInterface tracks sessions ended by logout.
type TokenStoreInterface interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RevocationLog is the durable record of revoked token IDs.
type RevocationLog interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	RevokedUntil(ctx context.Context, tokenID string) (time.Time, bool, error)
}

// TokenStore keeps revoked token IDs in the database until the token would
// expire anyway. Redis caches positive lookups; losing it only costs a query.
type TokenStore struct {
	log   RevocationLog
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store. cache may be nil.
func NewTokenStore(log RevocationLog, cache *cache.Client) *TokenStore {
	return &TokenStore{log: log, cache: cache}
}

// RevokeToken marks a token ID as logged out for ttl. It fails when the
// revocation could not be recorded durably.
func (s *TokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.log.Revoke(ctx, tokenID, time.Now().Add(ttl)); err != nil {
		return fmt.Errorf("record revocation: %w", err)
	}
	return s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsTokenRevoked checks redis first and falls back to the database.
func (s *TokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if data, _ := s.cache.Get(ctx, revokedTokenKeyPrefix+tokenID); data != nil {
		return true, nil
	}

	until, revoked, err := s.log.RevokedUntil(ctx, tokenID)
	if err != nil {
		return false, fmt.Errorf("lookup revocation: %w", err)
	}
	if revoked {
		_ = s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), time.Until(until))
	}
	return revoked, nil
}
