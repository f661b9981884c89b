package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	apperrors "github.com/salonflow/dialog-server-go/internal/errors"
	"github.com/salonflow/dialog-server-go/internal/model"
)

// Store keeps conversation sessions in Redis under a per-key TTL. Writes are
// last-write-wins: duplicate near-simultaneous messages may race, which is
// accepted over paying for a distributed lock on every message.
type Store struct {
	rdb       *redis.Client
	ttl       time.Duration
	extension time.Duration
	ceiling   time.Duration
}

func NewStore(rdb *redis.Client, ttl, extension, ceiling time.Duration) *Store {
	return &Store{
		rdb:       rdb,
		ttl:       ttl,
		extension: extension,
		ceiling:   ceiling,
	}
}

// Save creates or overwrites the session for its (salon, customer) key. The
// expiry never exceeds createdAt + ceiling.
func (s *Store) Save(ctx context.Context, sess *model.ConversationSession) error {
	now := time.Now().UTC()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.ExpiresAt = clampToCeiling(now.Add(s.ttl), sess.CreatedAt, s.ceiling)

	data, err := json.Marshal(sess)
	if err != nil {
		return apperrors.Internal("marshal session").WithCause(err)
	}

	if err := s.rdb.Set(ctx, sess.Key(), data, time.Until(sess.ExpiresAt)).Err(); err != nil {
		return apperrors.SessionStoreUnavailable(err)
	}
	return nil
}

// Get returns the session or nil when absent. An entry whose stored expiry
// has passed is treated as absent even if Redis has not evicted it yet; this
// defends against clock skew between writers.
func (s *Store) Get(ctx context.Context, salonID, customerID string) (*model.ConversationSession, error) {
	key := model.SessionKey(salonID, customerID)

	val, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.SessionStoreUnavailable(err)
	}

	var sess model.ConversationSession
	if err := json.Unmarshal(val, &sess); err != nil {
		log.Warn().Err(err).Str("sessionKey", key).Msg("dropping undecodable session")
		_ = s.rdb.Del(ctx, key).Err()
		return nil, nil
	}

	now := time.Now().UTC()
	if now.After(sess.ExpiresAt) || now.After(sess.CreatedAt.Add(s.ceiling)) {
		return nil, nil
	}
	return &sess, nil
}

// Extend slides the session expiry by the configured increment, clamped to
// createdAt + ceiling. Called once per successful interaction.
func (s *Store) Extend(ctx context.Context, sess *model.ConversationSession) error {
	sess.ExpiresAt = clampToCeiling(sess.ExpiresAt.Add(s.extension), sess.CreatedAt, s.ceiling)

	data, err := json.Marshal(sess)
	if err != nil {
		return apperrors.Internal("marshal session").WithCause(err)
	}
	if err := s.rdb.Set(ctx, sess.Key(), data, time.Until(sess.ExpiresAt)).Err(); err != nil {
		return apperrors.SessionStoreUnavailable(err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, salonID, customerID string) error {
	if err := s.rdb.Del(ctx, model.SessionKey(salonID, customerID)).Err(); err != nil {
		return apperrors.SessionStoreUnavailable(err)
	}
	return nil
}

func clampToCeiling(expiry, createdAt time.Time, ceiling time.Duration) time.Time {
	max := createdAt.Add(ceiling)
	if expiry.After(max) {
		return max
	}
	return expiry
}
