// Package redis stores analysis sessions in a key-value store behind the
// db.RedisClient interface.
package redis

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"euston-server/db"
	"euston-server/models"
)

const SESSION_KEY_FORMAT_V1 = "analysis_session_v1:%s"

// SessionDAO persists analysis sessions as JSON values with an expiry.
type SessionDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewSessionDAO initializes a SessionDAO. A zero ttl stores sessions
// without expiry.
func NewSessionDAO(client db.RedisClient, ttl time.Duration) *SessionDAO {
	return &SessionDAO{client: client, ttl: ttl}
}

// Upsert stores the session, stamping UpdatedAt.
func (dao *SessionDAO) Upsert(s *models.SessionState) error {
	s.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling session %s: %w", s.ID, err)
	}
	key := fmt.Sprintf(SESSION_KEY_FORMAT_V1, s.ID)
	if err := dao.client.Set(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("storing session %s: %w", s.ID, err)
	}
	return nil
}

// Get retrieves a session by ID.
func (dao *SessionDAO) Get(id string) (*models.SessionState, error) {
	key := fmt.Sprintf(SESSION_KEY_FORMAT_V1, id)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("fetching session %s: %w", id, err)
	}
	var s models.SessionState
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("unmarshaling session %s: %w", id, err)
	}
	return &s, nil
}

// Delete removes a session by ID.
func (dao *SessionDAO) Delete(id string) error {
	key := fmt.Sprintf(SESSION_KEY_FORMAT_V1, id)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	return nil
}

// ListIDs returns the IDs of every stored session.
func (dao *SessionDAO) ListIDs() ([]string, error) {
	pattern := fmt.Sprintf(SESSION_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("listing session keys: %w", err)
	}
	prefix := fmt.Sprintf(SESSION_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
