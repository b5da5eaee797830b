package lockout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "lockout:"

	// recordTTL bounds how long a record can survive without new failures.
	// Records older than the policy window are ignored by the service anyway,
	// so the TTL only needs to cover the window plus the hard lock.
	recordTTL = time.Hour
)

// recordJSON is the JSON-serializable representation of a Record.
type recordJSON struct {
	Identifier    string `json:"identifier"`
	FailureCount  int    `json:"failure_count"`
	LastFailureAt int64  `json:"last_failure_at"`        // Unix nano
	LockedUntil   *int64 `json:"locked_until,omitempty"` // Unix nano
}

func recordToJSON(r *Record) *recordJSON {
	j := &recordJSON{
		Identifier:    r.Identifier,
		FailureCount:  r.FailureCount,
		LastFailureAt: r.LastFailureAt.UnixNano(),
	}
	if r.LockedUntil != nil {
		ts := r.LockedUntil.UnixNano()
		j.LockedUntil = &ts
	}
	return j
}

func recordFromJSON(j *recordJSON) *Record {
	r := &Record{
		Identifier:    j.Identifier,
		FailureCount:  j.FailureCount,
		LastFailureAt: time.Unix(0, j.LastFailureAt),
	}
	if j.LockedUntil != nil {
		t := time.Unix(0, *j.LockedUntil)
		r.LockedUntil = &t
	}
	return r
}

// RedisStore persists lockout records in Redis so that failure counts are
// shared across instances.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(identifier string) string {
	return redisKeyPrefix + identifier
}

func (s *RedisStore) Get(ctx context.Context, identifier string) (*Record, error) {
	data, err := s.client.Get(ctx, s.key(identifier)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lockout record: %w", err)
	}

	var j recordJSON
	if err := json.Unmarshal([]byte(data), &j); err != nil {
		return nil, fmt.Errorf("unmarshal lockout record: %w", err)
	}
	return recordFromJSON(&j), nil
}

// RecordFailure increments the failure count under optimistic lock so that
// concurrent failures are not lost.
func (s *RedisStore) RecordFailure(ctx context.Context, identifier string) (*Record, error) {
	key := s.key(identifier)
	var result *Record

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		record := &Record{Identifier: identifier}
		data, err := tx.Get(ctx, key).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("get lockout record: %w", err)
		}
		if err == nil {
			var j recordJSON
			if err := json.Unmarshal([]byte(data), &j); err != nil {
				return fmt.Errorf("unmarshal lockout record: %w", err)
			}
			record = recordFromJSON(&j)
		}

		record.FailureCount++
		record.LastFailureAt = time.Now()

		newData, err := json.Marshal(recordToJSON(record))
		if err != nil {
			return fmt.Errorf("marshal lockout record: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, newData, recordTTL)
			return nil
		})
		if err != nil {
			return err
		}

		result = record
		return nil
	}, key)

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *RedisStore) Update(ctx context.Context, record *Record) error {
	data, err := json.Marshal(recordToJSON(record))
	if err != nil {
		return fmt.Errorf("marshal lockout record: %w", err)
	}
	if err := s.client.Set(ctx, s.key(record.Identifier), data, recordTTL).Err(); err != nil {
		return fmt.Errorf("update lockout record: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, identifier string) error {
	if err := s.client.Del(ctx, s.key(identifier)).Err(); err != nil {
		return fmt.Errorf("clear lockout record: %w", err)
	}
	return nil
}
