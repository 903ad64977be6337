package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/service"

	"github.com/go-redis/redis/v8"
)

// OverrideKey is the storage key every override blob lives under, namespaced by client scope.
const OverrideKey = "moduleRegistry"

const maxUpsertAttempts = 5

type overrideStore struct {
	client redis.UniversalClient
	prefix string
}

// NewOverrideStore creates an OverrideStore that keeps one JSON object
// (module name -> descriptor) per client scope under prefix:{scope}.
func NewOverrideStore(client redis.UniversalClient, prefix string) *overrideStore {
	return &overrideStore{
		client: client,
		prefix: prefix,
	}
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *overrideStore) Load(ctx context.Context, scope string) (domain.OverrideSet, error) {
	return s.read(ctx, s.client, s.generateKey(scope))
}

// Upsert runs read-modify-write under WATCH, so a racing writer makes the transaction retry
// instead of losing an update.
func (s *overrideStore) Upsert(ctx context.Context, scope string, record domain.ModuleDescriptor) (domain.OverrideSet, error) {
	key := s.generateKey(scope)

	var updated domain.OverrideSet
	txf := func(tx *redis.Tx) error {
		current, err := s.read(ctx, tx, key)
		if err != nil {
			return err
		}
		current[record.Name] = record.Clone()

		payload, err := json.Marshal(current)
		if err != nil {
			return service.NewInternalServerError("Redis marshal overrides error", fmt.Errorf("can't marshal overrides (key='%s'), err: %w", key, err))
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = current
		return nil
	}

	for attempt := 0; attempt < maxUpsertAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, service.NewInternalServerError("Redis write overrides error", fmt.Errorf("can't upsert override %q (key='%s'), err: %w", record.Name, key, err))
	}

	return nil, service.NewInternalServerError("Redis write overrides error", fmt.Errorf("override %q (key='%s') kept changing after %d attempts", record.Name, key, maxUpsertAttempts))
}

func (s *overrideStore) Clear(ctx context.Context, scope string) error {
	key := s.generateKey(scope)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return service.NewInternalServerError("Redis delete overrides error", fmt.Errorf("can't delete overrides (key='%s'), err: %w", key, err))
	}
	return nil
}

// read decodes the blob under key. Absent or corrupt payloads read as an empty set.
func (s *overrideStore) read(ctx context.Context, g getter, key string) (domain.OverrideSet, error) {
	data, err := g.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.OverrideSet{}, nil
	}
	if err != nil {
		return nil, service.NewInternalServerError("Redis read overrides error", fmt.Errorf("can't read overrides (key='%s'), err: %w", key, err))
	}

	var set domain.OverrideSet
	if err := json.Unmarshal(data, &set); err != nil || set == nil {
		return domain.OverrideSet{}, nil
	}
	return set, nil
}

func (s *overrideStore) generateKey(scope string) string {
	return s.prefix + ":" + scope
}
