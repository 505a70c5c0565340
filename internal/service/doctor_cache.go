package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"schedula/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key holding the serialized doctor list
	doctorListKey = "doctors:all"

	// Doctors change rarely; the TTL is a backstop for missed invalidations
	doctorListTTL = 10 * time.Minute
)

// DoctorCache caches the full doctor list. The cardinality is small and the
// list is read far more often than it changes, so a single-key cache with
// invalidation on write is enough.
type DoctorCache interface {
	// GetAll returns the cached list, or (nil, nil) on a cache miss.
	GetAll(ctx context.Context) ([]entity.Doctor, error)
	SetAll(ctx context.Context, doctors []entity.Doctor) error
	Invalidate(ctx context.Context) error
}

type redisDoctorCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisDoctorCache(client *redis.Client, log *logrus.Logger) DoctorCache {
	return &redisDoctorCache{
		client: client,
		log:    log,
	}
}

func (c *redisDoctorCache) GetAll(ctx context.Context) ([]entity.Doctor, error) {
	payload, err := c.client.Get(ctx, doctorListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(payload, &doctors); err != nil {
		// Stale or corrupt payload behaves like a miss after cleanup
		c.log.Warnf("Failed to decode cached doctor list, dropping key: %+v", err)
		c.client.Del(ctx, doctorListKey)
		return nil, nil
	}
	return doctors, nil
}

func (c *redisDoctorCache) SetAll(ctx context.Context, doctors []entity.Doctor) error {
	payload, err := json.Marshal(doctors)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, doctorListKey, payload, doctorListTTL).Err()
}

func (c *redisDoctorCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, doctorListKey).Err()
}
