package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/polarstudio/showroom-booking-backend/config"
	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

const slotsKey = "bookedSlots:all"

// SlotsCache is a best-effort read-through cache in front of the cross-user
// booked-slots scan. A short TTL bounds staleness; every booking write or
// delete invalidates the key. Cache failures degrade to the Firestore scan.
type SlotsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotsCache(cfg config.RedisConfig) *SlotsCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &SlotsCache{
		rdb: rdb,
		ttl: time.Duration(cfg.TTLSeconds) * time.Second,
	}
}

func (c *SlotsCache) Get(ctx context.Context) ([]domain.Booking, bool) {
	raw, err := c.rdb.Get(ctx, slotsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("slots cache read: %v", err)
		}
		return nil, false
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		log.Printf("slots cache decode: %v", err)
		return nil, false
	}
	return bookings, true
}

func (c *SlotsCache) Set(ctx context.Context, bookings []domain.Booking) {
	raw, err := json.Marshal(bookings)
	if err != nil {
		log.Printf("slots cache encode: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, slotsKey, raw, c.ttl).Err(); err != nil {
		log.Printf("slots cache write: %v", err)
	}
}

func (c *SlotsCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, slotsKey).Err(); err != nil {
		log.Printf("slots cache invalidate: %v", err)
	}
}

func (c *SlotsCache) Close() error {
	return c.rdb.Close()
}
