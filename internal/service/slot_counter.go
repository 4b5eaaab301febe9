package service

import (
	"context"
	"fmt"
	"time"

	domainRepo "clinic-booking-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SlotCounterKeyPrefix prefixes the per-slot booking counter keys.
const SlotCounterKeyPrefix = "slot:count:"

// reserveSlotScript atomically takes one booking on a slot counter.
//
// Logic:
// 1. INCR the counter
// 2. If a capacity is set and the counter exceeds it, DECR back and return -1
// 3. Set the TTL on first use so counters expire after the booked day passes
//
// The script runs atomically inside Redis, so two racing bookings can never
// both land on the last opening.
var reserveSlotScript = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	local cap = tonumber(ARGV[1])
	if cap > 0 and count > cap then
		redis.call('DECR', KEYS[1])
		return -1
	end
	if count == 1 then
		redis.call('EXPIRE', KEYS[1], tonumber(ARGV[2]))
	end
	return count
`)

// SlotCounter tracks per-slot booking counts in Redis and enforces the
// configured capacity during token issuance in database mode.
type SlotCounter struct {
	client   *redis.Client
	capacity int
	log      *logrus.Logger
}

func NewSlotCounter(client *redis.Client, capacity int, log *logrus.Logger) *SlotCounter {
	return &SlotCounter{
		client:   client,
		capacity: capacity,
		log:      log,
	}
}

func slotCounterKey(doctorID, date, slotTime string) string {
	return fmt.Sprintf("%s%s:%s:%s", SlotCounterKeyPrefix, doctorID, date, slotTime)
}

// Reserve takes one booking on the slot and returns the new count.
// Returns ErrSlotFull when the capacity is exhausted.
func (s *SlotCounter) Reserve(ctx context.Context, doctorID, date, slotTime string) (int, error) {
	key := slotCounterKey(doctorID, date, slotTime)

	count, err := reserveSlotScript.Run(ctx, s.client, []string{key},
		s.capacity, int(counterTTL(date).Seconds())).Int()
	if err != nil {
		s.log.Warnf("Failed slot reservation for %s: %+v", key, err)
		return 0, fmt.Errorf("reserve slot %s: %w", key, err)
	}

	if count == -1 {
		return 0, domainRepo.ErrSlotFull
	}

	s.log.Debugf("Reserved slot %s: count=%d", key, count)
	return count, nil
}

// Release gives back a reservation after a failed booking write.
// Queue positions are not reused; only the count is restored.
func (s *SlotCounter) Release(ctx context.Context, doctorID, date, slotTime string) error {
	key := slotCounterKey(doctorID, date, slotTime)

	if err := s.client.Decr(ctx, key).Err(); err != nil {
		s.log.Warnf("Failed to release slot %s: %+v", key, err)
		return fmt.Errorf("release slot %s: %w", key, err)
	}

	s.log.Debugf("Released slot %s", key)
	return nil
}

// Count returns the current booking count for a slot. Missing keys count
// as zero.
func (s *SlotCounter) Count(ctx context.Context, doctorID, date, slotTime string) (int, error) {
	key := slotCounterKey(doctorID, date, slotTime)

	count, err := s.client.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get slot count %s: %w", key, err)
	}
	return count, nil
}

// counterTTL expires a counter 24 hours after its booked date.
func counterTTL(date string) time.Duration {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 24 * time.Hour
	}

	ttl := time.Until(d.AddDate(0, 0, 1))
	if ttl <= 0 {
		return time.Minute
	}
	return ttl
}
