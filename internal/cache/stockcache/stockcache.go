package stockcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"onboarding/internal/entities"
)

const (
	keyPrefix     = "onboarding:stock:"
	versionPrefix = "onboarding:stock-version:"
	epochKey      = "onboarding:stock-epoch"
	scanCount     = 200
)

// Cache - проекция остатков склада в Redis. Источник истины - журнал,
// любое значение здесь можно выбросить и пересчитать.
//
// У каждого ключа есть счетчик версии, у проекции целиком - эпоха. Invalidate
// сдвигает оба, поэтому запись значения, прочитанного до инвалидации,
// отбрасывается под WATCH.
type Cache struct {
	c   *redis.Client
	ttl time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		c:   client,
		ttl: ttl,
	}
}

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func (s *Cache) Ping(ctx context.Context) error {
	return s.c.Ping(ctx).Err()
}

func (s *Cache) Get(ctx context.Context, key entities.StockKey) (int, bool, error) {
	val, err := s.c.Get(ctx, redisKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get: %w", err)
	}
	return val, true, nil
}

func (s *Cache) Version(ctx context.Context, key entities.StockKey) (int64, error) {
	return readCounter(ctx, s.c, versionKey(key))
}

func (s *Cache) Epoch(ctx context.Context) (int64, error) {
	return readCounter(ctx, s.c, epochKey)
}

// Set пишет остаток, только если версия ключа все еще равна version.
// false без ошибки - значение устарело и не записано.
func (s *Cache) Set(ctx context.Context, key entities.StockKey, quantity int, version int64) (bool, error) {
	vk := versionKey(key)
	stored := false

	err := s.c.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readCounter(ctx, tx, vk)
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, redisKey(key), quantity, s.ttl)
			return nil
		})
		stored = err == nil
		return err
	}, vk)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis set: %w", err)
	}
	return stored, nil
}

func (s *Cache) Invalidate(ctx context.Context, keys ...entities.StockKey) error {
	if len(keys) == 0 {
		return nil
	}

	redisKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		redisKeys = append(redisKeys, redisKey(k))
	}

	_, err := s.c.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keys {
			pipe.Incr(ctx, versionKey(k))
		}
		pipe.Incr(ctx, epochKey)
		pipe.Del(ctx, redisKeys...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

// Replace заменяет проекцию целиком: ключи, которых нет в levels, удаляются.
// Если эпоха сдвинулась после epoch, ничего не пишется и возвращается false.
func (s *Cache) Replace(ctx context.Context, levels []entities.StockLevel, epoch int64) (bool, error) {
	replaced := false

	err := s.c.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readCounter(ctx, tx, epochKey)
		if err != nil {
			return err
		}
		if current != epoch {
			return nil
		}

		stale := make(map[string]struct{})
		iter := tx.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()
		for iter.Next(ctx) {
			stale[iter.Val()] = struct{}{}
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, level := range levels {
				k := redisKey(level.StockKey)
				delete(stale, k)
				pipe.Set(ctx, k, level.Quantity, s.ttl)
			}
			for k := range stale {
				pipe.Del(ctx, k)
			}
			return nil
		})
		replaced = err == nil
		return err
	}, epochKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis replace: %w", err)
	}
	return replaced, nil
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readCounter(ctx context.Context, c stringGetter, key string) (int64, error) {
	val, err := c.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func versionKey(key entities.StockKey) string {
	return versionPrefix + fmt.Sprintf("%d:%s", key.ItemID, entities.NormalizeSize(key.Size))
}

func redisKey(key entities.StockKey) string {
	return keyPrefix + fmt.Sprintf("%d:%s", key.ItemID, entities.NormalizeSize(key.Size))
}
