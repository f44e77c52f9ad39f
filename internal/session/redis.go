package session

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis with a native TTL, so expiry needs no
// lazy cleanup and sessions survive restarts and scale across instances.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (r *RedisStore) key(id string) string {
	return "session:" + id
}

func (r *RedisStore) Put(ctx context.Context, id string, rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key(id), b, TTL).Err()
}

func (r *RedisStore) Get(ctx context.Context, id string) (Record, bool, error) {
	val, err := r.rdb.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return Record{}, false, nil
	} else if err != nil {
		return Record{}, false, err
	}
	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, r.key(id)).Err()
}
