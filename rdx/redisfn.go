package rdx

import (
	"os"
	"time"

	"saaj/globals"

	"github.com/redis/go-redis/v9"
)

var Conn = newConn()

func newConn() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

// RdxGet fetches a string value, empty string if the key is missing.
func RdxGet(key string) (string, error) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxSetWithTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxDel(key string) (int64, error) {
	return Conn.Del(globals.Ctx, key).Result()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}
