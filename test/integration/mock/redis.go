package mock

import (
	"context"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is an in-process Redis server shared by every scenario, plus a client bound to it.
type Redis struct {
	server *miniredis.Miniredis
	client *redis.Client
}

var (
	redisOnce sync.Once
	redisMock *Redis
)

// NewRedis returns the shared in-process Redis, starting it on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisMock = &Redis{
			server: server,
			client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return redisMock
}

// Client returns the go-redis client the report cache writes through.
func (r *Redis) Client() *redis.Client {
	return r.client
}

// Clear drops every key.
func (r *Redis) Clear() error {
	return r.client.FlushAll(context.Background()).Err()
}

// FastForward advances the server's TTL clock, expiring keys whose TTL ran out.
func (r *Redis) FastForward(d time.Duration) {
	r.server.FastForward(d)
}

// KeyCount reports how many keys are currently stored.
func (r *Redis) KeyCount() int {
	return len(r.server.Keys())
}
