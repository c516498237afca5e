// Package invalidate avisa o painel de que uma tela precisa ser recarregada.
package invalidate

import (
	"context"
	"strings"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

type View string

const (
	ViewSettings     View = "/configuracoes"
	ViewAppointments View = "/agendamentos"
	ViewBarbers      View = "/barbeiros"
	ViewServices     View = "/servicos"
	ViewPlans        View = "/planos-mensais"
	ViewProducts     View = "/produtos"
)

var Views = []View{ViewSettings, ViewAppointments, ViewBarbers, ViewServices, ViewPlans, ViewProducts}

const (
	Channel       = "views:stale"
	versionPrefix = "views:version:"
)

// ParseView accepts the view with or without the leading slash.
func ParseView(s string) (View, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	for _, v := range Views {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// Signaler marca telas como desatualizadas. Falhas são apenas logadas:
// a escrita no banco já aconteceu.
type Signaler interface {
	Stale(ctx context.Context, views ...View)
	Version(ctx context.Context, view View) (int64, error)
}

type redisClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

type RedisSignaler struct {
	client redisClient
}

func NewRedisSignaler(client redisClient) *RedisSignaler {
	return &RedisSignaler{client: client}
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opt), nil
}

func (s *RedisSignaler) Stale(ctx context.Context, views ...View) {
	for _, v := range views {
		if err := s.client.Incr(ctx, versionPrefix+string(v)).Err(); err != nil {
			log.Warn().Err(err).Str("view", string(v)).Msg("stale signal: incr failed")
			continue
		}
		if err := s.client.Publish(ctx, Channel, string(v)).Err(); err != nil {
			log.Warn().Err(err).Str("view", string(v)).Msg("stale signal: publish failed")
		}
	}
}

func (s *RedisSignaler) Version(ctx context.Context, view View) (int64, error) {
	n, err := s.client.Get(ctx, versionPrefix+string(view)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// Memory guarda as versões no processo; usado sem REDIS_URL e nos testes.
type Memory struct {
	mu       sync.Mutex
	versions map[View]int64
}

func NewMemory() *Memory {
	return &Memory{versions: make(map[View]int64)}
}

func (m *Memory) Stale(_ context.Context, views ...View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range views {
		m.versions[v]++
	}
}

func (m *Memory) Version(_ context.Context, view View) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.versions[view], nil
}
