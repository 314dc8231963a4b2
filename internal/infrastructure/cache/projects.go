package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"flat-allocation/internal/domain/project"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	projectsKey   = "alloc:projects:all"
	generationKey = "alloc:projects:gen"
)

// ProjectCache keeps the full project list in redis as one JSON value.
// Every Invalidate bumps a generation counter; SetAll writes only while the
// counter still holds the value GetAll saw. Redis failures degrade to a
// cache miss.
type ProjectCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewProjectCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *ProjectCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *ProjectCache) GetAll(ctx context.Context) ([]project.Project, int64, bool) {
	vals, err := c.rdb.MGet(ctx, projectsKey, generationKey).Result()
	if err != nil {
		c.log.Warn("project cache read failed", zap.Error(err))
		// SetAll skips an unknown generation
		return nil, -1, false
	}
	gen, err := parseGeneration(vals[1])
	if err != nil {
		c.log.Warn("project cache generation corrupt", zap.Error(err))
		return nil, -1, false
	}
	raw, ok := vals[0].(string)
	if !ok {
		return nil, gen, false
	}
	var out []project.Project
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		c.log.Warn("project cache entry corrupt", zap.Error(err))
		return nil, gen, false
	}
	return out, gen, true
}

func (c *ProjectCache) SetAll(ctx context.Context, gen int64, ps []project.Project) {
	if gen < 0 {
		return
	}
	payload, err := json.Marshal(ps)
	if err != nil {
		c.log.Warn("project cache encode failed", zap.Error(err))
		return
	}
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, generationKey).Int64()
		switch {
		case errors.Is(err, redis.Nil):
			cur = 0
		case err != nil:
			return err
		}
		if cur != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, projectsKey, payload, c.ttl)
			return nil
		})
		return err
	}, generationKey)
	switch {
	case err == nil:
	case errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		c.log.Debug("project cache fill skipped, list changed meanwhile", zap.Int64("generation", gen))
	default:
		c.log.Warn("project cache write failed", zap.Error(err))
	}
}

func (c *ProjectCache) Invalidate(ctx context.Context) {
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, generationKey)
		p.Del(ctx, projectsKey)
		return nil
	})
	if err != nil {
		c.log.Warn("project cache invalidate failed", zap.Error(err))
	}
}

var errStale = errors.New("project cache generation moved")

func parseGeneration(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
