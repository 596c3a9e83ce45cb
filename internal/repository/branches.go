package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gonotation/internal/domain/game"
)

const branchKeyPrefix = "branches:"

// BranchRepository caches enumerated variations of SGF records. Only the
// derived move lists are stored, with a TTL.
type BranchRepository struct {
	log   *zap.SugaredLogger
	redis *redis.Client
	ttl   time.Duration
}

func NewBranchRepository(log *zap.SugaredLogger, redis *redis.Client, ttl time.Duration) *BranchRepository {
	return &BranchRepository{
		log:   log,
		redis: redis,
		ttl:   ttl,
	}
}

// GetBranches reports found=false on a cache miss.
func (b *BranchRepository) GetBranches(ctx context.Context, key string) (resp game.BranchesResponse, found bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	val, err := b.redis.Get(ctx, branchKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return resp, false, nil
	} else if err != nil {
		return resp, false, err
	}

	if err := json.Unmarshal(val, &resp); err != nil {
		b.log.Warnw("dropping unreadable cache entry", "key", key, "error", err)
		b.redis.Del(ctx, branchKeyPrefix+key)
		return game.BranchesResponse{}, false, nil
	}
	return resp, true, nil
}

func (b *BranchRepository) PutBranches(ctx context.Context, key string, resp game.BranchesResponse) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp.RequestID = ""
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return b.redis.Set(ctx, branchKeyPrefix+key, data, b.ttl).Err()
}
