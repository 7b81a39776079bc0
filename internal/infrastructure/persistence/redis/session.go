package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/bookverse/inventory/pkg/errors"
)

// TokenStore Token黑名单存储
// 设计说明：
// 1. JWT是无状态的，服务端无法主动让Token失效
// 2. 通过Redis黑名单机制实现Token的主动失效（吊销、泄露后强制下线）
// 3. Key设计：blacklist:{token}，过期时间与Token剩余有效期一致
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore 创建Token黑名单存储
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// AddToBlacklist 将Token加入黑名单
func (s *TokenStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	key := fmt.Sprintf("blacklist:%s", token)

	if err := s.client.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "添加Token到黑名单失败")
	}

	return nil
}

// IsInBlacklist 检查Token是否在黑名单中
func (s *TokenStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", token)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "检查黑名单失败")
	}

	return exists > 0, nil
}
