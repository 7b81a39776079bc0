package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookverse/inventory/internal/domain/inventory"
)

// AvailabilityCache 可用性摘要缓存
// 设计说明：
// 1. 图书列表是读多写少的热点路径，每本书的可用性摘要
//    (quantity_available/in_stock/low_stock)以短TTL缓存在Redis
// 2. Cache-Aside模式：读时回源填充，库存调整成功后主动失效
// 3. 降级策略：Redis故障时记录日志并直接回源数据库，不影响主流程
// 4. Key设计：availability:{book_id}
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache 创建可用性缓存
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(bookID string) string {
	return fmt.Sprintf("availability:%s", bookID)
}

// Get 读取单本图书的可用性摘要(缓存未命中返回nil)
func (c *AvailabilityCache) Get(ctx context.Context, bookID string) (*inventory.Availability, error) {
	data, err := c.client.Get(ctx, availabilityKey(bookID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var a inventory.Availability
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// BatchGet 批量读取可用性摘要(MGET减少网络往返)
// 返回命中的部分,未命中的book_id不在结果中
func (c *AvailabilityCache) BatchGet(ctx context.Context, bookIDs []string) (map[string]inventory.Availability, error) {
	if len(bookIDs) == 0 {
		return map[string]inventory.Availability{}, nil
	}

	keys := make([]string, len(bookIDs))
	for i, id := range bookIDs {
		keys[i] = availabilityKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	result := make(map[string]inventory.Availability, len(bookIDs))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue // 未命中
		}
		var a inventory.Availability
		if err := json.Unmarshal([]byte(s), &a); err != nil {
			continue // 脏数据当作未命中,等待回源覆盖
		}
		result[bookIDs[i]] = a
	}

	return result, nil
}

// Set 写入可用性摘要
func (c *AvailabilityCache) Set(ctx context.Context, bookID string, a inventory.Availability) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey(bookID), data, c.ttl).Err()
}

// BatchSet 批量写入可用性摘要(Pipeline减少网络往返)
func (c *AvailabilityCache) BatchSet(ctx context.Context, items map[string]inventory.Availability) error {
	if len(items) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for bookID, a := range items {
		data, err := json.Marshal(a)
		if err != nil {
			return err
		}
		pipe.Set(ctx, availabilityKey(bookID), data, c.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// Invalidate 失效单本图书的缓存(库存调整成功后调用)
// Redis故障时只记录日志:缓存有短TTL兜底,不能让失效失败阻塞调整主流程
func (c *AvailabilityCache) Invalidate(ctx context.Context, bookID string) {
	if err := c.client.Del(ctx, availabilityKey(bookID)).Err(); err != nil {
		log.Printf("[WARN] 可用性缓存失效失败 book_id=%s: %v", bookID, err)
	}
}
