package inventory

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bookverse/inventory/internal/domain/inventory"
	"github.com/bookverse/inventory/internal/infrastructure/persistence/redis"
	apperrors "github.com/bookverse/inventory/pkg/errors"
	"github.com/bookverse/inventory/pkg/metrics"
)

// EventPublisher 事件发布接口
// pkg/mq.Publisher实现该接口;MQ未启用时注入nil,发布步骤直接跳过
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// StockAdjustedEvent 库存调整事件
// 发布到Exchange供下游(补货提醒、报表、搜索索引)异步消费
type StockAdjustedEvent struct {
	TransactionID    string    `json:"transaction_id"`
	BookID           string    `json:"book_id"`
	TransactionType  string    `json:"transaction_type"`
	Quantity         int64     `json:"quantity"`
	PreviousQuantity int64     `json:"previous_quantity"`
	NewQuantity      int64     `json:"new_quantity"`
	Notes            string    `json:"notes,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// AdjustInventoryUseCase 库存调整用例
// 设计说明:
// 1. 核心调整逻辑(行锁+非负校验+原子写流水)在仓储层事务内完成
// 2. 调整成功后的副作用按"尽力而为"处理:
//    - 失效该图书的可用性缓存(失败只记日志)
//    - 发布库存调整事件(失败只记日志,不回滚已提交的调整)
// 3. 被拒绝的调整计入专门的Prometheus计数器,便于监控异常扣减
type AdjustInventoryUseCase struct {
	inventoryService inventory.Service
	cache            *redis.AvailabilityCache
	publisher        EventPublisher
}

// NewAdjustInventoryUseCase 创建库存调整用例
func NewAdjustInventoryUseCase(
	inventoryService inventory.Service,
	cache *redis.AvailabilityCache,
	publisher EventPublisher,
) *AdjustInventoryUseCase {
	return &AdjustInventoryUseCase{
		inventoryService: inventoryService,
		cache:            cache,
		publisher:        publisher,
	}
}

// AdjustInventoryRequest 库存调整请求
type AdjustInventoryRequest struct {
	BookID string
	Delta  int64  // 调整量(正数入库,负数出库,0盘点确认)
	Notes  string // 备注(可选,<=500字符)
}

// Execute 执行库存调整
// 成功返回生成的交易流水;调整后为负返回ErrNegativeInventory且无任何副作用
func (uc *AdjustInventoryUseCase) Execute(ctx context.Context, req AdjustInventoryRequest) (*inventory.StockTransaction, error) {
	start := time.Now()

	tx, err := uc.inventoryService.Adjust(ctx, req.BookID, req.Delta, req.Notes)
	if err != nil {
		if errors.Is(err, inventory.ErrNegativeInventory) ||
			apperrors.GetAppError(err).Code == apperrors.ErrCodeNegativeInventory {
			metrics.StockAdjustmentsRejectedTotal.Inc()
		}
		return nil, err
	}

	metrics.StockAdjustmentsTotal.WithLabelValues(string(tx.TransactionType)).Inc()
	metrics.StockAdjustmentDuration.Observe(time.Since(start).Seconds())

	// 调整已提交,以下副作用失败不影响结果
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, req.BookID)
	}

	uc.publishEvent(ctx, tx)

	return tx, nil
}

// publishEvent 发布库存调整事件
// 路由键按交易类型区分:inventory.stock_in / inventory.stock_out / inventory.adjustment
func (uc *AdjustInventoryUseCase) publishEvent(ctx context.Context, tx *inventory.StockTransaction) {
	if uc.publisher == nil {
		return
	}

	routingKey := "inventory." + string(tx.TransactionType)
	event := StockAdjustedEvent{
		TransactionID:    tx.ID,
		BookID:           tx.BookID,
		TransactionType:  string(tx.TransactionType),
		Quantity:         tx.Quantity,
		PreviousQuantity: tx.PreviousQuantity,
		NewQuantity:      tx.NewQuantity,
		Notes:            tx.Notes,
		OccurredAt:       tx.CreatedAt,
	}

	if err := uc.publisher.Publish(ctx, routingKey, event); err != nil {
		log.Printf("[WARN] 发布库存调整事件失败 book_id=%s: %v", tx.BookID, err)
		return
	}

	metrics.MessagesPublishedTotal.WithLabelValues(routingKey).Inc()
}
