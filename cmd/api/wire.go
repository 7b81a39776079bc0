//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// 使用：运行 `wire gen ./cmd/api` 生成wire_gen.go
// main.go当前使用等价的手动组装，两者保持一致

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	appbook "github.com/bookverse/inventory/internal/application/book"
	appinventory "github.com/bookverse/inventory/internal/application/inventory"
	apptransaction "github.com/bookverse/inventory/internal/application/transaction"
	"github.com/bookverse/inventory/internal/domain/book"
	"github.com/bookverse/inventory/internal/domain/inventory"
	"github.com/bookverse/inventory/internal/infrastructure/config"
	"github.com/bookverse/inventory/internal/infrastructure/persistence/mysql"
	"github.com/bookverse/inventory/internal/infrastructure/persistence/redis"
	"github.com/bookverse/inventory/internal/interface/http/handler"
	"github.com/bookverse/inventory/internal/interface/http/middleware"
	"github.com/bookverse/inventory/pkg/jwt"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
// 注意：NewInventoryRepository需要补货阈值参数，由自定义Provider提供
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,        // 图书仓储
	provideInventoryRepository,     // 库存仓储
	mysql.NewTransactionRepository, // 交易流水仓储
	mysql.NewTxManager,             // 事务管理器
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,      // 图书领域服务
	inventory.NewService, // 库存领域服务
)

// applicationSet 应用层依赖
// 分页参数、补货阈值等标量依赖从Config提取，需要自定义Provider
var applicationSet = wire.NewSet(
	provideCreateBookUseCase,
	appbook.NewGetBookUseCase,
	provideListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	provideListInventoryUseCase,
	appinventory.NewGetInventoryUseCase,
	provideAdjustInventoryUseCase,
	provideListTransactionsUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,            // JWT管理器（需要从config提取参数）
	redis.NewTokenStore,          // Token黑名单
	provideAvailabilityCache,     // 可用性缓存
	middleware.NewAuthMiddleware, // 认证中间件
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewInventoryHandler,
	handler.NewTransactionHandler,
	handler.NewSystemHandler,
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================
// Config包含多个标量字段，Wire无法自动提取，需手动编写Provider

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.Issuer)
}

func provideAvailabilityCache(cfg *config.Config, client *goredis.Client) *redis.AvailabilityCache {
	return redis.NewAvailabilityCache(client, cfg.Inventory.AvailabilityCacheTTL)
}

func provideInventoryRepository(cfg *config.Config, db *gorm.DB) inventory.Repository {
	return mysql.NewInventoryRepository(db, cfg.Inventory.LowStockThreshold)
}

func provideCreateBookUseCase(
	cfg *config.Config,
	bookService book.Service,
	inventoryRepo inventory.Repository,
	txManager *mysql.TxManager,
) *appbook.CreateBookUseCase {
	return appbook.NewCreateBookUseCase(bookService, inventoryRepo, txManager, cfg.Inventory.LowStockThreshold)
}

func provideListBooksUseCase(
	cfg *config.Config,
	bookService book.Service,
	inventoryService inventory.Service,
	cache *redis.AvailabilityCache,
) *appbook.ListBooksUseCase {
	return appbook.NewListBooksUseCase(bookService, inventoryService, cache,
		cfg.Inventory.DefaultPageSize, cfg.Inventory.MaxPageSize)
}

func provideListInventoryUseCase(cfg *config.Config, inventoryService inventory.Service) *appinventory.ListInventoryUseCase {
	return appinventory.NewListInventoryUseCase(inventoryService,
		cfg.Inventory.DefaultPageSize, cfg.Inventory.MaxPageSize)
}

func provideAdjustInventoryUseCase(
	inventoryService inventory.Service,
	cache *redis.AvailabilityCache,
) *appinventory.AdjustInventoryUseCase {
	// Wire组装形态下不接RabbitMQ(publisher为nil时发布步骤跳过)
	return appinventory.NewAdjustInventoryUseCase(inventoryService, cache, nil)
}

func provideListTransactionsUseCase(cfg *config.Config, inventoryService inventory.Service) *apptransaction.ListTransactionsUseCase {
	return apptransaction.NewListTransactionsUseCase(inventoryService,
		cfg.Inventory.DefaultPageSize, cfg.Inventory.MaxPageSize)
}

// provideGinEngine 创建并配置Gin引擎(路由注册与main.go保持一致)
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	inventoryHandler *handler.InventoryHandler,
	transactionHandler *handler.TransactionHandler,
	systemHandler *handler.SystemHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery(), middleware.CORS(), middleware.Metrics())

	r.GET("/health", systemHandler.Health)
	r.GET("/info", systemHandler.Info)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/auth/me", authMiddleware.RequireAuth(), systemHandler.Me)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.POST("", authMiddleware.RequireAuth(), bookHandler.CreateBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), bookHandler.UpdateBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), bookHandler.DeleteBook)
		}

		inv := v1.Group("/inventory")
		{
			inv.GET("", inventoryHandler.ListInventory)
			inv.GET("/:book_id", inventoryHandler.GetInventory)
			inv.POST("/adjust", authMiddleware.RequireAuth(), inventoryHandler.AdjustInventory)
		}

		v1.GET("/transactions", transactionHandler.ListTransactions)
	}

	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
// Wire会在wire_gen.go中生成实际的初始化代码,这里的返回值是占位符
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)

	return nil, nil
}
