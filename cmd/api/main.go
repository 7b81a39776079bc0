package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	"github.com/bookverse/inventory/pkg/metrics"
	"github.com/bookverse/inventory/pkg/mq"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的Wire配置，可用wire gen生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 演示数据(可选,幂等)
	if cfg.Inventory.SeedDemoData {
		if err := mysql.SeedDemoData(context.Background(), db, cfg.Inventory.LowStockThreshold); err != nil {
			log.Fatalf("写入演示数据失败: %v", err)
		}
	}

	// 5. 初始化Redis连接(可选依赖:故障时降级为无缓存、无黑名单)
	var tokenStore *redis.TokenStore
	var availabilityCache *redis.AvailabilityCache
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("[WARN] Redis不可用,缓存与Token黑名单已禁用: %v", err)
	} else {
		tokenStore = redis.NewTokenStore(redisClient)
		availabilityCache = redis.NewAvailabilityCache(redisClient, cfg.Inventory.AvailabilityCacheTTL)
	}

	// 6. 初始化消息发布者(可选依赖)
	var publisher appinventory.EventPublisher
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
		if err != nil {
			log.Printf("[WARN] RabbitMQ不可用,事件发布已禁用: %v", err)
		} else {
			defer p.Close()
			publisher = p
		}
	}

	// 7. 依赖注入（手动组装）
	// 依赖链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	inventoryRepo := mysql.NewInventoryRepository(db, cfg.Inventory.LowStockThreshold)
	transactionRepo := mysql.NewTransactionRepository(db)
	txManager := mysql.NewTxManager(db)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.Issuer)

	// 领域层
	bookService := book.NewService(bookRepo)
	inventoryService := inventory.NewService(inventoryRepo, transactionRepo)

	// 应用层
	createBookUseCase := appbook.NewCreateBookUseCase(bookService, inventoryRepo, txManager, cfg.Inventory.LowStockThreshold)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, inventoryService, availabilityCache)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService, inventoryService, availabilityCache,
		cfg.Inventory.DefaultPageSize, cfg.Inventory.MaxPageSize)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService, availabilityCache)
	listInventoryUseCase := appinventory.NewListInventoryUseCase(inventoryService,
		cfg.Inventory.DefaultPageSize, cfg.Inventory.MaxPageSize)
	getInventoryUseCase := appinventory.NewGetInventoryUseCase(inventoryService)
	adjustInventoryUseCase := appinventory.NewAdjustInventoryUseCase(inventoryService, availabilityCache, publisher)
	listTransactionsUseCase := apptransaction.NewListTransactionsUseCase(inventoryService,
		cfg.Inventory.DefaultPageSize, cfg.Inventory.MaxPageSize)

	// 接口层
	bookHandler := handler.NewBookHandler(createBookUseCase, getBookUseCase, listBooksUseCase,
		updateBookUseCase, deleteBookUseCase)
	inventoryHandler := handler.NewInventoryHandler(listInventoryUseCase, getInventoryUseCase, adjustInventoryUseCase)
	transactionHandler := handler.NewTransactionHandler(listTransactionsUseCase)
	systemHandler := handler.NewSystemHandler(db)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, tokenStore)

	// 8. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery(), middleware.CORS(), middleware.Metrics())

	registerRoutes(r, bookHandler, inventoryHandler, transactionHandler, systemHandler, authMiddleware)

	// 9. 启动服务(优雅停机)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", addr)
		fmt.Printf("   健康检查: http://localhost%s/health\n", addr)
		fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
		fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在停止服务...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("停止服务失败: %v", err)
	}
	log.Println("服务已停止")
}

// registerRoutes 注册路由
// 约定:所有读接口公开,所有写接口(创建/更新/删除/调整)要求有效JWT
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	inventoryHandler *handler.InventoryHandler,
	transactionHandler *handler.TransactionHandler,
	systemHandler *handler.SystemHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 系统接口
	r.GET("/health", systemHandler.Health)
	r.GET("/info", systemHandler.Info)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/auth/me", authMiddleware.RequireAuth(), systemHandler.Me)

	// Swagger文档(生产环境建议禁用或加访问控制)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 图书模块
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.POST("", authMiddleware.RequireAuth(), bookHandler.CreateBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), bookHandler.UpdateBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), bookHandler.DeleteBook)
		}

		// 库存模块
		inv := v1.Group("/inventory")
		{
			inv.GET("", inventoryHandler.ListInventory)
			inv.GET("/:book_id", inventoryHandler.GetInventory)
			inv.POST("/adjust", authMiddleware.RequireAuth(), inventoryHandler.AdjustInventory)
		}

		// 交易流水模块(只读)
		v1.GET("/transactions", transactionHandler.ListTransactions)
	}
}
