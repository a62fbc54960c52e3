package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/BerniceZTT/sales_dashboard/config"
	"github.com/BerniceZTT/sales_dashboard/controllers"
	"github.com/BerniceZTT/sales_dashboard/repository"
	"github.com/BerniceZTT/sales_dashboard/routes"
	"github.com/BerniceZTT/sales_dashboard/utils"
)

const version = "1.0.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "销售与营收指挥中心后端",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})

	var seedFile string
	seed := &cobra.Command{
		Use:   "seed",
		Short: "将内置数据或YAML文件写入MongoDB",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedMongo(seedFile)
		},
	}
	seed.Flags().StringVarP(&seedFile, "file", "f", "", "YAML数据文件（默认使用内置数据）")
	cmd.AddCommand(seed)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "打印版本",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dashboard version %s\n", version)
		},
	})

	return cmd
}

func serve() error {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// 初始化日志
	utils.InitLogger(cfg.Debug())

	// 设置Gin模式
	if cfg.Debug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 加载数据目录，之后只读
	catalog, store, err := repository.OpenCatalog(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("加载数据失败: %w", err)
	}
	var statusProvider controllers.DatabaseStatusProvider
	if store != nil {
		defer store.Close(context.Background())
		statusProvider = store
	}
	utils.Logger.Info().
		Str("source", cfg.CatalogSource).
		Int("representatives", len(catalog.GetRepresentatives())).
		Msg("数据加载完成")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := utils.NewMetrics(registry)

	router := routes.NewRouter(cfg.CORSOrigins, metrics, routes.Handlers{
		Dashboard: controllers.NewDashboardController(catalog, metrics),
		System:    controllers.NewSystemController(cfg.CatalogSource, catalog, statusProvider),
		Gatherer:  registry,
	})

	// 设置HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Logger.Info().Msgf("服务器启动，监听端口: %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("启动服务器失败: %w", err)
	case <-quit:
	}
	utils.Logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务器关闭异常: %w", err)
	}

	utils.Logger.Info().Msg("服务器已优雅关闭")
	return nil
}

func seedMongo(file string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	utils.InitLogger(cfg.Debug())

	var catalog *repository.Catalog
	if file != "" {
		catalog, err = repository.LoadCatalogFile(file)
	} else {
		catalog, err = repository.LoadBuiltinCatalog()
	}
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.RequestTimeout)
	defer cancel()

	store, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	if err := store.SeedCatalog(ctx, catalog.Data()); err != nil {
		return err
	}
	utils.Logger.Info().Str("database", cfg.MongoDB).Msg("数据写入完成")
	return nil
}
