package repository

import (
	"context"
	"fmt"

	"github.com/BerniceZTT/sales_dashboard/config"
	"github.com/BerniceZTT/sales_dashboard/utils"
)

// OpenCatalog 按配置的数据源构建数据目录；数据源为MongoDB时同时返回连接，由调用方关闭
func OpenCatalog(ctx context.Context, cfg *config.Config) (*Catalog, *MongoStore, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceBuiltin:
		catalog, err := LoadBuiltinCatalog()
		return catalog, nil, err

	case config.CatalogSourceFile:
		utils.Logger.Info().Str("file", cfg.CatalogFile).Msg("从文件加载数据")
		catalog, err := LoadCatalogFile(cfg.CatalogFile)
		return catalog, nil, err

	case config.CatalogSourceMongo:
		loadCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()

		store, err := ConnectMongoDB(loadCtx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		catalog, err := store.LoadCatalog(loadCtx)
		if err != nil {
			store.Close(ctx)
			return nil, nil, err
		}
		return catalog, store, nil
	}
	return nil, nil, fmt.Errorf("未知数据源: %s", cfg.CatalogSource)
}
