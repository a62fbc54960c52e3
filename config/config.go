package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// 数据源类型
const (
	CatalogSourceBuiltin = "builtin"
	CatalogSourceFile    = "file"
	CatalogSourceMongo   = "mongo"
)

// Config 应用配置
type Config struct {
	Port           int           `env:"PORT" envDefault:"8080"`
	GinMode        string        `env:"GIN_MODE" envDefault:"debug"`
	CatalogSource  string        `env:"CATALOG_SOURCE" envDefault:"builtin"`
	CatalogFile    string        `env:"CATALOG_FILE"`
	MongoURI       string        `env:"MONGO_URI" envDefault:"mongodb://127.0.0.1:27017"`
	MongoDB        string        `env:"MONGO_DB" envDefault:"sales_dashboard"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3001,http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Debug 是否为调试模式
func (c *Config) Debug() bool {
	return c.GinMode == "debug"
}

// LoadConfig 从 .env 文件和环境变量加载配置
func LoadConfig() (*Config, error) {
	// .env 文件可选，不存在时只使用环境变量
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT 无效: %d", c.Port)
	}
	switch c.CatalogSource {
	case CatalogSourceBuiltin:
	case CatalogSourceFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("CATALOG_SOURCE=file 时必须设置 CATALOG_FILE")
		}
	case CatalogSourceMongo:
		if c.MongoURI == "" || c.MongoDB == "" {
			return fmt.Errorf("CATALOG_SOURCE=mongo 时必须设置 MONGO_URI 和 MONGO_DB")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE 无效: %s", c.CatalogSource)
	}
	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS 不能为空")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT 必须大于0")
	}
	return nil
}
