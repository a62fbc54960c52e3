package repository

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BerniceZTT/sales_dashboard/models"
)

//go:embed seed/catalog.yaml
var builtinCatalog []byte

// ParseCatalogYAML 解析YAML格式的数据源
func ParseCatalogYAML(content []byte) (models.CatalogData, error) {
	var data models.CatalogData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return models.CatalogData{}, fmt.Errorf("解析数据源失败: %w", err)
	}
	return data, nil
}

// LoadBuiltinCatalog 加载内置数据
func LoadBuiltinCatalog() (*Catalog, error) {
	data, err := ParseCatalogYAML(builtinCatalog)
	if err != nil {
		return nil, err
	}
	return NewCatalog(data)
}

// LoadCatalogFile 从YAML文件加载数据
func LoadCatalogFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取数据文件失败: %w", err)
	}
	data, err := ParseCatalogYAML(content)
	if err != nil {
		return nil, err
	}
	return NewCatalog(data)
}
