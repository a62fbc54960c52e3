package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BerniceZTT/sales_dashboard/models"
	"github.com/BerniceZTT/sales_dashboard/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// 集合名
	CompanyKPICollection      = "companyKpi"
	RegionsCollection         = "regionAggregates"
	TeamAverageCollection     = "teamAverage"
	RepresentativesCollection = "representatives"
	DetailsCollection         = "representativeDetails"
	FunnelCollection          = "funnelStages"
	PeriodsCollection         = "periods"

	singletonID = "current"
)

// catalogCollections 数据目录使用的全部集合
var catalogCollections = []string{
	CompanyKPICollection,
	RegionsCollection,
	TeamAverageCollection,
	RepresentativesCollection,
	DetailsCollection,
	FunnelCollection,
	PeriodsCollection,
}

// sequenced 带顺序号的文档，集合读取时按 seq 排序以保持原始顺序
type sequenced[T any] struct {
	Seq  int `bson:"seq"`
	Item T   `bson:",inline"`
}

type singletonDoc[T any] struct {
	ID   string `bson:"_id"`
	Item T      `bson:",inline"`
}

type detailDoc struct {
	Name   string                      `bson:"_id"`
	Detail models.RepresentativeDetail `bson:",inline"`
}

type periodDoc struct {
	Seq  int    `bson:"seq"`
	Name string `bson:"name"`
}

// MongoStore MongoDB数据源
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongoDB 初始化MongoDB连接
func ConnectMongoDB(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	// 设置连接超时
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("连接MongoDB失败: %w", err)
	}

	// 检查连接
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping MongoDB失败: %w", err)
	}

	utils.Logger.Info().Str("database", dbName).Msg("已连接到MongoDB")
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// Close 关闭MongoDB连接
func (s *MongoStore) Close(ctx context.Context) {
	if s == nil || s.client == nil {
		return
	}
	if err := s.client.Disconnect(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("断开MongoDB连接失败")
		return
	}
	utils.Logger.Info().Msg("已断开MongoDB连接")
}

// LoadCatalog 从MongoDB读取全部数据并构建数据目录
func (s *MongoStore) LoadCatalog(ctx context.Context) (*Catalog, error) {
	var data models.CatalogData

	company, err := findSingleton[models.CompanyKPI](ctx, s.db.Collection(CompanyKPICollection))
	if err != nil {
		return nil, fmt.Errorf("读取公司KPI失败: %w", err)
	}
	data.CompanyKPI = company

	team, err := findSingleton[models.TeamAverage](ctx, s.db.Collection(TeamAverageCollection))
	if err != nil {
		return nil, fmt.Errorf("读取团队平均失败: %w", err)
	}
	data.TeamAverage = team

	if data.Regions, err = findSequenced[models.RegionAggregate](ctx, s.db.Collection(RegionsCollection)); err != nil {
		return nil, fmt.Errorf("读取地区数据失败: %w", err)
	}
	if data.Representatives, err = findSequenced[models.RepresentativeSummary](ctx, s.db.Collection(RepresentativesCollection)); err != nil {
		return nil, fmt.Errorf("读取销售人员失败: %w", err)
	}
	if data.Funnel, err = findSequenced[models.FunnelStage](ctx, s.db.Collection(FunnelCollection)); err != nil {
		return nil, fmt.Errorf("读取漏斗数据失败: %w", err)
	}

	cursor, err := s.db.Collection(DetailsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("读取销售人员详情失败: %w", err)
	}
	var details []detailDoc
	if err := cursor.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("解析销售人员详情失败: %w", err)
	}
	data.Details = make(map[string]models.RepresentativeDetail, len(details))
	for _, d := range details {
		data.Details[d.Name] = d.Detail
	}

	cursor, err = s.db.Collection(PeriodsCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("读取时间周期失败: %w", err)
	}
	var periods []periodDoc
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, fmt.Errorf("解析时间周期失败: %w", err)
	}
	data.Periods = periodNames(periods)

	utils.LogDbOperation("load", "catalog", nil, map[string]interface{}{
		"representatives": len(data.Representatives),
		"details":         len(data.Details),
		"regions":         len(data.Regions),
	})

	return NewCatalog(data)
}

func periodNames(docs []periodDoc) []string {
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Seq < docs[j].Seq })
	names := make([]string, 0, len(docs))
	for _, p := range docs {
		names = append(names, p.Name)
	}
	return names
}

func findSingleton[T any](ctx context.Context, coll *mongo.Collection) (T, error) {
	var doc singletonDoc[T]
	err := coll.FindOne(ctx, bson.M{"_id": singletonID}).Decode(&doc)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, fmt.Errorf("%w: 集合 %s 为空", ErrInvalidCatalog, coll.Name())
		}
		return zero, err
	}
	return doc.Item, nil
}

func findSequenced[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []sequenced[T]
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return unwrapSequenced(docs), nil
}

func unwrapSequenced[T any](docs []sequenced[T]) []T {
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Seq < docs[j].Seq })
	items := make([]T, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.Item)
	}
	return items
}

func wrapSequenced[T any](items []T) []interface{} {
	docs := make([]interface{}, 0, len(items))
	for i, item := range items {
		docs = append(docs, sequenced[T]{Seq: i, Item: item})
	}
	return docs
}

// CatalogDocuments 将数据目录转换为各集合待写入的文档
func CatalogDocuments(data models.CatalogData) map[string][]interface{} {
	names := make([]string, 0, len(data.Details))
	for name := range data.Details {
		names = append(names, name)
	}
	sort.Strings(names)

	details := make([]interface{}, 0, len(names))
	for _, name := range names {
		details = append(details, detailDoc{Name: name, Detail: data.Details[name]})
	}

	periods := make([]interface{}, 0, len(data.Periods))
	for i, p := range data.Periods {
		periods = append(periods, periodDoc{Seq: i, Name: p})
	}

	return map[string][]interface{}{
		CompanyKPICollection:      {singletonDoc[models.CompanyKPI]{ID: singletonID, Item: data.CompanyKPI}},
		TeamAverageCollection:     {singletonDoc[models.TeamAverage]{ID: singletonID, Item: data.TeamAverage}},
		RegionsCollection:         wrapSequenced(data.Regions),
		RepresentativesCollection: wrapSequenced(data.Representatives),
		FunnelCollection:          wrapSequenced(data.Funnel),
		DetailsCollection:         details,
		PeriodsCollection:         periods,
	}
}

// SeedCatalog 用给定数据覆盖MongoDB中的数据目录
func (s *MongoStore) SeedCatalog(ctx context.Context, data models.CatalogData) error {
	docs := CatalogDocuments(data)
	for _, collName := range catalogCollections {
		coll := s.db.Collection(collName)
		items := docs[collName]

		_, err := ExecuteDbOperation(func() (interface{}, error) {
			if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
				return nil, err
			}
			if len(items) == 0 {
				return nil, nil
			}
			return coll.InsertMany(ctx, items)
		}, 3)
		if err != nil {
			return fmt.Errorf("写入集合 %s 失败: %w", collName, err)
		}
		utils.Logger.Info().Str("collection", collName).Int("count", len(items)).Msg("写入集合成功")
	}
	return nil
}

// GetDatabaseStatus 获取数据库状态
func (s *MongoStore) GetDatabaseStatus(ctx context.Context) map[string]interface{} {
	result := make(map[string]interface{}, len(catalogCollections))
	for _, collName := range catalogCollections {
		count, err := s.db.Collection(collName).CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("获取集合计数失败")
			result[collName] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
			continue
		}
		result[collName] = map[string]interface{}{"count": count}
	}
	return result
}

// ExecuteDbOperation 执行数据库操作，提供错误处理和重试机制
func ExecuteDbOperation(operation func() (interface{}, error), retries int) (interface{}, error) {
	if retries <= 0 {
		retries = 3
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		lastErr = err
		utils.Logger.Error().Err(err).Msgf("数据库操作失败，重试 (%d/%d)", i+1, retries)

		// 如果是不可重试的错误，立即返回
		if !isRetryableError(err) {
			break
		}

		if i < retries-1 {
			time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
		}
	}

	return nil, lastErr
}

// retryableCodes MongoDB可重试错误代码
var retryableCodes = map[int32]bool{
	6:     true, // HostUnreachable
	7:     true, // HostNotFound
	89:    true, // NetworkTimeout
	91:    true, // ShutdownInProgress
	189:   true, // PrimarySteppedDown
	10107: true, // NotMaster
	13436: true, // NotMasterNoSlaveOk
	11600: true, // InterruptedAtShutdown
	11602: true, // InterruptedDueToReplStateChange
	10058: true, // ConnectionReset
}

// isRetryableError 判断错误是否可重试
func isRetryableError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return retryableCodes[cmdErr.Code]
	}
	return isNetworkError(err)
}

// isNetworkError 检查是否是网络错误
func isNetworkError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"timeout",
		"context deadline exceeded",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}
	return false
}
