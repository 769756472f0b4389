package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Aadi2k05/blogging-web/internal/config"
)

// InitMongo 建立到 MongoDB 的连接，做一次 Ping 验证，并确保必要的索引存在。
func InitMongo(cfg config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	// 验证底层连接可用
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(cfg.Mongo.DBName)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return db, nil
}

// CloseMongo 断开底层客户端连接。
func CloseMongo(db *mongo.Database) {
	if db == nil {
		return
	}
	_ = db.Client().Disconnect(context.Background())
}

// ensureIndexes 保障集合索引：
// - subscribers.email 唯一索引：订阅去重最终由存储层兜底，而不是只靠先查后写；
// - posts.date 降序索引：列表固定按时间倒序返回。
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(SubscriberCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure subscribers email index: %w", err)
	}
	_, err = db.Collection(PostCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("ensure posts date index: %w", err)
	}
	return nil
}
