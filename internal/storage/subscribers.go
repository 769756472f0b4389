package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubscriberCollection 为订阅者所在集合名。
const SubscriberCollection = "subscribers"

// ErrDuplicateEmail 表示 email 已被占用（唯一索引拒绝写入或前置查询命中）。
var ErrDuplicateEmail = errors.New("storage: email already subscribed")

// SubscriberStore 抽象 subscribers 集合的访问。
type SubscriberStore interface {
	// List 返回全部订阅者，顺序为存储默认顺序。
	List(ctx context.Context) ([]Subscriber, error)
	// FindByEmail 按 email 精确查找；不存在返回 ErrNotFound。
	FindByEmail(ctx context.Context, email string) (*Subscriber, error)
	// Insert 写入新订阅者；email 冲突返回 ErrDuplicateEmail。
	Insert(ctx context.Context, sub *Subscriber) error
	// Delete 删除指定订阅者；不存在返回 ErrNotFound。
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoSubscriberStore struct{ coll *mongo.Collection }

// NewSubscriberStore 返回基于 MongoDB 的 SubscriberStore 实现。
func NewSubscriberStore(db *mongo.Database) SubscriberStore {
	return &mongoSubscriberStore{coll: db.Collection(SubscriberCollection)}
}

func (s *mongoSubscriberStore) List(ctx context.Context) ([]Subscriber, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find subscribers: %w", err)
	}
	defer cur.Close(ctx)
	subs := []Subscriber{}
	if err := cur.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("decode subscribers: %w", err)
	}
	return subs, nil
}

func (s *mongoSubscriberStore) FindByEmail(ctx context.Context, email string) (*Subscriber, error) {
	var sub Subscriber
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	return &sub, nil
}

func (s *mongoSubscriberStore) Insert(ctx context.Context, sub *Subscriber) error {
	res, err := s.coll.InsertOne(ctx, sub)
	if err != nil {
		// 先查后写存在并发窗口，真正的去重由唯一索引兜底
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert subscriber: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}
	return nil
}

func (s *mongoSubscriberStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
