package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostCollection 为博客文章所在集合名。
const PostCollection = "posts"

// ErrNotFound 表示按 id 定位的文档不存在。
var ErrNotFound = errors.New("storage: document not found")

// PostStore 抽象 posts 集合的访问，供 services 注入（便于测试替换）。
type PostStore interface {
	// List 返回全部文章，按 date 降序。
	List(ctx context.Context) ([]BlogPost, error)
	// Insert 写入新文章并回填存储分配的 id。
	Insert(ctx context.Context, post *BlogPost) error
	// Delete 删除指定文章（连同内嵌评论，单文档操作天然原子）。
	Delete(ctx context.Context, id primitive.ObjectID) error
	// PushComment 将评论原子地追加到文章的评论数组末尾。
	PushComment(ctx context.Context, postID primitive.ObjectID, c Comment) error
	// PullComment 原子地移除匹配 id 的评论；评论不存在不报错，文章不存在返回 ErrNotFound。
	PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error
}

type mongoPostStore struct{ coll *mongo.Collection }

// NewPostStore 返回基于 MongoDB 的 PostStore 实现。
func NewPostStore(db *mongo.Database) PostStore {
	return &mongoPostStore{coll: db.Collection(PostCollection)}
}

func (s *mongoPostStore) List(ctx context.Context) ([]BlogPost, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)
	// 注意返回空切片而非 nil，序列化后保持 [] 而不是 null
	posts := []BlogPost{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (s *mongoPostStore) Insert(ctx context.Context, post *BlogPost) error {
	res, err := s.coll.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

func (s *mongoPostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPostStore) PushComment(ctx context.Context, postID primitive.ObjectID, c Comment) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": c}},
	)
	if err != nil {
		return fmt.Errorf("push comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPostStore) PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}},
	)
	if err != nil {
		return fmt.Errorf("pull comment: %w", err)
	}
	// ModifiedCount 为 0 说明没有命中评论，按历史行为视为成功
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
