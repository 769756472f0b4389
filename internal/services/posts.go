package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aadi2k05/blogging-web/internal/storage"
)

// PostService 负责博客文章及其内嵌评论的增删查。
type PostService struct{ store storage.PostStore }

func NewPostService(store storage.PostStore) *PostService { return &PostService{store: store} }

// CreatePostInput 为新文章的全部字段；除 Subtitle 外均为必填。
type CreatePostInput struct {
	Title    string
	Subtitle string
	Content  string
	Category string
	Author   string
	Email    string
}

// List 返回全部文章，按发布时间倒序（最新在前）。
func (s *PostService) List(ctx context.Context) ([]storage.BlogPost, error) {
	return s.store.List(ctx)
}

// Create 校验必填字段后写入新文章，返回带存储分配 id 与时间戳的文章。
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*storage.BlogPost, error) {
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"content", in.Content},
		{"category", in.Category},
		{"author", in.Author},
		{"email", in.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, validationErrorf("%s is required", f.name)
		}
	}
	post := &storage.BlogPost{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Content:  in.Content,
		Category: in.Category,
		Author:   in.Author,
		Email:    in.Email,
		Date:     time.Now().UTC(),
		Comments: []storage.Comment{},
	}
	if err := s.store.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete 删除文章及其全部内嵌评论（单文档删除，天然原子）。
func (s *PostService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// 非法 id 不可能命中任何文档，等同未找到
		return ErrNotFound
	}
	if err := s.store.Delete(ctx, oid); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// AddComment 为指定文章追加评论，返回带新 id 与时间戳的评论。
// 追加通过存储层原子数组操作完成，不重写整篇文档。
func (s *PostService) AddComment(ctx context.Context, postID, author, content string) (*storage.Comment, error) {
	if strings.TrimSpace(author) == "" {
		return nil, validationErrorf("author is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationErrorf("content is required")
	}
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrNotFound
	}
	c := storage.Comment{
		ID:      primitive.NewObjectID(),
		Author:  author,
		Content: content,
		Date:    time.Now().UTC(),
	}
	if err := s.store.PushComment(ctx, oid, c); err != nil {
		return nil, mapStoreErr(err)
	}
	return &c, nil
}

// RemoveComment 从指定文章移除匹配 id 的评论。
// 历史行为：评论 id 不匹配任何评论时仍然视为成功，只有文章不存在才报未找到。
func (s *PostService) RemoveComment(ctx context.Context, postID, commentID string) error {
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return ErrNotFound
	}
	// 非法评论 id 按「未命中」处理：零值 id 不会匹配任何真实评论，
	// 但仍会校验文章本身是否存在。
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		cid = primitive.NilObjectID
	}
	if err := s.store.PullComment(ctx, pid, cid); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// mapStoreErr 将存储层的未找到错误翻译为服务层错误，其余原样透传。
func mapStoreErr(err error) error {
	if err == storage.ErrNotFound {
		return ErrNotFound
	}
	return err
}
