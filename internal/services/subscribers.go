package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aadi2k05/blogging-web/internal/storage"
)

// SubscriberService 管理通讯订阅名单（email 全局唯一）。
type SubscriberService struct{ store storage.SubscriberStore }

func NewSubscriberService(store storage.SubscriberStore) *SubscriberService {
	return &SubscriberService{store: store}
}

// Subscribe 登记新订阅。先查重以便给出友好的 409，真正的唯一性由
// 存储层的唯一索引兜底（两个并发请求同时通过前置检查时，后写的一方会被索引拒绝）。
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (*storage.Subscriber, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, validationErrorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validationErrorf("email is not a valid address")
	}
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	sub := &storage.Subscriber{Email: email, SubscribedAt: time.Now().UTC()}
	if err := s.store.Insert(ctx, sub); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return sub, nil
}

// List 返回全部订阅者。
func (s *SubscriberService) List(ctx context.Context) ([]storage.Subscriber, error) {
	return s.store.List(ctx)
}

// Unsubscribe 按 id 删除订阅者。
func (s *SubscriberService) Unsubscribe(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	if err := s.store.Delete(ctx, oid); err != nil {
		return mapStoreErr(err)
	}
	return nil
}
