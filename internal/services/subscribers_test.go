package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aadi2k05/blogging-web/internal/storage"
)

// fakeSubscriberStore 以内存切片模拟 subscribers 集合（含唯一索引语义）。
type fakeSubscriberStore struct {
	subs []storage.Subscriber
	// raceInsert 模拟前置查询之后、写入之前被并发请求抢先的情形
	raceInsert bool
}

func (f *fakeSubscriberStore) List(_ context.Context) ([]storage.Subscriber, error) {
	return append([]storage.Subscriber(nil), f.subs...), nil
}

func (f *fakeSubscriberStore) FindByEmail(_ context.Context, email string) (*storage.Subscriber, error) {
	if f.raceInsert {
		return nil, storage.ErrNotFound
	}
	for _, s := range f.subs {
		if s.Email == email {
			sub := s
			return &sub, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeSubscriberStore) Insert(_ context.Context, sub *storage.Subscriber) error {
	for _, s := range f.subs {
		if s.Email == sub.Email {
			return storage.ErrDuplicateEmail
		}
	}
	sub.ID = primitive.NewObjectID()
	f.subs = append(f.subs, *sub)
	return nil
}

func (f *fakeSubscriberStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, s := range f.subs {
		if s.ID == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func TestSubscribeThenDuplicateConflicts(t *testing.T) {
	svc := NewSubscriberService(&fakeSubscriberStore{})
	sub, err := svc.Subscribe(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.False(t, sub.ID.IsZero())
	require.False(t, sub.SubscribedAt.IsZero())

	_, err = svc.Subscribe(context.Background(), "a@b.com")
	require.ErrorIs(t, err, ErrConflict)
}

func TestSubscribeUniqueIndexClosesRace(t *testing.T) {
	// 前置查询没看到重复，但唯一索引拒绝了写入：仍然必须报冲突
	store := &fakeSubscriberStore{raceInsert: true}
	store.subs = append(store.subs, storage.Subscriber{ID: primitive.NewObjectID(), Email: "a@b.com"})
	svc := NewSubscriberService(store)
	_, err := svc.Subscribe(context.Background(), "a@b.com")
	require.ErrorIs(t, err, ErrConflict)
}

func TestSubscribeValidatesEmail(t *testing.T) {
	svc := NewSubscriberService(&fakeSubscriberStore{})
	var ve *ValidationError
	_, err := svc.Subscribe(context.Background(), "")
	require.ErrorAs(t, err, &ve)
	_, err = svc.Subscribe(context.Background(), "not-an-address")
	require.ErrorAs(t, err, &ve)
}

func TestUnsubscribe(t *testing.T) {
	store := &fakeSubscriberStore{}
	svc := NewSubscriberService(store)
	sub, err := svc.Subscribe(context.Background(), "a@b.com")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(context.Background(), sub.ID.Hex()))
	subs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, subs)

	require.ErrorIs(t, svc.Unsubscribe(context.Background(), sub.ID.Hex()), ErrNotFound)
	require.ErrorIs(t, svc.Unsubscribe(context.Background(), "junk"), ErrNotFound)
}
