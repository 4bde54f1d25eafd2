package badgerdb

import (
	"context"

	"github.com/careerhub-dev/careerhub/internal/core/user"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

const userSlotKey = "user"

// UserRepository は現在ユーザーを user スロットに保持します。
// スロットの値は JSON の null(未サインイン)または単一のユーザーです。
type UserRepository struct {
	slot *store.Slot[*user.User]
}

// NewUserRepository は UserRepository を生成します。
func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{slot: store.NewSlot[*user.User](s, userSlotKey, nil)}
}

// Current は保存済みの現在ユーザーを返します。
func (r *UserRepository) Current(_ context.Context) (*user.User, error) {
	current := r.slot.Current()
	if current == nil {
		return nil, user.ErrUserNotFound
	}
	clone := *current
	return &clone, nil
}

// Save は現在ユーザーを置換して保存します。
func (r *UserRepository) Save(_ context.Context, u *user.User) (*user.User, error) {
	clone := *u
	if err := r.slot.Replace(&clone); err != nil {
		return nil, err
	}
	result := clone
	return &result, nil
}

// Clear は現在ユーザーを削除します。
func (r *UserRepository) Clear(_ context.Context) error {
	return r.slot.Replace(nil)
}
