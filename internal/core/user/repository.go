package user

import "context"

// Repository は現在ユーザーの永続化を行うインターフェースです。
// ストレージインスタンスにつきユーザーはひとりであり、スロットは単一です。
type Repository interface {
	Current(ctx context.Context) (*User, error)
	Save(ctx context.Context, user *User) (*User, error)
	Clear(ctx context.Context) error
}
