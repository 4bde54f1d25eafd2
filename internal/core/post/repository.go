package post

import "context"

// Repository は投稿コレクションの永続化を行うインターフェースです。
type Repository interface {
	Insert(ctx context.Context, post *Post) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
}
