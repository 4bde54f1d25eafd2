package cv

import "context"

// Repository は履歴書コレクションの永続化を行うインターフェースです。
// 履歴書はエンティティの中で唯一、明示的な削除を持ちます。
type Repository interface {
	Insert(ctx context.Context, cv *CV) (*CV, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]*CV, error)
	FindByID(ctx context.Context, id string) (*CV, error)
}
