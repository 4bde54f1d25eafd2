package job

import "context"

// Repository は求人コレクションの永続化を行うインターフェースです。
// コレクションは新しいものが先頭の順序を保ちます。
type Repository interface {
	Insert(ctx context.Context, job *Job) (*Job, error)
	List(ctx context.Context) ([]*Job, error)
	FindByID(ctx context.Context, id string) (*Job, error)
}

// SavedJobsRepository はユーザーごとの保存済み求人 ID 集合を永続化します。
// 重複排除は構造的には強制されず、サービス側の責務です。
type SavedJobsRepository interface {
	IDs(ctx context.Context, ownerEmail string) ([]string, error)
	ReplaceIDs(ctx context.Context, ownerEmail string, ids []string) error
}
