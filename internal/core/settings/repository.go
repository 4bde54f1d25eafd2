package settings

import "context"

// Repository はメールアドレスごとの設定を永続化するインターフェースです。
// 保存された値が無い場合は既定値を返します。
type Repository interface {
	Get(ctx context.Context, email string) (Settings, error)
	Save(ctx context.Context, email string, s Settings) error
}
