package cv

import "time"

// CV は履歴書エンティティです。所有者フィールドは持たず、ストレージ
// インスタンスを利用している従業員に暗黙的にスコープされます。
type CV struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Tag       string    `json:"tag"`
	Link      string    `json:"link"`
	UpdatedAt time.Time `json:"updatedAt"`
}
