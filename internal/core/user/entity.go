package user

import "time"

// Role はユーザーの役割を表します。オンボーディング完了までは未設定です。
type Role string

const (
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// User は現在のクライアントを利用しているユーザーエンティティです。
// Email が同一性のキーであり、一度設定されると変更されません。
type User struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role,omitempty"`
	Bio       string    `json:"bio"`
	Gender    string    `json:"gender"`
	Age       int       `json:"age,omitempty"`
	Company   string    `json:"company,omitempty"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Onboarded は役割選択まで完了しているかどうかを返します。
func (u *User) Onboarded() bool {
	return u != nil && u.Role != ""
}
