package post

import "time"

// Audience はフィードの可視範囲を決める役割別パーティションです。
type Audience string

const (
	AudienceHR       Audience = "hr"
	AudienceEmployee Audience = "employee"
)

// AnonymousAuthor は匿名投稿時に表示名の代わりに使われるラベルです。
const AnonymousAuthor = "Anonymous HR"

// Post はコミュニティ投稿エンティティです。Audience は投稿時の
// 作成者役割に固定されます。Likes と Comments は表示専用のカウンタで、
// どの操作からも加算されません。
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Tags      []string  `json:"tags"`
	Audience  Audience  `json:"audience"`
	CreatedAt time.Time `json:"createdAt"`
}

// AudienceFor は役割に対応するフィードパーティションを返します。
// HR 以外の役割はすべて employee フィードに属します。
func AudienceFor(role string) Audience {
	if role == "hr" {
		return AudienceHR
	}
	return AudienceEmployee
}
