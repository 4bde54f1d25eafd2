package job

import "time"

// Type は雇用形態を表します。
type Type string

const (
	TypeFullTime   Type = "Full-time"
	TypePartTime   Type = "Part-time"
	TypeContract   Type = "Contract"
	TypeInternship Type = "Internship"
)

// Job は求人エンティティです。HREmail が作成した HR ユーザーを指します。
// ID は作成時刻(Unix ミリ秒)を十進文字列にしたものです。
type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Type             Type      `json:"type"`
	Salary           string    `json:"salary"`
	Description      string    `json:"description"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	CreatedAt        time.Time `json:"createdAt"`
	HREmail          string    `json:"hrEmail"`
	HRName           string    `json:"hrName"`
}
