package application

import "time"

// Status は応募の選考状態を表します。既定値は StatusSent です。
// 状態遷移は自由形式で、任意の値から任意の値へ変更できます。
type Status string

const (
	StatusSent        Status = "sent"
	StatusViewed      Status = "viewed"
	StatusShortlisted Status = "shortlisted"
)

// Application は応募エンティティです。JobTitle と Company は
// 応募時点の求人のスナップショットであり、求人の後続変更には追随しません。
type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"jobId"`
	JobTitle       string    `json:"jobTitle"`
	Company        string    `json:"company"`
	ApplicantName  string    `json:"applicantName"`
	ApplicantEmail string    `json:"applicantEmail"`
	CVID           string    `json:"cvId"`
	Status         Status    `json:"status"`
	Date           time.Time `json:"date"`
}
