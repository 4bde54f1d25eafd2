package event

// Type は予定の種別を表します。
type Type string

const (
	TypeInterview  Type = "Interview"
	TypeMeeting    Type = "Meeting"
	TypeDeadline   Type = "Deadline"
	TypeFocusBlock Type = "Focus Block"
)

// CalendarEvent はカレンダー予定エンティティです。OwnerEmail を持つ
// ユーザーだけに可視です。Date と Time はフォーム入力のままの文字列です。
type CalendarEvent struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Type       Type   `json:"type"`
	OwnerEmail string `json:"ownerEmail"`
}
