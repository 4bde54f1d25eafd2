package settings

// Notifications は通知カテゴリごとの有効フラグです。
type Notifications struct {
	JobUpdates        bool `json:"jobUpdates"`
	CommunityMentions bool `json:"communityMentions"`
	Reminders         bool `json:"reminders"`
}

// Settings はユーザーごとの設定エンティティです。ポリシーとして
// 解釈されるのではなく、そのまま保存・返却される値の集合です。
type Settings struct {
	PrivateProfile  bool          `json:"privateProfile"`
	AllowMessages   string        `json:"allowMessages"`
	CommentControl  string        `json:"commentControl"`
	KeywordFilter   string        `json:"keywordFilter"`
	BurnoutInsights bool          `json:"burnoutInsights"`
	Notifications   Notifications `json:"notifications"`
	ScreenTimeLimit int           `json:"screenTimeLimit"`
	RestrictedMode  bool          `json:"restrictedMode"`
}

// DefaultSettings は初回アクセス時に採用される既定値を返します。
func DefaultSettings() Settings {
	return Settings{
		PrivateProfile:  false,
		AllowMessages:   "connections",
		CommentControl:  "everyone",
		KeywordFilter:   "",
		BurnoutInsights: true,
		Notifications: Notifications{
			JobUpdates:        true,
			CommunityMentions: true,
			Reminders:         true,
		},
		ScreenTimeLimit: 180,
		RestrictedMode:  false,
	}
}
