package onboarding

import "github.com/careerhub-dev/careerhub/internal/core/user"

// Step はオンボーディングフローの状態を表します。
// 遷移は auth → profile → role → app の一方向で、
// 唯一の逆方向遷移は profile から auth への明示的な「戻る」です。
type Step string

const (
	StepAuth    Step = "auth"
	StepProfile Step = "profile"
	StepRole    Step = "role"
	StepApp     Step = "app"
)

// Resume は永続化済みユーザーから再開時の状態を導出します。
// 役割未設定のユーザーは role から、役割設定済みのユーザーは app から再開します。
func Resume(u *user.User) Step {
	switch {
	case u == nil:
		return StepAuth
	case u.Role == "":
		return StepRole
	default:
		return StepApp
	}
}
