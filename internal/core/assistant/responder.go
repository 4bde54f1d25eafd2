package assistant

import (
	"fmt"
	"strings"
)

// Interview は返答の組み立てに使う面接予定の最小表現です。
type Interview struct {
	Title string
	Time  string
}

const (
	noInterviewsTemplate = "You have no interviews scheduled. Enjoy the breathing room, or post a new opening to fill the pipeline."
	candidatesTemplate   = "To review candidates, open a job card and check its applicant list. Shortlisted CVs stay pinned at the top of the inbox."
	jobsTemplate         = "The job board shows every open position, newest first. HR users can post new openings from the dashboard."
	wellbeingTemplate    = "Sounds like a heavy week. Consider blocking a Focus Block on your calendar and turning on burnout insights in Settings."
	fallbackTemplate     = "I can help with interviews, candidates, job postings, and workload questions. What would you like to know?"
)

// Respond はメッセージ本文へのキーワード照合で定型文を返します。
// 判定は大文字小文字を区別しない部分一致で、以下の固定順に評価され、
// 最初に一致したものが採用されます。
//
//	interview → candidate/cv → job → burnout/tired → フォールバック
func Respond(message string, interviews []Interview) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "interview"):
		return interviewDigest(interviews)
	case strings.Contains(lower, "candidate") || strings.Contains(lower, "cv"):
		return candidatesTemplate
	case strings.Contains(lower, "job"):
		return jobsTemplate
	case strings.Contains(lower, "burnout") || strings.Contains(lower, "tired"):
		return wellbeingTemplate
	default:
		return fallbackTemplate
	}
}

func interviewDigest(interviews []Interview) string {
	if len(interviews) == 0 {
		return noInterviewsTemplate
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d interview(s) scheduled:", len(interviews))
	for _, iv := range interviews {
		fmt.Fprintf(&b, "\n- %s at %s", iv.Title, iv.Time)
	}
	return b.String()
}
