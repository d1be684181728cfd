package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
)

// HiringReport generates a free-form hiring report over a candidate's session
// history. Unlike the question and evaluation prompts the output is not
// expected to be JSON.
func (c *Client) HiringReport(ctx context.Context, cand *model.Candidate, sessions []model.Session) (string, error) {
	avg := "N/A"
	if len(sessions) > 0 {
		var total float64
		for _, s := range sessions {
			if s.FinalScore != nil {
				total += *s.FinalScore
			}
		}
		avg = fmt.Sprintf("%.1f", total/float64(len(sessions)))
	}

	var perf strings.Builder
	for _, s := range sessions {
		score := 0.0
		if s.FinalScore != nil {
			score = *s.FinalScore
		}
		fmt.Fprintf(&perf, "Session %s (%s): Score %.1f\n", s.ID, s.Role, score)
	}

	prompt := fmt.Sprintf(`Generate a comprehensive hiring report for this candidate:

Name: %s
Email: %s
Sessions Completed: %d
Average Score: %s

Interview Performance:
%s
Provide:
1. Overall assessment
2. Strengths
3. Weaknesses
4. Hiring recommendation
5. Suggested role fit

Format as detailed report.`, cand.Name, cand.Email, len(sessions), avg, perf.String())

	return c.Generate(ctx, prompt)
}
