package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
)

const resumeCutoff = 10000

// GenerateQuestions asks the model for the fixed 6-question distribution:
// 2 easy (20s), 2 medium (60s), 2 hard (120s). The caller is responsible for
// substituting fallback questions when this returns an error.
func (c *Client) GenerateQuestions(ctx context.Context, role, resumeText string) ([]model.QuestionSpec, error) {
	if resumeText == "" {
		resumeText = "No resume text available"
	}
	if len(resumeText) > resumeCutoff {
		resumeText = resumeText[:resumeCutoff]
	}

	prompt := fmt.Sprintf(`Generate 6 interview questions for a %s position based on this resume:

%s

Requirements:
- 2 easy questions (20 seconds each)
- 2 medium questions (60 seconds each)
- 2 hard questions (120 seconds each)

Return ONLY a valid JSON array with this exact structure:
[
  {"difficulty": "easy", "text": "question text", "timerSec": 20},
  ...
]`, role, resumeText)

	raw, err := c.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var specs []model.QuestionSpec
	if err := json.Unmarshal([]byte(cleanOutput(raw)), &specs); err != nil {
		return nil, fmt.Errorf("failed to parse question set: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("empty question set")
	}
	for i, s := range specs {
		if s.Text == "" || s.TimerSec <= 0 {
			return nil, fmt.Errorf("malformed question at index %d", i)
		}
		switch s.Difficulty {
		case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		default:
			return nil, fmt.Errorf("unknown difficulty %q at index %d", s.Difficulty, i)
		}
	}
	return specs, nil
}
