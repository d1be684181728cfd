package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
)

// EvaluateAnswer scores a single answer on a 0-10 scale. A blank answer is
// still evaluated, phrased as "No answer provided". The caller substitutes the
// neutral fallback when this returns an error.
func (c *Client) EvaluateAnswer(ctx context.Context, questionText string, difficulty model.Difficulty, answer string) (model.Evaluation, error) {
	if answer == "" {
		answer = "No answer provided"
	}

	prompt := fmt.Sprintf(`Evaluate this interview answer on a scale of 0-10:

Question: %s
Difficulty: %s
Answer: %s

Provide:
1. Score (0-10)
2. Brief feedback (2-3 sentences)

Format as JSON: {"score": number, "feedback": "text"}`, questionText, difficulty, answer)

	raw, err := c.Generate(ctx, prompt)
	if err != nil {
		return model.Evaluation{}, err
	}

	var eval model.Evaluation
	if err := json.Unmarshal([]byte(cleanOutput(raw)), &eval); err != nil {
		return model.Evaluation{}, fmt.Errorf("failed to parse evaluation: %w", err)
	}
	if eval.Score < 0 || eval.Score > 10 {
		return model.Evaluation{}, fmt.Errorf("score %v out of range", eval.Score)
	}
	return eval, nil
}
