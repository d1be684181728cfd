package engine

import "github.com/007VICKY007/Swipe-Prototype/pkg/model"

// fallbackFeedback is returned verbatim whenever the evaluator fails or
// produces unparseable output.
const fallbackFeedback = "Evaluation service unavailable."

// fallbackQuestionSet is the fixed substitute used when question generation
// fails. Same distribution as the generated sets: 2 easy/20s, 2 medium/60s,
// 2 hard/120s.
func fallbackQuestionSet() []model.QuestionSpec {
	return []model.QuestionSpec{
		{Difficulty: model.DifficultyEasy, Text: "Tell me about yourself and your background", TimerSec: 20},
		{Difficulty: model.DifficultyEasy, Text: "What interests you about this role?", TimerSec: 20},
		{Difficulty: model.DifficultyMedium, Text: "Describe a challenging project you worked on", TimerSec: 60},
		{Difficulty: model.DifficultyMedium, Text: "How do you handle tight deadlines?", TimerSec: 60},
		{Difficulty: model.DifficultyHard, Text: "Explain a complex technical problem you solved", TimerSec: 120},
		{Difficulty: model.DifficultyHard, Text: "Where do you see yourself in 5 years?", TimerSec: 120},
	}
}

func fallbackEvaluation() model.Evaluation {
	return model.Evaluation{Score: 5, Feedback: fallbackFeedback}
}
