package model

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is one entry of a session's fixed question list. The answer-related
// fields are nil until the evaluation step fills them in, and are only ever
// written by that step.
type Question struct {
	ID            string     `json:"id"`
	Index         int        `json:"index"`
	Difficulty    Difficulty `json:"difficulty"`
	Text          string     `json:"text"`
	TimerSec      int        `json:"timerSec"`
	Answer        *string    `json:"answer,omitempty"`
	AutoSubmitted bool       `json:"autoSubmitted,omitempty"`
	Score         *float64   `json:"score,omitempty"`
	Feedback      *string    `json:"feedback,omitempty"`
	AnsweredAt    *time.Time `json:"answeredAt,omitempty"`
}

// Answered reports whether the question has been scored. A question with an
// answer but no score does not exist: both are set together.
func (q *Question) Answered() bool {
	return q.Score != nil
}

// Session is one candidate's attempt at an interview. The question list is
// fixed at creation and never resized; Finished flips to true exactly once,
// when the last outstanding question receives a score.
type Session struct {
	ID          string     `json:"id"`
	CandidateID string     `json:"candidateId"`
	Role        string     `json:"role"`
	StartedAt   time.Time  `json:"startedAt"`
	Questions   []Question `json:"questions"`
	Finished    bool       `json:"finished"`
	FinalScore  *float64   `json:"finalScore,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
}

// AllAnswered reports whether every question has a score.
func (s *Session) AllAnswered() bool {
	for i := range s.Questions {
		if !s.Questions[i].Answered() {
			return false
		}
	}
	return true
}

// QuestionSpec is a provider-produced question before it is assigned an id
// and a position inside a session.
type QuestionSpec struct {
	Difficulty Difficulty `json:"difficulty"`
	Text       string     `json:"text"`
	TimerSec   int        `json:"timerSec"`
}

// Evaluation is the evaluator's verdict on a single answer.
type Evaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

type StartSessionReq struct {
	CandidateID string `json:"candidateId" binding:"required"`
	Role        string `json:"role" binding:"required"`
}

type SubmitAnswerReq struct {
	SessionID     string `json:"sessionId" binding:"required"`
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
	AutoSubmitted bool   `json:"autoSubmitted"`
}

type SessionRes struct {
	Session *Session `json:"session"`
}
