package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/007VICKY007/Swipe-Prototype/internal/storage"
	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidRequest   = errors.New("candidate id and role are required")
	ErrQuestionNotFound = errors.New("question not found")
)

// placeholderProfile stands in for candidates that were never registered.
// Session start must always succeed given valid inputs.
const placeholderProfile = "Default candidate profile for testing"

// QuestionSetProvider produces an ordered question list for a role and resume.
// It may fail or return unusable output; the engine never lets that surface.
type QuestionSetProvider interface {
	GenerateQuestions(ctx context.Context, role, resumeText string) ([]model.QuestionSpec, error)
}

// AnswerEvaluator scores a single answer. Same contract: failures are absorbed
// by the engine, never propagated to the caller.
type AnswerEvaluator interface {
	EvaluateAnswer(ctx context.Context, questionText string, difficulty model.Difficulty, answer string) (model.Evaluation, error)
}

// Engine owns the interview session lifecycle: creation, answer intake,
// completion detection and score aggregation. It is stateless per call apart
// from the per-session locks serializing read-modify-write cycles.
type Engine struct {
	provider   QuestionSetProvider
	evaluator  AnswerEvaluator
	sessions   storage.SessionStore
	candidates storage.CandidateStore
	log        *zap.Logger
	locks      *sessionLocks
	now        func() time.Time
}

func New(provider QuestionSetProvider, evaluator AnswerEvaluator, sessions storage.SessionStore, candidates storage.CandidateStore, log *zap.Logger) *Engine {
	return &Engine{
		provider:   provider,
		evaluator:  evaluator,
		sessions:   sessions,
		candidates: candidates,
		log:        log,
		locks:      newSessionLocks(),
		now:        time.Now,
	}
}

// Start creates and persists a new session for the candidate. Provider
// failures fall back to the built-in question set; a missing candidate profile
// falls back to a placeholder. Repeated calls always create distinct sessions.
func (e *Engine) Start(ctx context.Context, candidateID, role string) (*model.Session, error) {
	if candidateID == "" || role == "" {
		return nil, ErrInvalidRequest
	}

	profile := placeholderProfile
	cand, err := e.candidates.GetCandidate(ctx, candidateID)
	switch {
	case err == nil:
		if cand.ProfileText != "" {
			profile = cand.ProfileText
		}
	case errors.Is(err, storage.ErrCandidateNotFound):
		// unknown candidates still get an interview
	default:
		return nil, fmt.Errorf("load candidate: %w", err)
	}

	specs, err := e.provider.GenerateQuestions(ctx, role, profile)
	if err != nil {
		e.log.Sugar().Warnw("question generation failed, using fallback set", "candidate_id", candidateID, "role", role, "err", err)
		specs = fallbackQuestionSet()
	}

	questions := make([]model.Question, len(specs))
	for i, s := range specs {
		questions[i] = model.Question{
			ID:         uuid.NewString(),
			Index:      i,
			Difficulty: s.Difficulty,
			Text:       s.Text,
			TimerSec:   s.TimerSec,
		}
	}

	session := &model.Session{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		Role:        role,
		StartedAt:   e.now().UTC(),
		Questions:   questions,
		Finished:    false,
	}

	if err := e.sessions.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// SubmitAnswer records an answer for one question, evaluates it and, when the
// last outstanding question gets scored, finalizes the session. Re-submitting
// the same index overwrites the prior result; callers are expected to prevent
// double submission with their own in-flight guard.
func (e *Engine) SubmitAnswer(ctx context.Context, sessionID string, questionIndex int, answer string, autoSubmitted bool) (*model.Session, error) {
	unlock := e.locks.lock(sessionID)
	defer unlock()

	session, err := e.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if questionIndex < 0 || questionIndex >= len(session.Questions) {
		return nil, ErrQuestionNotFound
	}

	answer = strings.TrimSpace(answer)

	eval, err := e.evaluator.EvaluateAnswer(ctx, session.Questions[questionIndex].Text, session.Questions[questionIndex].Difficulty, answer)
	if err != nil {
		e.log.Sugar().Warnw("evaluation failed, using neutral fallback", "session_id", sessionID, "question_index", questionIndex, "err", err)
		eval = fallbackEvaluation()
	}

	now := e.now().UTC()
	q := &session.Questions[questionIndex]
	q.Answer = &answer
	q.Score = &eval.Score
	q.Feedback = &eval.Feedback
	q.AnsweredAt = &now
	q.AutoSubmitted = autoSubmitted

	if !session.Finished && session.AllAnswered() {
		e.finalize(ctx, session)
	}

	if err := e.sessions.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

// finalize computes the aggregate score and writes the candidate's
// lastInterview record. Runs at most once per session, guarded by the
// Finished flag.
func (e *Engine) finalize(ctx context.Context, session *model.Session) {
	var total float64
	for i := range session.Questions {
		total += *session.Questions[i].Score
	}
	avg := total / float64(len(session.Questions))
	summary := fmt.Sprintf("Candidate average score: %.1f", avg)

	session.Finished = true
	session.FinalScore = &avg
	session.Summary = &summary

	cand, err := e.candidates.GetCandidate(ctx, session.CandidateID)
	if err != nil {
		// sessions for unregistered candidates finish without a profile write
		if !errors.Is(err, storage.ErrCandidateNotFound) {
			e.log.Sugar().Errorw("load candidate for finalization", "session_id", session.ID, "err", err)
		}
		return
	}

	cand.LastInterview = &model.LastInterview{
		SessionID:  session.ID,
		FinalScore: avg,
		Summary:    summary,
		Date:       e.now().UTC(),
	}
	if err := e.candidates.UpdateCandidate(ctx, cand); err != nil {
		e.log.Sugar().Errorw("write candidate last interview", "session_id", session.ID, "candidate_id", cand.ID, "err", err)
	}
}
