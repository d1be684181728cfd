package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/007VICKY007/Swipe-Prototype/internal/engine"
	"github.com/007VICKY007/Swipe-Prototype/internal/storage"
	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProvider struct {
	specs []model.QuestionSpec
	err   error
}

func (s *stubProvider) GenerateQuestions(ctx context.Context, role, resumeText string) ([]model.QuestionSpec, error) {
	return s.specs, s.err
}

type stubEvaluator struct {
	eval model.Evaluation
	err  error
}

func (s *stubEvaluator) EvaluateAnswer(ctx context.Context, questionText string, difficulty model.Difficulty, answer string) (model.Evaluation, error) {
	return s.eval, s.err
}

type stubReports struct {
	report string
	err    error
}

func (s *stubReports) HiringReport(ctx context.Context, cand *model.Candidate, sessions []model.Session) (string, error) {
	return s.report, s.err
}

func newTestHandler(t *testing.T) (*Handler, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	eng := engine.New(
		&stubProvider{err: errors.New("provider down")},
		&stubEvaluator{eval: model.Evaluation{Score: 7, Feedback: "solid"}},
		store, store, zap.NewNop(),
	)
	h := &Handler{
		Logger:     zap.NewNop(),
		Engine:     eng,
		Sessions:   store,
		Candidates: store,
		Reviewers:  store,
		Reports:    &stubReports{report: "Strong hire."},
		JwtSecret:  "test-secret",
		JwtTTL:     time.Hour,
	}
	return h, store
}

func doJSON(t *testing.T, handler gin.HandlerFunc, method, path string, body any, params ...gin.Param) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params

	handler(c)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestStartSession_OK(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doJSON(t, h.StartSession, http.MethodPost, "/api/v1/interview/start",
		model.StartSessionReq{CandidateID: "c1", Role: "fullstack"})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.True(t, env.Success)

	var res model.SessionRes
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotNil(t, res.Session)
	assert.Len(t, res.Session.Questions, 6)
	assert.Equal(t, "c1", res.Session.CandidateID)
}

func TestStartSession_MissingFields(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doJSON(t, h.StartSession, http.MethodPost, "/api/v1/interview/start",
		map[string]string{"role": "fullstack"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestSubmitAnswer_SessionNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doJSON(t, h.SubmitAnswer, http.MethodPost, "/api/v1/interview/answer",
		model.SubmitAnswerReq{SessionID: "ghost", QuestionIndex: 0, Answer: "hi"})

	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Session not found", env.Error.Message)
}

func TestSubmitAnswer_QuestionNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	started := doJSON(t, h.StartSession, http.MethodPost, "/api/v1/interview/start",
		model.StartSessionReq{CandidateID: "c1", Role: "fullstack"})
	require.Equal(t, http.StatusOK, started.Code)
	var res model.SessionRes
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, started).Data, &res))

	w := doJSON(t, h.SubmitAnswer, http.MethodPost, "/api/v1/interview/answer",
		model.SubmitAnswerReq{SessionID: res.Session.ID, QuestionIndex: 6, Answer: "hi"})

	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Question not found", env.Error.Message)
}

func TestSubmitAnswer_ReturnsUpdatedSession(t *testing.T) {
	h, _ := newTestHandler(t)

	started := doJSON(t, h.StartSession, http.MethodPost, "/api/v1/interview/start",
		model.StartSessionReq{CandidateID: "c1", Role: "fullstack"})
	var res model.SessionRes
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, started).Data, &res))

	w := doJSON(t, h.SubmitAnswer, http.MethodPost, "/api/v1/interview/answer",
		model.SubmitAnswerReq{SessionID: res.Session.ID, QuestionIndex: 0, Answer: "closures capture scope"})

	require.Equal(t, http.StatusOK, w.Code)
	var updated model.SessionRes
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &updated))
	q := updated.Session.Questions[0]
	require.NotNil(t, q.Answer)
	assert.Equal(t, "closures capture scope", *q.Answer)
	require.NotNil(t, q.Score)
	assert.Equal(t, 7.0, *q.Score)
	assert.False(t, updated.Session.Finished)
}

func TestCreateCandidate(t *testing.T) {
	h, store := newTestHandler(t)

	w := doJSON(t, h.CreateCandidate, http.MethodPost, "/api/v1/candidates",
		model.CreateCandidateReq{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "555-0100"})

	require.Equal(t, http.StatusCreated, w.Code)
	var cand model.Candidate
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &cand))
	assert.NotEmpty(t, cand.ID)
	assert.Equal(t, "Ada Lovelace", cand.Name)

	stored, err := store.GetCandidate(context.Background(), cand.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestCreateCandidate_InvalidEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doJSON(t, h.CreateCandidate, http.MethodPost, "/api/v1/candidates",
		map[string]string{"name": "Ada", "email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func seedCandidate(t *testing.T, store *storage.MemoryStore, id, name string, score *float64) {
	t.Helper()
	cand := &model.Candidate{
		ID: id, Name: name, Email: id + "@example.com", CreatedAt: time.Now().UTC(),
	}
	if score != nil {
		cand.LastInterview = &model.LastInterview{
			SessionID:  "s-" + id,
			FinalScore: *score,
			Summary:    fmt.Sprintf("Candidate average score: %.1f", *score),
			Date:       time.Now().UTC(),
		}
	}
	require.NoError(t, store.CreateCandidate(context.Background(), cand))
}

func TestListCandidates_SortedByScoreDescending(t *testing.T) {
	h, store := newTestHandler(t)

	low, high := 4.5, 8.5
	seedCandidate(t, store, "c-low", "Low", &low)
	seedCandidate(t, store, "c-none", "Unscored", nil)
	seedCandidate(t, store, "c-high", "High", &high)

	w := doJSON(t, h.ListCandidates, http.MethodGet, "/api/v1/reviewer/candidates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []model.CandidateSummary
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "c-high", list[0].ID)
	assert.Equal(t, "c-low", list[1].ID)
	assert.Equal(t, "c-none", list[2].ID, "unscored candidates sort as zero")
}

func TestGetCandidate_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doJSON(t, h.GetCandidate, http.MethodGet, "/api/v1/reviewer/candidates/ghost", nil,
		gin.Param{Key: "id", Value: "ghost"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCandidateReport_FallbackOnGeneratorFailure(t *testing.T) {
	h, store := newTestHandler(t)
	h.Reports = &stubReports{err: errors.New("model unavailable")}

	score := 7.0
	seedCandidate(t, store, "c1", "Ada", &score)

	w := doJSON(t, h.CandidateReport, http.MethodGet, "/api/v1/reviewer/candidates/c1/report", nil,
		gin.Param{Key: "id", Value: "c1"})

	require.Equal(t, http.StatusOK, w.Code)
	var res model.CandidateReportRes
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &res))
	assert.Equal(t, reportFallback, res.Report)
}

func TestDashboard(t *testing.T) {
	h, store := newTestHandler(t)
	ctx := context.Background()

	seedCandidate(t, store, "c1", "Ada", nil)
	seedCandidate(t, store, "c2", "Grace", nil)

	eight, six := 8.0, 6.0
	require.NoError(t, store.CreateSession(ctx, &model.Session{ID: "s1", CandidateID: "c1", Finished: true, FinalScore: &eight}))
	require.NoError(t, store.CreateSession(ctx, &model.Session{ID: "s2", CandidateID: "c2", Finished: true, FinalScore: &six}))
	require.NoError(t, store.CreateSession(ctx, &model.Session{ID: "s3", CandidateID: "c1"}))

	w := doJSON(t, h.Dashboard, http.MethodGet, "/api/v1/reviewer/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.DashboardStats
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &stats))
	assert.Equal(t, 2, stats.TotalCandidates)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 2, stats.CompletedSessions)
	assert.InDelta(t, 7.0, stats.AverageScore, 1e-9)
}

func TestSessionReview(t *testing.T) {
	h, store := newTestHandler(t)
	ctx := context.Background()

	seedCandidate(t, store, "c1", "Ada", nil)
	require.NoError(t, store.CreateSession(ctx, &model.Session{ID: "s1", CandidateID: "c1", Role: "fullstack"}))

	w := doJSON(t, h.SessionReview, http.MethodGet, "/api/v1/reviewer/sessions/s1/review", nil,
		gin.Param{Key: "id", Value: "s1"})

	require.Equal(t, http.StatusOK, w.Code)
	var res model.SessionReviewRes
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &res))
	require.NotNil(t, res.Session)
	require.NotNil(t, res.Candidate)
	assert.Equal(t, "Ada", res.Candidate.Name)
}

func TestSignUpAndLogin(t *testing.T) {
	h, _ := newTestHandler(t)

	signup := doJSON(t, h.SignUp, http.MethodPost, "/api/v1/reviewers/signup",
		model.SignUpReq{Email: "hr@example.com", Password: "s3cret-pass"})
	require.Equal(t, http.StatusOK, signup.Code)

	dup := doJSON(t, h.SignUp, http.MethodPost, "/api/v1/reviewers/signup",
		model.SignUpReq{Email: "hr@example.com", Password: "s3cret-pass"})
	assert.Equal(t, http.StatusBadRequest, dup.Code)

	login := doJSON(t, h.Login, http.MethodPost, "/api/v1/reviewers/login",
		model.LoginReq{Email: "hr@example.com", Password: "s3cret-pass"})
	require.Equal(t, http.StatusOK, login.Code)

	var tok model.TokenRes
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, login).Data, &tok))
	assert.NotEmpty(t, tok.AccessToken)

	bad := doJSON(t, h.Login, http.MethodPost, "/api/v1/reviewers/login",
		model.LoginReq{Email: "hr@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
}
