package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeClient points a Client at an in-process server that always answers
// with the given model text.
func newFakeClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "gemini-2.0-flash", 5*time.Second)
	c.base = srv.URL
	return c
}

func modelText(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestGenerate_ReturnsModelText(t *testing.T) {
	var gotPath string
	c := newFakeClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		modelText("hello from the model")(w, r)
	})

	out, err := c.Generate(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello from the model", out)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
}

func TestGenerate_APIErrorStatus(t *testing.T) {
	c := newFakeClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"quota exceeded"}}`)
	})

	_, err := c.Generate(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerate_NoCandidates(t *testing.T) {
	c := newFakeClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	})

	_, err := c.Generate(context.Background(), "anything")
	assert.Error(t, err)
}

func TestCleanOutput(t *testing.T) {
	cases := map[string]string{
		"```json\n[{\"a\":1}]\n```": `[{"a":1}]`,
		"```\n{}\n```":              `{}`,
		"  {\"plain\": true}  ":     `{"plain": true}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanOutput(in))
	}
}

func TestGenerateQuestions_ParsesFencedJSON(t *testing.T) {
	payload := `[
		{"difficulty": "easy", "text": "What is JSX?", "timerSec": 20},
		{"difficulty": "easy", "text": "What does useState return?", "timerSec": 20},
		{"difficulty": "medium", "text": "Explain the event loop.", "timerSec": 60},
		{"difficulty": "medium", "text": "How does useEffect cleanup work?", "timerSec": 60},
		{"difficulty": "hard", "text": "Design a rate limiter.", "timerSec": 120},
		{"difficulty": "hard", "text": "Scale a websocket service.", "timerSec": 120}
	]`
	c := newFakeClient(t, modelText("```json\n"+payload+"\n```"))

	specs, err := c.GenerateQuestions(context.Background(), "fullstack", "Worked on React and Node.")
	require.NoError(t, err)
	require.Len(t, specs, 6)
	assert.Equal(t, model.DifficultyEasy, specs[0].Difficulty)
	assert.Equal(t, 120, specs[5].TimerSec)
}

func TestGenerateQuestions_MalformedOutputIsAnError(t *testing.T) {
	cases := []string{
		"I'd be happy to help with interview questions!",
		`[]`,
		`[{"difficulty": "easy", "text": "", "timerSec": 20}]`,
		`[{"difficulty": "impossible", "text": "q", "timerSec": 20}]`,
		`[{"difficulty": "easy", "text": "q", "timerSec": 0}]`,
	}
	for _, out := range cases {
		c := newFakeClient(t, modelText(out))
		_, err := c.GenerateQuestions(context.Background(), "fullstack", "")
		assert.Error(t, err, "output %q must be rejected", out)
	}
}

func TestGenerateQuestions_TruncatesLongResume(t *testing.T) {
	var promptLen int
	c := newFakeClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		promptLen = len(req.Contents[0].Parts[0].Text)
		w.WriteHeader(http.StatusInternalServerError)
	})

	longResume := strings.Repeat("x", resumeCutoff*3)
	_, _ = c.GenerateQuestions(context.Background(), "fullstack", longResume)
	assert.Less(t, promptLen, resumeCutoff+1000, "resume text is cut before prompting")
}

func TestEvaluateAnswer_ParsesScore(t *testing.T) {
	c := newFakeClient(t, modelText(`{"score": 8.5, "feedback": "Clear and correct."}`))

	eval, err := c.EvaluateAnswer(context.Background(), "What is a closure?", model.DifficultyEasy, "a function plus its scope")
	require.NoError(t, err)
	assert.Equal(t, 8.5, eval.Score)
	assert.Equal(t, "Clear and correct.", eval.Feedback)
}

func TestEvaluateAnswer_EmptyAnswerStillPrompts(t *testing.T) {
	var prompt string
	c := newFakeClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		prompt = req.Contents[0].Parts[0].Text
		modelText(`{"score": 0, "feedback": "No answer."}`)(w, r)
	})

	eval, err := c.EvaluateAnswer(context.Background(), "What is JSX?", model.DifficultyEasy, "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, eval.Score)
	assert.Contains(t, prompt, "No answer provided")
}

func TestEvaluateAnswer_RejectsOutOfRangeScore(t *testing.T) {
	for _, out := range []string{
		`{"score": 11, "feedback": "too generous"}`,
		`{"score": -1, "feedback": "impossible"}`,
		`not json at all`,
	} {
		c := newFakeClient(t, modelText(out))
		_, err := c.EvaluateAnswer(context.Background(), "q", model.DifficultyHard, "a")
		assert.Error(t, err, "output %q must be rejected", out)
	}
}
