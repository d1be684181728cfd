package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"go.uber.org/zap"
)

var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// State is the per-question phase of the runner.
type State int

const (
	StateIdle State = iota
	StateAnswering
	StateSubmitting
	StateScored
	StateComplete
)

type EventType string

const (
	EventQuestion    EventType = "question"
	EventTick        EventType = "tick"
	EventScored      EventType = "scored"
	EventCompleted   EventType = "completed"
	EventSubmitError EventType = "submit_error"
)

// Event is what the runner reports to its consumer. Consumers must drain the
// events channel until it closes; the countdown goroutine blocks on it.
type Event struct {
	Type          EventType
	QuestionIndex int
	Question      *model.Question
	TimeLeft      int
	Session       *model.Session
	Err           error
}

// Submitter is the server-side operation the runner drives. Satisfied by the
// interview engine and by an HTTP client alike.
type Submitter interface {
	SubmitAnswer(ctx context.Context, sessionID string, questionIndex int, answer string, autoSubmitted bool) (*model.Session, error)
}

// Runner enforces the per-question timer policy for one session at a time:
// a countdown seeded from the question's time budget, automatic submission of
// the current buffer on expiry, and a single in-flight guard shared by the
// manual and automatic submission paths. The guard is released on every exit
// path so a failed submission can be retried manually.
type Runner struct {
	submitter Submitter
	cache     *SessionCache
	log       *zap.Logger
	tick      time.Duration

	mu        sync.Mutex
	session   *model.Session
	index     int
	buffer    string
	state     State
	inFlight  bool
	stopTimer chan struct{}

	evMu     sync.Mutex
	evClosed bool
	events   chan Event
}

func NewRunner(submitter Submitter, cache *SessionCache, log *zap.Logger) *Runner {
	return &Runner{
		submitter: submitter,
		cache:     cache,
		log:       log,
		tick:      time.Second,
		state:     StateIdle,
		events:    make(chan Event, 16),
	}
}

// Events is closed when the session completes or the runner is stopped.
func (r *Runner) Events() <-chan Event {
	return r.events
}

func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Begin enters the interview at startIndex. Used both for fresh sessions
// (index 0) and for resumed ones (the cached current index).
func (r *Runner) Begin(ctx context.Context, session *model.Session, startIndex int) error {
	if session == nil || session.Finished {
		return errors.New("no unfinished session to run")
	}
	if startIndex < 0 || startIndex >= len(session.Questions) {
		return fmt.Errorf("start index %d out of range", startIndex)
	}

	r.mu.Lock()
	if r.state != StateIdle {
		r.mu.Unlock()
		return errors.New("runner already active")
	}
	r.session = session
	r.index = startIndex
	r.mu.Unlock()

	if err := r.cache.Put(ctx, session, startIndex); err != nil {
		r.log.Sugar().Warnw("persist session snapshot", "session_id", session.ID, "err", err)
	}
	r.enterQuestion(ctx)
	return nil
}

// SetAnswer replaces the answer buffer for the current question.
func (r *Runner) SetAnswer(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateAnswering {
		r.buffer = text
	}
}

// Submit is the manual submission path. It cancels the countdown for the
// current question and fails fast if a submission is already in flight.
func (r *Runner) Submit(ctx context.Context) error {
	r.mu.Lock()
	idx := r.index
	r.mu.Unlock()
	return r.submit(ctx, idx, false)
}

// Stop tears the runner down without finishing the session. The abandoned
// session remains unfinished server-side; only the local state goes away.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopTimer != nil {
		close(r.stopTimer)
		r.stopTimer = nil
	}
	r.state = StateIdle
	r.session = nil
	r.mu.Unlock()
	r.closeEvents()
}

// enterQuestion seeds the answer buffer from any previously stored answer
// (a resumed question keeps its draft) and starts the countdown.
func (r *Runner) enterQuestion(ctx context.Context) {
	r.mu.Lock()
	q := r.session.Questions[r.index]
	r.buffer = ""
	if q.Answer != nil {
		r.buffer = *q.Answer
	}
	r.state = StateAnswering
	stop := make(chan struct{})
	r.stopTimer = stop
	idx := r.index
	r.mu.Unlock()

	r.emit(Event{Type: EventQuestion, QuestionIndex: idx, Question: &q, TimeLeft: q.TimerSec})
	go r.countdown(ctx, idx, q.TimerSec, stop)
}

// countdown decrements once per tick. Reaching zero triggers the automatic
// submission exactly once; a manual submission closes stop first, so the two
// paths can never both fire for the same question instance.
func (r *Runner) countdown(ctx context.Context, idx, remaining int, stop chan struct{}) {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			remaining--
			r.emitTick(Event{Type: EventTick, QuestionIndex: idx, TimeLeft: remaining})
			if remaining <= 0 {
				if err := r.submit(ctx, idx, true); err != nil && !errors.Is(err, ErrSubmissionInFlight) {
					r.log.Sugar().Warnw("auto-submit failed", "question_index", idx, "err", err)
				}
				return
			}
		}
	}
}

func (r *Runner) submit(ctx context.Context, idx int, auto bool) error {
	r.mu.Lock()
	if r.session == nil || r.state != StateAnswering || r.inFlight || r.index != idx {
		r.mu.Unlock()
		return ErrSubmissionInFlight
	}
	r.inFlight = true
	r.state = StateSubmitting
	if r.stopTimer != nil {
		close(r.stopTimer)
		r.stopTimer = nil
	}
	answer := strings.TrimSpace(r.buffer)
	sessionID := r.session.ID
	r.mu.Unlock()

	session, err := r.submitter.SubmitAnswer(ctx, sessionID, idx, answer, auto)

	r.mu.Lock()
	r.inFlight = false // released on every path so a retry stays possible
	if err != nil {
		r.state = StateAnswering
		r.mu.Unlock()
		r.emit(Event{Type: EventSubmitError, QuestionIndex: idx, Err: err})
		return err
	}

	r.session = session
	scored := session.Questions[idx]
	if session.Finished {
		r.state = StateComplete
		r.session = nil
		r.mu.Unlock()

		if err := r.cache.Clear(ctx); err != nil {
			r.log.Sugar().Warnw("clear session snapshot", "session_id", session.ID, "err", err)
		}
		r.emit(Event{Type: EventScored, QuestionIndex: idx, Question: &scored})
		r.emit(Event{Type: EventCompleted, Session: session})
		r.closeEvents()
		return nil
	}

	r.state = StateScored
	r.index = idx + 1
	r.mu.Unlock()

	if err := r.cache.Put(ctx, session, idx+1); err != nil {
		r.log.Sugar().Warnw("persist session snapshot", "session_id", session.ID, "err", err)
	}
	r.emit(Event{Type: EventScored, QuestionIndex: idx, Question: &scored})
	r.enterQuestion(ctx)
	return nil
}

func (r *Runner) emit(ev Event) {
	r.evMu.Lock()
	defer r.evMu.Unlock()
	if r.evClosed {
		return
	}
	r.events <- ev
}

// emitTick drops the event when the consumer is behind; ticks are advisory
// and the countdown goroutine must never block on them.
func (r *Runner) emitTick(ev Event) {
	r.evMu.Lock()
	defer r.evMu.Unlock()
	if r.evClosed {
		return
	}
	select {
	case r.events <- ev:
	default:
	}
}

func (r *Runner) closeEvents() {
	r.evMu.Lock()
	defer r.evMu.Unlock()
	if !r.evClosed {
		r.evClosed = true
		close(r.events)
	}
}
