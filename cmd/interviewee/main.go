package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/007VICKY007/Swipe-Prototype/internal/cache"
	"github.com/007VICKY007/Swipe-Prototype/internal/engine"
	"github.com/007VICKY007/Swipe-Prototype/internal/flow"
	"github.com/007VICKY007/Swipe-Prototype/internal/gemini"
	"github.com/007VICKY007/Swipe-Prototype/internal/logger"
	"github.com/007VICKY007/Swipe-Prototype/internal/storage"
	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
)

// cliConfig is deliberately lighter than the server config: the terminal
// client runs against an in-memory store and works offline, falling back to
// the built-in question set when no API key is configured.
type cliConfig struct {
	GeminiAPIKey  string        `envconfig:"GEMINI_API_KEY" default:""`
	GeminiModel   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	GeminiTimeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"15s"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	ResumeTTL     time.Duration `envconfig:"REDIS_RESUME_TTL" default:"24h"`
}

var (
	heading  = color.New(color.FgCyan, color.Bold)
	prompt   = color.New(color.FgYellow)
	good     = color.New(color.FgGreen)
	bad      = color.New(color.FgRed)
	emphatic = color.New(color.Bold)
)

func main() {
	candidateID := flag.String("candidate", "local-candidate", "candidate id")
	role := flag.String("role", "fullstack", "role being interviewed for")
	flag.Parse()

	var cfg cliConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, _ := logger.NewLogger("production")
	defer log.Sync()

	ctx := context.Background()
	store := storage.NewMemoryStore()

	client := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	eng := engine.New(client, client, store, store, log)

	var snapStore flow.SnapshotStore
	if cfg.RedisAddr != "" {
		rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := cache.Ping(ctx, rdb); err == nil {
			snapStore = cache.NewResumeStore(rdb, cfg.ResumeTTL)
		} else {
			bad.Println("redis unreachable, this session will not be resumable")
		}
	}
	sessionCache := flow.NewSessionCache(snapStore)

	stdin := bufio.NewScanner(os.Stdin)
	session, startIndex, err := pickSession(ctx, eng, store, sessionCache, stdin, *candidateID, *role)
	if err != nil {
		bad.Println(err)
		os.Exit(1)
	}

	runner := flow.NewRunner(eng, sessionCache, log)
	if err := runner.Begin(ctx, session, startIndex); err != nil {
		bad.Println(err)
		os.Exit(1)
	}

	// One goroutine reads answers; the event loop below owns the display.
	go func() {
		for stdin.Scan() {
			runner.SetAnswer(stdin.Text())
			if err := runner.Submit(ctx); err != nil {
				bad.Printf("submit failed: %v (press enter to retry)\n", err)
			}
		}
	}()

	for ev := range runner.Events() {
		switch ev.Type {
		case flow.EventQuestion:
			heading.Printf("\nQ%d [%s, %ds]\n", ev.QuestionIndex+1, ev.Question.Difficulty, ev.Question.TimerSec)
			fmt.Println(ev.Question.Text)
			prompt.Print("> ")
		case flow.EventTick:
			if ev.TimeLeft > 0 && (ev.TimeLeft <= 5 || ev.TimeLeft%15 == 0) {
				prompt.Printf("[%ds left] ", ev.TimeLeft)
			}
		case flow.EventScored:
			score := 0.0
			if ev.Question.Score != nil {
				score = *ev.Question.Score
			}
			good.Printf("\nScore: %.1f/10", score)
			if ev.Question.Feedback != nil {
				fmt.Printf(" - %s", *ev.Question.Feedback)
			}
			fmt.Println()
		case flow.EventSubmitError:
			bad.Printf("\nsubmission failed: %v\n", ev.Err)
		case flow.EventCompleted:
			emphatic.Println("\nInterview complete!")
			if ev.Session.FinalScore != nil {
				emphatic.Printf("Final score: %.1f\n", *ev.Session.FinalScore)
			}
			if ev.Session.Summary != nil {
				fmt.Println(*ev.Session.Summary)
			}
		}
	}
}

// pickSession offers continue-or-restart when an unfinished snapshot exists,
// otherwise starts a fresh session. A continued session is re-seeded into the
// fresh in-memory store; choosing "new" just abandons the old one.
func pickSession(ctx context.Context, eng *engine.Engine, store *storage.MemoryStore, sessionCache *flow.SessionCache, stdin *bufio.Scanner, candidateID, role string) (*model.Session, int, error) {
	if snap, ok := sessionCache.Pending(ctx); ok {
		emphatic.Println("Welcome back! You have an unfinished interview session.")
		prompt.Print("Continue from where you left off? [y/N] ")
		if stdin.Scan() && strings.EqualFold(strings.TrimSpace(stdin.Text()), "y") {
			if err := store.CreateSession(ctx, snap.Session); err != nil {
				return nil, 0, err
			}
			return snap.Session, snap.CurrentIndex, nil
		}
		// the abandoned session stays unfinished; only the slot is cleared
		if err := sessionCache.Clear(ctx); err != nil {
			bad.Printf("could not clear snapshot: %v\n", err)
		}
	}

	session, err := eng.Start(ctx, candidateID, role)
	if err != nil {
		return nil, 0, err
	}
	return session, 0, nil
}
