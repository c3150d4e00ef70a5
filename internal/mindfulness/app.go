package mindfulness

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"coursework/internal/console"
	"coursework/internal/logging"
	"coursework/internal/rng"
)

// App is the mindfulness menu.
type App struct {
	session    *Session
	log        *Log
	logPath    string
	activities []Activity
}

// NewApp builds the menu with the three activities. The log is saved to
// logPath when the menu ends; an empty path keeps it in memory.
func NewApp(s *Session, src rng.Source, log *Log, logPath string) *App {
	return &App{
		session:    s,
		log:        log,
		logPath:    logPath,
		activities: []Activity{Breathing{}, NewReflection(src), NewListing(src)},
	}
}

// Log returns the activity counts.
func (a *App) Log() *Log { return a.log }

// Run shows the menu until Quit or end of input, then saves the log.
func (a *App) Run(ctx context.Context) error {
	p := a.session.P
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Clear()
		p.Title("Mindfulness Program")
		for i, act := range a.activities {
			p.Printf("%d. %s Activity\n", i+1, act.Name())
		}
		p.Printf("%d. Quit\n", len(a.activities)+1)

		choice, err := p.ReadLine("\nChoose an option: ")
		if errors.Is(err, console.ErrInputClosed) {
			return a.saveLog()
		}
		if err != nil {
			return err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(choice))
		switch {
		case convErr == nil && n == len(a.activities)+1:
			p.Println("Goodbye!")
			return a.saveLog()
		case convErr != nil || n < 1 || n > len(a.activities):
			p.Warn("Invalid choice.")
			a.session.Clock.Sleep(time.Second)
			continue
		}

		act := a.activities[n-1]
		if _, err := a.session.Perform(act); err != nil {
			if errors.Is(err, console.ErrInputClosed) {
				return a.saveLog()
			}
			return err
		}
		a.log.Increment(act.Name())
	}
}

func (a *App) saveLog() error {
	if a.logPath == "" {
		return nil
	}
	if err := a.log.Save(a.logPath); err != nil {
		logging.Get(logging.CategoryMindfulness).Error("Saving activity log failed: %v", err)
		return err
	}
	return nil
}
