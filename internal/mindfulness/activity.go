// Package mindfulness implements the breathing, reflection and listing
// activities, their shared session flow and the activity count log.
package mindfulness

import (
	"errors"
	"strings"
	"time"

	"coursework/internal/console"
	"coursework/internal/logging"
	"coursework/internal/rng"
)

// Settings holds the timings of a session, in seconds.
type Settings struct {
	DefaultDuration int
	PrepareSeconds  int
	BreatheIn       int
	BreatheOut      int
	QuestionPause   int
	Countdown       int
	SpinnerInterval time.Duration
}

// DefaultSettings matches the classic program.
func DefaultSettings() Settings {
	return Settings{
		DefaultDuration: 30,
		PrepareSeconds:  3,
		BreatheIn:       4,
		BreatheOut:      6,
		QuestionPause:   5,
		Countdown:       3,
	}
}

// Activity is one mindfulness exercise.
type Activity interface {
	Name() string
	Description() string
	// Body runs the activity proper for the given number of seconds.
	Body(s *Session, seconds int) error
}

// Session carries what every activity needs to interact with the user.
type Session struct {
	P        *console.Prompter
	Clock    Clock
	Anim     *Animator
	Settings Settings
}

// NewSession wires a session onto p.
func NewSession(p *console.Prompter, clock Clock, settings Settings) *Session {
	return &Session{
		P:        p,
		Clock:    clock,
		Anim:     NewAnimator(p.Out(), clock, settings.SpinnerInterval),
		Settings: settings,
	}
}

// deadline returns the time seconds from now.
func (s *Session) deadline(seconds int) time.Time {
	return s.Clock.Now().Add(time.Duration(seconds) * time.Second)
}

// Perform runs the common start, the body and the common end. It returns
// the duration used.
func (s *Session) Perform(a Activity) (int, error) {
	s.P.Clear()
	s.P.Title("Welcome to the " + a.Name() + " Activity.")
	s.P.Println(a.Description())

	seconds, err := s.P.ReadIntOr("\nEnter duration in seconds: ", s.Settings.DefaultDuration)
	if err != nil {
		return 0, err
	}
	if seconds <= 0 {
		seconds = s.Settings.DefaultDuration
	}
	logging.Mindfulness("Starting %s for %ds", a.Name(), seconds)

	s.P.Println("\nPrepare to begin...")
	s.Anim.Spinner(s.Settings.PrepareSeconds)

	if err := a.Body(s, seconds); err != nil {
		return 0, err
	}

	s.P.Success("\nWell done! You have completed the activity.")
	s.Clock.Sleep(time.Second)
	s.P.Printf("You completed %s for %d seconds.\n", a.Name(), seconds)
	s.Anim.Spinner(s.Settings.PrepareSeconds)
	return seconds, nil
}

// Breathing alternates timed in and out breaths.
type Breathing struct{}

func (Breathing) Name() string { return "Breathing" }
func (Breathing) Description() string {
	return "This activity will help you relax by walking you through breathing in and out slowly. Clear your mind and focus on your breathing."
}

func (Breathing) Body(s *Session, seconds int) error {
	end := s.deadline(seconds)
	for s.Clock.Now().Before(end) {
		s.P.Printf("\nBreathe in... ")
		s.Anim.Breath(s.Settings.BreatheIn)
		s.P.Printf("\nBreathe out... ")
		s.Anim.Breath(s.Settings.BreatheOut)
	}
	s.P.Println()
	return nil
}

// ReflectionPrompts and ReflectionQuestions drive the reflection activity.
var (
	ReflectionPrompts = []string{
		"Think of a time when you stood up for someone else.",
		"Think of a time when you did something really difficult.",
		"Think of a time when you helped someone in need.",
		"Think of a time when you did something truly selfless.",
	}
	ReflectionQuestions = []string{
		"Why was this experience meaningful to you?",
		"Have you ever done anything like this before?",
		"How did you get started?",
		"How did you feel when it was complete?",
		"What made this time different than other times when you were not as successful?",
		"What is your favorite thing about this experience?",
		"What could you learn from this experience that applies to other situations?",
		"What did you learn about yourself through this experience?",
		"How can you keep this experience in mind in the future?",
	}
)

// Reflection shows a prompt, then questions that do not repeat until all
// have been asked.
type Reflection struct {
	src     rng.Source
	prompts *rng.Deck[string]
}

// NewReflection returns a reflection activity drawing from src.
func NewReflection(src rng.Source) *Reflection {
	return &Reflection{src: src, prompts: rng.NewDeck(src, ReflectionPrompts)}
}

func (*Reflection) Name() string { return "Reflection" }
func (*Reflection) Description() string {
	return "This activity will help you reflect on times in your life when you have shown strength and resilience. This will help you recognize the power you have and how you can use it in other aspects of your life."
}

func (r *Reflection) Body(s *Session, seconds int) error {
	prompt, _ := r.prompts.Next()
	s.P.Printf("\nPrompt: %s\n", prompt)
	s.Anim.Spinner(s.Settings.PrepareSeconds)

	questions := rng.NewDeck(r.src, ReflectionQuestions)
	end := s.deadline(seconds)
	for s.Clock.Now().Before(end) {
		q, _ := questions.Next()
		s.P.Printf("\n%s\n", q)
		s.Anim.Spinner(s.Settings.QuestionPause)
	}
	return nil
}

// ListingPrompts drive the listing activity.
var ListingPrompts = []string{
	"Who are people that you appreciate?",
	"What are personal strengths of yours?",
	"Who are people that you have helped this week?",
	"When have you felt the Holy Ghost this month?",
	"Who are some of your personal heroes?",
}

// Listing collects as many answers as the user can type in time.
type Listing struct {
	prompts *rng.Deck[string]
	// Listed is the number of items from the last run.
	Listed int
}

// NewListing returns a listing activity drawing from src.
func NewListing(src rng.Source) *Listing {
	return &Listing{prompts: rng.NewDeck(src, ListingPrompts)}
}

func (*Listing) Name() string { return "Listing" }
func (*Listing) Description() string {
	return "This activity will help you reflect on the good things in your life by having you list as many things as you can in a certain area."
}

// Body reads items until the deadline passes. The deadline is checked
// between lines, so a pending answer is always accepted. End of input stops
// the list early.
func (l *Listing) Body(s *Session, seconds int) error {
	prompt, _ := l.prompts.Next()
	s.P.Printf("\nPrompt: %s\n", prompt)
	s.P.Println("You will begin in:")
	s.Anim.Countdown(s.Settings.Countdown)

	l.Listed = 0
	end := s.deadline(seconds)
	for s.Clock.Now().Before(end) {
		item, err := s.P.ReadLine("> ")
		if errors.Is(err, console.ErrInputClosed) {
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(item) != "" {
			l.Listed++
		}
	}
	s.P.Printf("\nYou listed %d items!\n", l.Listed)
	return nil
}
