package mindfulness

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"coursework/internal/console"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type zero struct{}

func (zero) IntN(int) int { return 0 }

var start = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func newSession(input string) (*Session, *VirtualClock, *bytes.Buffer) {
	var out bytes.Buffer
	clock := NewVirtualClock(start)
	s := NewSession(console.New(strings.NewReader(input), &out), clock, DefaultSettings())
	return s, clock, &out
}

func TestAnimatorSpinner(t *testing.T) {
	var out bytes.Buffer
	clock := NewVirtualClock(start)
	NewAnimator(&out, clock, 250*time.Millisecond).Spinner(1)

	assert.Equal(t, "|\b/\b-\b\\\b", out.String())
	assert.Equal(t, start.Add(time.Second), clock.Now())
}

func TestAnimatorCountdownAndBreath(t *testing.T) {
	var out bytes.Buffer
	clock := NewVirtualClock(start)
	a := NewAnimator(&out, clock, 0)

	a.Countdown(3)
	assert.Equal(t, "3\b \b2\b \b1\b \b", out.String())

	out.Reset()
	a.Breath(2)
	assert.Equal(t, "O\r \rOO\r  \r", out.String())
	assert.Equal(t, start.Add(5*time.Second), clock.Now())
}

func TestBreathingRunsWholeCycles(t *testing.T) {
	s, clock, out := newSession("12\n")

	seconds, err := s.Perform(Breathing{})
	require.NoError(t, err)
	assert.Equal(t, 12, seconds)

	text := out.String()
	assert.Contains(t, text, "Welcome to the Breathing Activity.")
	assert.Contains(t, text, "Prepare to begin...")
	// 12 seconds of 4+6 breathing needs two cycles.
	assert.Equal(t, 2, strings.Count(text, "Breathe in... "))
	assert.Equal(t, 2, strings.Count(text, "Breathe out... "))
	assert.Contains(t, text, "Well done! You have completed the activity.")
	assert.Contains(t, text, "You completed Breathing for 12 seconds.")
	// prepare 3 + 20 breathing + 1 + 3
	assert.Equal(t, start.Add(27*time.Second), clock.Now())
}

func TestInvalidDurationUsesDefault(t *testing.T) {
	s, _, out := newSession("soon\n")
	s.Settings.DefaultDuration = 10

	seconds, err := s.Perform(Breathing{})
	require.NoError(t, err)
	assert.Equal(t, 10, seconds)
	assert.Contains(t, out.String(), "You completed Breathing for 10 seconds.")
}

func TestReflectionQuestionsDoNotRepeat(t *testing.T) {
	s, _, out := newSession("45\n")

	_, err := s.Perform(NewReflection(zero{}))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Prompt: "+ReflectionPrompts[0])
	// 45 seconds at 5 seconds per question asks all nine exactly once.
	for _, q := range ReflectionQuestions {
		assert.Equal(t, 1, strings.Count(text, q), q)
	}
}

func TestListingCountsNonBlankItems(t *testing.T) {
	s, _, out := newSession("60\nMom\n\n  \nDad\nFriends\n")
	l := NewListing(zero{})

	_, err := s.Perform(l)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Listed)
	assert.Contains(t, out.String(), "You will begin in:")
	assert.Contains(t, out.String(), "You listed 3 items!")
}

func TestLogRoundTrip(t *testing.T) {
	l, err := ReadLog(strings.NewReader("Breathing:2\nbroken\nListing:x\nReflection:1\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Count("Breathing"))
	assert.Equal(t, 0, l.Count("Listing"))
	assert.Equal(t, []string{"Breathing", "Reflection"}, l.Names())

	l.Increment("Listing")
	l.Increment("Breathing")

	path := filepath.Join(t.TempDir(), "activity_log.txt")
	require.NoError(t, l.Save(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Breathing:3\nReflection:1\nListing:1\n", string(data))

	loaded, err := LoadLog(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Count("Breathing"))
}

func TestLoadLogMissing(t *testing.T) {
	l, err := LoadLog(filepath.Join(t.TempDir(), "none.txt"))
	require.NoError(t, err)
	assert.Empty(t, l.Names())
}

func TestAppMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity_log.txt")
	s, _, out := newSession("7\n1\n10\n1\n10\n4\n")

	app := NewApp(s, zero{}, NewLog(), path)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Invalid choice.")
	assert.Contains(t, out.String(), "Goodbye!")
	assert.Equal(t, 2, app.Log().Count("Breathing"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Breathing:2\n", string(data))
}

func TestAppSavesOnEndOfInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity_log.txt")
	s, _, _ := newSession("3\n30\nOne\n")

	app := NewApp(s, zero{}, NewLog(), path)
	require.NoError(t, app.Run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Listing:1\n", string(data))
}
