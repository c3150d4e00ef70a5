package goals

import (
	"errors"
	"fmt"

	"coursework/internal/logging"
	"coursework/internal/rng"
)

// ErrInvalidGoalIndex is returned for a goal number outside the list.
var ErrInvalidGoalIndex = errors.New("invalid goal number")

// DefaultLevelThreshold is the points per level when none is configured.
const DefaultLevelThreshold = 1000

// Motivations are shown after every recording.
var Motivations = []string{"Keep going!", "You're unstoppable!", "Nice work!", "Epic progress!"}

// Result reports the effect of recording one goal.
type Result struct {
	Award      Award
	Score      int
	Level      int
	LevelsUp   int // levels gained by this recording
	Motivation string
}

// Manager owns the goals, the score and the level.
type Manager struct {
	goals     []Goal
	score     int
	level     int
	threshold int
	src       rng.Source
}

// NewManager returns an empty manager at level 1.
func NewManager(threshold int, src rng.Source) *Manager {
	if threshold < 1 {
		threshold = DefaultLevelThreshold
	}
	return &Manager{level: 1, threshold: threshold, src: src}
}

func (m *Manager) Goals() []Goal { return m.goals }
func (m *Manager) Score() int    { return m.score }
func (m *Manager) Level() int    { return m.level }

// Add appends a goal.
func (m *Manager) Add(g Goal) {
	m.goals = append(m.goals, g)
	logging.Goals("Created %s %q", g.Kind(), g.Name())
}

// Record records goal i (0-based), adds the award to the score and levels
// up while the score reaches level × threshold.
func (m *Manager) Record(i int) (Result, error) {
	if i < 0 || i >= len(m.goals) {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidGoalIndex, i+1)
	}
	g := m.goals[i]
	award, err := g.RecordEvent()
	if err != nil {
		return Result{}, fmt.Errorf("record %q: %w", g.Name(), err)
	}

	m.score += award.Total()
	res := Result{Award: award}
	for m.score >= m.level*m.threshold {
		m.level++
		res.LevelsUp++
	}
	res.Score, res.Level = m.score, m.level
	res.Motivation, _ = rng.Pick(m.src, Motivations)

	logging.Goals("Recorded %q: +%d, score=%d level=%d", g.Name(), award.Total(), m.score, m.level)
	return res, nil
}

// Replace swaps in loaded state.
func (m *Manager) Replace(score, level int, goals []Goal) {
	m.score, m.level, m.goals = score, level, goals
}
