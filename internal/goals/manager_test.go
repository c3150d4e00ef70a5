package goals

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pick int

func (p pick) IntN(n int) int { return int(p) % n }

func sampleManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(1000, pick(1))
	m.Add(mustGoal(t, Spec{Kind: KindSimple, Name: "Marathon", Description: "Run one", Points: 1000}))
	m.Add(mustGoal(t, Spec{Kind: KindEternal, Name: "Scriptures", Description: "Read daily", Points: 100}))
	m.Add(mustGoal(t, Spec{Kind: KindChecklist, Name: "Temple", Description: "Attend", Points: 50, Target: 3, Bonus: 500}))
	return m
}

func TestRecordScoresAndLevels(t *testing.T) {
	m := sampleManager(t)

	res, err := m.Record(0)
	require.NoError(t, err)
	assert.Equal(t, 1000, res.Score)
	assert.Equal(t, 2, res.Level)
	assert.Equal(t, 1, res.LevelsUp)
	assert.Equal(t, "You're unstoppable!", res.Motivation)

	res, err = m.Record(1)
	require.NoError(t, err)
	assert.Equal(t, 1100, res.Score)
	assert.Zero(t, res.LevelsUp)

	_, err = m.Record(0)
	assert.ErrorIs(t, err, ErrAlreadyComplete)
	assert.Equal(t, 1100, m.Score())

	_, err = m.Record(3)
	assert.ErrorIs(t, err, ErrInvalidGoalIndex)
	_, err = m.Record(-1)
	assert.ErrorIs(t, err, ErrInvalidGoalIndex)
}

func TestRecordMultipleLevels(t *testing.T) {
	m := NewManager(100, pick(0))
	m.Add(mustGoal(t, Spec{Kind: KindSimple, Name: "Big", Points: 350}))

	res, err := m.Record(0)
	require.NoError(t, err)
	// 350 passes 100, 200 and 300.
	assert.Equal(t, 4, res.Level)
	assert.Equal(t, 3, res.LevelsUp)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := sampleManager(t)
	_, err := m.Record(0)
	require.NoError(t, err)
	_, err = m.Record(2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "goals.txt")
	require.NoError(t, m.SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1050\n2\n"+
		"SimpleGoal:Marathon,Run one,1000,true\n"+
		"EternalGoal:Scriptures,Read daily,100\n"+
		"ChecklistGoal:Temple,Attend,50,3,500,1\n", string(data))

	loaded := NewManager(1000, pick(0))
	diags, err := loaded.LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, m.Score(), loaded.Score())
	assert.Equal(t, m.Level(), loaded.Level())
	require.Len(t, loaded.Goals(), 3)
	for i, g := range m.Goals() {
		assert.Equal(t, g.Encode(), loaded.Goals()[i].Encode())
		assert.Equal(t, g.IsComplete(), loaded.Goals()[i].IsComplete())
	}
	assert.Equal(t, 1, loaded.Goals()[2].(*Checklist).AmountCompleted())
}

func TestDecodeSkipsBadLines(t *testing.T) {
	in := "300\n1\n" +
		"SimpleGoal:Run,desc,100,True\n" +
		"Mystery:a,b,1\n" +
		"EternalGoal:Read,desc\n" +
		"ChecklistGoal:Gym,desc,10,x,50,0\n" +
		"\n" +
		"EternalGoal:Pray,desc,10\n"

	m := NewManager(1000, pick(0))
	diags, err := m.Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.Len(t, m.Goals(), 2)
	assert.True(t, m.Goals()[0].IsComplete())
	require.Len(t, diags, 3)
	assert.Equal(t, 4, diags[0].Line)
	assert.Equal(t, 6, diags[2].Line)
}

func TestDecodeHeaderErrors(t *testing.T) {
	for _, in := range []string{"", "abc\n1\n", "10\n", "10\nzero\n", "10\n0\n"} {
		m := sampleManager(t)
		_, err := m.Decode(strings.NewReader(in))
		assert.Error(t, err, "%q", in)
		assert.Len(t, m.Goals(), 3, "state must be untouched for %q", in)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewManager(0, pick(0)).Encode(&buf))
	assert.Equal(t, "0\n1\n", buf.String())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := NewManager(0, pick(0)).LoadFile(filepath.Join(t.TempDir(), "none.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
