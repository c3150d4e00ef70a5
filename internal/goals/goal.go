// Package goals implements the goal tracker: simple, eternal and checklist
// goals, the score and level manager, and the line-oriented save file.
package goals

import (
	"errors"
	"fmt"
	"strconv"

	"coursework/internal/validate"
)

// ErrAlreadyComplete is returned when recording a finished goal.
var ErrAlreadyComplete = errors.New("goal is already complete")

// Kind tags a goal variant. The values are the save file prefixes.
type Kind string

const (
	KindSimple    Kind = "SimpleGoal"
	KindEternal   Kind = "EternalGoal"
	KindChecklist Kind = "ChecklistGoal"
)

// Award is what one recording earns.
type Award struct {
	Points int
	Bonus  int
	// Message describes the recording, one line per event.
	Message string
}

// Total returns points plus bonus.
func (a Award) Total() int { return a.Points + a.Bonus }

// Goal is the behavior shared by every goal variant.
type Goal interface {
	Kind() Kind
	Name() string
	Description() string
	Points() int
	// RecordEvent registers one accomplishment. Finished goals return
	// ErrAlreadyComplete and award nothing.
	RecordEvent() (Award, error)
	IsComplete() bool
	Details() string
	// Encode renders the goal as one save file line.
	Encode() string
}

// Spec describes a goal to create.
type Spec struct {
	Kind        Kind   `validate:"oneof=SimpleGoal EternalGoal ChecklistGoal"`
	Name        string `validate:"notblank,nodelim"`
	Description string `validate:"nodelim"`
	Points      int    `validate:"min=0"`
	Target      int    `validate:"min=0"`
	Bonus       int    `validate:"min=0"`
}

// New validates spec and builds the goal it describes.
func New(spec Spec) (Goal, error) {
	if err := validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("invalid goal: %w", err)
	}
	base := base{name: spec.Name, description: spec.Description, points: spec.Points}
	switch spec.Kind {
	case KindSimple:
		return &Simple{base: base}, nil
	case KindEternal:
		return &Eternal{base: base}, nil
	default:
		if spec.Target < 1 {
			return nil, fmt.Errorf("invalid goal: Target must be 1 or greater")
		}
		return &Checklist{base: base, target: spec.Target, bonus: spec.Bonus}, nil
	}
}

type base struct {
	name        string
	description string
	points      int
}

func (b base) Name() string        { return b.name }
func (b base) Description() string { return b.description }
func (b base) Points() int         { return b.points }
func (b base) Details() string     { return fmt.Sprintf("%s (%s)", b.name, b.description) }

func (b base) fields() string {
	return b.name + "," + b.description + "," + strconv.Itoa(b.points)
}

// Simple is completed by a single recording.
type Simple struct {
	base
	complete bool
}

func (g *Simple) Kind() Kind       { return KindSimple }
func (g *Simple) IsComplete() bool { return g.complete }

func (g *Simple) RecordEvent() (Award, error) {
	if g.complete {
		return Award{}, ErrAlreadyComplete
	}
	g.complete = true
	return Award{
		Points:  g.points,
		Message: fmt.Sprintf("You completed '%s' and earned %d points!", g.name, g.points),
	}, nil
}

func (g *Simple) Encode() string {
	return string(KindSimple) + ":" + g.fields() + "," + strconv.FormatBool(g.complete)
}

// Eternal is never complete and can always be recorded.
type Eternal struct {
	base
}

func (g *Eternal) Kind() Kind       { return KindEternal }
func (g *Eternal) IsComplete() bool { return false }

func (g *Eternal) RecordEvent() (Award, error) {
	return Award{
		Points:  g.points,
		Message: fmt.Sprintf("You recorded progress on '%s' and earned %d points!", g.name, g.points),
	}, nil
}

func (g *Eternal) Encode() string {
	return string(KindEternal) + ":" + g.fields()
}

// Checklist must be recorded target times; the recording that reaches the
// target also earns the bonus.
type Checklist struct {
	base
	target int
	bonus  int
	amount int
}

func (g *Checklist) Kind() Kind       { return KindChecklist }
func (g *Checklist) IsComplete() bool { return g.amount >= g.target }

// Target returns the number of recordings required.
func (g *Checklist) Target() int { return g.target }

// Bonus returns the completion bonus.
func (g *Checklist) Bonus() int { return g.bonus }

// AmountCompleted returns the recordings so far.
func (g *Checklist) AmountCompleted() int { return g.amount }

func (g *Checklist) RecordEvent() (Award, error) {
	if g.IsComplete() {
		return Award{}, ErrAlreadyComplete
	}
	g.amount++
	a := Award{
		Points: g.points,
		Message: fmt.Sprintf("Progress recorded for '%s' (%d/%d)!\n+%d points earned!",
			g.name, g.amount, g.target, g.points),
	}
	if g.IsComplete() {
		a.Bonus = g.bonus
		a.Message += fmt.Sprintf("\nGoal complete! Bonus +%d points awarded!", g.bonus)
	}
	return a, nil
}

func (g *Checklist) Details() string {
	return fmt.Sprintf("%s -- Completed: %d/%d", g.base.Details(), g.amount, g.target)
}

func (g *Checklist) Encode() string {
	return fmt.Sprintf("%s:%s,%d,%d,%d", KindChecklist, g.fields(), g.target, g.bonus, g.amount)
}
