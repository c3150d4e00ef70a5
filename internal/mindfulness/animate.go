package mindfulness

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Animator draws the console animations in place using backspaces and
// carriage returns.
type Animator struct {
	out      io.Writer
	clock    Clock
	frames   []string
	interval time.Duration
}

// NewAnimator returns an animator using the Line spinner. A zero interval
// uses the spinner's own frame rate.
func NewAnimator(out io.Writer, clock Clock, interval time.Duration) *Animator {
	if interval <= 0 {
		interval = spinner.Line.FPS
	}
	return &Animator{out: out, clock: clock, frames: spinner.Line.Frames, interval: interval}
}

// Spinner spins for the given seconds.
func (a *Animator) Spinner(seconds int) {
	end := a.clock.Now().Add(time.Duration(seconds) * time.Second)
	for i := 0; a.clock.Now().Before(end); i++ {
		frame := a.frames[i%len(a.frames)]
		fmt.Fprint(a.out, frame)
		a.clock.Sleep(a.interval)
		fmt.Fprint(a.out, strings.Repeat("\b", len(frame)))
	}
}

// Countdown prints seconds..1, one per second.
func (a *Animator) Countdown(seconds int) {
	for i := seconds; i > 0; i-- {
		n := fmt.Sprint(i)
		fmt.Fprint(a.out, n)
		a.clock.Sleep(time.Second)
		fmt.Fprint(a.out, strings.Repeat("\b \b", len(n)))
	}
}

// Breath grows a row of O's by one per second, then erases it.
func (a *Animator) Breath(seconds int) {
	for i := 1; i <= seconds; i++ {
		fmt.Fprint(a.out, strings.Repeat("O", i))
		a.clock.Sleep(time.Second)
		fmt.Fprint(a.out, "\r"+strings.Repeat(" ", i)+"\r")
	}
}
