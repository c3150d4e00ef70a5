package scripture

import (
	"errors"
	"strings"

	"coursework/internal/console"
	"coursework/internal/logging"
	"coursework/internal/rng"
)

// Drill commands typed at the prompt. Anything else (including a bare
// Enter) hides more words.
const (
	CommandQuit   = "quit"
	CommandReveal = "reveal"
)

// Drill runs the hide/reveal loop over one scripture.
type Drill struct {
	scripture    *Scripture
	src          rng.Source
	wordsPerStep int
}

// NewDrill returns a drill hiding wordsPerStep words per Enter.
func NewDrill(s *Scripture, src rng.Source, wordsPerStep int) *Drill {
	if wordsPerStep < 1 {
		wordsPerStep = 1
	}
	return &Drill{scripture: s, src: src, wordsPerStep: wordsPerStep}
}

// Step applies one command and returns the resulting state. quit reports
// true in the second result.
func (d *Drill) Step(input string) (State, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case CommandQuit:
		return d.scripture.State(), true
	case CommandReveal:
		d.scripture.RevealOneWord(d.src)
	default:
		d.scripture.HideRandomWords(d.src, d.wordsPerStep)
	}
	logging.ScriptureDebug("%s: %d/%d hidden", d.scripture.Reference(), d.scripture.HiddenCount(), len(d.scripture.Words()))
	return d.scripture.State(), false
}

// Run drives the drill until quit, end of input or every word is hidden.
func (d *Drill) Run(p *console.Prompter) error {
	for {
		p.Clear()
		p.Println(d.scripture.DisplayText())
		input, err := p.ReadLine("\nPress Enter to hide words, type 'reveal' to reveal one, or type 'quit' to exit.\n")
		if err != nil {
			if errors.Is(err, console.ErrInputClosed) {
				return nil
			}
			return err
		}

		state, quit := d.Step(input)
		if quit {
			return nil
		}
		if state == Done {
			p.Clear()
			p.Println(d.scripture.DisplayText())
			p.Println("\nAll words are hidden. Program will end.")
			return nil
		}
	}
}

// RunLibrary reports skipped lines, picks a scripture and runs the drill.
// An empty library is reported and returns ErrEmptyLibrary.
func RunLibrary(p *console.Prompter, lib *Library, diags []Diagnostic, src rng.Source, wordsPerStep int) error {
	for _, d := range diags {
		p.Warn(d.String())
	}
	s, ok := lib.Random(src)
	if !ok {
		p.Println("No scripture could be loaded. Please check the scripture library file.")
		return ErrEmptyLibrary
	}
	return NewDrill(s, src, wordsPerStep).Run(p)
}
