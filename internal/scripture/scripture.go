package scripture

import (
	"strings"
	"unicode/utf8"

	"coursework/internal/rng"
)

// maskRune replaces every character of a hidden word.
const maskRune = "_"

// Word is one space-delimited token of a verse.
type Word struct {
	text   string
	hidden bool
}

// NewWord returns a visible word.
func NewWord(text string) *Word {
	return &Word{text: text}
}

// Hide masks the word. Hiding a hidden word is a no-op.
func (w *Word) Hide() { w.hidden = true }

// Show unmasks the word.
func (w *Word) Show() { w.hidden = false }

// IsHidden reports whether the word is masked.
func (w *Word) IsHidden() bool { return w.hidden }

// Text returns the literal word regardless of state.
func (w *Word) Text() string { return w.text }

// DisplayText returns the word, or underscores of the same length when hidden.
func (w *Word) DisplayText() string {
	if w.hidden {
		return strings.Repeat(maskRune, utf8.RuneCountInString(w.text))
	}
	return w.text
}

// State is the drill state of a Scripture.
type State int

const (
	Playing State = iota
	Done
)

func (s State) String() string {
	if s == Done {
		return "done"
	}
	return "playing"
}

// Scripture pairs a reference with its words in original order.
type Scripture struct {
	reference Reference
	text      string
	words     []*Word
}

// New splits text on spaces into visible words.
func New(ref Reference, text string) *Scripture {
	s := &Scripture{reference: ref, text: text}
	for _, tok := range strings.Split(text, " ") {
		if tok == "" {
			continue
		}
		s.words = append(s.words, NewWord(tok))
	}
	return s
}

// Reference returns the citation.
func (s *Scripture) Reference() Reference { return s.reference }

// Text returns the original verse text.
func (s *Scripture) Text() string { return s.text }

// Words returns the words in order. Callers must not retain the slice across hides.
func (s *Scripture) Words() []*Word { return s.words }

// HideRandomWords picks n words uniformly with replacement and hides them.
// A pick may land on an already hidden word, so fewer than n words may
// change per call.
func (s *Scripture) HideRandomWords(src rng.Source, n int) {
	if len(s.words) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		s.words[src.IntN(len(s.words))].Hide()
	}
}

// RevealOneWord shows one uniformly chosen hidden word; a no-op when none are hidden.
// It works in every state, including Done.
func (s *Scripture) RevealOneWord(src rng.Source) {
	var hidden []*Word
	for _, w := range s.words {
		if w.IsHidden() {
			hidden = append(hidden, w)
		}
	}
	if w, ok := rng.Pick(src, hidden); ok {
		w.Show()
	}
}

// IsCompletelyHidden reports whether every word is hidden.
func (s *Scripture) IsCompletelyHidden() bool {
	for _, w := range s.words {
		if !w.IsHidden() {
			return false
		}
	}
	return true
}

// HiddenCount returns the number of hidden words.
func (s *Scripture) HiddenCount() int {
	n := 0
	for _, w := range s.words {
		if w.IsHidden() {
			n++
		}
	}
	return n
}

// State is Done once every word is hidden.
func (s *Scripture) State() State {
	if s.IsCompletelyHidden() {
		return Done
	}
	return Playing
}

// DisplayText renders "<reference> - <words>".
func (s *Scripture) DisplayText() string {
	parts := make([]string, len(s.words))
	for i, w := range s.words {
		parts[i] = w.DisplayText()
	}
	return s.reference.String() + " - " + strings.Join(parts, " ")
}
