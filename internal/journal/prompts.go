package journal

import "coursework/internal/rng"

// DefaultPrompts is used when the config does not list any prompts.
var DefaultPrompts = []string{
	"Who was the most interesting person I interacted with today?",
	"What was the best part of my day?",
	"How did I see the hand of the Lord in my life today?",
	"What was the strongest emotion I felt today?",
	"If I had one thing I could do over today, what would it be?",
	"What is something I accomplished today that I'm proud of?",
	"What is one thing I learned about myself today?",
}

// PickPrompt returns a random prompt, falling back to DefaultPrompts when
// prompts is empty.
func PickPrompt(src rng.Source, prompts []string) string {
	if len(prompts) == 0 {
		prompts = DefaultPrompts
	}
	p, _ := rng.Pick(src, prompts)
	return p
}
