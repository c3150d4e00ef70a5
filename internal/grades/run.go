package grades

import (
	"coursework/internal/console"
	"coursework/internal/logging"
)

// Run asks for a percentage and prints the grade with a pass or fail line.
func Run(p *console.Prompter) error {
	percent, err := p.ReadInt("What is your grade percentage? ")
	if err != nil {
		return err
	}
	g := Letter(percent)
	logging.Drills("grade %d -> %s", percent, g)

	p.Printf("Your letter grade is: %s\n", g)
	if Passed(percent) {
		p.Success("Congratulations, you passed the course!")
	} else {
		p.Println("Keep working hard, you'll get it next time!")
	}
	return nil
}
