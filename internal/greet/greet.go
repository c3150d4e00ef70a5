// Package greet is the functions drill: welcome, name, favorite number squared.
package greet

import (
	"fmt"
	"strings"

	"coursework/internal/console"
)

// Welcome is the opening line.
const Welcome = "Welcome to the Program!"

// Square returns n squared.
func Square(n int) int {
	return n * n
}

// Result formats the closing line.
func Result(name string, square int) string {
	return fmt.Sprintf("%s, the square of your number is %d", name, square)
}

// Run performs the drill.
func Run(p *console.Prompter) error {
	p.Println(Welcome)

	name, err := p.ReadLine("Please enter your name: ")
	if err != nil {
		return err
	}
	n, err := p.ReadInt("Please enter your favorite number: ")
	if err != nil {
		return err
	}
	p.Println(Result(strings.TrimSpace(name), Square(n)))
	return nil
}
