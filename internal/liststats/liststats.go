// Package liststats collects integers until a 0 sentinel and summarizes them.
package liststats

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"coursework/internal/console"
)

// Sentinel ends input; it is never part of the list.
const Sentinel = 0

// Stats summarizes a list of integers.
type Stats struct {
	Count int
	Sum   int
	// Mean and Max are meaningless when Count is 0.
	Mean float64
	Max  int
	// SmallestPositive is valid only when HasPositive is true.
	SmallestPositive int
	HasPositive      bool
	Sorted           []int
}

// Summarize computes Stats over nums. nums is not modified.
func Summarize(nums []int) Stats {
	s := Stats{Count: len(nums), Sorted: slices.Clone(nums)}
	slices.Sort(s.Sorted)
	if len(nums) == 0 {
		return s
	}

	s.Max = nums[0]
	for _, n := range nums {
		s.Sum += n
		if n > s.Max {
			s.Max = n
		}
		if n > 0 && (!s.HasPositive || n < s.SmallestPositive) {
			s.SmallestPositive = n
			s.HasPositive = true
		}
	}
	s.Mean = float64(s.Sum) / float64(len(nums))
	return s
}

// Collect reads integers until the sentinel. Non-numeric lines are reported
// and skipped; end of input also ends the list.
func Collect(p *console.Prompter) ([]int, error) {
	p.Println("Enter a list of numbers, type 0 when finished.")
	var nums []int
	for {
		n, err := p.ReadInt("Enter number: ")
		if errors.Is(err, console.ErrInputClosed) {
			return nums, nil
		}
		if err != nil {
			return nil, err
		}
		if n == Sentinel {
			return nums, nil
		}
		nums = append(nums, n)
	}
}

// Report renders s the way the drill prints it.
func Report(s Stats) string {
	var b strings.Builder
	if s.Count == 0 {
		b.WriteString("The list is empty.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "The sum is: %d\n", s.Sum)
	fmt.Fprintf(&b, "The average is: %g\n", s.Mean)
	fmt.Fprintf(&b, "The largest number is: %d\n", s.Max)
	if s.HasPositive {
		fmt.Fprintf(&b, "The smallest positive number is: %d\n", s.SmallestPositive)
	} else {
		b.WriteString("The smallest positive number is: none\n")
	}
	b.WriteString("The sorted list is:\n")
	for _, n := range s.Sorted {
		fmt.Fprintf(&b, "%d\n", n)
	}
	return b.String()
}

// Run collects, summarizes and prints.
func Run(p *console.Prompter) error {
	nums, err := Collect(p)
	if err != nil {
		return err
	}
	p.Printf("%s", Report(Summarize(nums)))
	return nil
}
