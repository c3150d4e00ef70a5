package liststats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"coursework/internal/console"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want Stats
	}{
		{
			name: "mixed signs",
			in:   []int{5, -3},
			want: Stats{Count: 2, Sum: 2, Mean: 1, Max: 5, SmallestPositive: 5, HasPositive: true, Sorted: []int{-3, 5}},
		},
		{
			name: "no positives",
			in:   []int{-1, -7},
			want: Stats{Count: 2, Sum: -8, Mean: -4, Max: -1, Sorted: []int{-7, -1}},
		},
		{
			name: "smallest positive not first",
			in:   []int{9, 4, 12, 2},
			want: Stats{Count: 4, Sum: 27, Mean: 6.75, Max: 12, SmallestPositive: 2, HasPositive: true, Sorted: []int{2, 4, 9, 12}},
		},
		{
			name: "empty",
			in:   nil,
			want: Stats{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSummarizeDoesNotReorderInput(t *testing.T) {
	in := []int{3, 1, 2}
	Summarize(in)
	if diff := cmp.Diff([]int{3, 1, 2}, in); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestRunStopsAtSentinel(t *testing.T) {
	var out bytes.Buffer
	p := console.New(strings.NewReader("5\n-3\nx\n0\n99\n"), &out)

	if err := Run(p); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"The sum is: 2\n",
		"The average is: 1\n",
		"The largest number is: 5\n",
		"The smallest positive number is: 5\n",
		"The sorted list is:\n-3\n5\n",
		`"x" is not a whole number`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "99") {
		t.Error("values after the sentinel must be ignored")
	}
}

func TestRunEmpty(t *testing.T) {
	var out bytes.Buffer
	p := console.New(strings.NewReader("0\n"), &out)
	if err := Run(p); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "The list is empty.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}
