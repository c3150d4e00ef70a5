package grades

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/console"
)

func TestRun(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"88\n", []string{"Your letter grade is: B+", "Congratulations"}},
		{"abc\n52\n", []string{"is not a whole number", "Your letter grade is: F\n", "Keep working hard"}},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		require.NoError(t, Run(console.New(strings.NewReader(tt.input), &out)))
		for _, w := range tt.want {
			assert.Contains(t, out.String(), w)
		}
	}
}
