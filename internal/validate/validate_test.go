package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `yaml:"name" validate:"notblank,nodelim"`
	Count int    `validate:"min=0"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "Read", Count: 1}))
}

func TestStructMessages(t *testing.T) {
	err := Struct(sample{Name: "a,b", Count: -1})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"sample.name", "sample.Count"}, verr.Fields)
	assert.Contains(t, err.Error(), "name cannot contain ',' or ':'")
	assert.Contains(t, err.Error(), "Count must be 0 or greater")
}

func TestNotBlank(t *testing.T) {
	err := Struct(sample{Name: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be blank")
}
