package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark_String(t *testing.T) {
	assert.Equal(t, " ", MarkEmpty.String())
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, "O", MarkO.String())
	assert.Equal(t, "?", Mark(42).String())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "in progress", OutcomeInProgress.String())
	assert.Equal(t, "X wins", OutcomeXWins.String())
	assert.Equal(t, "O wins", OutcomeOWins.String())
	assert.Equal(t, "tie", OutcomeTie.String())
	assert.Equal(t, "unknown", Outcome(-1).String())
}
