package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(New(KindNotFound, "departure %d not found", 5)))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	cause := errors.New("pq: deadlock detected")
	err := Wrap(cause, KindStaleState, "retry the booking")

	assert.True(t, IsKind(err, KindStaleState))
	assert.True(t, errors.Is(err, cause))

	// Kind stays visible through further fmt wrapping.
	outer := fmt.Errorf("selling seat: %w", err)
	assert.True(t, IsKind(outer, KindStaleState))
}

func TestErrorMessage(t *testing.T) {
	err := New(KindConflict, "seat %d is already booked", 12)
	assert.Equal(t, "conflict: seat 12 is already booked", err.Error())

	wrapped := Wrap(errors.New("boom"), KindInternal, "writing row")
	assert.Contains(t, wrapped.Error(), "boom")
}
