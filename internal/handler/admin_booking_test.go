package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangentorv/restaurant-booking/internal/repository"
)

func TestTransitionTargets(t *testing.T) {
	cases := []struct {
		current string
		want    []string
	}{
		{repository.StatusPending, []string{repository.StatusConfirmed, repository.StatusCancelled}},
		{repository.StatusConfirmed, []string{repository.StatusPending, repository.StatusCancelled}},
		{repository.StatusCancelled, []string{repository.StatusPending, repository.StatusConfirmed}},
	}
	for _, tc := range cases {
		t.Run(tc.current, func(t *testing.T) {
			got := TransitionTargets(tc.current)
			require.Len(t, got, 2)
			assert.ElementsMatch(t, tc.want, got)
			assert.NotContains(t, got, tc.current)
		})
	}
}

func TestTransitionTargetsUnknownStatus(t *testing.T) {
	got := TransitionTargets("archived")
	assert.ElementsMatch(t, repository.AllStatuses, got)
}

func TestValidStatus(t *testing.T) {
	for _, s := range repository.AllStatuses {
		assert.True(t, repository.ValidStatus(s), s)
	}
	assert.False(t, repository.ValidStatus("Pending"))
	assert.False(t, repository.ValidStatus("done"))
	assert.False(t, repository.ValidStatus(""))
}
