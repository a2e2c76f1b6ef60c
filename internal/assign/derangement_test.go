package assign_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/spec-kit/gift-exchange-service/internal/assign"
)

func identities(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("participant-%d", i)
	}
	return ids
}

func TestDerangementIsSelfFreeBijection(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 60).Draw(rt, "n")
		ids := identities(n)

		mapping, err := assign.Derangement(ids)
		require.NoError(t, err)
		require.Len(t, mapping, n, "every giver appears exactly once")

		seen := make(map[string]bool, n)
		for giver, receiver := range mapping {
			require.NotEqual(t, giver, receiver, "no self-assignment")
			require.False(t, seen[receiver], "every receiver appears exactly once")
			seen[receiver] = true
		}
		for _, id := range ids {
			require.True(t, seen[id], "receivers cover the input set")
		}
	})
}

func TestDerangementOfTwoIsSwap(t *testing.T) {
	mapping, err := assign.Derangement([]string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "b", "b": "a"}, mapping)
}

func TestDerangementRejectsTooFewIdentities(t *testing.T) {
	for _, ids := range [][]string{nil, {}, {"only"}} {
		_, err := assign.Derangement(ids)
		require.ErrorIs(t, err, assign.ErrTooFewIdentities)
	}
}

func TestDerangementDoesNotMutateInput(t *testing.T) {
	ids := identities(5)
	original := append([]string(nil), ids...)

	_, err := assign.Derangement(ids)
	require.NoError(t, err)
	require.Equal(t, original, ids)
}
