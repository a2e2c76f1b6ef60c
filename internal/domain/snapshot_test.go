package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gift-exchange-service/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestSanitizeDropsMalformedRecords(t *testing.T) {
	snapshot := domain.Snapshot{
		Participants: []domain.Participant{
			{ID: "1", Name: "Alice"},
			{ID: "", Name: "NoID"},
			{ID: "3", Name: ""},
			{ID: "4", Name: "Dora", GiftPreference: strPtr("books")},
		},
	}

	out := snapshot.Sanitize()
	require.Len(t, out.Participants, 2)
	require.Equal(t, "Alice", out.Participants[0].Name)
	require.Equal(t, "Dora", out.Participants[1].Name)
	require.False(t, out.Shuffled)
}

func TestSanitizeReconcilesShuffledFlag(t *testing.T) {
	// A lost flag with surviving assignment data still loads as shuffled.
	snapshot := domain.Snapshot{
		Participants: []domain.Participant{
			{ID: "1", Name: "Alice", AssignedTo: strPtr("2")},
			{ID: "2", Name: "Bob"},
		},
		Shuffled: false,
	}
	require.True(t, snapshot.Sanitize().Shuffled)

	// The stored flag alone is enough.
	snapshot = domain.Snapshot{
		Participants: []domain.Participant{{ID: "1", Name: "Alice"}},
		Shuffled:     true,
	}
	require.True(t, snapshot.Sanitize().Shuffled)
}

func TestSnapshotPhase(t *testing.T) {
	require.Equal(t, domain.PhaseOpen, domain.Snapshot{}.Phase())
	require.Equal(t, domain.PhaseClosed, domain.Snapshot{Shuffled: true}.Phase())
}

func TestPhasePredicates(t *testing.T) {
	require.True(t, domain.PhaseOpen.IsOpen())
	require.False(t, domain.PhaseOpen.IsClosed())
	require.True(t, domain.PhaseClosed.IsClosed())
	require.False(t, domain.PhaseClosed.IsOpen())
}
