package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadfair/internal/domain"
	"leadfair/internal/ports"
)

func TestSnapshotStoreRoundTrip(t *testing.T) {
	s := NewSnapshotStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "k1")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	snap := domain.Snapshot{Key: "k1", Payload: json.RawMessage(`{"phase":"capture"}`)}
	require.NoError(t, s.Save(ctx, snap))

	got, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"capture"}`, string(got.Payload))
	assert.False(t, got.UpdatedAt.IsZero())

	// Saving again overwrites.
	require.NoError(t, s.Save(ctx, domain.Snapshot{Key: "k1", Payload: json.RawMessage(`{"phase":"results"}`)}))
	got, err = s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"results"}`, string(got.Payload))

	require.NoError(t, s.Delete(ctx, "k1"))
	_, err = s.Get(ctx, "k1")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, s.Delete(ctx, "never"))
}
