package booking

import (
	"context"
	"testing"

	"festly/internal/venues"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 500}
	state := NewState(rate.VenueID, rate)
	state.Identity = validIdentity()
	state.Window = TimeWindow{StartTime: "18:00", EndTime: "23:00"}
	state.Selections[uuid.New()] = 100

	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx, state.SessionID)
	require.NoError(t, err)

	assert.Equal(t, state.SessionID, loaded.SessionID)
	assert.Equal(t, state.Stage, loaded.Stage)
	assert.Equal(t, state.Identity, loaded.Identity)
	assert.Equal(t, state.Window, loaded.Window)
	assert.Equal(t, state.Selections, loaded.Selections)
	assert.Equal(t, state.Rate, loaded.Rate)
}

func TestMemorySessionStore_LoadMissing(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Load(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 350}
	state := NewState(rate.VenueID, rate)
	require.NoError(t, store.Save(ctx, state))

	require.NoError(t, store.Delete(ctx, state.SessionID))

	_, err := store.Load(ctx, state.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, store.Delete(ctx, state.SessionID), ErrSessionNotFound)
}

func TestMemorySessionStore_SavedStateIsDetached(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	rate := venues.Rate{VenueID: uuid.New(), HourlyRate: 500}
	state := NewState(rate.VenueID, rate)
	itemID := uuid.New()
	state.Selections[itemID] = 10
	require.NoError(t, store.Save(ctx, state))

	// mutations after save must not leak into the stored snapshot
	state.Selections[itemID] = 999

	loaded, err := store.Load(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Selections[itemID])
}
