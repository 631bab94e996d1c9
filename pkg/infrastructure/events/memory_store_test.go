package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_AppendAssignsVersions(t *testing.T) {
	store := NewInMemoryStore()

	require.NoError(t, store.Append("M1", ReorderPlacedEvent, nil))
	require.NoError(t, store.Append("M1", ReorderPlacedEvent, nil))
	require.NoError(t, store.Append("M2", ReorderPlacedEvent, nil))

	stream, err := store.ReadStream("M1", 1)
	require.NoError(t, err)
	require.Len(t, stream, 2)
	assert.Equal(t, 1, stream[0].Version)
	assert.Equal(t, 2, stream[1].Version)

	other, err := store.ReadStream("M2", 1)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 1, other[0].Version)
}

func TestInMemoryStore_ReadStreamFromVersion(t *testing.T) {
	store := NewInMemoryStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(PlanningStream, RunStartedEvent, i))
	}

	events, err := store.ReadStream(PlanningStream, 4)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 3, events[0].Data)

	empty, err := store.ReadStream(PlanningStream, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	missing, err := store.ReadStream("no-such-stream", 1)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestInMemoryStore_ReadAll(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Append("a", RunStartedEvent, nil))
	require.NoError(t, store.Append("b", RunCompletedEvent, nil))

	all, err := store.ReadAll(0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, RunStartedEvent, all[0].Type)
	assert.Equal(t, RunCompletedEvent, all[1].Type)

	tail, err := store.ReadAll(1)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, "b", tail[0].StreamID)
}

func TestInMemoryStore_SubscribeReceivesMatchingEvents(t *testing.T) {
	store := NewInMemoryStore()

	var received []Event
	store.Subscribe([]string{ReorderPlacedEvent}, func(e Event) {
		received = append(received, e)
	})

	require.NoError(t, store.Append("M1", ReorderPlacedEvent, nil))
	require.NoError(t, store.Append(PlanningStream, RunStartedEvent, nil))

	require.Len(t, received, 1)
	assert.Equal(t, "M1", received[0].StreamID)
}
