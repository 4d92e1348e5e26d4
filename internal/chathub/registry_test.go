package chathub_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairchat/backend/internal/chathub"
	"pairchat/backend/internal/models"
)

// TestRegistryGetOrCreate verifies lazy creation and idempotency.
func TestRegistryGetOrCreate(t *testing.T) {
	reg := chathub.NewRegistry()

	room := reg.GetOrCreate("ABC123")
	require.NotNil(t, room)
	assert.Equal(t, "ABC123", room.Code)
	assert.Empty(t, room.Participants)
	assert.Empty(t, room.History)
	assert.False(t, room.CreatedAt.IsZero(), "CreatedAt should be stamped on creation")

	// Second call returns the same room, not a fresh one
	again := reg.GetOrCreate("ABC123")
	assert.Same(t, room, again)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryGetAndDelete(t *testing.T) {
	reg := chathub.NewRegistry()

	_, ok := reg.Get("NOPE42")
	assert.False(t, ok, "unknown code should be absent")

	reg.GetOrCreate("ROOM01")
	room, ok := reg.Get("ROOM01")
	assert.True(t, ok)
	assert.Equal(t, "ROOM01", room.Code)

	reg.Delete("ROOM01")
	_, ok = reg.Get("ROOM01")
	assert.False(t, ok, "deleted room should be absent")

	// Deleting an absent code is a no-op
	reg.Delete("ROOM01")
	assert.Equal(t, 0, reg.Len())
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ABC123", chathub.NormalizeCode("abc123"))
	assert.Equal(t, "ABC123", chathub.NormalizeCode("Abc123"))
	assert.Equal(t, "ABC123", chathub.NormalizeCode("  ABC123  "))
}

// TestRoomHistoryBound verifies FIFO eviction at the 100-message cap.
func TestRoomHistoryBound(t *testing.T) {
	reg := chathub.NewRegistry()
	room := reg.GetOrCreate("HIST01")

	for i := 1; i <= 150; i++ {
		room.AppendHistory(models.Message{Type: "text", Text: fmt.Sprintf("msg-%d", i)})
	}

	require.Len(t, room.History, 100)
	assert.Equal(t, "msg-51", room.History[0].Text, "oldest surviving message should be the 51st")
	assert.Equal(t, "msg-150", room.History[99].Text, "newest message should be the 150th")

	// Order is preserved end to end
	for i, msg := range room.History {
		assert.Equal(t, fmt.Sprintf("msg-%d", i+51), msg.Text)
	}
}

func TestRegistryList(t *testing.T) {
	reg := chathub.NewRegistry()
	room := reg.GetOrCreate("LIST01")
	room.Participants["conn-1"] = chathub.Participant{Username: "alice", JoinedAt: time.Now()}
	room.AppendHistory(models.Message{Type: "text", Text: "hi"})
	reg.GetOrCreate("LIST02")

	summaries := reg.List()
	require.Len(t, summaries, 2)

	byCode := map[string]models.RoomSummary{}
	for _, s := range summaries {
		byCode[s.Code] = s
	}
	assert.Equal(t, 1, byCode["LIST01"].Users)
	assert.Equal(t, 1, byCode["LIST01"].Messages)
	assert.Equal(t, 0, byCode["LIST02"].Users)
}

// TestRegistrySweep verifies the staleness rules of the reaper's primitive.
func TestRegistrySweep(t *testing.T) {
	reg := chathub.NewRegistry()
	now := time.Now()

	stale := reg.GetOrCreate("STALE1")
	stale.CreatedAt = now.Add(-2 * time.Hour)

	young := reg.GetOrCreate("YOUNG1")
	young.CreatedAt = now.Add(-30 * time.Minute)

	occupied := reg.GetOrCreate("BUSY01")
	occupied.CreatedAt = now.Add(-3 * time.Hour)
	occupied.Participants["conn-1"] = chathub.Participant{Username: "bob", JoinedAt: now}

	removed := reg.Sweep(now, time.Hour)

	assert.Equal(t, 1, removed)
	_, ok := reg.Get("STALE1")
	assert.False(t, ok, "empty room older than the threshold should be reaped")
	_, ok = reg.Get("YOUNG1")
	assert.True(t, ok, "empty room younger than the threshold should survive")
	_, ok = reg.Get("BUSY01")
	assert.True(t, ok, "occupied room should never be reaped")
}
