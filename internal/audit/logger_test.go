package audit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovation-core/internal/common/logger"
)

func fixedClock() func() time.Time {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestLog_GeneratesRequestIDWhenAbsent(t *testing.T) {
	store := NewMemoryStore()
	log := New(store, "1.0.0", logger.NewNop(), WithClock(fixedClock()))

	entry := log.Log(EventAnalysisRequested, "hash-a")

	_, err := uuid.Parse(entry.RequestID)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", entry.Version)
	assert.Equal(t, "hash-a", entry.InputHash)
}

func TestLog_ReusesCallerRequestID(t *testing.T) {
	store := NewMemoryStore()
	log := New(store, "1.0.0", logger.NewNop(), WithClock(fixedClock()))

	requested := log.Log(EventAnalysisRequested, "hash-a")
	completed := log.Log(EventAnalysisCompleted, "hash-a",
		WithRequestID(requested.RequestID),
		WithOutputHash("hash-b"),
	)

	assert.Equal(t, requested.RequestID, completed.RequestID)
	assert.Equal(t, "hash-b", completed.OutputHash)

	entries := store.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, EventAnalysisRequested, entries[0].Event)
	assert.Equal(t, EventAnalysisCompleted, entries[1].Event)
}

func TestLog_EntriesCarryHashesNotContent(t *testing.T) {
	store := NewMemoryStore()
	log := New(store, "1.0.0", logger.NewNop(), WithClock(fixedClock()))

	log.Log(EventAnalysisFailed, "hash-a", WithErrorMessage("no rule matched"))

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "hash-a", entries[0].InputHash)
	assert.Equal(t, "no rule matched", entries[0].ErrorMessage)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestMemoryStore_EntriesReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Append(Entry{RequestID: "r1", Event: EventAnalysisRequested}))

	first := store.Entries()
	first[0].RequestID = "mutated"

	again := store.Entries()
	assert.Equal(t, "r1", again[0].RequestID)
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Append(Entry{RequestID: fmt.Sprintf("r%d", n)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Entries(), 50)
}

type failingStore struct{ MemoryStore }

func (f *failingStore) Append(Entry) error { return fmt.Errorf("disk full") }

func TestLog_MirrorFailureDoesNotPropagate(t *testing.T) {
	canonical := NewMemoryStore()
	log := New(canonical, "1.0.0", logger.NewNop(),
		WithClock(fixedClock()),
		WithMirror(&failingStore{}),
	)

	entry := log.Log(EventEstimateRequested, "hash-a")

	assert.NotEmpty(t, entry.RequestID)
	assert.Len(t, canonical.Entries(), 1)
}
