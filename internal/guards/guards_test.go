package guards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovation-core/internal/audit"
	"renovation-core/internal/common/errors"
	"renovation-core/internal/common/logger"
)

func newTestAudit() (*audit.Logger, *audit.MemoryStore) {
	store := audit.NewMemoryStore()
	return audit.New(store, "test", logger.NewNop()), store
}

func TestGuards_AlwaysReturnAnError(t *testing.T) {
	log, _ := newTestAudit()

	tests := []struct {
		name     string
		invoke   func() error
		wantCode errors.ErrorCode
	}{
		{
			name:     "fallback attempted",
			invoke:   func() error { return NoFallback(log, "r1", "h1", "catalog", "substituted a default price") },
			wantCode: errors.ErrCodeGuardFallback,
		},
		{
			name:     "default synthesized",
			invoke:   func() error { return NoDefaultValue(log, "r1", "h1", "tags", "synthesized a tag") },
			wantCode: errors.ErrCodeGuardDefaultValue,
		},
		{
			name:     "policy without tags",
			invoke:   func() error { return TagsRequiredForPolicy(log, "r1", "h1", "empty tag set") },
			wantCode: errors.ErrCodeGuardPolicyNoTags,
		},
		{
			name:     "dna without explanation",
			invoke:   func() error { return ExplainRequiredForDNA(log, "r1", "h1", "no tag reasons") },
			wantCode: errors.ErrCodeGuardDNANoExplain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.invoke()
			require.Error(t, err)
			assert.True(t, errors.IsGuardViolation(err))
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}

func TestGuards_WriteAuditEntryBeforeReturning(t *testing.T) {
	log, store := newTestAudit()

	err := NoFallback(log, "req-9", "hash-9", "estimate", "missing price substituted")
	require.Error(t, err)

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, audit.EventAnalysisFailed, entries[0].Event)
	assert.Equal(t, "req-9", entries[0].RequestID)
	assert.Equal(t, "hash-9", entries[0].InputHash)
	assert.Contains(t, entries[0].ErrorMessage, "GuardViolation")
}
