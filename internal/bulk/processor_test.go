package bulk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhle/workdesk/internal/service"
)

func TestProcessor_Run_PartialFailure(t *testing.T) {
	store := newMockStore()
	store.failWith["id2"] = service.ErrPermissionDenied

	result := New(store).Run(context.Background(), ActionArchive, []string{"id1", "id2", "id3"})

	assert.Equal(t, []string{"id1", "id3"}, result.Succeeded)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, "id2", result.Failed[0].ID)
	assert.Equal(t, service.ReasonPermissionDenied, result.Failed[0].Reason)

	// The failure never stopped the run: all three ids were attempted.
	assert.Equal(t, []string{"id1", "id2", "id3"}, store.calls)
	assert.Equal(t, []string{"id1", "id3"}, store.archivedIDs())
}

func TestProcessor_Run_ReasonClassification(t *testing.T) {
	store := newMockStore()
	store.failWith["denied"] = service.ErrPermissionDenied
	store.failWith["rule"] = &service.BusinessRuleError{Detail: "item is referenced by a report"}
	store.failWith["boom"] = errors.New("disk on fire")

	result := New(store).Run(context.Background(), ActionDelete, []string{"denied", "rule", "boom"})

	assert.Empty(t, result.Succeeded)
	reasons := map[string]service.ReasonCode{}
	for _, f := range result.Failed {
		reasons[f.ID] = f.Reason
	}
	assert.Equal(t, service.ReasonPermissionDenied, reasons["denied"])
	assert.Equal(t, service.ReasonBusinessRule, reasons["rule"])
	assert.Equal(t, service.ReasonUnknown, reasons["boom"])
}

func TestProcessor_Run_RestoreClearsArchived(t *testing.T) {
	store := newMockStore()

	result := New(store).Run(context.Background(), ActionRestore, []string{"id1"})

	assert.Equal(t, []string{"id1"}, result.Succeeded)
	assert.False(t, store.archived["id1"])
}

func TestProcessor_Run_EmptyIDSet(t *testing.T) {
	store := newMockStore()

	result := New(store).Run(context.Background(), ActionArchive, nil)

	assert.Empty(t, result.Succeeded)
	assert.Empty(t, result.Failed)
	assert.Empty(t, store.calls)
}
