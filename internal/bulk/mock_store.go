package bulk

import (
	"context"
	"sort"

	"github.com/minhle/workdesk/internal/model"
	"github.com/minhle/workdesk/internal/service"
)

var _ service.Store = (*mockStore)(nil)

// mockStore is a test double recording every mutation and failing the ids
// it is told to fail.
type mockStore struct {
	failWith map[string]error
	archived map[string]bool
	deleted  map[string]bool
	calls    []string
}

func newMockStore() *mockStore {
	return &mockStore{
		failWith: make(map[string]error),
		archived: make(map[string]bool),
		deleted:  make(map[string]bool),
	}
}

func (m *mockStore) FetchAll(_ context.Context, _ model.Kind) ([]model.WorkItem, error) {
	return nil, nil
}

func (m *mockStore) MutateArchived(_ context.Context, id string, archived bool) error {
	m.calls = append(m.calls, id)
	if err := m.failWith[id]; err != nil {
		return err
	}
	m.archived[id] = archived
	return nil
}

func (m *mockStore) DeleteByID(_ context.Context, id string) error {
	m.calls = append(m.calls, id)
	if err := m.failWith[id]; err != nil {
		return err
	}
	m.deleted[id] = true
	return nil
}

func (m *mockStore) PersistPayments(_ context.Context, _ string, _ []model.Payment) error {
	return nil
}

func (m *mockStore) AppendInteraction(_ context.Context, _ string, record model.InteractionRecord) (model.InteractionRecord, error) {
	return record, nil
}

func (m *mockStore) archivedIDs() []string {
	ids := make([]string, 0, len(m.archived))
	for id, archived := range m.archived {
		if archived {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
