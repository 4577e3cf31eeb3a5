package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/workdesk/internal/model"
	"github.com/minhle/workdesk/internal/service"
)

func newTestStore(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestCreateAndFetchWorkItem(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	id, err := store.CreateWorkItem(ctx, &model.WorkItem{
		Kind:          model.KindProject,
		Name:          "Website Redesign",
		Company:       "ABC Corporation",
		Status:        model.StatusInProgress,
		Due:           &due,
		ContractValue: 1_000_000,
		Payments: []model.Payment{
			{Amount: 500_000, Paid: true},
			{Amount: 500_000, Paid: false},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = store.CreateWorkItem(ctx, &model.WorkItem{
		Kind:   model.KindLead,
		Name:   "Nguyen Van A",
		Status: model.StatusWorking,
		Interactions: []model.InteractionRecord{
			{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), NextFollowUp: &next},
		},
	})
	require.NoError(t, err)

	projects, err := store.FetchAll(ctx, model.KindProject)
	require.NoError(t, err)
	require.Len(t, projects, 1, "leads must not leak into the project snapshot")

	got := projects[0]
	assert.Equal(t, "Website Redesign", got.Name)
	assert.Equal(t, model.StatusInProgress, got.Status)
	require.NotNil(t, got.Due)
	assert.True(t, got.Due.Equal(due))
	require.Len(t, got.Payments, 2)
	assert.InDelta(t, 500_000, got.Payments[0].Amount, 0.001)
	assert.True(t, got.Payments[0].Paid)
	assert.False(t, got.Payments[1].Paid)

	leads, err := store.FetchAll(ctx, model.KindLead)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	require.Len(t, leads[0].Interactions, 1)
	require.NotNil(t, leads[0].Interactions[0].NextFollowUp)
	assert.True(t, leads[0].Interactions[0].NextFollowUp.Equal(next))
}

func TestCreateWorkItem_Validation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.CreateWorkItem(ctx, &model.WorkItem{Kind: model.KindTask})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = store.CreateWorkItem(ctx, &model.WorkItem{Kind: model.Kind("bogus"), Name: "x"})
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = store.CreateWorkItem(ctx, &model.WorkItem{
		Kind:     model.KindProject,
		Name:     "bad schedule",
		Status:   model.StatusPlanning,
		Payments: []model.Payment{{Amount: -1}},
	})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestMutateArchived(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateWorkItem(ctx, &model.WorkItem{
		Kind: model.KindTask, Name: "write report", Status: model.StatusTodo,
	})
	require.NoError(t, err)

	require.NoError(t, store.MutateArchived(ctx, id, true))
	item, err := store.GetWorkItem(ctx, id)
	require.NoError(t, err)
	assert.True(t, item.Archived)

	require.NoError(t, store.MutateArchived(ctx, id, false))
	item, err = store.GetWorkItem(ctx, id)
	require.NoError(t, err)
	assert.False(t, item.Archived)

	err = store.MutateArchived(ctx, "missing", true)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteByID_CascadesChildren(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateWorkItem(ctx, &model.WorkItem{
		Kind:     model.KindProject,
		Name:     "doomed",
		Status:   model.StatusPlanning,
		Payments: []model.Payment{{Amount: 100}},
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteByID(ctx, id))

	_, err = store.GetWorkItem(ctx, id)
	assert.ErrorIs(t, err, service.ErrNotFound)

	var orphans int
	err = store.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM payments WHERE item_id = ?`, id).Scan(&orphans)
	require.NoError(t, err)
	assert.Zero(t, orphans)

	err = store.DeleteByID(ctx, id)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPersistPayments_ReplacesSchedule(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateWorkItem(ctx, &model.WorkItem{
		Kind:     model.KindProject,
		Name:     "retainer",
		Status:   model.StatusInProgress,
		Payments: []model.Payment{{Amount: 100, Paid: false}},
	})
	require.NoError(t, err)

	err = store.PersistPayments(ctx, id, []model.Payment{
		{Amount: 100, Paid: true},
		{Amount: 250, Paid: false},
	})
	require.NoError(t, err)

	item, err := store.GetWorkItem(ctx, id)
	require.NoError(t, err)
	require.Len(t, item.Payments, 2)
	assert.True(t, item.Payments[0].Paid)
	assert.InDelta(t, 250, item.Payments[1].Amount, 0.001)

	err = store.PersistPayments(ctx, "missing", []model.Payment{{Amount: 1}})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAppendInteraction(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	leadID, err := store.CreateWorkItem(ctx, &model.WorkItem{
		Kind: model.KindLead, Name: "lead", Status: model.StatusNew,
	})
	require.NoError(t, err)
	taskID, err := store.CreateWorkItem(ctx, &model.WorkItem{
		Kind: model.KindTask, Name: "task", Status: model.StatusTodo,
	})
	require.NoError(t, err)

	next := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	_, err = store.AppendInteraction(ctx, leadID, model.InteractionRecord{
		Date:         time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		NextFollowUp: &next,
		Notes:        "called, promising",
	})
	require.NoError(t, err)

	item, err := store.GetWorkItem(ctx, leadID)
	require.NoError(t, err)
	require.Len(t, item.Interactions, 1)
	assert.Equal(t, "called, promising", item.Interactions[0].Notes)

	// Interactions only make sense on leads.
	_, err = store.AppendInteraction(ctx, taskID, model.InteractionRecord{
		Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	var ruleErr *service.BusinessRuleError
	assert.ErrorAs(t, err, &ruleErr)

	_, err = store.AppendInteraction(ctx, "missing", model.InteractionRecord{
		Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateWorkItem(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateWorkItem(ctx, &model.WorkItem{
		Kind: model.KindTask, Name: "draft", Status: model.StatusTodo,
	})
	require.NoError(t, err)

	item, err := store.GetWorkItem(ctx, id)
	require.NoError(t, err)
	item.Name = "final"
	item.Status = model.StatusTaskInProgress
	require.NoError(t, store.UpdateWorkItem(ctx, item))

	got, err := store.GetWorkItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Name)
	assert.Equal(t, model.StatusTaskInProgress, got.Status)

	item.ID = "missing"
	err = store.UpdateWorkItem(ctx, item)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// Running migrations again on a current database is a no-op.
	require.NoError(t, store.Migrate(ctx))

	var version int
	require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)
}
