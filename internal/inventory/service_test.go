package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/repository"
	"github.com/osse101/scribble/internal/validation"
)

// mockRepository is a testify mock of repository.Inventory
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Load(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, items []domain.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func setup(t *testing.T, seed ...domain.Item) (Service, repository.Inventory) {
	t.Helper()
	repo := repository.NewCollection[domain.Item](repository.NewMemStore(), domain.CollectionInventory, validation.NewSchemaValidator())
	if len(seed) > 0 {
		require.NoError(t, repo.Save(context.Background(), seed))
	}
	return NewService(repo), repo
}

func torch(count int) AddItemRequest {
	return AddItemRequest{
		Name:        "Torch",
		Description: "Sheds light",
		Count:       count,
		Activity:    domain.ActivityActive,
		Key:         domain.NotKeyItem,
	}
}

func stored(t *testing.T, repo repository.Inventory) []domain.Item {
	t.Helper()
	items, err := repo.Load(context.Background())
	require.NoError(t, err)
	return items
}

func TestAddOrMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("appends new item to empty inventory", func(t *testing.T) {
		svc, repo := setup(t)

		res, err := svc.AddOrMerge(ctx, torch(2))

		require.NoError(t, err)
		assert.False(t, res.Merged)
		assert.Equal(t, 2, res.Item.Count)
		items := stored(t, repo)
		require.Len(t, items, 1)
		assert.Equal(t, "Torch", items[0].Name)
		assert.Equal(t, 2, items[0].Count)
	})

	t.Run("merges by case-insensitive name", func(t *testing.T) {
		svc, repo := setup(t)
		_, err := svc.AddOrMerge(ctx, torch(2))
		require.NoError(t, err)

		res, err := svc.AddOrMerge(ctx, AddItemRequest{Name: "torch", Count: 3})

		require.NoError(t, err)
		assert.True(t, res.Merged)
		assert.Equal(t, "Torch", res.Item.Name, "existing record keeps its spelling")
		assert.Equal(t, 5, res.Item.Count)
		items := stored(t, repo)
		require.Len(t, items, 1, "exactly one Torch record")
		assert.Equal(t, 5, items[0].Count)
		assert.Equal(t, "Sheds light", items[0].Description)
	})

	t.Run("merge that would pass the stored maximum is rejected", func(t *testing.T) {
		full := domain.Item{Name: "Torch", Description: "Sheds light", Count: domain.MaxStoredNumber - 1, Activity: domain.ActivityActive, Key: domain.NotKeyItem}
		svc, repo := setup(t, full)

		_, err := svc.AddOrMerge(ctx, torch(2))

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, []domain.Item{full}, stored(t, repo), "count must not change")

		res, err := svc.AddOrMerge(ctx, torch(1))
		require.NoError(t, err)
		assert.Equal(t, domain.MaxStoredNumber, res.Item.Count)
	})

	t.Run("merge ignores surrounding whitespace", func(t *testing.T) {
		svc, repo := setup(t, domain.Item{Name: "Rope", Description: "50ft", Count: 1, Activity: domain.ActivityPassive, Key: domain.NotKeyItem})

		_, err := svc.AddOrMerge(ctx, AddItemRequest{Name: "  ROPE ", Count: 4})

		require.NoError(t, err)
		assert.Equal(t, 5, stored(t, repo)[0].Count)
	})

	t.Run("new item is stored trimmed", func(t *testing.T) {
		svc, repo := setup(t)
		req := torch(1)
		req.Name = "  Torch  "
		req.Description = " Sheds light "

		_, err := svc.AddOrMerge(ctx, req)

		require.NoError(t, err)
		items := stored(t, repo)
		assert.Equal(t, "Torch", items[0].Name)
		assert.Equal(t, "Sheds light", items[0].Description)
	})

	incomplete := []struct {
		name    string
		mutate  func(*AddItemRequest)
		missing string
	}{
		{name: "missing description", mutate: func(r *AddItemRequest) { r.Description = " " }, missing: FieldDescription},
		{name: "missing activity", mutate: func(r *AddItemRequest) { r.Activity = "" }, missing: FieldActivity},
		{name: "unknown activity", mutate: func(r *AddItemRequest) { r.Activity = "Sometimes" }, missing: FieldActivity},
		{name: "missing key flag", mutate: func(r *AddItemRequest) { r.Key = "" }, missing: FieldKey},
	}
	for _, tt := range incomplete {
		t.Run("rejects new item: "+tt.name, func(t *testing.T) {
			svc, repo := setup(t)
			req := torch(1)
			tt.mutate(&req)

			_, err := svc.AddOrMerge(ctx, req)

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.missing)
			assert.Empty(t, stored(t, repo), "nothing is written on validation failure")
		})
	}

	t.Run("rejects blank name", func(t *testing.T) {
		svc, _ := setup(t)
		req := torch(1)
		req.Name = "   "

		_, err := svc.AddOrMerge(ctx, req)

		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), ErrMsgNameRequired)
	})

	t.Run("rejects non-positive count even for merges", func(t *testing.T) {
		svc, repo := setup(t, domain.Item{Name: "Torch", Description: "x", Count: 2, Activity: domain.ActivityActive, Key: domain.NotKeyItem})

		_, err := svc.AddOrMerge(ctx, AddItemRequest{Name: "Torch", Count: 0})

		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, 2, stored(t, repo)[0].Count)
	})

	t.Run("load failure is returned", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("Load", mock.Anything).Return(nil, errors.New("disk gone"))

		_, err := NewService(repo).AddOrMerge(ctx, torch(1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load inventory")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("Load", mock.Anything).Return([]domain.Item{}, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("read-only"))

		_, err := NewService(repo).AddOrMerge(ctx, torch(1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save inventory")
		repo.AssertExpectations(t)
	})
}

func TestRemoveOrDecrement(t *testing.T) {
	ctx := context.Background()

	sword := domain.Item{Name: "Sword", Description: "Family blade", Count: 1, Activity: domain.ActivityActive, Key: domain.KeyItem}
	torchItem := func(count int) domain.Item {
		return domain.Item{Name: "Torch", Description: "Sheds light", Count: count, Activity: domain.ActivityActive, Key: domain.NotKeyItem}
	}

	t.Run("decrement keeps record", func(t *testing.T) {
		svc, repo := setup(t, torchItem(5))

		res, err := svc.RemoveOrDecrement(ctx, RemoveItemRequest{Name: "Torch", Count: 2})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Matched)
		require.Len(t, res.Updated, 1)
		assert.Equal(t, 3, res.Updated[0].Count)
		items := stored(t, repo)
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Count)
	})

	t.Run("decrement to zero deletes record", func(t *testing.T) {
		svc, repo := setup(t, torchItem(3))

		res, err := svc.RemoveOrDecrement(ctx, RemoveItemRequest{Name: "Torch", Count: 3})

		require.NoError(t, err)
		require.Len(t, res.Removed, 1)
		assert.Equal(t, 0, res.Removed[0].Count)
		assert.Empty(t, stored(t, repo))
	})

	t.Run("decrement below zero clamps and deletes", func(t *testing.T) {
		svc, repo := setup(t, torchItem(2))

		res, err := svc.RemoveOrDecrement(ctx, RemoveItemRequest{Name: "torch", Count: 10})

		require.NoError(t, err)
		assert.Len(t, res.Removed, 1)
		assert.Empty(t, stored(t, repo))
	})

	t.Run("negative count deletes non-key record", func(t *testing.T) {
		svc, repo := setup(t, torchItem(7), sword)

		res, err := svc.RemoveOrDecrement(ctx, RemoveItemRequest{Name: "TORCH", Count: -1})

		require.NoError(t, err)
		assert.Len(t, res.Removed, 1)
		assert.Equal(t, []domain.Item{sword}, stored(t, repo))
	})

	t.Run("negative count on key item is rejected", func(t *testing.T) {
		svc, repo := setup(t, sword)

		res, err := svc.RemoveOrDecrement(ctx, RemoveItemRequest{Name: "Sword", Count: -1})

		require.ErrorIs(t, err, domain.ErrKeyItemProtected)
		assert.Contains(t, err.Error(), domain.ErrMsgKeyItemProtected)
		require.NotNil(t, res)
		assert.Equal(t, []domain.Item{sword}, res.Protected)
		assert.Equal(t, []domain.Item{sword}, stored(t, repo), "record unchanged")
	})

	t.Run("key item decremented to zero is retained", func(t *testing.T) {
		crown := domain.Item{Name: "Crown", Description: "Plot", Count: 2, Activity: domain.ActivityPassive, Key: domain.KeyItem}
		svc, repo := setup(t, crown)

		res, err := svc.RemoveOrDecrement(ctx, RemoveItemRequest{Name: "crown", Count: 5})

		require.NoError(t, err)
		assert.Empty(t, res.Removed)
		items := stored(t, repo)
		require.Len(t, items, 1)
		assert.Equal(t, 0, items[0].Count)
		assert.True(t, items[0].IsKey())
	})

	t.Run("zero count sets count to zero and keeps record", func(t *testing.T) {
		svc, repo := setup(t, torchItem(4))

		res, err := svc.RemoveOrDecrement(ctx, RemoveItemRequest{Name: "Torch", Count: 0})

		require.NoError(t, err)
		assert.Len(t, res.Updated, 1)
		items := stored(t, repo)
		require.Len(t, items, 1)
		assert.Equal(t, 0, items[0].Count)
	})

	t.Run("every duplicate record is affected", func(t *testing.T) {
		svc, repo := setup(t, torchItem(5), torchItem(1), sword)

		res, err := svc.RemoveOrDecrement(ctx, RemoveItemRequest{Name: "Torch", Count: 2})

		require.NoError(t, err)
		assert.Equal(t, 2, res.Matched)
		assert.Len(t, res.Updated, 1)
		assert.Len(t, res.Removed, 1)
		assert.Equal(t, []domain.Item{torchItem(3), sword}, stored(t, repo))
	})

	t.Run("no match reports not found and still persists", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("Load", mock.Anything).Return([]domain.Item{sword}, nil)
		repo.On("Save", mock.Anything, []domain.Item{sword}).Return(nil).Once()

		res, err := NewService(repo).RemoveOrDecrement(ctx, RemoveItemRequest{Name: "Lantern", Count: 1})

		require.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Equal(t, 0, res.Matched)
		repo.AssertExpectations(t)
	})

	t.Run("blank name is invalid", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.RemoveOrDecrement(ctx, RemoveItemRequest{Name: " ", Count: 1})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSearchAndList(t *testing.T) {
	ctx := context.Background()
	rope := domain.Item{Name: "Rope", Description: "50ft", Count: 1, Activity: domain.ActivityPassive, Key: domain.NotKeyItem}
	lantern := domain.Item{Name: "Lantern", Description: "Hooded", Count: 1, Activity: domain.ActivityActive, Key: domain.NotKeyItem}
	svc, _ := setup(t, rope, lantern)

	found, err := svc.Search(ctx, "  rOpE ")
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{rope}, found)

	found, err = svc.Search(ctx, "rop")
	require.NoError(t, err)
	assert.Empty(t, found, "no substring matching")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{rope, lantern}, all)
}
