package enemy

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

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Load(ctx context.Context) ([]domain.Enemy, error) {
	args := m.Called(ctx)
	enemies, _ := args.Get(0).([]domain.Enemy)
	return enemies, args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, enemies []domain.Enemy) error {
	return m.Called(ctx, enemies).Error(0)
}

func newCollection() *repository.Collection[domain.Enemy] {
	return repository.NewCollection[domain.Enemy](repository.NewMemStore(), domain.CollectionEnemies, validation.NewSchemaValidator())
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicates are appended", func(t *testing.T) {
		repo := newCollection()
		svc := NewService(repo)

		_, err := svc.Add(ctx, AddEnemyRequest{Name: "Goblin", Description: "Small and mean"})
		require.NoError(t, err)
		got, err := svc.Add(ctx, AddEnemyRequest{Name: " Goblin ", Description: " Archer "})
		require.NoError(t, err)

		assert.Equal(t, domain.Enemy{Name: "Goblin", Description: "Archer"}, *got)
		enemies, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, enemies, 2)
	})

	tests := []struct {
		name    string
		req     AddEnemyRequest
		wantMsg string
	}{
		{name: "blank name", req: AddEnemyRequest{Name: "  ", Description: "x"}, wantMsg: ErrMsgNameRequired},
		{name: "blank description", req: AddEnemyRequest{Name: "Orc"}, wantMsg: ErrMsgDescriptionRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}

			_, err := NewService(repo).Add(ctx, tt.req)

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
			repo.AssertNotCalled(t, "Load", mock.Anything)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}

	t.Run("save failure", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("Load", mock.Anything).Return([]domain.Enemy{}, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := NewService(repo).Add(ctx, AddEnemyRequest{Name: "Orc", Description: "Big"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newCollection())
	for _, req := range []AddEnemyRequest{
		{Name: "Goblin", Description: "Scout"},
		{Name: "Troll", Description: "Regenerates"},
		{Name: "GOBLIN", Description: "Chief"},
	} {
		_, err := svc.Add(ctx, req)
		require.NoError(t, err)
	}

	found, err := svc.Search(ctx, "goblin ")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.Search(ctx, "gob")
	require.NoError(t, err)
	assert.Empty(t, found)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
