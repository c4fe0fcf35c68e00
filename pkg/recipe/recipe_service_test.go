package recipe

import (
	"context"
	"testing"
	"time"

	"recipai-backend/domain"
	"recipai-backend/entities"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes map[uint]*entities.Recipe
	nextID  uint
	err     error
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: make(map[uint]*entities.Recipe), nextID: 1}
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	if f.err != nil {
		return f.err
	}
	recipe.ID = f.nextID
	recipe.CreationDate = time.Now()
	f.recipes[recipe.ID] = recipe
	f.nextID++
	return nil
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context) ([]*entities.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entities.Recipe, 0, len(f.recipes))
	for id := uint(1); id < f.nextID; id++ {
		if recipe, ok := f.recipes[id]; ok {
			out = append(out, recipe)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id uint) (*entities.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *recipe
	return &copied, nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	if f.err != nil {
		return f.err
	}
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	delete(f.recipes, id)
	return nil
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "Pasta",
		CookingTime:  "25 minutes",
		Ingredients:  "spaghetti\ntomato",
		Instructions: "boil, then combine",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), res.RecipeID)
	assert.Equal(t, "Pasta", res.Title)
	assert.False(t, res.CreationDate.IsZero())
}

func TestRecipeService_GetRecipeByID_NotFound(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository())

	_, err := service.GetRecipeByID(context.Background(), 999999)

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_GetRecipes_Empty(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository())

	res, err := service.GetRecipes(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Len(t, res, 0)
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "Pasta",
		CookingTime:  "25 minutes",
		Ingredients:  "spaghetti",
		Instructions: "boil",
	})
	require.NoError(t, err)

	t.Run("overwrites fields but keeps creation date", func(t *testing.T) {
		res, err := service.UpdateRecipe(context.Background(), created.RecipeID, domain.UpdateRecipeRequest{
			Title:        "Pasta al Pomodoro",
			CookingTime:  "30 minutes",
			Ingredients:  "spaghetti\ntomato\nbasil",
			Instructions: "boil, then combine",
		})

		require.NoError(t, err)
		assert.Equal(t, "Pasta al Pomodoro", res.Title)
		assert.Equal(t, created.CreationDate, res.CreationDate)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := service.UpdateRecipe(context.Background(), 42, domain.UpdateRecipeRequest{
			Title:        "Ghost",
			CookingTime:  "1 minute",
			Ingredients:  "nothing",
			Instructions: "none",
		})

		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "Pasta",
		CookingTime:  "25 minutes",
		Ingredients:  "spaghetti",
		Instructions: "boil",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteRecipe(context.Background(), created.RecipeID))

	_, err = service.GetRecipeByID(context.Background(), created.RecipeID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_DeleteRecipe_NotFound(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository())

	err := service.DeleteRecipe(context.Background(), 999999)

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_TranslatesDriverErrors(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.err = &pgconn.PgError{Code: "08006"}
	service := NewRecipeService(repo)

	_, err := service.GetRecipes(context.Background())

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
