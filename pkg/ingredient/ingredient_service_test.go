package ingredient

import (
	"context"
	"testing"

	"recipai-backend/domain"
	"recipai-backend/entities"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type attachmentKey struct {
	recipeID     uint
	ingredientID uint
}

type fakeIngredientRepository struct {
	ingredients map[uint]*entities.Ingredient
	attachments map[attachmentKey]*entities.RecipeIngredient
	nextID      uint
	err         error
	attachErr   error
}

func newFakeIngredientRepository() *fakeIngredientRepository {
	return &fakeIngredientRepository{
		ingredients: make(map[uint]*entities.Ingredient),
		attachments: make(map[attachmentKey]*entities.RecipeIngredient),
		nextID:      1,
	}
}

func (f *fakeIngredientRepository) CreateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	if f.err != nil {
		return f.err
	}
	ingredient.ID = f.nextID
	f.ingredients[ingredient.ID] = ingredient
	f.nextID++
	return nil
}

func (f *fakeIngredientRepository) GetIngredients(_ context.Context) ([]*entities.Ingredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entities.Ingredient, 0, len(f.ingredients))
	for id := uint(1); id < f.nextID; id++ {
		if ingredient, ok := f.ingredients[id]; ok {
			out = append(out, ingredient)
		}
	}
	return out, nil
}

func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, id uint) (*entities.Ingredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	ingredient, ok := f.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ingredient
	return &copied, nil
}

func (f *fakeIngredientRepository) UpdateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	if f.err != nil {
		return f.err
	}
	f.ingredients[ingredient.ID] = ingredient
	return nil
}

func (f *fakeIngredientRepository) DeleteIngredient(_ context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	delete(f.ingredients, id)
	return nil
}

func (f *fakeIngredientRepository) ListForRecipe(_ context.Context, recipeID uint) ([]domain.RecipeIngredientRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	rows := make([]domain.RecipeIngredientRow, 0)
	for key, attachment := range f.attachments {
		if key.recipeID != recipeID {
			continue
		}
		ingredient := f.ingredients[key.ingredientID]
		rows = append(rows, domain.RecipeIngredientRow{
			IngredientID: key.ingredientID,
			Name:         ingredient.Name,
			Description:  ingredient.Description,
			Quantity:     attachment.Quantity,
			Unit:         attachment.Unit,
		})
	}
	return rows, nil
}

func (f *fakeIngredientRepository) AttachIngredient(_ context.Context, attachment *entities.RecipeIngredient) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	key := attachmentKey{attachment.RecipeID, attachment.IngredientID}
	if _, exists := f.attachments[key]; exists {
		return &pgconn.PgError{Code: "23505"}
	}
	if _, exists := f.ingredients[attachment.IngredientID]; !exists {
		return &pgconn.PgError{Code: "23503"}
	}
	f.attachments[key] = attachment
	return nil
}

func (f *fakeIngredientRepository) GetAttachment(_ context.Context, recipeID, ingredientID uint) (*entities.RecipeIngredient, error) {
	attachment, ok := f.attachments[attachmentKey{recipeID, ingredientID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *attachment
	return &copied, nil
}

func (f *fakeIngredientRepository) UpdateAttachment(_ context.Context, attachment *entities.RecipeIngredient) error {
	f.attachments[attachmentKey{attachment.RecipeID, attachment.IngredientID}] = attachment
	return nil
}

func (f *fakeIngredientRepository) DetachIngredient(_ context.Context, recipeID, ingredientID uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	key := attachmentKey{recipeID, ingredientID}
	if _, ok := f.attachments[key]; !ok {
		return 0, nil
	}
	delete(f.attachments, key)
	return 1, nil
}

func TestIngredientService_CRUD(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)
	ctx := context.Background()

	created, err := service.CreateIngredient(ctx, domain.CreateIngredientRequest{
		Name:        "Tomato",
		Description: "ripe plum tomato",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.IngredientID)

	updated, err := service.UpdateIngredient(ctx, created.IngredientID, domain.UpdateIngredientRequest{
		Name: "Cherry Tomato",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cherry Tomato", updated.Name)
	assert.Empty(t, updated.Description)

	require.NoError(t, service.DeleteIngredient(ctx, created.IngredientID))
	_, err = service.GetIngredientByID(ctx, created.IngredientID)
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestIngredientService_GetIngredientByID_NotFound(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepository())

	_, err := service.GetIngredientByID(context.Background(), 77)

	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestIngredientService_AttachIngredient(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)
	ctx := context.Background()

	tomato, err := service.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Tomato"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		res, err := service.AttachIngredient(ctx, 1, domain.AttachIngredientRequest{
			IngredientID: tomato.IngredientID,
			Quantity:     250,
			Unit:         "g",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), res.RecipeID)
		assert.Equal(t, tomato.IngredientID, res.IngredientID)
		assert.Equal(t, "g", res.Unit)
	})

	t.Run("duplicate attachment conflicts", func(t *testing.T) {
		_, err := service.AttachIngredient(ctx, 1, domain.AttachIngredientRequest{
			IngredientID: tomato.IngredientID,
			Quantity:     100,
			Unit:         "g",
		})

		assert.ErrorIs(t, err, domain.ErrDuplicateResource)
	})

	t.Run("unknown ingredient conflicts", func(t *testing.T) {
		_, err := service.AttachIngredient(ctx, 1, domain.AttachIngredientRequest{
			IngredientID: 999999,
			Quantity:     1,
			Unit:         "pcs",
		})

		assert.ErrorIs(t, err, domain.ErrForeignKeyViolation)
	})
}

func TestIngredientService_ListForRecipe_Empty(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepository())

	rows, err := service.ListForRecipe(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestIngredientService_UpdateAttachment(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)
	ctx := context.Background()

	tomato, err := service.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Tomato"})
	require.NoError(t, err)
	_, err = service.AttachIngredient(ctx, 1, domain.AttachIngredientRequest{
		IngredientID: tomato.IngredientID,
		Quantity:     250,
		Unit:         "g",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		res, err := service.UpdateAttachment(ctx, 1, tomato.IngredientID, domain.UpdateAttachmentRequest{
			Quantity: 0.5,
			Unit:     "kg",
		})

		require.NoError(t, err)
		assert.Equal(t, 0.5, res.Quantity)
		assert.Equal(t, "kg", res.Unit)
	})

	t.Run("missing attachment", func(t *testing.T) {
		_, err := service.UpdateAttachment(ctx, 2, tomato.IngredientID, domain.UpdateAttachmentRequest{
			Quantity: 1,
			Unit:     "pcs",
		})

		assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
	})
}

func TestIngredientService_DetachIngredient(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)
	ctx := context.Background()

	tomato, err := service.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Tomato"})
	require.NoError(t, err)
	_, err = service.AttachIngredient(ctx, 1, domain.AttachIngredientRequest{
		IngredientID: tomato.IngredientID,
		Quantity:     250,
		Unit:         "g",
	})
	require.NoError(t, err)

	require.NoError(t, service.DetachIngredient(ctx, 1, tomato.IngredientID))

	// second detach hits zero rows
	err = service.DetachIngredient(ctx, 1, tomato.IngredientID)
	assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
}

func TestIngredientService_TranslatesDriverErrors(t *testing.T) {
	repo := newFakeIngredientRepository()
	repo.attachErr = &pgconn.PgError{Code: "08001"}
	service := NewIngredientService(repo)

	_, err := service.AttachIngredient(context.Background(), 1, domain.AttachIngredientRequest{
		IngredientID: 1,
		Quantity:     1,
		Unit:         "pcs",
	})

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
