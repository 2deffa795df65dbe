package category

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

// memoryCategoryRepository keeps categories by id and hands out copies,
// so a refused use case never leaks edits into the store.
type memoryCategoryRepository struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
	usage      map[uuid.UUID]int64
}

func newMemoryCategoryRepository() *memoryCategoryRepository {
	return &memoryCategoryRepository{
		categories: make(map[uuid.UUID]*entity.Category),
		usage:      make(map[uuid.UUID]int64),
	}
}

func sameOwner(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r *memoryCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == category.Name && sameOwner(c.OwnerID, category.OwnerID) {
			return domainerror.ErrCategoryNameExists
		}
	}
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *memoryCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	found := *c
	return &found, nil
}

func (r *memoryCategoryRepository) FindVisible(_ context.Context, ownerID *uuid.UUID, kind *entity.CategoryKind) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.categories {
		if kind != nil && c.Kind != *kind {
			continue
		}
		if c.IsSystem() || (ownerID != nil && c.IsOwnedBy(*ownerID)) {
			found := *c
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *memoryCategoryRepository) FindByNameAndOwner(_ context.Context, name string, ownerID *uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name && sameOwner(c.OwnerID, ownerID) {
			found := *c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *memoryCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *memoryCategoryRepository) CountTransactions(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.usage[id], nil
}

func (r *memoryCategoryRepository) setUsage(id uuid.UUID, count int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.usage[id] = count
}

func (r *memoryCategoryRepository) stored(t *testing.T, id uuid.UUID) *entity.Category {
	t.Helper()
	c, err := r.FindByID(context.Background(), id)
	require.NoError(t, err)
	return c
}

// countingCache records which users had their reports invalidated.
type countingCache struct {
	mu          sync.Mutex
	invalidated []uuid.UUID
	err         error
}

func (c *countingCache) Get(context.Context, uuid.UUID, string, any) (bool, error) {
	return false, nil
}

func (c *countingCache) Set(context.Context, uuid.UUID, string, any) error {
	return nil
}

func (c *countingCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, userID)
	return c.err
}

func requireCategoryCode(t *testing.T, err error, code domainerror.CategoryErrorCode) *domainerror.CategoryError {
	t.Helper()
	var catErr *domainerror.CategoryError
	require.True(t, errors.As(err, &catErr), "unexpected error: %v", err)
	assert.Equal(t, code, catErr.Code)
	return catErr
}

func strPtr(s string) *string {
	return &s
}

func TestCreateCategory(t *testing.T) {
	repo := newMemoryCategoryRepository()
	create := NewCreateCategoryUseCase(repo)
	owner := uuid.New()

	output, err := create.Execute(context.Background(), CreateCategoryInput{
		Name:    "  Mercado ",
		Kind:    entity.CategoryKindExpense,
		OwnerID: owner,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mercado", output.Category.Name)
	assert.Equal(t, entity.DefaultExpenseIcon, output.Category.Icon)
	assert.True(t, output.Category.IsOwnedBy(owner))

	// Another owner may reuse the name
	_, err = create.Execute(context.Background(), CreateCategoryInput{
		Name:    "Mercado",
		Kind:    entity.CategoryKindExpense,
		OwnerID: uuid.New(),
	})
	require.NoError(t, err)
}

func TestCreateCategoryValidation(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name         string
		input        CreateCategoryInput
		expectedCode domainerror.CategoryErrorCode
	}{
		{
			name:         "name too short",
			input:        CreateCategoryInput{Name: " M ", Kind: entity.CategoryKindExpense, OwnerID: owner},
			expectedCode: domainerror.ErrCodeInvalidCategoryName,
		},
		{
			name:         "unknown kind",
			input:        CreateCategoryInput{Name: "Mercado", Kind: "savings", OwnerID: owner},
			expectedCode: domainerror.ErrCodeInvalidCategoryKind,
		},
		{
			name:         "duplicate for owner",
			input:        CreateCategoryInput{Name: "Lazer", Kind: entity.CategoryKindExpense, OwnerID: owner},
			expectedCode: domainerror.ErrCodeCategoryNameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryCategoryRepository()
			require.NoError(t, repo.Create(context.Background(), entity.NewCategory("Lazer", entity.CategoryKindExpense, "", &owner)))

			_, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), tt.input)
			requireCategoryCode(t, err, tt.expectedCode)
		})
	}
}

func TestListCategories(t *testing.T) {
	repo := newMemoryCategoryRepository()
	owner := uuid.New()
	_, err := NewSeedSystemCategoriesUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), entity.NewCategory("Freela", entity.CategoryKindIncome, "", &owner)))
	require.NoError(t, repo.Create(context.Background(), entity.NewCategory("Outro", entity.CategoryKindIncome, "", uuidPtr(uuid.New()))))
	list := NewListCategoriesUseCase(repo)

	anonymous, err := list.Execute(context.Background(), ListCategoriesInput{})
	require.NoError(t, err)
	assert.Len(t, anonymous.Categories, len(entity.SystemCategories))

	income := entity.CategoryKindIncome
	mine, err := list.Execute(context.Background(), ListCategoriesInput{CallerID: &owner, Kind: &income})
	require.NoError(t, err)
	for _, c := range mine.Categories {
		assert.Equal(t, entity.CategoryKindIncome, c.Kind)
		assert.NotEqual(t, "Outro", c.Name)
	}
	assert.Contains(t, names(mine.Categories), "Freela")

	invalid := entity.CategoryKind("savings")
	_, err = list.Execute(context.Background(), ListCategoriesInput{Kind: &invalid})
	requireCategoryCode(t, err, domainerror.ErrCodeInvalidCategoryKind)
}

func TestSeedSystemCategoriesIsIdempotent(t *testing.T) {
	repo := newMemoryCategoryRepository()
	seed := NewSeedSystemCategoriesUseCase(repo)

	first, err := seed.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(entity.SystemCategories), first.Created)

	second, err := seed.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, second.Created)
}

func TestUpdateCategory(t *testing.T) {
	repo := newMemoryCategoryRepository()
	cache := &countingCache{}
	owner := uuid.New()
	category := entity.NewCategory("Mercado", entity.CategoryKindExpense, "🛒", &owner)
	require.NoError(t, repo.Create(context.Background(), category))
	require.NoError(t, repo.Create(context.Background(), entity.NewCategory("Lazer", entity.CategoryKindExpense, "", &owner)))
	update := NewUpdateCategoryUseCase(repo, cache)

	output, err := update.Execute(context.Background(), UpdateCategoryInput{
		CategoryID: category.ID,
		OwnerID:    owner,
		Name:       strPtr("Supermercado"),
		Icon:       strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Supermercado", output.Category.Name)
	assert.Equal(t, entity.DefaultExpenseIcon, output.Category.Icon)
	assert.Equal(t, "Supermercado", repo.stored(t, category.ID).Name)
	assert.Equal(t, []uuid.UUID{owner}, cache.invalidated)

	_, err = update.Execute(context.Background(), UpdateCategoryInput{
		CategoryID: category.ID,
		OwnerID:    owner,
		Name:       strPtr("Lazer"),
	})
	requireCategoryCode(t, err, domainerror.ErrCodeCategoryNameExists)
	assert.Equal(t, "Supermercado", repo.stored(t, category.ID).Name)
}

func TestUpdateCategoryAccess(t *testing.T) {
	repo := newMemoryCategoryRepository()
	owner := uuid.New()
	system := entity.NewCategory("Salário", entity.CategoryKindIncome, "💰", nil)
	owned := entity.NewCategory("Mercado", entity.CategoryKindExpense, "", &owner)
	require.NoError(t, repo.Create(context.Background(), system))
	require.NoError(t, repo.Create(context.Background(), owned))
	update := NewUpdateCategoryUseCase(repo, nil)

	tests := []struct {
		name         string
		input        UpdateCategoryInput
		expectedCode domainerror.CategoryErrorCode
	}{
		{
			name:         "system category",
			input:        UpdateCategoryInput{CategoryID: system.ID, OwnerID: owner, Name: strPtr("Renda")},
			expectedCode: domainerror.ErrCodeNotAuthorizedCategory,
		},
		{
			name:         "another user's category",
			input:        UpdateCategoryInput{CategoryID: owned.ID, OwnerID: uuid.New(), Name: strPtr("Roubada")},
			expectedCode: domainerror.ErrCodeNotAuthorizedCategory,
		},
		{
			name:         "missing category",
			input:        UpdateCategoryInput{CategoryID: uuid.New(), OwnerID: owner, Name: strPtr("Nada")},
			expectedCode: domainerror.ErrCodeCategoryNotFound,
		},
		{
			name:         "invalid name",
			input:        UpdateCategoryInput{CategoryID: owned.ID, OwnerID: owner, Name: strPtr(" ")},
			expectedCode: domainerror.ErrCodeInvalidCategoryName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := update.Execute(context.Background(), tt.input)
			requireCategoryCode(t, err, tt.expectedCode)
		})
	}

	assert.Equal(t, "Salário", repo.stored(t, system.ID).Name)
	assert.Equal(t, "Mercado", repo.stored(t, owned.ID).Name)
}

func TestDeleteCategory(t *testing.T) {
	repo := newMemoryCategoryRepository()
	cache := &countingCache{err: errors.New("redis down")}
	owner := uuid.New()
	category := entity.NewCategory("Mercado", entity.CategoryKindExpense, "", &owner)
	require.NoError(t, repo.Create(context.Background(), category))
	remove := NewDeleteCategoryUseCase(repo, cache)
	input := DeleteCategoryInput{CategoryID: category.ID, OwnerID: owner}

	repo.setUsage(category.ID, 2)
	_, err := remove.Execute(context.Background(), input)
	catErr := requireCategoryCode(t, err, domainerror.ErrCodeCategoryInUse)
	assert.Equal(t, int64(2), catErr.Details["count"])
	repo.stored(t, category.ID)
	assert.Empty(t, cache.invalidated)

	// Once the referencing transactions are gone the delete goes through
	repo.setUsage(category.ID, 0)
	output, err := remove.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, output.Success)
	_, err = repo.FindByID(context.Background(), category.ID)
	assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)
	assert.Equal(t, []uuid.UUID{owner}, cache.invalidated)

	_, err = remove.Execute(context.Background(), input)
	requireCategoryCode(t, err, domainerror.ErrCodeCategoryNotFound)
}

func TestDeleteSystemCategory(t *testing.T) {
	repo := newMemoryCategoryRepository()
	system := entity.NewCategory("Salário", entity.CategoryKindIncome, "💰", nil)
	require.NoError(t, repo.Create(context.Background(), system))

	_, err := NewDeleteCategoryUseCase(repo, nil).Execute(context.Background(), DeleteCategoryInput{
		CategoryID: system.ID,
		OwnerID:    uuid.New(),
	})
	requireCategoryCode(t, err, domainerror.ErrCodeNotAuthorizedCategory)
	repo.stored(t, system.ID)
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

func names(categories []*entity.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Name)
	}
	return out
}
