package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCategoryVisibility(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	system := NewCategory("Outros", CategoryKindExpense, "📦", nil)
	personal := NewCategory("Mercado", CategoryKindExpense, "🛒", &owner)

	assert.True(t, system.IsSystem())
	assert.True(t, system.IsVisibleTo(stranger))
	assert.False(t, system.IsOwnedBy(owner))

	assert.False(t, personal.IsSystem())
	assert.True(t, personal.IsOwnedBy(owner))
	assert.True(t, personal.IsVisibleTo(owner))
	assert.False(t, personal.IsVisibleTo(stranger))
}

func TestCategoryKind(t *testing.T) {
	assert.True(t, CategoryKindExpense.IsValid())
	assert.True(t, CategoryKindIncome.IsValid())
	assert.False(t, CategoryKind("other").IsValid())
	assert.False(t, CategoryKind("").IsValid())

	assert.Equal(t, DefaultIncomeIcon, CategoryKindIncome.DefaultIcon())
	assert.Equal(t, DefaultExpenseIcon, CategoryKindExpense.DefaultIcon())
}

func TestSystemCategoriesAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(SystemCategories))
	for _, c := range SystemCategories {
		assert.False(t, seen[c.Name], "duplicate system category %q", c.Name)
		assert.True(t, c.Kind.IsValid(), "invalid kind for %q", c.Name)
		assert.NotEqual(t, GoalsCategoryName, c.Name)
		seen[c.Name] = true
	}
}
