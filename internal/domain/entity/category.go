// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind represents the kind of category (expense or income).
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
)

// IsValid reports whether the kind is one of the known values.
func (k CategoryKind) IsValid() bool {
	return k == CategoryKindExpense || k == CategoryKindIncome
}

// DefaultIcon returns the icon used when a category is created without one.
func (k CategoryKind) DefaultIcon() string {
	if k == CategoryKindIncome {
		return DefaultIncomeIcon
	}
	return DefaultExpenseIcon
}

const (
	// DefaultExpenseIcon is the icon for expense categories without one.
	DefaultExpenseIcon = "📦"
	// DefaultIncomeIcon is the icon for income categories without one.
	DefaultIncomeIcon = "💰"

	// GoalsCategoryName is the shared expense category that receives goal settlements.
	GoalsCategoryName = "Goals"
	// GoalsCategoryIcon is the icon of the goals category.
	GoalsCategoryIcon = "🎯"

	// UncategorizedName labels transactions without a category in reports.
	UncategorizedName = "Sem categoria"
)

// Category represents a transaction category.
// A nil OwnerID marks a system category shared by every user.
type Category struct {
	ID        uuid.UUID
	Name      string
	Kind      CategoryKind
	Icon      string
	OwnerID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, kind CategoryKind, icon string, ownerID *uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		Icon:      icon,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsSystem reports whether the category is shared by all users.
func (c *Category) IsSystem() bool {
	return c.OwnerID == nil
}

// IsOwnedBy reports whether the given user owns the category.
func (c *Category) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID != nil && *c.OwnerID == userID
}

// IsVisibleTo reports whether the given user may see and use the category.
func (c *Category) IsVisibleTo(userID uuid.UUID) bool {
	return c.IsSystem() || c.IsOwnedBy(userID)
}

// SystemCategory describes one of the categories seeded at startup.
type SystemCategory struct {
	Name string
	Kind CategoryKind
	Icon string
}

// SystemCategories lists the shared categories every installation starts with.
var SystemCategories = []SystemCategory{
	{Name: "Alimentação", Kind: CategoryKindExpense, Icon: "🍔"},
	{Name: "Transporte", Kind: CategoryKindExpense, Icon: "🚗"},
	{Name: "Saúde", Kind: CategoryKindExpense, Icon: "⚕️"},
	{Name: "Educação", Kind: CategoryKindExpense, Icon: "📚"},
	{Name: "Lazer", Kind: CategoryKindExpense, Icon: "🎮"},
	{Name: "Moradia", Kind: CategoryKindExpense, Icon: "🏠"},
	{Name: "Vestuário", Kind: CategoryKindExpense, Icon: "👔"},
	{Name: "Outros", Kind: CategoryKindExpense, Icon: "📦"},
	{Name: "Salário", Kind: CategoryKindIncome, Icon: "💼"},
	{Name: "Freelance", Kind: CategoryKindIncome, Icon: "💻"},
	{Name: "Investimentos", Kind: CategoryKindIncome, Icon: "📈"},
}
