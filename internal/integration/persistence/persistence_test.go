package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Felipaof/My-Fluxo-Finance/internal/application/adapter"
	"github.com/Felipaof/My-Fluxo-Finance/internal/application/usecase/report"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/persistence/model"
)

// RepositorySuite runs every repository against a fresh in-memory SQLite database.
type RepositorySuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context

	users        adapter.UserRepository
	categories   adapter.CategoryRepository
	transactions adapter.TransactionRepository
	goals        adapter.GoalRepository
	reports      report.ReportRepository
	uow          adapter.UnitOfWork

	user *entity.User
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(s.T(), err)

	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(s.T(), db.AutoMigrate(model.All()...))

	s.db = db
	s.ctx = context.Background()
	s.users = NewUserRepository(db)
	s.categories = NewCategoryRepository(db)
	s.transactions = NewTransactionRepository(db)
	s.goals = NewGoalRepository(db)
	s.reports = NewReportRepository(db)
	s.uow = NewUnitOfWork(db)

	s.user = entity.NewUser("ana@example.com", "Ana", "hash")
	require.NoError(s.T(), s.users.Create(s.ctx, s.user))
}

func (s *RepositorySuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *RepositorySuite) addTransaction(direction entity.Direction, amount string, categoryID *uuid.UUID, occurredAt time.Time) *entity.Transaction {
	tx := entity.NewTransaction(s.user.ID, "tx", decimal.RequireFromString(amount), direction, categoryID, occurredAt)
	require.NoError(s.T(), s.transactions.Create(s.ctx, tx))
	return tx
}

func (s *RepositorySuite) TestUserRepository() {
	found, err := s.users.FindByEmail(s.ctx, "ana@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.user.ID, found.ID)

	exists, err := s.users.ExistsByEmail(s.ctx, "ana@example.com")
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)

	exists, err = s.users.ExistsByEmail(s.ctx, "bruno@example.com")
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)

	_, err = s.users.FindByID(s.ctx, uuid.New())
	assert.True(s.T(), errors.Is(err, domainerror.ErrUserNotFound))

	duplicate := entity.NewUser("ana@example.com", "Outra", "hash")
	assert.ErrorIs(s.T(), s.users.Create(s.ctx, duplicate), domainerror.ErrEmailAlreadyExists)
}

func (s *RepositorySuite) TestCategoryFindVisible() {
	owner := s.user.ID
	other := uuid.New()

	require.NoError(s.T(), s.categories.Create(s.ctx, entity.NewCategory("Outros", entity.CategoryKindExpense, "📦", nil)))
	require.NoError(s.T(), s.categories.Create(s.ctx, entity.NewCategory("Mercado", entity.CategoryKindExpense, "🛒", &owner)))
	require.NoError(s.T(), s.categories.Create(s.ctx, entity.NewCategory("Freelance", entity.CategoryKindIncome, "💻", &owner)))
	require.NoError(s.T(), s.categories.Create(s.ctx, entity.NewCategory("Alheia", entity.CategoryKindExpense, "❓", &other)))

	visible, err := s.categories.FindVisible(s.ctx, &owner, nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), visible, 3)
	assert.Equal(s.T(), "Freelance", visible[0].Name)

	expense := entity.CategoryKindExpense
	visible, err = s.categories.FindVisible(s.ctx, &owner, &expense)
	require.NoError(s.T(), err)
	assert.Len(s.T(), visible, 2)

	anonymous, err := s.categories.FindVisible(s.ctx, nil, nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), anonymous, 1)
	assert.True(s.T(), anonymous[0].IsSystem())
}

func (s *RepositorySuite) TestCategoryNameUniquePerOwner() {
	owner := s.user.ID
	require.NoError(s.T(), s.categories.Create(s.ctx, entity.NewCategory("Mercado", entity.CategoryKindExpense, "🛒", &owner)))

	err := s.categories.Create(s.ctx, entity.NewCategory("Mercado", entity.CategoryKindExpense, "🛒", &owner))
	assert.ErrorIs(s.T(), err, domainerror.ErrCategoryNameExists)

	other := uuid.New()
	assert.NoError(s.T(), s.categories.Create(s.ctx, entity.NewCategory("Mercado", entity.CategoryKindExpense, "🛒", &other)))

	found, err := s.categories.FindByNameAndOwner(s.ctx, "Mercado", &owner)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), found)
	assert.Equal(s.T(), owner, *found.OwnerID)

	missing, err := s.categories.FindByNameAndOwner(s.ctx, "Mercado", nil)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), missing)
}

func (s *RepositorySuite) TestCategoryCountTransactions() {
	owner := s.user.ID
	category := entity.NewCategory("Mercado", entity.CategoryKindExpense, "🛒", &owner)
	require.NoError(s.T(), s.categories.Create(s.ctx, category))

	s.addTransaction(entity.DirectionOut, "10", &category.ID, time.Now())
	s.addTransaction(entity.DirectionOut, "20", &category.ID, time.Now())
	s.addTransaction(entity.DirectionOut, "30", nil, time.Now())

	count, err := s.categories.CountTransactions(s.ctx, category.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), count)

	assert.ErrorIs(s.T(), s.categories.Delete(s.ctx, uuid.New()), domainerror.ErrCategoryNotFound)
}

func (s *RepositorySuite) TestTransactionFilters() {
	owner := s.user.ID
	category := entity.NewCategory("Mercado", entity.CategoryKindExpense, "🛒", &owner)
	require.NoError(s.T(), s.categories.Create(s.ctx, category))

	march := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)

	s.addTransaction(entity.DirectionIn, "1000", nil, march)
	s.addTransaction(entity.DirectionOut, "200", &category.ID, march.Add(time.Hour))
	s.addTransaction(entity.DirectionOut, "50", nil, april)

	all, err := s.transactions.FindByUserID(s.ctx, s.user.ID, entity.TransactionFilter{})
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 3)
	assert.True(s.T(), all[0].Transaction.OccurredAt.Equal(april), "newest first")

	out := entity.DirectionOut
	outs, err := s.transactions.FindByUserID(s.ctx, s.user.ID, entity.TransactionFilter{Direction: &out})
	require.NoError(s.T(), err)
	assert.Len(s.T(), outs, 2)

	byCategory, err := s.transactions.FindByUserID(s.ctx, s.user.ID, entity.TransactionFilter{CategoryID: &category.ID})
	require.NoError(s.T(), err)
	require.Len(s.T(), byCategory, 1)
	require.NotNil(s.T(), byCategory[0].Category)
	assert.Equal(s.T(), "Mercado", byCategory[0].Category.Name)

	from := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	inApril, err := s.transactions.FindByUserID(s.ctx, s.user.ID, entity.TransactionFilter{From: &from, To: &to})
	require.NoError(s.T(), err)
	assert.Len(s.T(), inApril, 1)

	others, err := s.transactions.FindByUserID(s.ctx, uuid.New(), entity.TransactionFilter{})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), others)
}

func (s *RepositorySuite) TestTransactionBalance() {
	balance, err := s.transactions.GetBalance(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), balance.IsZero())

	s.addTransaction(entity.DirectionIn, "1000.10", nil, time.Now())
	s.addTransaction(entity.DirectionOut, "200.05", nil, time.Now())
	s.addTransaction(entity.DirectionOut, "0.05", nil, time.Now())

	balance, err = s.transactions.GetBalance(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "800.00", balance.StringFixed(2))
}

func (s *RepositorySuite) TestTransactionUpdateAndDelete() {
	tx := s.addTransaction(entity.DirectionOut, "10", nil, time.Now())

	tx.Amount = decimal.RequireFromString("12.34")
	tx.Description = "Padaria"
	require.NoError(s.T(), s.transactions.Update(s.ctx, tx))

	found, err := s.transactions.FindByID(s.ctx, tx.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "12.34", found.Amount.StringFixed(2))
	assert.Equal(s.T(), "Padaria", found.Description)

	require.NoError(s.T(), s.transactions.Delete(s.ctx, tx.ID))
	_, err = s.transactions.FindByID(s.ctx, tx.ID)
	assert.ErrorIs(s.T(), err, domainerror.ErrTransactionNotFound)
	assert.ErrorIs(s.T(), s.transactions.Delete(s.ctx, tx.ID), domainerror.ErrTransactionNotFound)
}

func (s *RepositorySuite) TestGoalMarkCompletedOnce() {
	now := time.Now().UTC()
	goal := entity.NewGoal(s.user.ID, "Viagem", decimal.NewFromInt(800), now, now.AddDate(0, 1, 0))
	require.NoError(s.T(), s.goals.Create(s.ctx, goal))

	completedAt := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	changed, err := s.goals.MarkCompleted(s.ctx, goal.ID, completedAt)
	require.NoError(s.T(), err)
	assert.True(s.T(), changed)

	changed, err = s.goals.MarkCompleted(s.ctx, goal.ID, completedAt.Add(time.Hour))
	require.NoError(s.T(), err)
	assert.False(s.T(), changed)

	found, err := s.goals.FindByID(s.ctx, goal.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), found.Completed)
	assert.True(s.T(), found.UpdatedAt.Equal(completedAt))
}

func (s *RepositorySuite) TestGoalUpdateKeepsCompletion() {
	now := time.Now().UTC()
	goal := entity.NewGoal(s.user.ID, "Viagem", decimal.NewFromInt(800), now, now.AddDate(0, 1, 0))
	require.NoError(s.T(), s.goals.Create(s.ctx, goal))

	goal.Name = "Viagem longa"
	goal.Completed = true
	require.NoError(s.T(), s.goals.Update(s.ctx, goal))

	found, err := s.goals.FindByID(s.ctx, goal.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Viagem longa", found.Name)
	assert.False(s.T(), found.Completed)

	_, err = s.goals.FindByID(s.ctx, uuid.New())
	assert.ErrorIs(s.T(), err, domainerror.ErrGoalNotFound)
}

func (s *RepositorySuite) TestUnitOfWorkRollsBack() {
	boom := errors.New("boom")

	err := s.uow.Do(s.ctx, func(ctx context.Context, repos adapter.Repositories) error {
		tx := entity.NewTransaction(s.user.ID, "tx", decimal.NewFromInt(5), entity.DirectionIn, nil, time.Now())
		if err := repos.Transactions.Create(ctx, tx); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(s.T(), err, boom)

	all, err := s.transactions.FindByUserID(s.ctx, s.user.ID, entity.TransactionFilter{})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), all)
}

func (s *RepositorySuite) TestReportCategoryTotals() {
	owner := s.user.ID
	market := entity.NewCategory("Mercado", entity.CategoryKindExpense, "🛒", &owner)
	salary := entity.NewCategory("Salário", entity.CategoryKindIncome, "💼", &owner)
	require.NoError(s.T(), s.categories.Create(s.ctx, market))
	require.NoError(s.T(), s.categories.Create(s.ctx, salary))

	now := time.Now().UTC()
	s.addTransaction(entity.DirectionIn, "3000", &salary.ID, now)
	s.addTransaction(entity.DirectionOut, "120.50", &market.ID, now)
	s.addTransaction(entity.DirectionOut, "79.50", &market.ID, now)
	s.addTransaction(entity.DirectionOut, "15", nil, now)

	totals, err := s.reports.GetCategoryTotals(s.ctx, s.user.ID, report.Window{})
	require.NoError(s.T(), err)
	require.Len(s.T(), totals, 3)

	assert.Equal(s.T(), market.ID, *totals[0].CategoryID)
	assert.Equal(s.T(), int64(2), totals[0].Count)
	assert.Equal(s.T(), "200.00", totals[0].TotalOut.StringFixed(2))

	assert.Nil(s.T(), totals[1].CategoryID)
	assert.Equal(s.T(), "15.00", totals[1].TotalOut.StringFixed(2))

	assert.Equal(s.T(), salary.ID, *totals[2].CategoryID)
	assert.Equal(s.T(), "3000.00", totals[2].TotalIn.StringFixed(2))

	future := now.AddDate(1, 0, 0)
	empty, err := s.reports.GetCategoryTotals(s.ctx, s.user.ID, report.Window{From: &future})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), empty)
}
