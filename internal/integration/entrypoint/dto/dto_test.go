package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

func init() {
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		raw      string
		expected time.Time
		wantErr  bool
	}{
		{raw: "2026-03-05", expected: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{raw: " 2026-03-05 ", expected: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{raw: "2026-03-05T10:30:00Z", expected: time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)},
		{raw: "2026-03-05T10:30:00-03:00", expected: time.Date(2026, time.March, 5, 13, 30, 0, 0, time.UTC)},
		{raw: "05/03/2026", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDateTime(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "800.00", Money(decimal.NewFromInt(800)))
	assert.Equal(t, "0.10", Money(decimal.RequireFromString("0.1")))
	assert.Equal(t, "12.35", Money(decimal.RequireFromString("12.345")))
}

func TestCreateTransactionRequestAcceptsNumberOrString(t *testing.T) {
	for _, body := range []string{
		`{"description":"Café","amount":7.9,"direction":"out"}`,
		`{"description":"Café","amount":"7.90","direction":"out"}`,
	} {
		var req CreateTransactionRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		require.NoError(t, binding.Validator.ValidateStruct(&req))
		assert.Equal(t, "7.90", req.Amount.StringFixed(2))
	}
}

func TestRequestValidationTags(t *testing.T) {
	amount := decimal.NewFromInt(1)

	invalid := CreateTransactionRequest{Description: "Café", Amount: &amount, Direction: "sideways"}
	err := binding.Validator.ValidateStruct(&invalid)
	require.Error(t, err)
	assert.True(t, FailedTag(err, "direction"))
	assert.Equal(t, map[string]string{"Direction": "direction"}, ValidationDetails(err))

	missing := CreateTransactionRequest{Description: "Café", Direction: "in"}
	err = binding.Validator.ValidateStruct(&missing)
	require.Error(t, err)
	assert.False(t, FailedTag(err, "direction"))
	assert.Equal(t, "required", ValidationDetails(err)["Amount"])

	kind := CreateCategoryRequest{Name: "Mercado", Kind: "other"}
	err = binding.Validator.ValidateStruct(&kind)
	require.Error(t, err)
	assert.True(t, FailedTag(err, "category_kind"))

	bad := "sideways"
	update := UpdateTransactionRequest{Direction: &bad}
	assert.Error(t, binding.Validator.ValidateStruct(&update))
	assert.NoError(t, binding.Validator.ValidateStruct(&UpdateTransactionRequest{}))

	assert.Nil(t, ValidationDetails(assert.AnError))
}

func TestToTransactionResponse(t *testing.T) {
	userID := uuid.New()
	category := entity.NewCategory("Mercado", entity.CategoryKindExpense, "🛒", &userID)
	tx := entity.NewTransaction(userID, "Feira", decimal.RequireFromString("40.5"), entity.DirectionOut, &category.ID, time.Now())

	response := ToTransactionResponse(&entity.TransactionWithCategory{Transaction: tx, Category: category})

	assert.Equal(t, "40.50", response.Amount)
	assert.Equal(t, "out", response.Direction)
	require.NotNil(t, response.CategoryID)
	assert.Equal(t, category.ID.String(), *response.CategoryID)
	require.NotNil(t, response.Category)
	assert.Equal(t, "Mercado", response.Category.Name)

	uncategorized := ToTransactionResponse(&entity.TransactionWithCategory{
		Transaction: entity.NewTransaction(userID, "Pix", decimal.NewFromInt(1), entity.DirectionIn, nil, time.Now()),
	})
	assert.Nil(t, uncategorized.CategoryID)
	assert.Nil(t, uncategorized.Category)
}

func TestToGoalSettlementResponse(t *testing.T) {
	now := time.Now().UTC()
	goal := entity.NewGoal(uuid.New(), "Viagem", decimal.NewFromInt(800), now, now.AddDate(0, 1, 0))
	goal.Completed = true
	withStatus := &entity.GoalWithStatus{Goal: goal, Status: entity.GoalStatusCompleted}

	response := ToGoalSettlementResponse(withStatus, nil)
	assert.Nil(t, response.Debit)
	assert.Equal(t, "800.00", response.Goal.TargetAmount)
	assert.Equal(t, "completed", response.Goal.Status)

	debit := entity.NewTransaction(goal.UserID, goal.SettlementDescription(), goal.TargetAmount, entity.DirectionOut, nil, now)
	response = ToGoalSettlementResponse(withStatus, debit)
	require.NotNil(t, response.Debit)
	assert.Equal(t, "800.00", response.Debit.Amount)
	assert.Equal(t, "Meta concluída: Viagem", response.Debit.Description)
}
