package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestTransaction_Validate(t *testing.T) {
	validAccountID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				AccountID:   validAccountID,
				Kind:        TransactionKindExpense,
				Amount:      decimal.NewFromFloat(45.50),
				Description: "Bakery",
			},
		},
		{
			name: "valid income with installments",
			transaction: Transaction{
				AccountID:          validAccountID,
				Kind:               TransactionKindIncome,
				Amount:             decimal.NewFromFloat(500),
				Description:        "Refund 2/3",
				InstallmentCurrent: intPtr(2),
				InstallmentTotal:   intPtr(3),
			},
		},
		{
			name: "missing account ID",
			transaction: Transaction{
				Kind:        TransactionKindExpense,
				Amount:      decimal.NewFromFloat(10),
				Description: "Bakery",
			},
			wantErr: ErrAccountRequired,
		},
		{
			name: "invalid kind",
			transaction: Transaction{
				AccountID:   validAccountID,
				Kind:        "debit",
				Amount:      decimal.NewFromFloat(10),
				Description: "Bakery",
			},
			wantErr: ErrInvalidTransactionKind,
		},
		{
			name: "zero amount",
			transaction: Transaction{
				AccountID:   validAccountID,
				Kind:        TransactionKindExpense,
				Amount:      decimal.Zero,
				Description: "Bakery",
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				AccountID:   validAccountID,
				Kind:        TransactionKindExpense,
				Amount:      decimal.NewFromFloat(-3),
				Description: "Bakery",
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "blank description",
			transaction: Transaction{
				AccountID:   validAccountID,
				Kind:        TransactionKindExpense,
				Amount:      decimal.NewFromFloat(3),
				Description: "   ",
			},
			wantErr: ErrDescriptionRequired,
		},
		{
			name: "installment current above total",
			transaction: Transaction{
				AccountID:          validAccountID,
				Kind:               TransactionKindExpense,
				Amount:             decimal.NewFromFloat(3),
				Description:        "Store",
				InstallmentCurrent: intPtr(7),
				InstallmentTotal:   intPtr(6),
			},
			wantErr: ErrInvalidInstallment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	expense := Transaction{Kind: TransactionKindExpense, Amount: decimal.NewFromFloat(12.30)}
	income := Transaction{Kind: TransactionKindIncome, Amount: decimal.NewFromFloat(12.30)}

	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromFloat(-12.30)))
	assert.True(t, income.SignedAmount().Equal(decimal.NewFromFloat(12.30)))
}

func TestTransaction_IsInstallment(t *testing.T) {
	tx := Transaction{}
	assert.False(t, tx.IsInstallment())

	tx.InstallmentCurrent = intPtr(1)
	tx.InstallmentTotal = intPtr(1)
	assert.False(t, tx.IsInstallment())

	tx.InstallmentTotal = intPtr(4)
	assert.True(t, tx.IsInstallment())
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	input := time.Date(2026, 1, 20, 22, 15, 0, 0, loc)

	got := NormalizeDate(input)

	assert.Equal(t, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), got)
	assert.True(t, NormalizeDate(time.Time{}).IsZero())
}

func TestSplitAndJoinTags(t *testing.T) {
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{"trip", "car"}, SplitTags(" trip, ,car "))
	assert.Equal(t, "trip,car", JoinTags([]string{" trip", "", "car "}))

	tx := Transaction{Tags: "food,family"}
	require.Len(t, tx.TagList(), 2)
	assert.Equal(t, "family", tx.TagList()[1])
}

func TestAccount_CalculateBalance(t *testing.T) {
	account := Account{Name: "Checking", Kind: AccountKindChecking, OpeningBalance: decimal.NewFromInt(1000)}

	balance := account.CalculateBalance([]Transaction{
		{Kind: TransactionKindExpense, Amount: decimal.NewFromFloat(45.50)},
		{Kind: TransactionKindIncome, Amount: decimal.NewFromInt(500)},
	})

	assert.True(t, balance.Equal(decimal.NewFromFloat(1454.50)), balance.String())
}

func TestAccount_Validate(t *testing.T) {
	assert.NoError(t, (&Account{Name: "Card", Kind: AccountKindCreditCard}).Validate())
	assert.ErrorIs(t, (&Account{Name: "", Kind: AccountKindChecking}).Validate(), ErrAccountNameRequired)
	assert.ErrorIs(t, (&Account{Name: "Savings", Kind: "savings"}).Validate(), ErrInvalidAccountKind)
}

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantErr  error
	}{
		{"valid", Category{Name: "Food", Kind: CategoryKindExpense, Color: "#22C55E"}, nil},
		{"blank name", Category{Name: " ", Kind: CategoryKindExpense, Color: "#22C55E"}, ErrCategoryNameRequired},
		{"bad kind", Category{Name: "Food", Kind: "other", Color: "#22C55E"}, ErrInvalidCategoryKind},
		{"bad color", Category{Name: "Food", Kind: CategoryKindIncome, Color: "green"}, ErrInvalidCategoryColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
