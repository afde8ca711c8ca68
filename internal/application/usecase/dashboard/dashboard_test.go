package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/domain/entity"
)

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(r.transactions))
	for i := len(r.transactions) - 1; i >= 0; i-- {
		if r.transactions[i].UserID == userID {
			out = append(out, r.transactions[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeTargetRepo struct {
	targets []*entity.Target
}

func (r *fakeTargetRepo) Create(_ context.Context, target *entity.Target) error {
	r.targets = append(r.targets, target)
	return nil
}

func (r *fakeTargetRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Target, error) {
	return r.targets, nil
}

func (r *fakeTargetRepo) UpdateCollectedAmounts(_ context.Context, _ []*entity.Target) error {
	return nil
}

func (r *fakeTargetRepo) DeleteByIDAndUser(_ context.Context, _, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func transactionAt(userID uuid.UUID, txType entity.TransactionType, amount int64, date time.Time) *entity.Transaction {
	tx := entity.NewTransaction(userID, txType, decimal.NewFromInt(amount), "test")
	tx.Date = date
	return tx
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	t.Run("totals and balance", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			transactionAt(userID, entity.TransactionTypeIncome, 300, now),
			transactionAt(userID, entity.TransactionTypeIncome, 200, now),
			transactionAt(userID, entity.TransactionTypeExpense, 120, now),
		}}
		target := entity.NewTarget(userID, "laptop", decimal.NewFromInt(1000), decimal.NewFromInt(50))
		target.Collected = decimal.NewFromInt(250)
		targetRepo := &fakeTargetRepo{targets: []*entity.Target{target}}

		uc := NewGetSummaryUseCase(txRepo, targetRepo)
		output, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.TotalIncome.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected income 500, got %s", output.TotalIncome)
		}
		if !output.TotalExpense.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected expense 120, got %s", output.TotalExpense)
		}
		if !output.Balance.Equal(decimal.NewFromInt(380)) {
			t.Errorf("expected balance 380, got %s", output.Balance)
		}
		if output.AggregateProgress != 25 {
			t.Errorf("expected aggregate progress 25, got %d", output.AggregateProgress)
		}
	})

	t.Run("no targets yields zero aggregate progress", func(t *testing.T) {
		uc := NewGetSummaryUseCase(&fakeTransactionRepo{}, &fakeTargetRepo{})
		output, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AggregateProgress != 0 {
			t.Errorf("expected aggregate progress 0, got %d", output.AggregateProgress)
		}
		if !output.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", output.Balance)
		}
	})

	t.Run("summary is idempotent without mutation", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			transactionAt(userID, entity.TransactionTypeIncome, 75, now),
		}}
		uc := NewGetSummaryUseCase(txRepo, &fakeTargetRepo{})

		first, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !first.TotalIncome.Equal(second.TotalIncome) || !first.Balance.Equal(second.Balance) {
			t.Error("expected identical summaries on repeated calls")
		}
	})
}

func TestGetMonthlyTrends(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	month := func(y int, m time.Month) time.Time {
		return time.Date(y, m, 15, 12, 0, 0, 0, time.UTC)
	}

	t.Run("buckets by calendar month in chronological order", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			transactionAt(userID, entity.TransactionTypeIncome, 100, month(2026, time.March)),
			transactionAt(userID, entity.TransactionTypeExpense, 40, month(2026, time.March)),
			transactionAt(userID, entity.TransactionTypeIncome, 200, month(2026, time.January)),
		}}

		uc := NewGetMonthlyTrendsUseCase(txRepo)
		output, err := uc.Execute(ctx, GetMonthlyTrendsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Trends) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(output.Trends))
		}
		if output.Trends[0].PeriodLabel != "Jan 2026" {
			t.Errorf("expected first bucket Jan 2026, got %s", output.Trends[0].PeriodLabel)
		}
		if output.Trends[1].PeriodLabel != "Mar 2026" {
			t.Errorf("expected second bucket Mar 2026, got %s", output.Trends[1].PeriodLabel)
		}
		if !output.Trends[1].Income.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected March income 100, got %s", output.Trends[1].Income)
		}
		if !output.Trends[1].Expense.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected March expense 40, got %s", output.Trends[1].Expense)
		}
		if !output.Trends[1].Balance.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected March balance 60, got %s", output.Trends[1].Balance)
		}
	})

	t.Run("keeps only the most recent six months", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{}
		for m := time.January; m <= time.August; m++ {
			txRepo.transactions = append(txRepo.transactions,
				transactionAt(userID, entity.TransactionTypeIncome, 10, month(2026, m)))
		}

		uc := NewGetMonthlyTrendsUseCase(txRepo)
		output, err := uc.Execute(ctx, GetMonthlyTrendsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Trends) != MaxTrendMonths {
			t.Fatalf("expected %d buckets, got %d", MaxTrendMonths, len(output.Trends))
		}
		if output.Trends[0].PeriodLabel != "Mar 2026" {
			t.Errorf("expected oldest kept bucket Mar 2026, got %s", output.Trends[0].PeriodLabel)
		}
		if output.Trends[len(output.Trends)-1].PeriodLabel != "Aug 2026" {
			t.Errorf("expected newest bucket Aug 2026, got %s", output.Trends[len(output.Trends)-1].PeriodLabel)
		}
	})

	t.Run("empty ledger yields no buckets", func(t *testing.T) {
		uc := NewGetMonthlyTrendsUseCase(&fakeTransactionRepo{})
		output, err := uc.Execute(ctx, GetMonthlyTrendsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Trends) != 0 {
			t.Errorf("expected no buckets, got %d", len(output.Trends))
		}
	})
}
