package handlers

import (
	"hearth/internal/models"
	"hearth/internal/money"
)

// Money-bearing rows are returned with their integer cents plus a two-place
// decimal rendering for display.

// FundResponse is a fund with its formatted balance.
type FundResponse struct {
	models.Fund
	Balance string `json:"balance"`
}

func newFundResponse(f models.Fund) FundResponse {
	return FundResponse{Fund: f, Balance: money.Format(f.BalanceCents)}
}

// DepositResponse is a deposit with its formatted amount.
type DepositResponse struct {
	models.Deposit
	Amount string `json:"amount"`
}

func newDepositResponse(d models.Deposit) DepositResponse {
	return DepositResponse{Deposit: d, Amount: money.Format(d.AmountCents)}
}

// ExpenseResponse is an expense with its formatted amounts. Net is what the
// expense draws from its fund.
type ExpenseResponse struct {
	models.Expense
	Amount     string `json:"amount"`
	Reimbursed string `json:"reimbursed"`
	Net        string `json:"net"`
}

func newExpenseResponse(e models.Expense) ExpenseResponse {
	return ExpenseResponse{
		Expense:    e,
		Amount:     money.Format(e.AmountCents),
		Reimbursed: money.Format(e.ReimbursedCents),
		Net:        money.Format(e.NetCents()),
	}
}

// IncomeResponse is an income entry with its formatted amount.
type IncomeResponse struct {
	models.Income
	Amount string `json:"amount"`
}

func newIncomeResponse(i models.Income) IncomeResponse {
	return IncomeResponse{Income: i, Amount: money.Format(i.AmountCents)}
}

// BudgetResponse is a budget with its formatted amount.
type BudgetResponse struct {
	models.Budget
	Amount string `json:"budget"`
}

func newBudgetResponse(b models.Budget) BudgetResponse {
	return BudgetResponse{Budget: b, Amount: money.Format(b.BudgetCents)}
}
