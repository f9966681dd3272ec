// Package errors provides the closed set of application errors for the Hearth API.
// Every service-layer failure is an *AppError tagged with a Kind; the HTTP layer maps
// the Kind to a status code and never exposes Internal to clients.
package errors

import "net/http"

// Kind is the variant tag of an AppError.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindInternal      Kind = "internal"
)

// Status returns the HTTP status for the kind. Unknown kinds map to 500.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// AppError represents a structured application error: a kind, the entity family it
// concerns, a stable code, a fixed human message and an optional internal cause.
type AppError struct {
	Kind     Kind   `json:"-"`
	Entity   string `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// StatusCode returns the HTTP status derived from the error kind.
func (e *AppError) StatusCode() int { return e.Kind.Status() }

// Is reports whether target is an AppError with the same code, so wrapped
// copies still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same kind/code/message but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Kind:     sentinel.Kind,
		Entity:   sentinel.Entity,
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Kind:     sentinel.Kind,
		Entity:   sentinel.Entity,
		Code:     sentinel.Code,
		Message:  message,
		Internal: sentinel.Internal,
	}
}

func newErr(kind Kind, entity, code, message string) *AppError {
	return &AppError{Kind: kind, Entity: entity, Code: code, Message: message}
}

// Authentication & audit-call resolution errors.
var (
	ErrUnauthorized       = newErr(KindAuthorization, "user", "UNAUTHORIZED", "Authentication required")
	ErrInvalidCredentials = newErr(KindAuthorization, "user", "INVALID_CREDENTIALS", "Invalid email or password")
	ErrMissingAuditCall   = newErr(KindAuthorization, "audit", "MISSING_AUDIT_CALL", "Missing audit call")
	ErrAuditUserNotFound  = newErr(KindAuthorization, "audit", "AUDIT_USER_NOT_FOUND", "User does not exist")
)

// General errors.
var (
	ErrInvalidInput   = newErr(KindValidation, "", "INVALID_INPUT", "Invalid input")
	ErrNotFound       = newErr(KindNotFound, "", "NOT_FOUND", "Not found")
	ErrInternalServer = newErr(KindInternal, "", "INTERNAL_ERROR", "Something went wrong, please try again later")
)

// User & household errors.
var (
	ErrUserNotFound      = newErr(KindNotFound, "user", "USER_NOT_FOUND", "User not found")
	ErrDuplicateEmail    = newErr(KindConflict, "user", "DUPLICATE_EMAIL", "A user with this email already exists")
	ErrInvalidEmail      = newErr(KindValidation, "user", "INVALID_EMAIL", "Invalid email")
	ErrInvalidPassword   = newErr(KindValidation, "user", "INVALID_PASSWORD", "Invalid password")
	ErrInvalidHousehold  = newErr(KindValidation, "household", "INVALID_HOUSEHOLD_NAME", "Invalid household name")
	ErrHouseholdNotFound = newErr(KindNotFound, "household", "HOUSEHOLD_NOT_FOUND", "Household not found")
)

// Category errors.
var (
	ErrCategoryNotFound       = newErr(KindNotFound, "category", "CATEGORY_NOT_FOUND", "Category not found")
	ErrCategoryInvalidName    = newErr(KindValidation, "category", "CATEGORY_INVALID_NAME", "Invalid name")
	ErrCategoryHasSubcategory = newErr(KindConflict, "category", "CATEGORY_HAS_SUBCATEGORIES", "Cannot delete with subcategories")
)

// Subcategory errors.
var (
	ErrSubcategoryNotFound         = newErr(KindNotFound, "subcategory", "SUBCATEGORY_NOT_FOUND", "Subcategory not found")
	ErrSubcategoryInvalidCategory  = newErr(KindValidation, "subcategory", "SUBCATEGORY_INVALID_CATEGORY", "Invalid category")
	ErrSubcategoryCategoryNotFound = newErr(KindNotFound, "subcategory", "SUBCATEGORY_CATEGORY_NOT_FOUND", "Category not found")
	ErrSubcategoryInvalidName      = newErr(KindValidation, "subcategory", "SUBCATEGORY_INVALID_NAME", "Invalid name")
	ErrSubcategoryHasExpenses      = newErr(KindConflict, "subcategory", "SUBCATEGORY_HAS_EXPENSES", "Cannot delete with expenses")
	ErrSubcategoryHasBudgets       = newErr(KindConflict, "subcategory", "SUBCATEGORY_HAS_BUDGETS", "Cannot delete with budgets")
)

// Budget errors.
var (
	ErrBudgetNotFound            = newErr(KindNotFound, "budget", "BUDGET_NOT_FOUND", "Budget not found")
	ErrBudgetInvalidSubcategory  = newErr(KindValidation, "budget", "BUDGET_INVALID_SUBCATEGORY", "Invalid subcategory")
	ErrBudgetSubcategoryNotFound = newErr(KindNotFound, "budget", "BUDGET_SUBCATEGORY_NOT_FOUND", "Subcategory not found")
	ErrBudgetInvalidYear         = newErr(KindValidation, "budget", "BUDGET_INVALID_YEAR", "Invalid year")
	ErrBudgetInvalidMonth        = newErr(KindValidation, "budget", "BUDGET_INVALID_MONTH", "Invalid month")
	ErrBudgetInvalidCents        = newErr(KindValidation, "budget", "BUDGET_INVALID_CENTS", "Invalid budget")
	ErrBudgetExists              = newErr(KindConflict, "budget", "BUDGET_EXISTS", "Budget already exists")
)

// Vendor errors.
var (
	ErrVendorNotFound    = newErr(KindNotFound, "vendor", "VENDOR_NOT_FOUND", "Vendor not found")
	ErrVendorInvalidName = newErr(KindValidation, "vendor", "VENDOR_INVALID_NAME", "Invalid name")
	ErrVendorHasExpenses = newErr(KindConflict, "vendor", "VENDOR_HAS_EXPENSES", "Cannot delete with expenses")
)

// Household member errors.
var (
	ErrMemberNotFound    = newErr(KindNotFound, "household_member", "HOUSEHOLD_MEMBER_NOT_FOUND", "Household member not found")
	ErrMemberInvalidName = newErr(KindValidation, "household_member", "HOUSEHOLD_MEMBER_INVALID_NAME", "Invalid name")
	ErrMemberHasExpenses = newErr(KindConflict, "household_member", "HOUSEHOLD_MEMBER_HAS_EXPENSES", "Cannot delete with expenses")
	ErrMemberHasIncome   = newErr(KindConflict, "household_member", "HOUSEHOLD_MEMBER_HAS_INCOME", "Cannot delete with income")
)

// Fund errors.
var (
	ErrFundNotFound    = newErr(KindNotFound, "fund", "FUND_NOT_FOUND", "Fund not found")
	ErrFundInvalidName = newErr(KindValidation, "fund", "FUND_INVALID_NAME", "Invalid name")
	ErrFundHasDeposits = newErr(KindConflict, "fund", "FUND_HAS_DEPOSITS", "Cannot delete with deposits")
	ErrFundHasExpenses = newErr(KindConflict, "fund", "FUND_HAS_EXPENSES", "Cannot delete with expenses")
)

// Deposit errors.
var (
	ErrDepositNotFound      = newErr(KindNotFound, "deposit", "DEPOSIT_NOT_FOUND", "Deposit not found")
	ErrDepositInvalidFund   = newErr(KindValidation, "deposit", "DEPOSIT_INVALID_FUND", "Invalid fund")
	ErrDepositFundNotFound  = newErr(KindNotFound, "deposit", "DEPOSIT_FUND_NOT_FOUND", "Fund not found")
	ErrDepositInvalidDate   = newErr(KindValidation, "deposit", "DEPOSIT_INVALID_DATE", "Invalid date")
	ErrDepositInvalidAmount = newErr(KindValidation, "deposit", "DEPOSIT_INVALID_AMOUNT", "Invalid amount")
)

// Expense errors.
var (
	ErrExpenseNotFound            = newErr(KindNotFound, "expense", "EXPENSE_NOT_FOUND", "Expense not found")
	ErrExpenseInvalidSubcategory  = newErr(KindValidation, "expense", "EXPENSE_INVALID_SUBCATEGORY", "Invalid subcategory")
	ErrExpenseInvalidVendor       = newErr(KindValidation, "expense", "EXPENSE_INVALID_VENDOR", "Invalid vendor")
	ErrExpenseInvalidMember       = newErr(KindValidation, "expense", "EXPENSE_INVALID_HOUSEHOLD_MEMBER", "Invalid household member")
	ErrExpenseInvalidDate         = newErr(KindValidation, "expense", "EXPENSE_INVALID_DATE", "Invalid date")
	ErrExpenseInvalidAmount       = newErr(KindValidation, "expense", "EXPENSE_INVALID_AMOUNT", "Invalid amount")
	ErrExpenseInvalidReimbursed   = newErr(KindValidation, "expense", "EXPENSE_INVALID_REIMBURSED", "Invalid reimbursed amount")
	ErrExpenseInvalidDescription  = newErr(KindValidation, "expense", "EXPENSE_INVALID_DESCRIPTION", "Invalid description")
	ErrExpenseInvalidFund         = newErr(KindValidation, "expense", "EXPENSE_INVALID_FUND", "Invalid fund")
	ErrExpenseSubcategoryNotFound = newErr(KindNotFound, "expense", "EXPENSE_SUBCATEGORY_NOT_FOUND", "Subcategory not found")
	ErrExpenseVendorNotFound      = newErr(KindNotFound, "expense", "EXPENSE_VENDOR_NOT_FOUND", "Vendor not found")
	ErrExpenseMemberNotFound      = newErr(KindNotFound, "expense", "EXPENSE_HOUSEHOLD_MEMBER_NOT_FOUND", "Household member not found")
	ErrExpenseFundNotFound        = newErr(KindNotFound, "expense", "EXPENSE_FUND_NOT_FOUND", "Fund not found")
)

// Income errors.
var (
	ErrIncomeNotFound           = newErr(KindNotFound, "income", "INCOME_NOT_FOUND", "Income not found")
	ErrIncomeInvalidMember      = newErr(KindValidation, "income", "INCOME_INVALID_HOUSEHOLD_MEMBER", "Invalid household member")
	ErrIncomeInvalidDate        = newErr(KindValidation, "income", "INCOME_INVALID_DATE", "Invalid date")
	ErrIncomeInvalidAmount      = newErr(KindValidation, "income", "INCOME_INVALID_AMOUNT", "Invalid amount")
	ErrIncomeInvalidDescription = newErr(KindValidation, "income", "INCOME_INVALID_DESCRIPTION", "Invalid description")
	ErrIncomeMemberNotFound     = newErr(KindNotFound, "income", "INCOME_HOUSEHOLD_MEMBER_NOT_FOUND", "Household member not found")
)
