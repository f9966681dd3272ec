package services

import (
	"context"

	"gorm.io/gorm"

	"hearth/internal/models"
	"hearth/internal/pagination"
)

// ChangeSet is everything one mutation wrote, handed to the audit trail in the
// same transaction.
type ChangeSet struct {
	New     []models.Record
	Changed []Change
	Deleted []models.Record
}

// Change pairs the stored row with its updated copy.
type Change struct {
	Before models.Record
	After  models.Record
}

// Empty reports whether the change set holds no rows.
func (c ChangeSet) Empty() bool {
	return len(c.New) == 0 && len(c.Changed) == 0 && len(c.Deleted) == 0
}

// ExpenseFundAccounting selects how expenses move fund balances.
type ExpenseFundAccounting string

const (
	// ExpenseFundDeleteOnly leaves balances alone on expense create and update and
	// credits the net amount back on delete.
	ExpenseFundDeleteOnly ExpenseFundAccounting = "delete_only"
	// ExpenseFundSymmetric debits on create, moves the net on update and credits on
	// delete, so a fund balance always equals deposits minus attributed expenses.
	ExpenseFundSymmetric ExpenseFundAccounting = "symmetric"
)

// GetParams identifies one row read on behalf of an API call.
type GetParams struct {
	AuditAPICallID string
	ID             string
}

// DeleteParams identifies one row deleted on behalf of an API call.
type DeleteParams struct {
	AuditAPICallID string
	ID             string
}

// ListParams selects one page of rows read on behalf of an API call.
type ListParams struct {
	AuditAPICallID string
	Page           pagination.PageRequest
}

// Category params.
type (
	CreateCategoryParams struct {
		AuditAPICallID string
		Name           string
	}
	UpdateCategoryParams struct {
		AuditAPICallID string
		ID             string
		Name           string
	}
)

// Subcategory params.
type (
	CreateSubcategoryParams struct {
		AuditAPICallID string
		CategoryID     string
		Name           string
	}
	UpdateSubcategoryParams struct {
		AuditAPICallID string
		ID             string
		CategoryID     string
		Name           string
	}
)

// Budget params. Month is zero-based.
type (
	CreateBudgetParams struct {
		AuditAPICallID string
		SubcategoryID  string
		Year           int
		Month          int
		BudgetCents    int64
	}
	UpdateBudgetParams struct {
		AuditAPICallID string
		ID             string
		SubcategoryID  string
		Year           int
		Month          int
		BudgetCents    int64
	}
)

// Vendor params.
type (
	CreateVendorParams struct {
		AuditAPICallID string
		Name           string
		Description    string
	}
	UpdateVendorParams struct {
		AuditAPICallID string
		ID             string
		Name           string
		Description    string
	}
)

// Household member params.
type (
	CreateHouseholdMemberParams struct {
		AuditAPICallID string
		Name           string
	}
	UpdateHouseholdMemberParams struct {
		AuditAPICallID string
		ID             string
		Name           string
	}
)

// Fund params.
type (
	CreateFundParams struct {
		AuditAPICallID string
		Name           string
	}
	UpdateFundParams struct {
		AuditAPICallID string
		ID             string
		Name           string
	}
)

// Deposit params.
type (
	CreateDepositParams struct {
		AuditAPICallID string
		FundID         string
		Date           string
		AmountCents    int64
	}
	UpdateDepositParams struct {
		AuditAPICallID string
		ID             string
		FundID         string
		Date           string
		AmountCents    int64
	}
)

// Expense params. FundID is optional.
type (
	CreateExpenseParams struct {
		AuditAPICallID    string
		SubcategoryID     string
		VendorID          string
		HouseholdMemberID string
		FundID            *string
		Date              string
		AmountCents       int64
		ReimbursedCents   int64
		Description       string
	}
	UpdateExpenseParams struct {
		AuditAPICallID    string
		ID                string
		SubcategoryID     string
		VendorID          string
		HouseholdMemberID string
		FundID            *string
		Date              string
		AmountCents       int64
		ReimbursedCents   int64
		Description       string
	}
)

// Income params.
type (
	CreateIncomeParams struct {
		AuditAPICallID    string
		HouseholdMemberID string
		Date              string
		AmountCents       int64
		Description       string
	}
	UpdateIncomeParams struct {
		AuditAPICallID    string
		ID                string
		HouseholdMemberID string
		Date              string
		AmountCents       int64
		Description       string
	}
)

// RegisterParams creates a household together with its first user.
type RegisterParams struct {
	HouseholdName string
	Email         string
	Password      string
	FirstName     string
	LastName      string
}

// UserServicer defines the contract for user and household registration.
type UserServicer interface {
	Register(ctx context.Context, p RegisterParams) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
}

// AuditServicer records API calls and the rows each call changed.
type AuditServicer interface {
	RecordAPICall(ctx context.Context, call *models.AuditAPICall) error
	CompleteAPICall(ctx context.Context, auditAPICallID string, statusCode int) error
	// TrackChanges writes the change set through tx. It never opens a transaction of
	// its own, so a rollback of tx discards every row it wrote.
	TrackChanges(ctx context.Context, tx *gorm.DB, auditAPICallID string, changes ChangeSet) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, p CreateCategoryParams) (string, error)
	UpdateCategory(ctx context.Context, p UpdateCategoryParams) error
	DeleteCategory(ctx context.Context, p DeleteParams) error
	GetCategory(ctx context.Context, p GetParams) (*models.Category, error)
	ListCategories(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Category], error)
}

// SubcategoryServicer defines the contract for subcategory-related business logic.
type SubcategoryServicer interface {
	CreateSubcategory(ctx context.Context, p CreateSubcategoryParams) (string, error)
	UpdateSubcategory(ctx context.Context, p UpdateSubcategoryParams) error
	DeleteSubcategory(ctx context.Context, p DeleteParams) error
	GetSubcategory(ctx context.Context, p GetParams) (*models.Subcategory, error)
	ListSubcategories(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Subcategory], error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(ctx context.Context, p CreateBudgetParams) (string, error)
	UpdateBudget(ctx context.Context, p UpdateBudgetParams) error
	DeleteBudget(ctx context.Context, p DeleteParams) error
	GetBudget(ctx context.Context, p GetParams) (*models.Budget, error)
	ListBudgets(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Budget], error)
}

// VendorServicer defines the contract for vendor-related business logic.
type VendorServicer interface {
	CreateVendor(ctx context.Context, p CreateVendorParams) (string, error)
	UpdateVendor(ctx context.Context, p UpdateVendorParams) error
	DeleteVendor(ctx context.Context, p DeleteParams) error
	GetVendor(ctx context.Context, p GetParams) (*models.Vendor, error)
	ListVendors(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Vendor], error)
}

// HouseholdMemberServicer defines the contract for household member business logic.
type HouseholdMemberServicer interface {
	CreateHouseholdMember(ctx context.Context, p CreateHouseholdMemberParams) (string, error)
	UpdateHouseholdMember(ctx context.Context, p UpdateHouseholdMemberParams) error
	DeleteHouseholdMember(ctx context.Context, p DeleteParams) error
	GetHouseholdMember(ctx context.Context, p GetParams) (*models.HouseholdMember, error)
	ListHouseholdMembers(ctx context.Context, p ListParams) (*pagination.PageResponse[models.HouseholdMember], error)
}

// FundServicer defines the contract for fund-related business logic.
type FundServicer interface {
	CreateFund(ctx context.Context, p CreateFundParams) (string, error)
	UpdateFund(ctx context.Context, p UpdateFundParams) error
	DeleteFund(ctx context.Context, p DeleteParams) error
	GetFund(ctx context.Context, p GetParams) (*models.Fund, error)
	ListFunds(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Fund], error)
}

// DepositServicer defines the contract for deposit-related business logic.
type DepositServicer interface {
	CreateDeposit(ctx context.Context, p CreateDepositParams) (string, error)
	UpdateDeposit(ctx context.Context, p UpdateDepositParams) error
	DeleteDeposit(ctx context.Context, p DeleteParams) error
	GetDeposit(ctx context.Context, p GetParams) (*models.Deposit, error)
	ListDeposits(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Deposit], error)
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, p CreateExpenseParams) (string, error)
	UpdateExpense(ctx context.Context, p UpdateExpenseParams) error
	DeleteExpense(ctx context.Context, p DeleteParams) error
	GetExpense(ctx context.Context, p GetParams) (*models.Expense, error)
	ListExpenses(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Expense], error)
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(ctx context.Context, p CreateIncomeParams) (string, error)
	UpdateIncome(ctx context.Context, p UpdateIncomeParams) error
	DeleteIncome(ctx context.Context, p DeleteParams) error
	GetIncome(ctx context.Context, p GetParams) (*models.Income, error)
	ListIncome(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Income], error)
}
