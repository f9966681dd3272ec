package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"hearth/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Caller is a household, one of its users and an API call made by that user.
type Caller struct {
	Household *models.Household
	User      *models.User
	Call      *models.AuditAPICall
}

// HouseholdID returns the caller's household id.
func (c *Caller) HouseholdID() string { return c.Household.ID }

// CallID returns the id services expect as AuditAPICallID.
func (c *Caller) CallID() string { return c.Call.ID }

// CreateTestCaller creates a household with a user and a recorded API call.
func CreateTestCaller(t *testing.T, db *gorm.DB) *Caller {
	t.Helper()
	household := CreateTestHousehold(t, db)
	user := CreateTestUser(t, db, household.ID)
	return &Caller{Household: household, User: user, Call: CreateTestAPICall(t, db, user.ID)}
}

// CreateTestHousehold creates an empty household.
func CreateTestHousehold(t *testing.T, db *gorm.DB) *models.Household {
	t.Helper()

	household := &models.Household{Name: fmt.Sprintf("Household %d", nextID())}
	if err := db.Create(household).Error; err != nil {
		t.Fatalf("failed to create test household: %v", err)
	}
	return household
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB, householdID string) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, householdID, email)
}

// CreateTestUserWithEmail creates a user with the given email. The password is
// always "password123".
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, householdID, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		HouseholdID: householdID,
		Email:       email,
		Password:    string(hash),
		IsActive:    true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAPICall records an API call for the user.
func CreateTestAPICall(t *testing.T, db *gorm.DB, userID string) *models.AuditAPICall {
	t.Helper()

	call := &models.AuditAPICall{UserID: userID, Method: "POST", Path: "/api/v1/test"}
	if err := db.Create(call).Error; err != nil {
		t.Fatalf("failed to create test api call: %v", err)
	}
	return call
}

// CreateTestCategory creates a category in the household.
func CreateTestCategory(t *testing.T, db *gorm.DB, householdID string) *models.Category {
	t.Helper()

	category := &models.Category{HouseholdID: householdID, Name: fmt.Sprintf("Category %d", nextID())}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestSubcategory creates a subcategory of the category.
func CreateTestSubcategory(t *testing.T, db *gorm.DB, categoryID string) *models.Subcategory {
	t.Helper()

	sub := &models.Subcategory{CategoryID: categoryID, Name: fmt.Sprintf("Subcategory %d", nextID())}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create test subcategory: %v", err)
	}
	return sub
}

// CreateTestBudget creates a budget of 10000 cents for the period.
func CreateTestBudget(t *testing.T, db *gorm.DB, subcategoryID string, year, month int) *models.Budget {
	t.Helper()

	budget := &models.Budget{SubcategoryID: subcategoryID, Year: year, Month: month, BudgetCents: 10000}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestVendor creates a vendor in the household.
func CreateTestVendor(t *testing.T, db *gorm.DB, householdID string) *models.Vendor {
	t.Helper()

	vendor := &models.Vendor{HouseholdID: householdID, Name: fmt.Sprintf("Vendor %d", nextID())}
	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("failed to create test vendor: %v", err)
	}
	return vendor
}

// CreateTestMember creates a household member.
func CreateTestMember(t *testing.T, db *gorm.DB, householdID string) *models.HouseholdMember {
	t.Helper()

	member := &models.HouseholdMember{HouseholdID: householdID, Name: fmt.Sprintf("Member %d", nextID())}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test household member: %v", err)
	}
	return member
}

// CreateTestFund creates a fund with the given balance (in cents).
func CreateTestFund(t *testing.T, db *gorm.DB, householdID string, balance int64) *models.Fund {
	t.Helper()

	fund := &models.Fund{HouseholdID: householdID, Name: fmt.Sprintf("Fund %d", nextID()), BalanceCents: balance}
	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test fund: %v", err)
	}
	return fund
}

// CreateTestDeposit inserts a deposit row without touching the fund balance.
func CreateTestDeposit(t *testing.T, db *gorm.DB, fundID string, amount int64) *models.Deposit {
	t.Helper()

	deposit := &models.Deposit{FundID: fundID, Date: "2024-01-15", AmountCents: amount}
	if err := db.Create(deposit).Error; err != nil {
		t.Fatalf("failed to create test deposit: %v", err)
	}
	return deposit
}

// ExpenseRefs are the rows an expense fixture points at.
type ExpenseRefs struct {
	SubcategoryID string
	VendorID      string
	MemberID      string
	FundID        *string
}

// CreateTestExpenseRefs creates a subcategory, vendor and member in the household.
func CreateTestExpenseRefs(t *testing.T, db *gorm.DB, householdID string) ExpenseRefs {
	t.Helper()
	category := CreateTestCategory(t, db, householdID)
	return ExpenseRefs{
		SubcategoryID: CreateTestSubcategory(t, db, category.ID).ID,
		VendorID:      CreateTestVendor(t, db, householdID).ID,
		MemberID:      CreateTestMember(t, db, householdID).ID,
	}
}

// CreateTestExpense inserts an expense row without touching any fund balance.
func CreateTestExpense(t *testing.T, db *gorm.DB, refs ExpenseRefs, amount, reimbursed int64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		SubcategoryID:     refs.SubcategoryID,
		VendorID:          refs.VendorID,
		HouseholdMemberID: refs.MemberID,
		FundID:            refs.FundID,
		Date:              "2024-01-15",
		AmountCents:       amount,
		ReimbursedCents:   reimbursed,
		Description:       fmt.Sprintf("Expense %d", nextID()),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome inserts an income row for the member.
func CreateTestIncome(t *testing.T, db *gorm.DB, memberID string, amount int64) *models.Income {
	t.Helper()

	income := &models.Income{
		HouseholdMemberID: memberID,
		Date:              "2024-01-31",
		AmountCents:       amount,
		Description:       fmt.Sprintf("Income %d", nextID()),
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}
