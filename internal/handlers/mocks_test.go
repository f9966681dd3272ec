package handlers

import (
	"context"

	"hearth/internal/models"
	"hearth/internal/pagination"
	"hearth/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn func(p services.CreateCategoryParams) (string, error)
	updateCategoryFn func(p services.UpdateCategoryParams) error
	deleteCategoryFn func(p services.DeleteParams) error
	getCategoryFn    func(p services.GetParams) (*models.Category, error)
	listCategoriesFn func(p services.ListParams) (*pagination.PageResponse[models.Category], error)
}

func (m *mockCategoryService) CreateCategory(_ context.Context, p services.CreateCategoryParams) (string, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(p)
	}
	return "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", nil
}

func (m *mockCategoryService) UpdateCategory(_ context.Context, p services.UpdateCategoryParams) error {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(p)
	}
	return nil
}

func (m *mockCategoryService) DeleteCategory(_ context.Context, p services.DeleteParams) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(p)
	}
	return nil
}

func (m *mockCategoryService) GetCategory(_ context.Context, p services.GetParams) (*models.Category, error) {
	if m.getCategoryFn != nil {
		return m.getCategoryFn(p)
	}
	return &models.Category{Base: models.Base{ID: p.ID}}, nil
}

func (m *mockCategoryService) ListCategories(_ context.Context, p services.ListParams) (*pagination.PageResponse[models.Category], error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(p)
	}
	resp := pagination.NewPageResponse([]models.Category{}, 1, 20, 0)
	return &resp, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- mock subcategory service ---

type mockSubcategoryService struct {
	createSubcategoryFn func(p services.CreateSubcategoryParams) (string, error)
	updateSubcategoryFn func(p services.UpdateSubcategoryParams) error
	deleteSubcategoryFn func(p services.DeleteParams) error
	getSubcategoryFn    func(p services.GetParams) (*models.Subcategory, error)
	listSubcategoriesFn func(p services.ListParams) (*pagination.PageResponse[models.Subcategory], error)
}

func (m *mockSubcategoryService) CreateSubcategory(_ context.Context, p services.CreateSubcategoryParams) (string, error) {
	if m.createSubcategoryFn != nil {
		return m.createSubcategoryFn(p)
	}
	return "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", nil
}

func (m *mockSubcategoryService) UpdateSubcategory(_ context.Context, p services.UpdateSubcategoryParams) error {
	if m.updateSubcategoryFn != nil {
		return m.updateSubcategoryFn(p)
	}
	return nil
}

func (m *mockSubcategoryService) DeleteSubcategory(_ context.Context, p services.DeleteParams) error {
	if m.deleteSubcategoryFn != nil {
		return m.deleteSubcategoryFn(p)
	}
	return nil
}

func (m *mockSubcategoryService) GetSubcategory(_ context.Context, p services.GetParams) (*models.Subcategory, error) {
	if m.getSubcategoryFn != nil {
		return m.getSubcategoryFn(p)
	}
	return &models.Subcategory{Base: models.Base{ID: p.ID}}, nil
}

func (m *mockSubcategoryService) ListSubcategories(_ context.Context, p services.ListParams) (*pagination.PageResponse[models.Subcategory], error) {
	if m.listSubcategoriesFn != nil {
		return m.listSubcategoriesFn(p)
	}
	resp := pagination.NewPageResponse([]models.Subcategory{}, 1, 20, 0)
	return &resp, nil
}

var _ services.SubcategoryServicer = (*mockSubcategoryService)(nil)

// --- mock budget service ---

type mockBudgetService struct {
	createBudgetFn func(p services.CreateBudgetParams) (string, error)
	updateBudgetFn func(p services.UpdateBudgetParams) error
	deleteBudgetFn func(p services.DeleteParams) error
	getBudgetFn    func(p services.GetParams) (*models.Budget, error)
	listBudgetsFn  func(p services.ListParams) (*pagination.PageResponse[models.Budget], error)
}

func (m *mockBudgetService) CreateBudget(_ context.Context, p services.CreateBudgetParams) (string, error) {
	if m.createBudgetFn != nil {
		return m.createBudgetFn(p)
	}
	return "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", nil
}

func (m *mockBudgetService) UpdateBudget(_ context.Context, p services.UpdateBudgetParams) error {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(p)
	}
	return nil
}

func (m *mockBudgetService) DeleteBudget(_ context.Context, p services.DeleteParams) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(p)
	}
	return nil
}

func (m *mockBudgetService) GetBudget(_ context.Context, p services.GetParams) (*models.Budget, error) {
	if m.getBudgetFn != nil {
		return m.getBudgetFn(p)
	}
	return &models.Budget{Base: models.Base{ID: p.ID}}, nil
}

func (m *mockBudgetService) ListBudgets(_ context.Context, p services.ListParams) (*pagination.PageResponse[models.Budget], error) {
	if m.listBudgetsFn != nil {
		return m.listBudgetsFn(p)
	}
	resp := pagination.NewPageResponse([]models.Budget{}, 1, 20, 0)
	return &resp, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

// --- mock vendor service ---

type mockVendorService struct {
	createVendorFn func(p services.CreateVendorParams) (string, error)
	updateVendorFn func(p services.UpdateVendorParams) error
	deleteVendorFn func(p services.DeleteParams) error
	getVendorFn    func(p services.GetParams) (*models.Vendor, error)
	listVendorsFn  func(p services.ListParams) (*pagination.PageResponse[models.Vendor], error)
}

func (m *mockVendorService) CreateVendor(_ context.Context, p services.CreateVendorParams) (string, error) {
	if m.createVendorFn != nil {
		return m.createVendorFn(p)
	}
	return "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", nil
}

func (m *mockVendorService) UpdateVendor(_ context.Context, p services.UpdateVendorParams) error {
	if m.updateVendorFn != nil {
		return m.updateVendorFn(p)
	}
	return nil
}

func (m *mockVendorService) DeleteVendor(_ context.Context, p services.DeleteParams) error {
	if m.deleteVendorFn != nil {
		return m.deleteVendorFn(p)
	}
	return nil
}

func (m *mockVendorService) GetVendor(_ context.Context, p services.GetParams) (*models.Vendor, error) {
	if m.getVendorFn != nil {
		return m.getVendorFn(p)
	}
	return &models.Vendor{Base: models.Base{ID: p.ID}}, nil
}

func (m *mockVendorService) ListVendors(_ context.Context, p services.ListParams) (*pagination.PageResponse[models.Vendor], error) {
	if m.listVendorsFn != nil {
		return m.listVendorsFn(p)
	}
	resp := pagination.NewPageResponse([]models.Vendor{}, 1, 20, 0)
	return &resp, nil
}

var _ services.VendorServicer = (*mockVendorService)(nil)

// --- mock householdMember service ---

type mockHouseholdMemberService struct {
	createHouseholdMemberFn func(p services.CreateHouseholdMemberParams) (string, error)
	updateHouseholdMemberFn func(p services.UpdateHouseholdMemberParams) error
	deleteHouseholdMemberFn func(p services.DeleteParams) error
	getHouseholdMemberFn    func(p services.GetParams) (*models.HouseholdMember, error)
	listHouseholdMembersFn  func(p services.ListParams) (*pagination.PageResponse[models.HouseholdMember], error)
}

func (m *mockHouseholdMemberService) CreateHouseholdMember(_ context.Context, p services.CreateHouseholdMemberParams) (string, error) {
	if m.createHouseholdMemberFn != nil {
		return m.createHouseholdMemberFn(p)
	}
	return "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", nil
}

func (m *mockHouseholdMemberService) UpdateHouseholdMember(_ context.Context, p services.UpdateHouseholdMemberParams) error {
	if m.updateHouseholdMemberFn != nil {
		return m.updateHouseholdMemberFn(p)
	}
	return nil
}

func (m *mockHouseholdMemberService) DeleteHouseholdMember(_ context.Context, p services.DeleteParams) error {
	if m.deleteHouseholdMemberFn != nil {
		return m.deleteHouseholdMemberFn(p)
	}
	return nil
}

func (m *mockHouseholdMemberService) GetHouseholdMember(_ context.Context, p services.GetParams) (*models.HouseholdMember, error) {
	if m.getHouseholdMemberFn != nil {
		return m.getHouseholdMemberFn(p)
	}
	return &models.HouseholdMember{Base: models.Base{ID: p.ID}}, nil
}

func (m *mockHouseholdMemberService) ListHouseholdMembers(_ context.Context, p services.ListParams) (*pagination.PageResponse[models.HouseholdMember], error) {
	if m.listHouseholdMembersFn != nil {
		return m.listHouseholdMembersFn(p)
	}
	resp := pagination.NewPageResponse([]models.HouseholdMember{}, 1, 20, 0)
	return &resp, nil
}

var _ services.HouseholdMemberServicer = (*mockHouseholdMemberService)(nil)

// --- mock fund service ---

type mockFundService struct {
	createFundFn func(p services.CreateFundParams) (string, error)
	updateFundFn func(p services.UpdateFundParams) error
	deleteFundFn func(p services.DeleteParams) error
	getFundFn    func(p services.GetParams) (*models.Fund, error)
	listFundsFn  func(p services.ListParams) (*pagination.PageResponse[models.Fund], error)
}

func (m *mockFundService) CreateFund(_ context.Context, p services.CreateFundParams) (string, error) {
	if m.createFundFn != nil {
		return m.createFundFn(p)
	}
	return "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", nil
}

func (m *mockFundService) UpdateFund(_ context.Context, p services.UpdateFundParams) error {
	if m.updateFundFn != nil {
		return m.updateFundFn(p)
	}
	return nil
}

func (m *mockFundService) DeleteFund(_ context.Context, p services.DeleteParams) error {
	if m.deleteFundFn != nil {
		return m.deleteFundFn(p)
	}
	return nil
}

func (m *mockFundService) GetFund(_ context.Context, p services.GetParams) (*models.Fund, error) {
	if m.getFundFn != nil {
		return m.getFundFn(p)
	}
	return &models.Fund{Base: models.Base{ID: p.ID}}, nil
}

func (m *mockFundService) ListFunds(_ context.Context, p services.ListParams) (*pagination.PageResponse[models.Fund], error) {
	if m.listFundsFn != nil {
		return m.listFundsFn(p)
	}
	resp := pagination.NewPageResponse([]models.Fund{}, 1, 20, 0)
	return &resp, nil
}

var _ services.FundServicer = (*mockFundService)(nil)

// --- mock deposit service ---

type mockDepositService struct {
	createDepositFn func(p services.CreateDepositParams) (string, error)
	updateDepositFn func(p services.UpdateDepositParams) error
	deleteDepositFn func(p services.DeleteParams) error
	getDepositFn    func(p services.GetParams) (*models.Deposit, error)
	listDepositsFn  func(p services.ListParams) (*pagination.PageResponse[models.Deposit], error)
}

func (m *mockDepositService) CreateDeposit(_ context.Context, p services.CreateDepositParams) (string, error) {
	if m.createDepositFn != nil {
		return m.createDepositFn(p)
	}
	return "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", nil
}

func (m *mockDepositService) UpdateDeposit(_ context.Context, p services.UpdateDepositParams) error {
	if m.updateDepositFn != nil {
		return m.updateDepositFn(p)
	}
	return nil
}

func (m *mockDepositService) DeleteDeposit(_ context.Context, p services.DeleteParams) error {
	if m.deleteDepositFn != nil {
		return m.deleteDepositFn(p)
	}
	return nil
}

func (m *mockDepositService) GetDeposit(_ context.Context, p services.GetParams) (*models.Deposit, error) {
	if m.getDepositFn != nil {
		return m.getDepositFn(p)
	}
	return &models.Deposit{Base: models.Base{ID: p.ID}}, nil
}

func (m *mockDepositService) ListDeposits(_ context.Context, p services.ListParams) (*pagination.PageResponse[models.Deposit], error) {
	if m.listDepositsFn != nil {
		return m.listDepositsFn(p)
	}
	resp := pagination.NewPageResponse([]models.Deposit{}, 1, 20, 0)
	return &resp, nil
}

var _ services.DepositServicer = (*mockDepositService)(nil)

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn func(p services.CreateExpenseParams) (string, error)
	updateExpenseFn func(p services.UpdateExpenseParams) error
	deleteExpenseFn func(p services.DeleteParams) error
	getExpenseFn    func(p services.GetParams) (*models.Expense, error)
	listExpensesFn  func(p services.ListParams) (*pagination.PageResponse[models.Expense], error)
}

func (m *mockExpenseService) CreateExpense(_ context.Context, p services.CreateExpenseParams) (string, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(p)
	}
	return "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", nil
}

func (m *mockExpenseService) UpdateExpense(_ context.Context, p services.UpdateExpenseParams) error {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(p)
	}
	return nil
}

func (m *mockExpenseService) DeleteExpense(_ context.Context, p services.DeleteParams) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(p)
	}
	return nil
}

func (m *mockExpenseService) GetExpense(_ context.Context, p services.GetParams) (*models.Expense, error) {
	if m.getExpenseFn != nil {
		return m.getExpenseFn(p)
	}
	return &models.Expense{Base: models.Base{ID: p.ID}}, nil
}

func (m *mockExpenseService) ListExpenses(_ context.Context, p services.ListParams) (*pagination.PageResponse[models.Expense], error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(p)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

// --- mock income service ---

type mockIncomeService struct {
	createIncomeFn func(p services.CreateIncomeParams) (string, error)
	updateIncomeFn func(p services.UpdateIncomeParams) error
	deleteIncomeFn func(p services.DeleteParams) error
	getIncomeFn    func(p services.GetParams) (*models.Income, error)
	listIncomeFn   func(p services.ListParams) (*pagination.PageResponse[models.Income], error)
}

func (m *mockIncomeService) CreateIncome(_ context.Context, p services.CreateIncomeParams) (string, error) {
	if m.createIncomeFn != nil {
		return m.createIncomeFn(p)
	}
	return "0190b6c8-7d2e-7a3b-8c4d-1e2f3a4b5c6d", nil
}

func (m *mockIncomeService) UpdateIncome(_ context.Context, p services.UpdateIncomeParams) error {
	if m.updateIncomeFn != nil {
		return m.updateIncomeFn(p)
	}
	return nil
}

func (m *mockIncomeService) DeleteIncome(_ context.Context, p services.DeleteParams) error {
	if m.deleteIncomeFn != nil {
		return m.deleteIncomeFn(p)
	}
	return nil
}

func (m *mockIncomeService) GetIncome(_ context.Context, p services.GetParams) (*models.Income, error) {
	if m.getIncomeFn != nil {
		return m.getIncomeFn(p)
	}
	return &models.Income{Base: models.Base{ID: p.ID}}, nil
}

func (m *mockIncomeService) ListIncome(_ context.Context, p services.ListParams) (*pagination.PageResponse[models.Income], error) {
	if m.listIncomeFn != nil {
		return m.listIncomeFn(p)
	}
	resp := pagination.NewPageResponse([]models.Income{}, 1, 20, 0)
	return &resp, nil
}

var _ services.IncomeServicer = (*mockIncomeService)(nil)
