// Package server wires handlers, middleware and services into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"hearth/internal/config"
	"hearth/internal/handlers"
	"hearth/internal/middleware"
	"hearth/internal/services"
)

// Services is every service the API exposes.
type Services struct {
	Users            services.UserServicer
	Audit            services.AuditServicer
	Categories       services.CategoryServicer
	Subcategories    services.SubcategoryServicer
	Budgets          services.BudgetServicer
	Vendors          services.VendorServicer
	HouseholdMembers services.HouseholdMemberServicer
	Funds            services.FundServicer
	Deposits         services.DepositServicer
	Expenses         services.ExpenseServicer
	Income           services.IncomeServicer
}

// NewServices builds the service set over db.
func NewServices(db *gorm.DB, accounting services.ExpenseFundAccounting) Services {
	audit := services.NewAuditService(db)
	return Services{
		Users:            services.NewUserService(db),
		Audit:            audit,
		Categories:       services.NewCategoryService(db, audit),
		Subcategories:    services.NewSubcategoryService(db, audit),
		Budgets:          services.NewBudgetService(db, audit),
		Vendors:          services.NewVendorService(db, audit),
		HouseholdMembers: services.NewHouseholdMemberService(db, audit),
		Funds:            services.NewFundService(db, audit),
		Deposits:         services.NewDepositService(db, audit),
		Expenses:         services.NewExpenseService(db, audit, accounting),
		Income:           services.NewIncomeService(db, audit),
	}
}

// NewRouter returns the gin engine serving the API.
func NewRouter(cfg *config.Config, svc Services, metrics *middleware.Metrics) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories)
	subcategoryHandler := handlers.NewSubcategoryHandler(svc.Subcategories)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets)
	vendorHandler := handlers.NewVendorHandler(svc.Vendors)
	memberHandler := handlers.NewHouseholdMemberHandler(svc.HouseholdMembers)
	fundHandler := handlers.NewFundHandler(svc.Funds)
	depositHandler := handlers.NewDepositHandler(svc.Deposits)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses)
	incomeHandler := handlers.NewIncomeHandler(svc.Income)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", middleware.MetricsAuthMiddleware(cfg.MetricsAPIKey), metrics.Handler())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes. Each request is recorded as an audit API call.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(), middleware.AuditAPICall(svc.Audit))

	protected.GET("/profile", authHandler.GetProfile)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	subcategories := protected.Group("/subcategories")
	subcategories.POST("", subcategoryHandler.CreateSubcategory)
	subcategories.GET("", subcategoryHandler.ListSubcategories)
	subcategories.GET("/:id", subcategoryHandler.GetSubcategory)
	subcategories.PUT("/:id", subcategoryHandler.UpdateSubcategory)
	subcategories.DELETE("/:id", subcategoryHandler.DeleteSubcategory)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	vendors := protected.Group("/vendors")
	vendors.POST("", vendorHandler.CreateVendor)
	vendors.GET("", vendorHandler.ListVendors)
	vendors.GET("/:id", vendorHandler.GetVendor)
	vendors.PUT("/:id", vendorHandler.UpdateVendor)
	vendors.DELETE("/:id", vendorHandler.DeleteVendor)

	members := protected.Group("/household-members")
	members.POST("", memberHandler.CreateHouseholdMember)
	members.GET("", memberHandler.ListHouseholdMembers)
	members.GET("/:id", memberHandler.GetHouseholdMember)
	members.PUT("/:id", memberHandler.UpdateHouseholdMember)
	members.DELETE("/:id", memberHandler.DeleteHouseholdMember)

	funds := protected.Group("/funds")
	funds.POST("", fundHandler.CreateFund)
	funds.GET("", fundHandler.ListFunds)
	funds.GET("/:id", fundHandler.GetFund)
	funds.PUT("/:id", fundHandler.UpdateFund)
	funds.DELETE("/:id", fundHandler.DeleteFund)

	deposits := protected.Group("/deposits")
	deposits.POST("", depositHandler.CreateDeposit)
	deposits.GET("", depositHandler.ListDeposits)
	deposits.GET("/:id", depositHandler.GetDeposit)
	deposits.PUT("/:id", depositHandler.UpdateDeposit)
	deposits.DELETE("/:id", depositHandler.DeleteDeposit)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	income := protected.Group("/income")
	income.POST("", incomeHandler.CreateIncome)
	income.GET("", incomeHandler.ListIncome)
	income.GET("/:id", incomeHandler.GetIncome)
	income.PUT("/:id", incomeHandler.UpdateIncome)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	return router
}
