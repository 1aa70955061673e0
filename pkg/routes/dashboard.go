package routes

import (
	"github.com/gin-gonic/gin"

	"cafehub/pkg/cache"
	"cafehub/pkg/controllers/dashboard"
	"cafehub/pkg/entitlement"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
	"cafehub/pkg/realtime"
)

// RegisterDashboardRoutes registers the owner/staff dashboard routes.
// Accounting and supply chain are pro-plan features; the rest is
// available on every plan.
func RegisterDashboardRoutes(router *gin.RouterGroup, ctl *dashboard.Controller, store *cache.Cache, hub *realtime.Hub) {
	// Registered outside the cafe-loading group: an owner's first visit
	// has no cafe yet, this endpoint creates it.
	router.GET("/dashboard/cafe",
		middleware.AuthenticateToken(),
		middleware.RequireRoles(models.RoleOwner, models.RoleStaff),
		ctl.GetOrCreateCafe,
	)

	dash := router.Group("/dashboard")
	dash.Use(
		middleware.AuthenticateToken(),
		middleware.RequireRoles(models.RoleOwner, models.RoleStaff),
		middleware.LoadCafe(store),
	)
	{
		// Home
		dash.GET("/stats", ctl.GetStats)

		// Live orders
		dash.GET("/orders", ctl.GetOrders)
		dash.PUT("/orders/:orderId/status", ctl.UpdateOrderStatus)

		// Menu management
		dash.GET("/menu", dashboard.GetMenuItems)
		dash.POST("/menu", dashboard.CreateMenuItem)
		dash.PUT("/menu/:itemId", dashboard.UpdateMenuItem)
		dash.POST("/menu/:itemId/image", dashboard.UploadMenuItemImage)
		dash.DELETE("/menu/:itemId", dashboard.DeleteMenuItem)

		// Tables
		dash.GET("/tables", dashboard.GetTables)
		dash.POST("/tables", dashboard.CreateTable)
		dash.PUT("/tables/:tableId/status", dashboard.UpdateTableStatus)
		dash.DELETE("/tables/:tableId", dashboard.DeleteTable)

		// Customers & loyalty
		dash.GET("/customers", dashboard.GetCustomers)
		dash.POST("/customers/sync", dashboard.SyncCustomers)
		dash.POST("/customers/:customerId/redeem", dashboard.RedeemLoyaltyPoints)

		// Staff & shifts
		dash.GET("/staff", dashboard.GetStaff)
		dash.POST("/staff", dashboard.AddStaff)
		dash.DELETE("/staff/:staffId", dashboard.RemoveStaff)
		dash.GET("/shifts", dashboard.GetShifts)
		dash.POST("/shifts", dashboard.CreateShift)
		dash.DELETE("/shifts/:shiftId", dashboard.DeleteShift)

		// Cafe profile
		dash.PUT("/cafe", ctl.UpdateCafe)
		dash.POST("/cafe/logo", ctl.UploadCafeLogo)

		// Account security
		dash.POST("/security/2fa/setup", dashboard.SetupTwoFactor)
		dash.POST("/security/2fa/enable", dashboard.EnableTwoFactor)
		dash.POST("/security/2fa/disable", dashboard.DisableTwoFactor)

		// Push notification devices
		dash.POST("/devices", ctl.RegisterDevice)
		dash.DELETE("/devices", ctl.UnregisterDevice)

		// Supply chain (pro)
		supply := dash.Group("")
		supply.Use(middleware.RequirePlan("supply chain", models.PlanPro, entitlement.ModeBlock))
		{
			supply.GET("/inventory", dashboard.GetInventory)
			supply.POST("/inventory", dashboard.CreateInventoryItem)
			supply.PUT("/inventory/:itemId", dashboard.UpdateInventoryItem)
			supply.DELETE("/inventory/:itemId", dashboard.DeleteInventoryItem)

			supply.GET("/suppliers", dashboard.GetSuppliers)
			supply.POST("/suppliers", dashboard.CreateSupplier)
			supply.PUT("/suppliers/:supplierId", dashboard.UpdateSupplier)
			supply.DELETE("/suppliers/:supplierId", dashboard.DeleteSupplier)

			supply.GET("/purchase-orders", dashboard.GetPurchaseOrders)
			supply.POST("/purchase-orders", dashboard.CreatePurchaseOrder)
			supply.PUT("/purchase-orders/:poId/status", dashboard.UpdatePurchaseOrderStatus)
		}

		// Accounting (pro, rendered blurred when locked)
		accounting := dash.Group("")
		accounting.Use(middleware.RequirePlan("accounting", models.PlanPro, entitlement.ModeBlur))
		{
			accounting.GET("/invoices", dashboard.GetInvoices)
			accounting.POST("/invoices", dashboard.CreateInvoice)
			accounting.PUT("/invoices/:invoiceId/status", dashboard.UpdateInvoiceStatus)
			accounting.POST("/invoices/:invoiceId/payment-link", dashboard.CreateInvoicePaymentLink)

			accounting.GET("/expenses", dashboard.GetExpenses)
			accounting.POST("/expenses", dashboard.CreateExpense)
			accounting.DELETE("/expenses/:expenseId", dashboard.DeleteExpense)

			accounting.GET("/ledger/accounts", dashboard.GetLedgerAccounts)
			accounting.POST("/ledger/accounts", dashboard.CreateLedgerAccount)
			accounting.GET("/ledger/accounts/:accountId/entries", dashboard.GetLedgerEntries)
			accounting.POST("/ledger/accounts/:accountId/entries", dashboard.CreateLedgerEntry)

			accounting.GET("/parties", dashboard.GetFinancialParties)
			accounting.POST("/parties", dashboard.CreateFinancialParty)
		}
	}

	// live order feed for the dashboard
	router.GET("/ws/orders/:cafeId", middleware.AuthenticateToken(), hub.ServeWS)
}
