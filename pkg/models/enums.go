package models

// Plan enum - subscription tier of a cafe
type Plan string

const (
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
)

// Role enum
type Role string

const (
	RoleOwner      Role = "OWNER"
	RoleStaff      Role = "STAFF"
	RoleSuperAdmin Role = "SUPERADMIN"
)

// OrderStatus enum
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// TableStatus enum
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
)

// PurchaseOrderStatus enum
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "pending"
	PurchaseOrderStatusOrdered   PurchaseOrderStatus = "ordered"
	PurchaseOrderStatusDelivered PurchaseOrderStatus = "delivered"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// InvoiceStatus enum
type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusVoid   InvoiceStatus = "void"
)

// LedgerEntryType enum
type LedgerEntryType string

const (
	LedgerEntryDebit  LedgerEntryType = "debit"
	LedgerEntryCredit LedgerEntryType = "credit"
)

// LedgerAccountType enum
type LedgerAccountType string

const (
	LedgerAccountAsset     LedgerAccountType = "asset"
	LedgerAccountLiability LedgerAccountType = "liability"
	LedgerAccountIncome    LedgerAccountType = "income"
	LedgerAccountExpense   LedgerAccountType = "expense"
)

// PartyKind enum - who a financial party is in relation to the cafe
type PartyKind string

const (
	PartyKindCustomer PartyKind = "customer"
	PartyKindSupplier PartyKind = "supplier"
	PartyKindOther    PartyKind = "other"
)

// ValidPlan reports whether p is one of the supported subscription plans.
func ValidPlan(p Plan) bool {
	return p == PlanBasic || p == PlanPro
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPurchaseOrderStatus reports whether s is a known purchase order
// status.
func ValidPurchaseOrderStatus(s PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusOrdered,
		PurchaseOrderStatusDelivered, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionPurchaseOrder reports whether a purchase order may move
// to the requested status. Delivered and cancelled are terminal, so the
// delivery side effects (stock increments) can only happen once.
func CanTransitionPurchaseOrder(from, to PurchaseOrderStatus) bool {
	if from == PurchaseOrderStatusDelivered || from == PurchaseOrderStatusCancelled {
		return false
	}
	return ValidPurchaseOrderStatus(to)
}

// CanTransitionOrder reports whether an order may move from one status to
// another. Staff drive forward progression plus cancellation; completed and
// cancelled orders are terminal.
func CanTransitionOrder(from, to OrderStatus) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusPreparing || to == OrderStatusCompleted || to == OrderStatusCancelled
	case OrderStatusPreparing:
		return to == OrderStatusCompleted || to == OrderStatusCancelled
	}
	return false
}
