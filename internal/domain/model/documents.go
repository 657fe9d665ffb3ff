package model

// SellUnit is the unit a cart line was sold in.
type SellUnit string

const (
	UnitPacket SellUnit = "packet"
	UnitStrip  SellUnit = "strip"
)

// PaymentMethod is how money changed hands.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentBank   PaymentMethod = "bank"
	PaymentCheque PaymentMethod = "cheque"
)

// CartItem is a sale line. ProductID keeps the legacy "id" key of the
// snapshot format. Stock and StripCount are point-of-sale snapshots of the
// product and carry no ledger meaning.
type CartItem struct {
	ProductID    string   `json:"id"`
	Name         string   `json:"name"`
	Quantity     float64  `json:"quantity"`
	SellUnit     SellUnit `json:"sellUnit"`
	PricePerUnit float64  `json:"pricePerUnit"`
	Stock        float64  `json:"stock,omitempty"`
	StripCount   float64  `json:"stripCount,omitempty"`
}

// Sale is a POS checkout. Sales are append-only: there is no reversing
// operation, corrections go through sales returns.
type Sale struct {
	ID       string     `json:"id"`
	Date     string     `json:"date"`
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Discount float64    `json:"discount"`
	Total    float64    `json:"total"`
}

// SalesReturnItem mirrors a cart line coming back.
type SalesReturnItem struct {
	ProductID    string   `json:"id"`
	Name         string   `json:"name"`
	Quantity     float64  `json:"quantity"`
	ReturnUnit   SellUnit `json:"returnUnit"`
	PricePerUnit float64  `json:"pricePerUnit"`
	StripCount   float64  `json:"stripCount,omitempty"`
}

// SalesReturn restocks returned goods.
type SalesReturn struct {
	ID               string            `json:"id"`
	Date             string            `json:"date"`
	Items            []SalesReturnItem `json:"items"`
	Subtotal         float64           `json:"subtotal"`
	Discount         float64           `json:"discount"`
	TotalReturnValue float64           `json:"totalReturnValue"`
	Notes            string            `json:"notes,omitempty"`
}

// PurchaseItem is a supplier invoice line. Bonus packets increase stock
// without increasing the invoice value.
type PurchaseItem struct {
	ProductID          string  `json:"productId"`
	Name               string  `json:"name"`
	Quantity           float64 `json:"quantity"`
	Bonus              float64 `json:"bonus"`
	CostPrice          float64 `json:"costPrice"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	PacketSellPrice    float64 `json:"packetSellPrice"`
	StripSellPrice     float64 `json:"stripSellPrice,omitempty"`
	StripCount         float64 `json:"stripCount,omitempty"`
	ExpiryDate         string  `json:"expiryDate"`
	ItemTotal          float64 `json:"itemTotal"`
}

// Purchase is a supplier invoice. Posting it raises stock and the supplier
// balance; the invoice line prices overwrite the product pricing metadata
// (latest purchase wins).
type Purchase struct {
	ID             string         `json:"id"`
	SupplierID     string         `json:"supplierId"`
	InvoiceNumber  string         `json:"invoiceNumber"`
	InvoiceDate    string         `json:"invoiceDate"`
	ArrivalDate    string         `json:"arrivalDate,omitempty"`
	Items          []PurchaseItem `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	Discount       float64        `json:"discount"`
	Total          float64        `json:"total"`
	AmountPaid     float64        `json:"amountPaid"`
	AmountDue      float64        `json:"amountDue"`
	PaymentDueDate string         `json:"paymentDueDate,omitempty"`
	Notes          string         `json:"notes"`
}

// PurchaseReturnItem is goods going back to a supplier.
type PurchaseReturnItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Bonus     float64 `json:"bonus"`
	CostPrice float64 `json:"costPrice"`
	ItemTotal float64 `json:"itemTotal"`
}

// PurchaseReturn reverses part of a purchase: stock and supplier balance drop.
type PurchaseReturn struct {
	ID               string               `json:"id"`
	SupplierID       string               `json:"supplierId"`
	InvoiceNumber    string               `json:"invoiceNumber"`
	ReturnDate       string               `json:"returnDate"`
	Items            []PurchaseReturnItem `json:"items"`
	Subtotal         float64              `json:"subtotal"`
	Discount         float64              `json:"discount"`
	TotalReturnValue float64              `json:"totalReturnValue"`
	Notes            string               `json:"notes"`
}

// Adjustment reasons. Only stocktake gains add stock back; every other
// reason, including free-form ones, writes stock off.
const (
	ReasonDamage        = "damage"
	ReasonExpiry        = "expiry"
	ReasonTheft         = "theft"
	ReasonCorrection    = "correction"
	ReasonOther         = "other"
	ReasonStocktakeGain = "stocktake_gain"
	ReasonStocktakeLoss = "stocktake_loss"
)

// StockAdjustmentItem writes a quantity on or off for a reason.
type StockAdjustmentItem struct {
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	CostPrice      float64 `json:"costPrice"`
	Reason         string  `json:"reason"`
	ItemTotalValue float64 `json:"itemTotalValue"`
}

// Increases reports whether this adjustment line adds stock.
func (i StockAdjustmentItem) Increases() bool {
	return i.Reason == ReasonStocktakeGain
}

// StockAdjustmentInvoice groups adjustment lines into one document.
type StockAdjustmentInvoice struct {
	ID             string                `json:"id"`
	Date           string                `json:"date"`
	Items          []StockAdjustmentItem `json:"items"`
	TotalLossValue float64               `json:"totalLossValue"`
	Notes          string                `json:"notes"`
}

// StocktakeItem records counted vs system stock for one product.
type StocktakeItem struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	SystemStock float64 `json:"systemStock"`
	ActualStock float64 `json:"actualStock"`
	Difference  float64 `json:"difference"`
	CostPrice   float64 `json:"costPrice"`
}

// Stocktake is a physical count. It never touches stock directly; nonzero
// differences spawn a derived adjustment invoice at posting time.
type Stocktake struct {
	ID               string          `json:"id"`
	Date             string          `json:"date"`
	Items            []StocktakeItem `json:"items"`
	TotalValueChange float64         `json:"totalValueChange"`
	Notes            string          `json:"notes"`
}

// InvoicePayment allocates part of a supplier payment to one purchase.
type InvoicePayment struct {
	InvoiceID  string  `json:"invoiceId"`
	PaidAmount float64 `json:"paidAmount"`
}

// SupplierPayment settles supplier debt. Discount is debt forgiven by the
// supplier and reduces the balance alongside the cash amount.
type SupplierPayment struct {
	ID              string           `json:"id"`
	SupplierID      string           `json:"supplierId"`
	Amount          float64          `json:"amount"`
	Discount        float64          `json:"discount,omitempty"`
	Date            string           `json:"date"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod"`
	Notes           string           `json:"notes"`
	InvoicePayments []InvoicePayment `json:"invoicePayments,omitempty"`
}

// CustomerReceipt records money received outside a sale (debt collection).
type CustomerReceipt struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	Amount        float64       `json:"amount"`
	Date          string        `json:"date"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Notes         string        `json:"notes"`
}

// Expense is an operating cost entry.
type Expense struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	Category      string        `json:"category"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// OpeningStockItem seeds initial stock for one product.
type OpeningStockItem struct {
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	CostPrice      float64 `json:"costPrice"`
	ExpiryDate     string  `json:"expiryDate"`
	StripCount     float64 `json:"stripCount,omitempty"`
	StripSellPrice float64 `json:"stripSellPrice,omitempty"`
	ItemTotalValue float64 `json:"itemTotalValue"`
}

// OpeningStockInvoice loads starting inventory at go-live.
type OpeningStockInvoice struct {
	ID         string             `json:"id"`
	Date       string             `json:"date"`
	Notes      string             `json:"notes"`
	Items      []OpeningStockItem `json:"items"`
	TotalValue float64            `json:"totalValue"`
}

// OpeningDebtInvoice loads pre-existing supplier debt at go-live.
type OpeningDebtInvoice struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	SupplierID       string  `json:"supplierId"`
	OldInvoiceNumber string  `json:"oldInvoiceNumber"`
	OldInvoiceDate   string  `json:"oldInvoiceDate"`
	AmountDue        float64 `json:"amountDue"`
	Notes            string  `json:"notes"`
}

// InventorySnapshotLine freezes one product's position before a year-end reset.
type InventorySnapshotLine struct {
	ProductID        string  `json:"productId"`
	ProductName      string  `json:"productName"`
	QuantityBefore   float64 `json:"quantityBefore"`
	CostPrice        float64 `json:"costPrice"`
	TotalValueBefore float64 `json:"totalValueBefore"`
}

// AnnualInventoryCount archives all stock positions and zeroes them.
// There is no inverse operation.
type AnnualInventoryCount struct {
	ID               string                  `json:"id"`
	Date             string                  `json:"date"`
	Notes            string                  `json:"notes"`
	Snapshot         []InventorySnapshotLine `json:"snapshot"`
	TotalValueBefore float64                 `json:"totalValueBefore"`
}
