// Package model defines the pharmacy ledger entities and the application
// state document they live in. JSON tags follow the snapshot document format,
// which is also the backup wire format.
package model

// Role determines which views and operations a user may access.
type Role string

const (
	RoleAdmin      Role = "admin"
	RolePharmacist Role = "pharmacist"
	RoleCashier    Role = "cashier"
)

// User is an operator account. PasswordHash holds a bcrypt hash; snapshots
// imported from older installations may still carry plaintext in the same
// field, which the login path tolerates.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password,omitempty"`
	Role         Role   `json:"role"`
}

// Sanitized returns a copy safe to expose as the session user.
func (u User) Sanitized() *User {
	u.PasswordHash = ""
	return &u
}

// Product is a pharmacy item. Stock is counted in packets; a packet splits
// into StripCount strips. Strip quantities convert to fractional packets.
type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ScientificName  string  `json:"scientificName,omitempty"`
	Category        string  `json:"category"`
	CostPrice       float64 `json:"costPrice"`
	PacketSellPrice float64 `json:"packetSellPrice"`
	Stock           float64 `json:"stock"`
	ExpiryDate      string  `json:"expiryDate"`
	StripCount      float64 `json:"stripCount,omitempty"`
	StripSellPrice  float64 `json:"stripSellPrice,omitempty"`
}

// StripsPerPacket returns the strip divisor, defaulting to 1.
func (p Product) StripsPerPacket() float64 {
	if p.StripCount > 0 {
		return p.StripCount
	}
	return 1
}

// Supplier is a trade creditor. Balance is the outstanding debt owed to the
// supplier and only moves through ledger transactions.
type Supplier struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactPerson string  `json:"contactPerson,omitempty"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email,omitempty"`
	Address       string  `json:"address,omitempty"`
	Balance       float64 `json:"balance"`
}

// PrinterType selects the receipt layout.
type PrinterType string

const (
	PrinterA4      PrinterType = "a4"
	PrinterThermal PrinterType = "thermal"
)

// PrinterSettings configures document printing.
type PrinterSettings struct {
	Type PrinterType `json:"type"`
}

// CompanyInfo holds the pharmacy identity printed on documents.
type CompanyInfo struct {
	Name            string          `json:"name"`
	Address         string          `json:"address"`
	Phone           string          `json:"phone"`
	Logo            string          `json:"logo"`
	FooterNotes     string          `json:"footerNotes"`
	PrinterSettings PrinterSettings `json:"printerSettings"`
}
