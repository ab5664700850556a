package models

import "time"

type SaleStatus string

const (
	// Sales ledger statuses (studio commission flow)
	SaleStatusCommissioned SaleStatus = "Commissioned" // Bespoke piece ordered, not started
	SaleStatusProcessing   SaleStatus = "Processing"   // In the workshop
	SaleStatusShipped      SaleStatus = "Shipped"      // Out for delivery
	SaleStatusFulfilled    SaleStatus = "Fulfilled"    // Delivered to the client
)

// Sale is one row of the back-office sales ledger.
type Sale struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Customer  string     `gorm:"not null" json:"customer"`
	Product   string     `gorm:"not null" json:"product"`
	Price     float64    `json:"price"`
	Date      time.Time  `json:"date"`
	Status    SaleStatus `gorm:"type:VARCHAR(20);default:'Processing'" json:"status"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}
