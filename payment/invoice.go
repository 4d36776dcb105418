package payment

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rigshare/librigshare-go/identity"
)

// Invoice is a quote for a share purchase: the exact total a buyer must
// attach for a given share amount at the registered unit price.
type Invoice struct {
	ID        string           `json:"id"`
	PayTo     identity.Address `json:"pay_to"`     // recipient of the payment
	Shares    uint64           `json:"shares"`     // share units quoted
	UnitPrice uint64           `json:"unit_price"` // price per share in base units
	Total     uint64           `json:"total"`      // Shares * UnitPrice, exact-match required
	Expiry    int64            `json:"expiry"`     // Unix timestamp
}

// NewInvoice creates a purchase invoice. ttlSeconds is the quote
// time-to-live in seconds.
func NewInvoice(payTo identity.Address, shares, unitPrice uint64, ttlSeconds int64) *Invoice {
	return &Invoice{
		ID:        generateInvoiceID(),
		PayTo:     payTo,
		Shares:    shares,
		UnitPrice: unitPrice,
		Total:     shares * unitPrice,
		Expiry:    time.Now().Unix() + ttlSeconds,
	}
}

// IsExpired returns true if the invoice has passed its expiry time.
func (inv *Invoice) IsExpired() bool {
	return time.Now().Unix() > inv.Expiry
}

// Verify checks an attached payment against the invoice: the invoice must
// not be expired and the amount must match the total exactly.
func (inv *Invoice) Verify(attached uint64) error {
	if inv.IsExpired() {
		return ErrInvoiceExpired
	}
	return VerifyExact(attached, inv.Total)
}

// generateInvoiceID creates a random 16-byte hex-encoded invoice ID.
func generateInvoiceID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// Fallback to timestamp-based ID
		return fmt.Sprintf("inv-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
