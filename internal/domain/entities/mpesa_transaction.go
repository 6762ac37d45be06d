package entities

import "time"

// MpesaStatus is the authoritative state of an STK push transaction.
// PENDING is the only non-terminal state; once a transaction reaches
// SUCCESS or FAILED it never moves again.

type MpesaStatus string

const (
	MpesaStatusPending MpesaStatus = "PENDING"
	MpesaStatusSuccess MpesaStatus = "SUCCESS"
	MpesaStatusFailed  MpesaStatus = "FAILED"
)

func (s MpesaStatus) Terminal() bool {
	return s == MpesaStatusSuccess || s == MpesaStatusFailed
}

// MpesaTransaction tracks one STK push from initiation to its final
// confirmed outcome. Identity is the (merchant_request_id,
// checkout_request_id) pair assigned by the provider at initiation.
//
// Storage model (DynamoDB):
//   - PK: checkout_request_id
//   - GSI (status-index): status
//
// Both the webhook and the poll job write through the same upsert; the
// terminal-state invariant is enforced by the reconciler, which serializes
// writers per identity.

type MpesaTransaction struct {
	MerchantRequestID string      `json:"merchant_request_id"`
	CheckoutRequestID string      `json:"checkout_request_id"`
	Amount            int64       `json:"amount"`
	ReceiptNumber     string      `json:"mpesa_receipt_number,omitempty"`
	TransactionDate   *time.Time  `json:"transaction_date,omitempty"`
	PhoneNumber       string      `json:"phone_number,omitempty"`
	Status            MpesaStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
