package response

import (
	"time"

	"storefront/internal/usecase"
)

type MpesaTransactionResponse struct {
	Amount             int64  `json:"amount,omitempty"`
	MpesaReceiptNumber string `json:"mpesa_receipt_number,omitempty"`
	TransactionDate    string `json:"transaction_date,omitempty"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	Status             string `json:"status,omitempty"`
}

// OrderResponse is the capture result: the created (master) order plus
// the reconciled push-payment evidence. The mpesa_transaction block is
// always present and serializes as an empty object for non-M-Pesa
// checkouts.
type OrderResponse struct {
	ID            string                    `json:"id"`
	PublicID      string                    `json:"public_id"`
	Status        string                    `json:"status"`
	Type          string                    `json:"type"`
	TransactionID string                    `json:"transaction_id"`
	PayloadID     string                    `json:"payload_id"`
	Meta          map[string]any            `json:"meta,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	Mpesa         *MpesaTransactionResponse `json:"mpesa_transaction"`
}

func FromCaptureResult(res usecase.CaptureResult) OrderResponse {
	out := OrderResponse{
		ID:            res.Order.ID,
		PublicID:      res.Order.PublicID,
		Status:        string(res.Order.Status),
		Type:          res.Order.Type,
		TransactionID: res.Order.TransactionID,
		PayloadID:     res.Order.PayloadID,
		Meta:          res.Order.Meta,
		CreatedAt:     res.Order.CreatedAt,
		Mpesa:         &MpesaTransactionResponse{},
	}
	if res.Mpesa != nil {
		out.Mpesa = &MpesaTransactionResponse{
			Amount:             res.Mpesa.Amount,
			MpesaReceiptNumber: res.Mpesa.ReceiptNumber,
			PhoneNumber:        res.Mpesa.PhoneNumber,
			Status:             string(res.Mpesa.Status),
		}
		if res.Mpesa.TransactionDate != nil {
			out.Mpesa.TransactionDate = res.Mpesa.TransactionDate.Format(time.RFC3339)
		}
	}
	return out
}
