package interfaces

import "context"

// MpesaInitiation is the correlation pair assigned by the provider when
// an STK push is accepted.
type MpesaInitiation struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResponseCode      string
	CustomerMessage   string
}

// MpesaQueryResult is the provider's answer to an STK push status query.
// ResultCode "0" means the payer completed the payment.
type MpesaQueryResult struct {
	ResultCode string
	ResultDesc string
	Raw        map[string]any
}

// IMpesaClient talks to the push-payment provider: one access-token fetch
// plus one request per call, no internal retry. Callers own the retry
// policy since a blind re-initiate would double-prompt the payer.

type IMpesaClient interface {
	Initiate(ctx context.Context, amountMinor int64, phone string, reference string) (MpesaInitiation, error)
	Query(ctx context.Context, checkoutRequestID string) (MpesaQueryResult, error)
}
