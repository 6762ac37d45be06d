package response

import (
	"storefront/internal/usecase"
)

type MpesaInitiationResponse struct {
	MerchantRequestID string `json:"merchant_request_id"`
	CheckoutRequestID string `json:"checkout_request_id"`
	CustomerMessage   string `json:"customer_message,omitempty"`
}

type CardIntentResponse struct {
	Reference    string `json:"reference"`
	ClientSecret string `json:"client_secret,omitempty"`
}

type InvoiceResponse struct {
	Reference string `json:"reference"`
	URL       string `json:"url,omitempty"`
}

// CheckoutInitResponse returns the session token plus whatever the
// chosen gateway produced for the client to continue with. At most one
// of the gateway blocks is set.
type CheckoutInitResponse struct {
	Token      string                   `json:"token"`
	Mpesa      *MpesaInitiationResponse `json:"mpesa,omitempty"`
	CardIntent *CardIntentResponse      `json:"card_intent,omitempty"`
	Invoice    *InvoiceResponse         `json:"invoice,omitempty"`
}

func FromCheckoutInit(res usecase.CheckoutInitResult) CheckoutInitResponse {
	out := CheckoutInitResponse{Token: res.Token}
	if res.Mpesa != nil {
		out.Mpesa = &MpesaInitiationResponse{
			MerchantRequestID: res.Mpesa.MerchantRequestID,
			CheckoutRequestID: res.Mpesa.CheckoutRequestID,
			CustomerMessage:   res.Mpesa.CustomerMessage,
		}
	}
	if res.CardIntent != nil {
		out.CardIntent = &CardIntentResponse{
			Reference:    res.CardIntent.Reference,
			ClientSecret: res.CardIntent.ClientSecret,
		}
	}
	if res.Invoice != nil {
		out.Invoice = &InvoiceResponse{
			Reference: res.Invoice.Reference,
			URL:       res.Invoice.URL,
		}
	}
	return out
}
