package request

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Daraja STK callback envelope. The gateway posts
// Body.stkCallback with a CallbackMetadata block that is present only on
// success, as a list of name/value items with loosely typed values
// (amounts arrive as JSON numbers, dates as 14-digit numbers, phone
// numbers as either).

type StkCallbackItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value"`
}

type StkCallbackMetadata struct {
	Item []StkCallbackItem `json:"Item"`
}

type StkCallback struct {
	MerchantRequestID string              `json:"MerchantRequestID"`
	CheckoutRequestID string              `json:"CheckoutRequestID"`
	ResultCode        int                 `json:"ResultCode"`
	ResultDesc        string              `json:"ResultDesc"`
	CallbackMetadata  StkCallbackMetadata `json:"CallbackMetadata"`
}

type StkCallbackBody struct {
	StkCallback StkCallback `json:"stkCallback"`
}

type StkCallbackRequest struct {
	Body StkCallbackBody `json:"Body"`
}

func (r StkCallbackRequest) Callback() StkCallback {
	return r.Body.StkCallback
}

// metadataString returns the named metadata item rendered as a string,
// tolerating both quoted and bare JSON values.
func (cb StkCallback) metadataString(name string) string {
	for _, item := range cb.CallbackMetadata.Item {
		if !strings.EqualFold(item.Name, name) {
			continue
		}
		var s string
		if err := json.Unmarshal(item.Value, &s); err == nil {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(item.Value, &n); err == nil {
			return n.String()
		}
		return strings.Trim(string(item.Value), `"`)
	}
	return ""
}

// AmountMinor returns the callback amount converted from whole currency
// units to minor units, or 0 when absent.
func (cb StkCallback) AmountMinor() int64 {
	raw := cb.metadataString("Amount")
	if raw == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(amount * 100))
}

func (cb StkCallback) ReceiptNumber() string {
	return cb.metadataString("MpesaReceiptNumber")
}

func (cb StkCallback) PhoneNumber() string {
	return cb.metadataString("PhoneNumber")
}

// TransactionDate returns the compact YYYYMMDDHHMMSS timestamp as sent,
// normalizing the JSON-number form Daraja uses.
func (cb StkCallback) TransactionDate() string {
	raw := cb.metadataString("TransactionDate")
	if raw == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return fmt.Sprintf("%.0f", f)
	}
	return raw
}
