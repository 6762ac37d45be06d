package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/adapter/http/handlers/mocks"
	"storefront/internal/domain/entities"
	"storefront/internal/usecase"
	"storefront/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_BeforeCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/checkouts/before-checkout", h.BeforeCheckout)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkouts/before-checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/checkouts/before-checkout", h.BeforeCheckout)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkouts/before-checkout", bytes.NewBufferString(`{"gateway":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("scope headers reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/checkouts/before-checkout", h.BeforeCheckout)

		uc.EXPECT().BeforeCheckout(gomock.Any(), entities.Scope{CompanyID: "company_1", StoreID: "store_1", Currency: "KES"}, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Scope, in usecase.CheckoutInput) (usecase.CheckoutInitResult, error) {
				if in.Gateway != "mpesa_stk" || in.CartID != "cart_1" || in.CustomerID != "customer_1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.ServiceQuoteID != "sq_1" {
					t.Fatalf("expected service quote resolved, got %q", in.ServiceQuoteID)
				}
				return usecase.CheckoutInitResult{
					Token: "checkout_tok",
					Mpesa: &interfaces.MpesaInitiation{CheckoutRequestID: "ws_CO_1", CustomerMessage: "Enter PIN"},
				}, nil
			},
		)

		body := `{"gateway":"mpesa_stk","customer":"customer_1","cart":"cart_1","serviceQuote":"sq_1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkouts/before-checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Company-ID", "company_1")
		req.Header.Set("X-Store-ID", "store_1")
		req.Header.Set("X-Currency", "KES")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response not json: %v", err)
		}
		if resp["token"] != "checkout_tok" {
			t.Fatalf("expected token in response, got %v", resp)
		}
		if resp["mpesa"] == nil {
			t.Fatalf("expected mpesa block in response, got %v", resp)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{name: "unknown gateway", err: usecase.ErrGatewayNotConfigured, want: http.StatusBadRequest},
			{name: "misconfigured gateway", err: usecase.ErrGatewayMisconfigured, want: http.StatusBadGateway},
			{name: "cart not found", err: usecase.ErrCartNotFound, want: http.StatusNotFound},
			{name: "customer not found", err: usecase.ErrCustomerNotFound, want: http.StatusNotFound},
			{name: "quote not found", err: usecase.ErrServiceQuoteNotFound, want: http.StatusNotFound},
			{name: "invalid phone", err: entities.ErrInvalidPhoneNumber, want: http.StatusBadRequest},
			{name: "push rejected", err: usecase.ErrPushInitiateFailed, want: http.StatusBadGateway},
			{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockICheckoutUseCase(ctrl)
				h := NewCheckoutHandler(uc, nil)

				r := gin.New()
				r.POST("/v1/checkouts/before-checkout", h.BeforeCheckout)

				uc.EXPECT().BeforeCheckout(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.CheckoutInitResult{}, tc.err)

				body := `{"gateway":"cash","customer":"customer_1","cart":"cart_1"}`
				req := httptest.NewRequest(http.MethodPost, "/v1/checkouts/before-checkout", bytes.NewBufferString(body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d", tc.want, w.Code)
				}
			})
		}
	})
}

func TestCheckoutHandler_CaptureOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICaptureUseCase(ctrl)
		h := NewCheckoutHandler(nil, uc)

		r := gin.New()
		r.POST("/v1/checkouts/capture-order", h.CaptureOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkouts/capture-order", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns order with mpesa evidence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICaptureUseCase(ctrl)
		h := NewCheckoutHandler(nil, uc)

		r := gin.New()
		r.POST("/v1/checkouts/capture-order", h.CaptureOrder)

		uc.EXPECT().Capture(gomock.Any(), gomock.Any(), "checkout_tok", gomock.Any()).Return(usecase.CaptureResult{
			Order: entities.Order{ID: "order_rec", PublicID: "order_ab12", Status: entities.OrderStatusCreated},
			Mpesa: &entities.MpesaTransaction{
				CheckoutRequestID: "ws_CO_1",
				ReceiptNumber:     "SFG3HO2V1P",
				Status:            entities.MpesaStatusSuccess,
			},
		}, nil)

		body := `{"token":"checkout_tok","transactionDetails":{"id":"mp_123"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkouts/capture-order", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response not json: %v", err)
		}
		mpesa, ok := resp["mpesa_transaction"].(map[string]any)
		if !ok || mpesa["mpesa_receipt_number"] != "SFG3HO2V1P" {
			t.Fatalf("expected mpesa evidence, got %v", resp)
		}
	})

	t.Run("evidence block present even without a push payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICaptureUseCase(ctrl)
		h := NewCheckoutHandler(nil, uc)

		r := gin.New()
		r.POST("/v1/checkouts/capture-order", h.CaptureOrder)

		uc.EXPECT().Capture(gomock.Any(), gomock.Any(), "checkout_tok", gomock.Any()).Return(usecase.CaptureResult{
			Order: entities.Order{ID: "order_rec", PublicID: "order_ab12"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkouts/capture-order", bytes.NewBufferString(`{"token":"checkout_tok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response not json: %v", err)
		}
		if _, ok := resp["mpesa_transaction"].(map[string]any); !ok {
			t.Fatalf("expected empty mpesa_transaction object, got %v", resp)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{name: "not found", err: usecase.ErrCheckoutNotFound, want: http.StatusNotFound},
			{name: "cart expired", err: usecase.ErrCartExpired, want: http.StatusBadRequest},
			{name: "already captured", err: usecase.ErrAlreadyCaptured, want: http.StatusConflict},
			{name: "no store", err: usecase.ErrNoStoreResolvable, want: http.StatusBadRequest},
			{name: "vendor failure", err: usecase.ErrUpstreamVendorOrder, want: http.StatusBadGateway},
			{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockICaptureUseCase(ctrl)
				h := NewCheckoutHandler(nil, uc)

				r := gin.New()
				r.POST("/v1/checkouts/capture-order", h.CaptureOrder)

				uc.EXPECT().Capture(gomock.Any(), gomock.Any(), "checkout_tok", gomock.Any()).Return(usecase.CaptureResult{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/checkouts/capture-order", bytes.NewBufferString(`{"token":"checkout_tok"}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d", tc.want, w.Code)
				}
			})
		}
	})
}
