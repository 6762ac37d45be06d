package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testScope() entities.Scope {
	return entities.Scope{CompanyID: "company_1", StoreID: "store_1", Currency: "KES"}
}

func testCart() entities.Cart {
	return entities.Cart{
		ID:       "cart_1",
		Currency: "KES",
		Items: []entities.CartItem{
			{ID: "item_1", ProductID: "product_1", Name: "Chips", StoreID: "store_1", Subtotal: 600, Quantity: 2},
			{ID: "item_2", ProductID: "product_2", Name: "Soda", StoreID: "store_1", Subtotal: 400, Quantity: 1},
		},
	}
}

func TestCalculateCheckoutAmount(t *testing.T) {
	cart := testCart()
	quote := entities.ServiceQuote{ID: "sq_1", PublicID: "service_quote_1", Amount: 150, Currency: "KES"}

	cases := []struct {
		name    string
		options entities.CheckoutOptions
		want    int64
	}{
		{name: "subtotal only pickup", options: entities.CheckoutOptions{IsPickup: true}, want: 1000},
		{name: "subtotal plus delivery fee", options: entities.CheckoutOptions{}, want: 1150},
		{name: "percentage tip resolves against subtotal", options: entities.CheckoutOptions{Tip: "10%"}, want: 1250},
		{name: "absolute tip", options: entities.CheckoutOptions{Tip: "200"}, want: 1350},
		{name: "delivery tip added on delivery", options: entities.CheckoutOptions{DeliveryTip: "50"}, want: 1200},
		{name: "delivery tip dropped on pickup", options: entities.CheckoutOptions{IsPickup: true, DeliveryTip: "50"}, want: 1000},
		{name: "everything", options: entities.CheckoutOptions{Tip: "10%", DeliveryTip: "5%"}, want: 1300},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateCheckoutAmount(&cart, &quote, tc.options)
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestCheckoutUseCase_BeforeCheckout_Lookups(t *testing.T) {
	t.Run("unknown gateway", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.BeforeCheckout(context.Background(), testScope(), CheckoutInput{Gateway: "paypal", CartID: "cart_1"})
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("cart lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCheckoutUseCase(nil, carts, nil, nil, nil, nil, nil, nil)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(entities.Cart{}, errors.New("db"))

		_, err := uc.BeforeCheckout(context.Background(), testScope(), CheckoutInput{Gateway: "cash", CartID: "cart_1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("cart not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCheckoutUseCase(nil, carts, nil, nil, nil, nil, nil, nil)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(entities.Cart{}, nil)

		_, err := uc.BeforeCheckout(context.Background(), testScope(), CheckoutInput{Gateway: "cash", CartID: " cart_1 "})
		if !errors.Is(err, ErrCartNotFound) {
			t.Fatalf("expected ErrCartNotFound, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCheckoutUseCase(nil, carts, customers, nil, nil, nil, nil, nil)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{}, nil)

		_, err := uc.BeforeCheckout(context.Background(), testScope(), CheckoutInput{Gateway: "cash", CartID: "cart_1", CustomerID: "customer_1"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("service quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotes := mock_interfaces.NewMockIServiceQuoteRepository(ctrl)
		uc := NewCheckoutUseCase(nil, carts, customers, quotes, nil, nil, nil, nil)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1"}, nil)
		quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(entities.ServiceQuote{}, nil)

		_, err := uc.BeforeCheckout(context.Background(), testScope(), CheckoutInput{Gateway: "cash", CartID: "cart_1", CustomerID: "customer_1", ServiceQuoteID: "service_quote_1"})
		if !errors.Is(err, ErrServiceQuoteNotFound) {
			t.Fatalf("expected ErrServiceQuoteNotFound, got %v", err)
		}
	})
}

func TestCheckoutUseCase_BeforeCheckout_Cash(t *testing.T) {
	t.Run("cash flag overrides gateway code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkouts := mock_interfaces.NewMockICheckoutRepository(ctrl)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotes := mock_interfaces.NewMockIServiceQuoteRepository(ctrl)
		uc := NewCheckoutUseCase(checkouts, carts, customers, quotes, nil, nil, nil, nil)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1"}, nil)
		quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(entities.ServiceQuote{ID: "sq_1", PublicID: "service_quote_1", Amount: 150}, nil)

		checkouts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Checkout{})).DoAndReturn(
			func(_ context.Context, c entities.Checkout) (entities.Checkout, error) {
				if c.Gateway != entities.GatewayCash {
					t.Fatalf("expected cash gateway, got %s", c.Gateway)
				}
				if !c.Options.IsCashOnDelivery {
					t.Fatalf("expected cash-on-delivery option")
				}
				return c, nil
			},
		)

		res, err := uc.BeforeCheckout(context.Background(), testScope(), CheckoutInput{Gateway: "card", Cash: true, CartID: "cart_1", CustomerID: "customer_1", ServiceQuoteID: "service_quote_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token == "" {
			t.Fatalf("expected session token")
		}
	})

	t.Run("store fallback from single-store cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkouts := mock_interfaces.NewMockICheckoutRepository(ctrl)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotes := mock_interfaces.NewMockIServiceQuoteRepository(ctrl)
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewCheckoutUseCase(checkouts, carts, customers, quotes, stores, nil, nil, nil)

		scope := entities.Scope{CompanyID: "company_1", Currency: "KES"} // no store scope

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1"}, nil)
		quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(entities.ServiceQuote{ID: "sq_1", PublicID: "service_quote_1", Amount: 150}, nil)
		stores.EXPECT().GetByPublicID(gomock.Any(), "store_1").Return(entities.Store{ID: "store_rec_1", PublicID: "store_1"}, nil)

		checkouts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Checkout) (entities.Checkout, error) {
				if c.StoreID != "store_1" {
					t.Fatalf("expected store public id persisted in session, got %q", c.StoreID)
				}
				if c.Amount != 1150 {
					t.Fatalf("expected amount 1150, got %d", c.Amount)
				}
				if c.CartState == nil || len(c.CartState.Items) != 2 {
					t.Fatalf("expected cart snapshot frozen into session")
				}
				if !strings.HasPrefix(c.Token, "checkout_") {
					t.Fatalf("unexpected token format %q", c.Token)
				}
				return c, nil
			},
		)

		_, err := uc.BeforeCheckout(context.Background(), scope, CheckoutInput{Gateway: "cash", CartID: "cart_1", CustomerID: "customer_1", ServiceQuoteID: "service_quote_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCheckoutUseCase_BeforeCheckout_CardAndInvoice(t *testing.T) {
	t.Run("card gateway not wired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotes := mock_interfaces.NewMockIServiceQuoteRepository(ctrl)
		uc := NewCheckoutUseCase(nil, carts, customers, quotes, nil, nil, nil, nil)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1"}, nil)
		quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(entities.ServiceQuote{ID: "sq_1", PublicID: "service_quote_1"}, nil)

		_, err := uc.BeforeCheckout(context.Background(), testScope(), CheckoutInput{Gateway: "card", CartID: "cart_1", CustomerID: "customer_1", ServiceQuoteID: "service_quote_1"})
		if !errors.Is(err, ErrGatewayMisconfigured) {
			t.Fatalf("expected ErrGatewayMisconfigured, got %v", err)
		}
	})

	t.Run("card intent returned with token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkouts := mock_interfaces.NewMockICheckoutRepository(ctrl)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotes := mock_interfaces.NewMockIServiceQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(checkouts, carts, customers, quotes, nil, nil, nil, gateway)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1"}, nil)
		quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(entities.ServiceQuote{ID: "sq_1", PublicID: "service_quote_1", Amount: 150}, nil)
		gateway.EXPECT().CreateIntent(gomock.Any(), int64(1150), "KES", gomock.Any()).Return(interfaces.CardIntent{Reference: "intent_1", ClientSecret: "secret"}, nil)
		checkouts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Checkout) (entities.Checkout, error) { return c, nil },
		)

		res, err := uc.BeforeCheckout(context.Background(), testScope(), CheckoutInput{Gateway: "card", CartID: "cart_1", CustomerID: "customer_1", ServiceQuoteID: "service_quote_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CardIntent == nil || res.CardIntent.Reference != "intent_1" {
			t.Fatalf("expected card intent in result, got %+v", res)
		}
	})

	t.Run("provider failure leaves no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkouts := mock_interfaces.NewMockICheckoutRepository(ctrl)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotes := mock_interfaces.NewMockIServiceQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(checkouts, carts, customers, quotes, nil, nil, nil, gateway)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1"}, nil)
		quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(entities.ServiceQuote{ID: "sq_1", PublicID: "service_quote_1"}, nil)
		gateway.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.Invoice{}, errors.New("provider down"))

		_, err := uc.BeforeCheckout(context.Background(), testScope(), CheckoutInput{Gateway: "invoice", CartID: "cart_1", CustomerID: "customer_1", ServiceQuoteID: "service_quote_1"})
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down, got %v", err)
		}
	})
}

func TestCheckoutUseCase_BeforeCheckout_MpesaSTK(t *testing.T) {
	newMpesaFixture := func(ctrl *gomock.Controller) (*CheckoutUseCase, *mock_interfaces.MockICheckoutRepository, *mock_interfaces.MockIMpesaClient, *mock_interfaces.MockIMpesaTransactionRepository) {
		checkouts := mock_interfaces.NewMockICheckoutRepository(ctrl)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotes := mock_interfaces.NewMockIServiceQuoteRepository(ctrl)
		client := mock_interfaces.NewMockIMpesaClient(ctrl)
		transactions := mock_interfaces.NewMockIMpesaTransactionRepository(ctrl)
		uc := NewCheckoutUseCase(checkouts, carts, customers, quotes, nil, client, transactions, nil)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1", Phone: "0712345678"}, nil)
		quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(entities.ServiceQuote{ID: "sq_1", PublicID: "service_quote_1", Amount: 150}, nil)
		return uc, checkouts, client, transactions
	}

	input := CheckoutInput{Gateway: "mpesa_stk", CartID: "cart_1", CustomerID: "customer_1", ServiceQuoteID: "service_quote_1"}

	t.Run("push accepted persists session and pending row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, checkouts, client, transactions := newMpesaFixture(ctrl)

		client.EXPECT().Initiate(gomock.Any(), int64(1150), "254712345678", gomock.Any()).Return(interfaces.MpesaInitiation{
			MerchantRequestID: "merchant_1",
			CheckoutRequestID: "ws_CO_1",
			ResponseCode:      "0",
		}, nil)
		checkouts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Checkout) (entities.Checkout, error) {
				if c.MerchantRequestID != "merchant_1" || c.CheckoutRequestID != "ws_CO_1" {
					t.Fatalf("expected correlation ids on session, got %+v", c)
				}
				return c, nil
			},
		)
		transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.MpesaTransaction) (entities.MpesaTransaction, error) {
				if tx.Status != entities.MpesaStatusPending {
					t.Fatalf("expected PENDING row, got %s", tx.Status)
				}
				if tx.CheckoutRequestID != "ws_CO_1" || tx.Amount != 1150 || tx.PhoneNumber != "254712345678" {
					t.Fatalf("unexpected transaction row: %+v", tx)
				}
				return tx, nil
			},
		)

		res, err := uc.BeforeCheckout(context.Background(), testScope(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Mpesa == nil || res.Mpesa.CheckoutRequestID != "ws_CO_1" {
			t.Fatalf("expected push correlation in result, got %+v", res)
		}
	})

	t.Run("push rejected leaves no state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, client, _ := newMpesaFixture(ctrl)

		client.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.MpesaInitiation{ResponseCode: "1"}, nil)

		_, err := uc.BeforeCheckout(context.Background(), testScope(), input)
		if !errors.Is(err, ErrPushInitiateFailed) {
			t.Fatalf("expected ErrPushInitiateFailed, got %v", err)
		}
	})

	t.Run("invalid phone number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkouts := mock_interfaces.NewMockICheckoutRepository(ctrl)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotes := mock_interfaces.NewMockIServiceQuoteRepository(ctrl)
		client := mock_interfaces.NewMockIMpesaClient(ctrl)
		uc := NewCheckoutUseCase(checkouts, carts, customers, quotes, nil, client, nil, nil)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1", Phone: "12345"}, nil)
		quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(entities.ServiceQuote{ID: "sq_1", PublicID: "service_quote_1"}, nil)

		_, err := uc.BeforeCheckout(context.Background(), testScope(), input)
		if !errors.Is(err, entities.ErrInvalidPhoneNumber) {
			t.Fatalf("expected ErrInvalidPhoneNumber, got %v", err)
		}
	})

	t.Run("client not wired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotes := mock_interfaces.NewMockIServiceQuoteRepository(ctrl)
		uc := NewCheckoutUseCase(nil, carts, customers, quotes, nil, nil, nil, nil)

		carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(testCart(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1", Phone: "0712345678"}, nil)
		quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(entities.ServiceQuote{ID: "sq_1", PublicID: "service_quote_1"}, nil)

		_, err := uc.BeforeCheckout(context.Background(), testScope(), input)
		if !errors.Is(err, ErrGatewayMisconfigured) {
			t.Fatalf("expected ErrGatewayMisconfigured, got %v", err)
		}
	})
}
