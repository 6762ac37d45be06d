package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func networkCart() entities.Cart {
	return entities.Cart{
		ID:       "cart_net",
		Currency: "KES",
		Items: []entities.CartItem{
			{ID: "item_1", ProductID: "product_1", Name: "Chips", StoreID: "store_1", Subtotal: 600, Quantity: 1},
			{ID: "item_2", ProductID: "product_2", Name: "Soda", StoreID: "store_2", Subtotal: 400, Quantity: 1},
		},
	}
}

func TestCaptureUseCase_NetworkSplit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCaptureMocks(ctrl)
	uc := m.usecase(nil, nil, nil)

	scope := entities.Scope{CompanyID: "company_1", NetworkID: "network_1", Currency: "KES"}
	cart := networkCart()

	checkout := testCheckout()
	checkout.NetworkID = "network_1"
	checkout.StoreID = ""
	checkout.CartID = cart.ID
	checkout.CartState = &cart

	quote := entities.ServiceQuote{
		ID:          "sq_1",
		PublicID:    "service_quote_1",
		Amount:      150,
		Currency:    "KES",
		Origin:      []string{"place_s1", "place_s2"},
		Destination: "place_dest",
	}

	network := entities.Store{ID: "network_rec", PublicID: "network_1", CompanyID: "company_1", Name: "Galleria", IsNetwork: true, PODMethod: "scan"}
	store1 := entities.Store{
		ID: "store_rec_1", PublicID: "store_1", CompanyID: "company_s1", Name: "Mama Njeri",
		Locations: []entities.StoreLocation{{ID: "loc_1", PublicID: "location_1", StoreID: "store_1", PlaceID: "place_s1"}},
	}
	store2 := entities.Store{
		ID: "store_rec_2", PublicID: "store_2", CompanyID: "company_s2", Name: "Soda House",
		Locations: []entities.StoreLocation{{ID: "loc_2", PublicID: "location_2", StoreID: "store_2", PlaceID: "place_s2"}},
	}

	m.checkouts.EXPECT().GetByToken(gomock.Any(), "checkout_abc").Return(checkout, nil)
	m.customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1"}, nil)
	m.quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(quote, nil)
	m.stores.EXPECT().GetByPublicID(gomock.Any(), "network_1").Return(network, nil)
	m.stores.EXPECT().GetByPublicID(gomock.Any(), "store_1").Return(store1, nil)
	m.stores.EXPECT().GetByPublicID(gomock.Any(), "store_2").Return(store2, nil)

	m.orders.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
			if tx.Amount != 1150 {
				t.Fatalf("expected one ledger for the full amount, got %d", tx.Amount)
			}
			for _, item := range tx.Items {
				if item.Code != entities.LineItemProduct {
					continue
				}
				if item.Meta["storefront_network_id"] != "network_1" {
					t.Fatalf("expected network meta on product line, got %+v", item.Meta)
				}
			}
			return tx, nil
		},
	)

	payloads := []entities.Payload{}
	m.orders.EXPECT().CreatePayload(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payload) (entities.Payload, error) {
			payloads = append(payloads, p)
			return p, nil
		},
	).Times(3)

	m.orders.EXPECT().CreateEntity(gomock.Any(), gomock.Any()).Return(entities.Entity{}, nil).Times(4)

	orders := []entities.Order{}
	m.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			orders = append(orders, o)
			return o, nil
		},
	).Times(3)

	backLinked := map[string]string{}
	m.orders.EXPECT().UpdateOrderMeta(gomock.Any(), gomock.Any(), entities.MetaMasterOrderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, orderID string, _ string, value any) error {
			backLinked[orderID] = value.(string)
			return nil
		},
	).Times(2)

	m.checkouts.EXPECT().MarkCaptured(gomock.Any(), "checkout_abc", gomock.Any()).Return(nil)

	res, err := uc.Capture(context.Background(), scope, "checkout_abc", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders) != 3 {
		t.Fatalf("expected two children and one master, got %d orders", len(orders))
	}
	children, master := orders[:2], orders[2]

	if !master.IsMasterOrder() {
		t.Fatalf("last created order must be the master")
	}
	if res.Order.ID != master.ID {
		t.Fatalf("capture must return the master order")
	}

	related, ok := master.Meta[entities.MetaRelatedOrders].([]string)
	if !ok || len(related) != 2 {
		t.Fatalf("expected master to list both children, got %v", master.Meta[entities.MetaRelatedOrders])
	}

	subtotals := map[string]int64{}
	for _, child := range children {
		if child.IsMasterOrder() {
			t.Fatalf("child order flagged as master: %+v", child.Meta)
		}
		storeID, _ := child.Meta["storefront_id"].(string)
		subtotal, _ := child.Meta[entities.MetaSubtotal].(int64)
		subtotals[storeID] = subtotal
		if fee, _ := child.Meta[entities.MetaDeliveryFee].(int64); fee != 0 {
			t.Fatalf("children carry no delivery fee, got %d", fee)
		}
		if total, _ := child.Meta[entities.MetaTotal].(int64); total != subtotal {
			t.Fatalf("child total must equal its subtotal, got %d vs %d", total, subtotal)
		}
	}
	if subtotals["store_1"] != 600 || subtotals["store_2"] != 400 {
		t.Fatalf("unexpected child subtotal split: %v", subtotals)
	}

	if total, _ := master.Meta[entities.MetaTotal].(int64); total != 1150 {
		t.Fatalf("master carries the full amount, got %d", total)
	}

	if len(backLinked) != 2 {
		t.Fatalf("expected both children back-linked, got %v", backLinked)
	}
	for _, child := range children {
		if backLinked[child.ID] != master.PublicID {
			t.Fatalf("child %s not linked to master %s: %v", child.ID, master.PublicID, backLinked)
		}
	}

	// Master payload routes from the primary origin through the remaining
	// origins as waypoints.
	masterPayload := payloads[2]
	if masterPayload.PickupPlaceID != "place_s1" || masterPayload.DropoffPlaceID != "place_dest" {
		t.Fatalf("unexpected master routing: %+v", masterPayload)
	}
	if len(masterPayload.WaypointPlaceIDs) != 1 || masterPayload.WaypointPlaceIDs[0] != "place_s2" {
		t.Fatalf("expected remaining origin as waypoint, got %v", masterPayload.WaypointPlaceIDs)
	}
	if payloads[0].PickupPlaceID != "place_s1" || payloads[1].PickupPlaceID != "place_s2" {
		t.Fatalf("child payloads must pick up at their store: %+v", payloads[:2])
	}
}

func TestCaptureUseCase_NetworkSplit_UnknownNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newCaptureMocks(ctrl)
	uc := m.usecase(nil, nil, nil)

	cart := networkCart()
	checkout := testCheckout()
	checkout.StoreID = ""
	checkout.CartState = &cart

	m.checkouts.EXPECT().GetByToken(gomock.Any(), "checkout_abc").Return(checkout, nil)
	m.customers.EXPECT().GetByID(gomock.Any(), "customer_1").Return(entities.Customer{ID: "customer_1"}, nil)
	m.quotes.EXPECT().GetByPublicID(gomock.Any(), "service_quote_1").Return(testQuote(), nil)
	m.stores.EXPECT().GetByPublicID(gomock.Any(), "network_missing").Return(entities.Store{}, nil)

	scope := entities.Scope{CompanyID: "company_1", NetworkID: "network_missing"}
	_, err := uc.Capture(context.Background(), scope, "checkout_abc", nil)
	if !errors.Is(err, ErrNoStoreResolvable) {
		t.Fatalf("expected ErrNoStoreResolvable, got %v", err)
	}
}

func TestStorePickupPlace(t *testing.T) {
	uc := &CaptureUseCase{}
	store := &entities.Store{
		Locations: []entities.StoreLocation{
			{PublicID: "location_1", PlaceID: "place_a"},
			{PublicID: "location_2", PlaceID: "place_b"},
		},
	}

	t.Run("prefers a matching quote origin", func(t *testing.T) {
		got := uc.storePickupPlace(context.Background(), store, []string{"place_x", "place_b"})
		if got != "place_b" {
			t.Fatalf("expected place_b, got %q", got)
		}
	})

	t.Run("falls back to first location", func(t *testing.T) {
		got := uc.storePickupPlace(context.Background(), store, []string{"place_x"})
		if got != "place_a" {
			t.Fatalf("expected place_a, got %q", got)
		}
	})

	t.Run("empty without locations", func(t *testing.T) {
		got := uc.storePickupPlace(context.Background(), &entities.Store{}, nil)
		if got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})
}
