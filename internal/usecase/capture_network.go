package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entities"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// captureNetworkOrders handles a checkout spanning multiple stores under
// a network scope: one child payload/order per store carrying only that
// store's subtotal, then one master payload/order carrying the primary
// origin, the remaining origins as ordered waypoints, and the full
// amount breakdown. Children and master reference each other through
// order ids in meta, resolved via the order store, never as embedded
// object references.
func (u *CaptureUseCase) captureNetworkOrders(ctx context.Context, cc *captureContext) (CaptureResult, error) {
	network, err := u.stores.GetByPublicID(ctx, cc.scope.NetworkID)
	if err != nil {
		return CaptureResult{}, err
	}
	if network.ID == "" {
		return CaptureResult{}, ErrNoStoreResolvable
	}

	vendorOrderRef, err := u.createVendorOrderIfNeeded(ctx, cc)
	if err != nil {
		return CaptureResult{}, err
	}

	networkMeta := func(item entities.CartItem) map[string]any {
		return map[string]any{
			"storefront_network":    network.Name,
			"storefront_network_id": network.PublicID,
			"storefront_id":         item.StoreID,
		}
	}
	tx, err := u.createLedger(ctx, cc, nil, "Storefront network order", networkMeta)
	if err != nil {
		return CaptureResult{}, err
	}

	origins := cc.quote.Origin
	var primaryOrigin string
	var waypoints []string
	if len(origins) > 0 {
		primaryOrigin = origins[0]
		waypoints = origins[1:]
	}

	childOrders := []entities.Order{}
	for _, storeID := range cc.cart.StoreIDs() {
		store, err := u.stores.GetByPublicID(ctx, storeID)
		if err != nil {
			return CaptureResult{}, err
		}
		if store.ID == "" {
			return CaptureResult{}, ErrNoStoreResolvable
		}

		pickup := u.storePickupPlace(ctx, &store, origins)

		payload, err := u.orders.CreatePayload(ctx, entities.Payload{
			ID:             uuid.NewString(),
			CompanyID:      store.CompanyID,
			PickupPlaceID:  pickup,
			DropoffPlaceID: cc.quote.Destination,
			ReturnPlaceID:  pickup,
			PaymentMethod:  string(cc.gateway),
			Type:           "storefront",
		})
		if err != nil {
			return CaptureResult{}, err
		}

		storeItems := cc.cart.ItemsForStore(storeID)
		if err := u.createEntities(ctx, cc, payload.ID, storeItems); err != nil {
			return CaptureResult{}, err
		}

		subtotal := cc.cart.SubtotalForStore(storeID)
		meta := u.orderMeta(cc, &store, subtotal, true)
		meta[entities.MetaIsMasterOrder] = false
		meta["storefront_network"] = network.Name
		meta["storefront_network_id"] = network.PublicID
		if vendorOrderRef != "" {
			meta[entities.MetaIntegratedVendor] = cc.quote.IntegratedVendorID
			meta[entities.MetaIntegratedVendorOrder] = vendorOrderRef
		}

		child := entities.Order{
			ID:            uuid.NewString(),
			PublicID:      "order_" + uuid.NewString()[:8],
			CompanyID:     store.CompanyID,
			PayloadID:     payload.ID,
			CustomerID:    cc.customer.ID,
			TransactionID: tx.ID,
			Adhoc:         network.IsOption("auto_dispatch"),
			Type:          "storefront",
			Status:        entities.OrderStatusCreated,
			Meta:          meta,
			CreatedAt:     time.Now().UTC(),
		}
		if vendorOrderRef != "" {
			child.FacilitatorID = cc.quote.IntegratedVendorID
		}
		child, err = u.orders.CreateOrder(ctx, child)
		if err != nil {
			return CaptureResult{}, err
		}

		u.estimateRoute(ctx, child, pickup, cc.quote.Destination)
		u.notifyNewOrder(ctx, child)
		child = u.autoAccept(ctx, &store, child, cc.customer)

		childOrders = append(childOrders, child)
	}

	// Master payload: primary origin plus the remaining origins as an
	// ordered waypoint list.
	masterPayload, err := u.orders.CreatePayload(ctx, entities.Payload{
		ID:               uuid.NewString(),
		CompanyID:        cc.scope.CompanyID,
		PickupPlaceID:    primaryOrigin,
		DropoffPlaceID:   cc.quote.Destination,
		ReturnPlaceID:    primaryOrigin,
		WaypointPlaceIDs: waypoints,
		PaymentMethod:    string(cc.gateway),
		Type:             "storefront",
	})
	if err != nil {
		return CaptureResult{}, err
	}
	if err := u.createEntities(ctx, cc, masterPayload.ID, cc.cart.Items); err != nil {
		return CaptureResult{}, err
	}

	childIDs := make([]string, 0, len(childOrders))
	for _, child := range childOrders {
		childIDs = append(childIDs, child.PublicID)
	}

	masterMeta := u.orderMeta(cc, nil, cc.cart.Subtotal(), false)
	masterMeta[entities.MetaIsMasterOrder] = true
	masterMeta[entities.MetaRelatedOrders] = childIDs
	masterMeta["storefront"] = network.Name
	masterMeta["storefront_id"] = network.PublicID
	masterMeta["storefront_network"] = network.Name
	masterMeta["storefront_network_id"] = network.PublicID
	masterMeta[entities.MetaRequirePOD] = network.GetOption("require_pod")
	masterMeta[entities.MetaPODMethod] = network.PODMethod
	if vendorOrderRef != "" {
		masterMeta[entities.MetaIntegratedVendor] = cc.quote.IntegratedVendorID
		masterMeta[entities.MetaIntegratedVendorOrder] = vendorOrderRef
	}

	master := entities.Order{
		ID:            uuid.NewString(),
		PublicID:      "order_" + uuid.NewString()[:8],
		CompanyID:     cc.scope.CompanyID,
		PayloadID:     masterPayload.ID,
		CustomerID:    cc.customer.ID,
		TransactionID: tx.ID,
		Adhoc:         network.IsOption("auto_dispatch"),
		Type:          "storefront",
		Status:        entities.OrderStatusCreated,
		Meta:          masterMeta,
	}
	if vendorOrderRef != "" {
		master.FacilitatorID = cc.quote.IntegratedVendorID
	}
	master.CreatedAt = time.Now().UTC()
	master, err = u.orders.CreateOrder(ctx, master)
	if err != nil {
		return CaptureResult{}, err
	}

	// Back-link every child to the master through its id.
	for _, child := range childOrders {
		if err := u.orders.UpdateOrderMeta(ctx, child.ID, entities.MetaMasterOrderID, master.PublicID); err != nil {
			log.WithField("order_id", child.PublicID).WithError(err).Error("[capture][network] master back-link failed")
		}
	}

	if u.notifier != nil {
		if err := u.notifier.DriverAssigned(ctx, master); err != nil {
			log.WithField("order_id", master.PublicID).WithError(err).Error("[capture][network] driver-assigned notification failed")
		}
	}
	u.estimateRoute(ctx, master, primaryOrigin, cc.quote.Destination)

	if err := u.markCaptured(ctx, cc.checkout.Token, master.ID); err != nil {
		return CaptureResult{}, err
	}

	log.WithFields(log.Fields{
		"token":        cc.checkout.Token,
		"master_order": master.PublicID,
		"children":     len(childOrders),
	}).Info("[capture][network] capture success")
	return CaptureResult{Order: master, Mpesa: u.paymentEvidence(ctx, cc.checkout)}, nil
}

// storePickupPlace picks the store's pickup place, preferring a quote
// origin that belongs to one of the store's locations.
func (u *CaptureUseCase) storePickupPlace(ctx context.Context, store *entities.Store, origins []string) string {
	for _, origin := range origins {
		for _, location := range store.Locations {
			if location.PlaceID == origin {
				return origin
			}
		}
	}
	if len(store.Locations) > 0 {
		return store.Locations[0].PlaceID
	}
	return ""
}

// estimateRoute writes a preliminary driving distance/time guess into
// order meta. Best effort only.
func (u *CaptureUseCase) estimateRoute(ctx context.Context, order entities.Order, originPlaceID, destinationPlaceID string) {
	if u.estimator == nil || originPlaceID == "" || destinationPlaceID == "" {
		return
	}
	origin, err := u.stores.GetPlace(ctx, originPlaceID)
	if err != nil || origin.ID == "" {
		return
	}
	destination, err := u.stores.GetPlace(ctx, destinationPlaceID)
	if err != nil || destination.ID == "" {
		return
	}
	estimate, err := u.estimator.Estimate(ctx, origin, destination)
	if err != nil {
		log.WithField("order_id", order.PublicID).WithError(err).Warn("[capture][usecase] route estimate failed")
		return
	}
	if err := u.orders.UpdateOrderMeta(ctx, order.ID, entities.MetaDistance, estimate.DistanceMeters); err == nil {
		_ = u.orders.UpdateOrderMeta(ctx, order.ID, entities.MetaTime, estimate.TimeSeconds)
	}
}
