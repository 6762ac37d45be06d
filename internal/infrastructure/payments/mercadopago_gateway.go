package payments

import (
	"context"
	"errors"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	log "github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway is the card/invoice adapter: it creates a provider-side
// checkout preference and hands its reference back; the client completes the
// charge against the provider directly.

type MercadoPagoGateway struct {
	client preference.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, customer entities.Customer) (interfaces.CardIntent, error) {
	if g == nil || g.client == nil {
		return interfaces.CardIntent{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := preference.Request{
		Items: []preference.ItemRequest{{
			Title:      "Storefront order",
			Quantity:   1,
			CurrencyID: currency,
			UnitPrice:  displayUnits(amountMinor),
		}},
		Payer: &preference.PayerRequest{Email: customer.Email},
	}

	resource, err := g.client.Create(ctx, req)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] preference create failed")
		return interfaces.CardIntent{}, err
	}
	log.WithField("preference_id", resource.ID).Info("[payment][gateway] intent created")

	return interfaces.CardIntent{
		Reference:    resource.ID,
		ClientSecret: resource.InitPoint,
		CustomerRef:  customer.Email,
	}, nil
}

func (g *MercadoPagoGateway) CreateInvoice(ctx context.Context, amountMinor int64, currency string, description string, reference string) (interfaces.Invoice, error) {
	if g == nil || g.client == nil {
		return interfaces.Invoice{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := preference.Request{
		Items: []preference.ItemRequest{{
			Title:      description,
			Quantity:   1,
			CurrencyID: currency,
			UnitPrice:  displayUnits(amountMinor),
		}},
		ExternalReference: reference,
	}

	resource, err := g.client.Create(ctx, req)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] invoice create failed")
		return interfaces.Invoice{}, err
	}
	log.WithFields(log.Fields{"preference_id": resource.ID, "reference": reference}).Info("[payment][gateway] invoice created")

	return interfaces.Invoice{
		Reference: resource.ID,
		URL:       resource.InitPoint,
	}, nil
}

// displayUnits converts minor units to the whole-unit decimal the
// provider expects; internal amounts stay in minor units everywhere else.
func displayUnits(amountMinor int64) float64 {
	return float64(amountMinor) / 100
}
