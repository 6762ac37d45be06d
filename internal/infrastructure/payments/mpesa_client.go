package payments

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

var (
	ErrMissingMpesaCredentials = errors.New("missing mpesa gateway credentials")
	ErrGatewayUnavailable      = errors.New("mpesa gateway unavailable")
	ErrQueryFailed             = errors.New("mpesa query failed")
)

const (
	sandboxBaseURL = "https://sandbox.safaricom.co.ke"
	liveBaseURL    = "https://api.safaricom.co.ke"
)

// MpesaConfig is the Daraja credential set, read from the environment:
// MPESA_SHORT_CODE, MPESA_CONSUMER_KEY, MPESA_CONSUMER_SECRET,
// MPESA_PASSKEY, MPESA_CALLBACK_URL, MPESA_ENV ("sandbox" or "live").
type MpesaConfig struct {
	ShortCode      string
	ConsumerKey    string
	ConsumerSecret string
	Passkey        string
	CallbackURL    string
	Env            string
}

func MpesaConfigFromEnv() MpesaConfig {
	return MpesaConfig{
		ShortCode:      os.Getenv("MPESA_SHORT_CODE"),
		ConsumerKey:    os.Getenv("MPESA_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("MPESA_CONSUMER_SECRET"),
		Passkey:        os.Getenv("MPESA_PASSKEY"),
		CallbackURL:    os.Getenv("MPESA_CALLBACK_URL"),
		Env:            getenvDefault("MPESA_ENV", "sandbox"),
	}
}

// MpesaClient talks to the Daraja STK push API. Every call fetches an
// access token then performs one request; there is no internal retry, and
// the circuit breaker only makes repeated provider failures fail fast.

type MpesaClient struct {
	config  MpesaConfig
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
}

var _ interfaces.IMpesaClient = (*MpesaClient)(nil)

func NewMpesaClient(config MpesaConfig) (*MpesaClient, error) {
	if config.ShortCode == "" || config.ConsumerKey == "" || config.ConsumerSecret == "" || config.Passkey == "" {
		return nil, ErrMissingMpesaCredentials
	}

	baseURL := sandboxBaseURL
	if config.Env == "live" {
		baseURL = liveBaseURL
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "mpesa",
		Interval: 15 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(log.Fields{"circuit": name, "from": from.String(), "to": to.String()}).Info("[mpesa][client] circuit breaker state changed")
		},
	})

	return &MpesaClient{
		config: config,
		http: resty.New().
			SetTimeout(30 * time.Second).
			SetRetryCount(0), // retry policy belongs to the caller
		breaker: breaker,
		baseURL: baseURL,
	}, nil
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type stkQueryResponse struct {
	ResponseCode string `json:"ResponseCode"`
	ResultCode   string `json:"ResultCode"`
	ResultDesc   string `json:"ResultDesc"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Initiate sends the STK push prompting the payer's phone. The amount
// arrives in minor units and converts to whole currency units at this
// boundary, since Daraja bodies carry whole units.
func (c *MpesaClient) Initiate(ctx context.Context, amountMinor int64, phone string, reference string) (interfaces.MpesaInitiation, error) {
	normalized, err := entities.NormalizePhoneNumber(phone)
	if err != nil {
		return interfaces.MpesaInitiation{}, err
	}
	if amountMinor <= 0 {
		return interfaces.MpesaInitiation{}, fmt.Errorf("amount must be positive minor units, got %d", amountMinor)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return interfaces.MpesaInitiation{}, err
	}

	timestamp := time.Now().Format("20060102150405")
	body := map[string]any{
		"BusinessShortCode": c.config.ShortCode,
		"Password":          c.password(timestamp),
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            wholeUnits(amountMinor),
		"PartyA":            normalized,
		"PartyB":            c.config.ShortCode,
		"PhoneNumber":       normalized,
		"CallBackURL":       c.config.CallbackURL,
		"AccountReference":  reference,
		"TransactionDesc":   "Order Payment",
	}

	var out stkPushResponse
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetBody(body).
			SetResult(&out).
			Post(c.baseURL + "/mpesa/stkpush/v1/processrequest")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("stk push http %d: %s", resp.StatusCode(), resp.String())
		}
		return out, nil
	})
	if err != nil {
		log.WithError(err).Error("[mpesa][client] stk push request failed")
		return interfaces.MpesaInitiation{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	push := result.(stkPushResponse)
	log.WithFields(log.Fields{
		"merchant_request_id": push.MerchantRequestID,
		"checkout_request_id": push.CheckoutRequestID,
		"response_code":       push.ResponseCode,
	}).Info("[mpesa][client] stk push sent")

	return interfaces.MpesaInitiation{
		MerchantRequestID: push.MerchantRequestID,
		CheckoutRequestID: push.CheckoutRequestID,
		ResponseCode:      push.ResponseCode,
		CustomerMessage:   push.CustomerMessage,
	}, nil
}

// Query asks the provider for the status of an STK push.
func (c *MpesaClient) Query(ctx context.Context, checkoutRequestID string) (interfaces.MpesaQueryResult, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return interfaces.MpesaQueryResult{}, err
	}

	timestamp := time.Now().Format("20060102150405")
	body := map[string]any{
		"BusinessShortCode": c.config.ShortCode,
		"Password":          c.password(timestamp),
		"Timestamp":         timestamp,
		"CheckoutRequestID": checkoutRequestID,
	}

	var out stkQueryResponse
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetBody(body).
			SetResult(&out).
			Post(c.baseURL + "/mpesa/stkpushquery/v1/query")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			if out.ErrorMessage != "" {
				return nil, fmt.Errorf("%w: %s", ErrQueryFailed, out.ErrorMessage)
			}
			return nil, fmt.Errorf("stk query http %d: %s", resp.StatusCode(), resp.String())
		}
		return out, nil
	})
	if err != nil {
		if errors.Is(err, ErrQueryFailed) {
			return interfaces.MpesaQueryResult{}, err
		}
		log.WithField("checkout_request_id", checkoutRequestID).WithError(err).Error("[mpesa][client] stk query failed")
		return interfaces.MpesaQueryResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	query := result.(stkQueryResponse)
	return interfaces.MpesaQueryResult{
		ResultCode: query.ResultCode,
		ResultDesc: query.ResultDesc,
		Raw: map[string]any{
			"ResponseCode": query.ResponseCode,
			"ResultCode":   query.ResultCode,
			"ResultDesc":   query.ResultDesc,
		},
	}, nil
}

// accessToken fetches a client-credentials OAuth token. Fetched per call;
// caching would be an optimization, not a correctness requirement.
func (c *MpesaClient) accessToken(ctx context.Context) (string, error) {
	basic := base64.StdEncoding.EncodeToString([]byte(c.config.ConsumerKey + ":" + c.config.ConsumerSecret))

	var out struct {
		AccessToken string `json:"access_token"`
	}
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Authorization", "Basic "+basic).
			SetResult(&out).
			Get(c.baseURL + "/oauth/v1/generate?grant_type=client_credentials")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("token fetch http %d: %s", resp.StatusCode(), resp.String())
		}
		return out.AccessToken, nil
	})
	if err != nil {
		log.WithError(err).Error("[mpesa][client] access token fetch failed")
		return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	token, _ := result.(string)
	if token == "" {
		return "", fmt.Errorf("%w: empty access token", ErrGatewayUnavailable)
	}
	return token, nil
}

func (c *MpesaClient) password(timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(c.config.ShortCode + c.config.Passkey + timestamp))
}

// wholeUnits converts minor units to the whole-unit amounts Daraja
// expects.
func wholeUnits(amountMinor int64) int64 {
	return int64(math.Round(float64(amountMinor) / 100))
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
