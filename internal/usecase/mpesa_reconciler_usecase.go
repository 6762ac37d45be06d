package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrTransactionNotFound = errors.New("mpesa transaction not found")
	ErrMalformedTimestamp  = errors.New("malformed mpesa transaction timestamp")
	ErrStatusConflict      = errors.New("conflicting terminal mpesa status")
	ErrIncompleteCallback  = errors.New("incomplete mpesa callback payload")
	ErrConfirmQueryFailed  = errors.New("failed to query stk push transaction")
)

// StkCallbackInput is the provider callback after DTO-level parsing: the
// identity pair, the result code, and the success metadata. Amount is
// already converted to minor units at the boundary.
type StkCallbackInput struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	AmountMinor       int64
	PhoneNumber       string
	ReceiptNumber     string
	TransactionDate   string // compact YYYYMMDDHHMMSS
}

// IMpesaReconcilerUseCase owns the authoritative status of STK push
// transactions. The webhook and the poll job are independent,
// unordered, possibly-duplicated triggers; both funnel into one
// per-identity serialized upsert with a terminal-state invariant:
// PENDING -> SUCCESS | FAILED, no way back out.

type IMpesaReconcilerUseCase interface {
	HandleCallback(ctx context.Context, in StkCallbackInput) (entities.MpesaStatus, error)
	ProcessPending(ctx context.Context) error
	GetStatus(ctx context.Context, checkoutRequestID string) (entities.MpesaStatus, error)
}

type MpesaReconcilerUseCase struct {
	transactions interfaces.IMpesaTransactionRepository
	client       interfaces.IMpesaClient

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ IMpesaReconcilerUseCase = (*MpesaReconcilerUseCase)(nil)

func NewMpesaReconcilerUseCase(transactions interfaces.IMpesaTransactionRepository, client interfaces.IMpesaClient) *MpesaReconcilerUseCase {
	return &MpesaReconcilerUseCase{
		transactions: transactions,
		client:       client,
		locks:        map[string]*sync.Mutex{},
	}
}

// HandleCallback processes a provider webhook. A non-zero result code
// records FAILED directly. On a zero result code the provider is
// re-queried and the query result is authoritative for the final status,
// guarding against spoofed or incomplete callbacks.
func (u *MpesaReconcilerUseCase) HandleCallback(ctx context.Context, in StkCallbackInput) (entities.MpesaStatus, error) {
	if in.MerchantRequestID == "" || in.CheckoutRequestID == "" {
		return "", ErrIncompleteCallback
	}

	logger := log.WithFields(log.Fields{
		"merchant_request_id": in.MerchantRequestID,
		"checkout_request_id": in.CheckoutRequestID,
		"result_code":         in.ResultCode,
	})
	logger.Info("[mpesa][reconciler] callback received")

	if in.ResultCode != 0 {
		return u.record(ctx, in.MerchantRequestID, in.CheckoutRequestID, entities.MpesaStatusFailed, nil)
	}

	transactionDate, err := ParseCompactTimestamp(in.TransactionDate)
	if err != nil {
		logger.WithError(err).Error("[mpesa][reconciler] callback timestamp unparseable")
		return "", err
	}

	query, err := u.client.Query(ctx, in.CheckoutRequestID)
	if err != nil {
		logger.WithError(err).Error("[mpesa][reconciler] confirmatory query failed")
		return "", fmt.Errorf("%w: %v", ErrConfirmQueryFailed, err)
	}

	status := entities.MpesaStatusFailed
	if query.ResultCode == "0" {
		status = entities.MpesaStatusSuccess
	}

	return u.record(ctx, in.MerchantRequestID, in.CheckoutRequestID, status, &callbackFields{
		amountMinor:     in.AmountMinor,
		phoneNumber:     in.PhoneNumber,
		receiptNumber:   in.ReceiptNumber,
		transactionDate: transactionDate,
	})
}

// ProcessPending is the poll trigger: query the provider for every
// PENDING transaction and record the observed outcome. Failures on one
// row never stop the sweep.
func (u *MpesaReconcilerUseCase) ProcessPending(ctx context.Context) error {
	pending, err := u.transactions.ListPending(ctx)
	if err != nil {
		return err
	}
	log.WithField("count", len(pending)).Info("[mpesa][poller] processing pending transactions")

	for _, tx := range pending {
		query, err := u.client.Query(ctx, tx.CheckoutRequestID)
		if err != nil {
			log.WithField("checkout_request_id", tx.CheckoutRequestID).WithError(err).Error("[mpesa][poller] query failed")
			continue
		}

		status := entities.MpesaStatusFailed
		if query.ResultCode == "0" {
			status = entities.MpesaStatusSuccess
		}

		if _, err := u.record(ctx, tx.MerchantRequestID, tx.CheckoutRequestID, status, nil); err != nil {
			log.WithField("checkout_request_id", tx.CheckoutRequestID).WithError(err).Error("[mpesa][poller] record failed")
		}
	}
	return nil
}

func (u *MpesaReconcilerUseCase) GetStatus(ctx context.Context, checkoutRequestID string) (entities.MpesaStatus, error) {
	tx, err := u.transactions.GetByCheckoutRequestID(ctx, checkoutRequestID)
	if err != nil {
		return "", err
	}
	if tx.CheckoutRequestID == "" {
		return "", ErrTransactionNotFound
	}
	return tx.Status, nil
}

type callbackFields struct {
	amountMinor     int64
	phoneNumber     string
	receiptNumber   string
	transactionDate time.Time
}

// record is the idempotent upsert both triggers write through. The
// per-identity critical section keeps two nearly-simultaneous writers
// from interleaving partial field updates; the terminal-state check keeps
// SUCCESS and FAILED absorbing. A disagreement between two terminal
// writes is logged as a data-quality anomaly and the first write wins.
func (u *MpesaReconcilerUseCase) record(ctx context.Context, merchantRequestID, checkoutRequestID string, status entities.MpesaStatus, fields *callbackFields) (entities.MpesaStatus, error) {
	lock := u.lockFor(checkoutRequestID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()

	tx, err := u.transactions.GetByCheckoutRequestID(ctx, checkoutRequestID)
	if err != nil {
		return "", err
	}
	if tx.CheckoutRequestID == "" {
		tx = entities.MpesaTransaction{
			MerchantRequestID: merchantRequestID,
			CheckoutRequestID: checkoutRequestID,
			Status:            entities.MpesaStatusPending,
			CreatedAt:         now,
		}
	}

	if tx.Status.Terminal() {
		if tx.Status != status {
			log.WithFields(log.Fields{
				"checkout_request_id": checkoutRequestID,
				"recorded_status":     tx.Status,
				"incoming_status":     status,
			}).Error("[mpesa][reconciler] conflicting terminal statuses; keeping first")
			return tx.Status, ErrStatusConflict
		}
		// Same terminal outcome again: idempotent no-op.
		return tx.Status, nil
	}

	tx.Status = status
	tx.UpdatedAt = now
	if fields != nil {
		if fields.amountMinor > 0 {
			tx.Amount = fields.amountMinor
		}
		if fields.phoneNumber != "" {
			tx.PhoneNumber = fields.phoneNumber
		}
		tx.ReceiptNumber = fields.receiptNumber
		date := fields.transactionDate
		tx.TransactionDate = &date
	}

	saved, err := u.transactions.Save(ctx, tx)
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{
		"checkout_request_id": checkoutRequestID,
		"status":              saved.Status,
	}).Info("[mpesa][reconciler] transaction recorded")
	return saved.Status, nil
}

func (u *MpesaReconcilerUseCase) lockFor(key string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.locks[key]; !ok {
		u.locks[key] = &sync.Mutex{}
	}
	return u.locks[key]
}

// ParseCompactTimestamp parses the provider's 14-digit compact timestamp
// (YYYYMMDDHHMMSS, e.g. 20240806171211). Malformed input is a
// data-quality error to surface, never a panic.
func ParseCompactTimestamp(s string) (time.Time, error) {
	if len(s) != 14 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	t, err := time.Parse("20060102150405", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	return t, nil
}
