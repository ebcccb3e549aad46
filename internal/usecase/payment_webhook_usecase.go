package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pix_server/internal/domain/entities"
	"pix_server/internal/logging"
	"pix_server/internal/usecase/interfaces"
)

var (
	ErrStatusLookupFailed = errors.New("payment status lookup failed")
	ErrStatusStoreFailed  = errors.New("payment status store failed")
	ErrLedgerFailed       = errors.New("notification ledger failed")
)

const (
	confirmationPipeline  = "payment_confirmation"
	paymentConfirmedEvent = "payment.confirmed"
	currencyBRL           = "BRL"
)

// WebhookOutcome describes what a webhook delivery caused. It is returned to
// the gateway for traceability only; the HTTP status is always 200.
type WebhookOutcome struct {
	TxID      string       `json:"txid,omitempty"`
	Confirmed bool         `json:"confirmed"`
	Duplicate bool         `json:"duplicate,omitempty"`
	Ignored   string       `json:"ignored,omitempty"`
	Steps     []StepResult `json:"-"`
}

// IPaymentWebhookUseCase applies a parsed gateway callback.
//
// State per txid: unknown -> pending -> paid (terminal). Only the first
// confirmed delivery for a txid fans out; replays are acknowledged silently.
type IPaymentWebhookUseCase interface {
	HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) (WebhookOutcome, error)
}

type PaymentWebhookUseCase struct {
	statusRepo interfaces.IPaymentStatusRepository
	ledger     interfaces.INotificationLedger
	resolver   interfaces.IPaymentStatusResolver
	messaging  interfaces.IMessagingClient
	conversion interfaces.IConversionReporter
	automation interfaces.IAutomationNotifier
	observer   StepObserver
	now        func() time.Time
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

// WebhookDeps groups the optional collaborators; nil ones are skipped.
type WebhookDeps struct {
	Resolver   interfaces.IPaymentStatusResolver
	Messaging  interfaces.IMessagingClient
	Conversion interfaces.IConversionReporter
	Automation interfaces.IAutomationNotifier
	Observer   StepObserver
}

func NewPaymentWebhookUseCase(statusRepo interfaces.IPaymentStatusRepository, ledger interfaces.INotificationLedger, deps WebhookDeps) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{
		statusRepo: statusRepo,
		ledger:     ledger,
		resolver:   deps.Resolver,
		messaging:  deps.Messaging,
		conversion: deps.Conversion,
		automation: deps.Automation,
		observer:   deps.Observer,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentWebhookUseCase) HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) (WebhookOutcome, error) {
	event.TxID = strings.TrimSpace(event.TxID)
	log := logging.FromCtx(ctx).With("txid", event.TxID, "schema", event.Schema)
	log.Info("[pix][webhook] event received", "status", event.Status, "needs_lookup", event.NeedsLookup)

	out := WebhookOutcome{TxID: event.TxID}

	if event.NeedsLookup {
		if u.resolver == nil || event.TxID == "" {
			out.Ignored = "status lookup unavailable"
			log.Info("[pix][webhook] ignored: cannot resolve status")
			return out, nil
		}
		status, err := u.resolver.ResolveStatus(ctx, event.TxID)
		if err != nil {
			log.Error("[pix][webhook] status lookup failed", "err", err)
			return out, fmt.Errorf("%w: %w", ErrStatusLookupFailed, err)
		}
		event.Status = status
		log.Info("[pix][webhook] status resolved", "status", status)
	}

	if !event.Confirmed() {
		log.Info("[pix][webhook] not confirmed; no-op")
		return out, nil
	}
	out.Confirmed = true

	if event.TxID == "" {
		out.Ignored = "missing txid"
		log.Warn("[pix][webhook] confirmed event without txid")
		return out, nil
	}

	rec, err := u.markPaid(ctx, event)
	if err != nil {
		log.Error("[pix][webhook] status store failed", "err", err)
		return out, fmt.Errorf("%w: %w", ErrStatusStoreFailed, err)
	}

	first := true
	if u.ledger != nil {
		first, err = u.ledger.Claim(ctx, event.TxID)
		if err != nil {
			log.Error("[pix][webhook] ledger claim failed", "err", err)
			return out, fmt.Errorf("%w: %w", ErrLedgerFailed, err)
		}
	}
	if !first {
		out.Duplicate = true
		log.Info("[pix][webhook] duplicate delivery; fan-out already done")
		return out, nil
	}

	out.Steps = u.fanOut(ctx, rec)
	log.Info("[pix][webhook] confirmation handled", "failed_steps", FailedSteps(out.Steps))
	return out, nil
}

// markPaid moves the record to paid. The first paid-at wins; replays only
// fill customer fields still missing.
func (u *PaymentWebhookUseCase) markPaid(ctx context.Context, event entities.PaymentEvent) (entities.PaymentRecord, error) {
	rec, err := u.statusRepo.Get(ctx, event.TxID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	rec.TxID = event.TxID

	changed := false
	if !rec.IsPaid() {
		now := u.now()
		rec.Status = entities.PaymentStatusPaid
		rec.PaidAt = &now
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		changed = true
	}
	if rec.Phone == "" && event.Phone != "" {
		if phone, err := entities.NormalizePhone(event.Phone); err == nil {
			rec.Phone = phone
			changed = true
		}
	}
	if rec.Email == "" && event.Email != "" {
		rec.Email = event.Email
		changed = true
	}
	if rec.Name == "" && event.Name != "" {
		rec.Name = event.Name
		changed = true
	}
	if rec.AmountCents == 0 && event.AmountCents > 0 {
		rec.AmountCents = event.AmountCents
		changed = true
	}

	if changed {
		if err := u.statusRepo.Set(ctx, rec); err != nil {
			return entities.PaymentRecord{}, err
		}
	}
	return rec, nil
}

func (u *PaymentWebhookUseCase) fanOut(ctx context.Context, rec entities.PaymentRecord) []StepResult {
	return NewPipeline(confirmationPipeline, u.observer).
		Add("whatsapp_confirmation", func(ctx context.Context) error {
			if u.messaging == nil {
				return fmt.Errorf("messaging not configured: %w", ErrStepSkipped)
			}
			if rec.Phone == "" {
				return fmt.Errorf("no customer phone: %w", ErrStepSkipped)
			}
			return u.messaging.SendText(ctx, rec.Phone, paymentConfirmedMessage(rec.Name, rec.TxID, rec.AmountCents))
		}).
		Add("conversion_purchase", func(ctx context.Context) error {
			if u.conversion == nil {
				return fmt.Errorf("conversion api not configured: %w", ErrStepSkipped)
			}
			occurred := u.now()
			if rec.PaidAt != nil {
				occurred = *rec.PaidAt
			}
			return u.conversion.ReportPurchase(ctx, entities.Purchase{
				TxID:        rec.TxID,
				Phone:       rec.Phone,
				Email:       rec.Email,
				AmountCents: rec.AmountCents,
				Currency:    currencyBRL,
				OccurredAt:  occurred,
			})
		}).
		Add("automation_webhook", func(ctx context.Context) error {
			if u.automation == nil {
				return fmt.Errorf("automation webhook not configured: %w", ErrStepSkipped)
			}
			return u.automation.NotifyStatus(ctx, entities.StatusNotification{
				Event:       paymentConfirmedEvent,
				TxID:        rec.TxID,
				Status:      rec.Status,
				Name:        rec.Name,
				Phone:       rec.Phone,
				Email:       rec.Email,
				AmountCents: rec.AmountCents,
				PaidAt:      rec.PaidAt,
			})
		}).
		Run(ctx)
}
