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
	ErrInvalidOrderAmount      = errors.New("invalid order amount")
	ErrPaymentGatewayFailed    = errors.New("payment gateway failed")
	ErrPaymentGatewayNotConfig = errors.New("payment gateway not configured")
)

const orderNotificationPipeline = "order_notification"

// IPixOrderUseCase creates a PIX charge for a validated order and notifies
// the customer over WhatsApp.
type IPixOrderUseCase interface {
	CreatePixOrder(ctx context.Context, order entities.PixOrder) (entities.PixTransaction, error)
}

type PixOrderUseCase struct {
	gateway    interfaces.IPaymentGateway
	statusRepo interfaces.IPaymentStatusRepository
	messaging  interfaces.IMessagingClient
	observer   StepObserver
	now        func() time.Time
}

var _ IPixOrderUseCase = (*PixOrderUseCase)(nil)

// NewPixOrderUseCase wires the order flow. messaging may be nil, in which case
// every notification step is skipped.
func NewPixOrderUseCase(gateway interfaces.IPaymentGateway, statusRepo interfaces.IPaymentStatusRepository, messaging interfaces.IMessagingClient, observer StepObserver) *PixOrderUseCase {
	return &PixOrderUseCase{
		gateway:    gateway,
		statusRepo: statusRepo,
		messaging:  messaging,
		observer:   observer,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *PixOrderUseCase) CreatePixOrder(ctx context.Context, order entities.PixOrder) (entities.PixTransaction, error) {
	log := logging.FromCtx(ctx)
	log.Info("[pix][usecase] create-order start", "amount_cents", order.AmountCents, "cart_lines", len(order.Cart))

	if strings.TrimSpace(order.Phone) == "" {
		return entities.PixTransaction{}, entities.ErrInvalidPhone
	}
	if order.AmountCents <= 0 {
		log.Info("[pix][usecase] invalid amount", "amount_cents", order.AmountCents)
		return entities.PixTransaction{}, ErrInvalidOrderAmount
	}
	if u.gateway == nil {
		log.Error("[pix][usecase] gateway not configured")
		return entities.PixTransaction{}, ErrPaymentGatewayNotConfig
	}

	tx, err := u.gateway.CreatePixPayment(ctx, order)
	if err != nil {
		log.Error("[pix][usecase] payment gateway failed", "err", err)
		return entities.PixTransaction{}, fmt.Errorf("%w: %w", ErrPaymentGatewayFailed, err)
	}
	if strings.TrimSpace(tx.TxID) == "" {
		log.Error("[pix][usecase] payment gateway returned no txid")
		return entities.PixTransaction{}, fmt.Errorf("%w: missing txid", ErrPaymentGatewayFailed)
	}
	if tx.AmountCents == 0 {
		tx.AmountCents = order.AmountCents
	}
	log = log.With("txid", tx.TxID)
	log.Info("[pix][usecase] payment gateway success", "gateway_status", tx.GatewayStatus)

	u.recordPending(ctx, order, tx)

	NewPipeline(orderNotificationPipeline, u.observer).
		Add("whatsapp_summary", func(ctx context.Context) error {
			if u.messaging == nil {
				return fmt.Errorf("messaging not configured: %w", ErrStepSkipped)
			}
			return u.messaging.SendText(ctx, order.Phone, orderSummaryMessage(order, tx))
		}).
		Add("whatsapp_qrcode", func(ctx context.Context) error {
			if u.messaging == nil {
				return fmt.Errorf("messaging not configured: %w", ErrStepSkipped)
			}
			img := qrCodeImage(tx.QRCode)
			if img == "" {
				return fmt.Errorf("gateway returned no qr code: %w", ErrStepSkipped)
			}
			return u.messaging.SendImage(ctx, order.Phone, img, qrCodeCaption(tx))
		}).
		Add("whatsapp_copy_button", func(ctx context.Context) error {
			if u.messaging == nil {
				return fmt.Errorf("messaging not configured: %w", ErrStepSkipped)
			}
			return u.messaging.SendButton(ctx, order.Phone, copyPixButtonText, []entities.MessageButton{
				{ID: copyPixButtonID, Label: copyPixButtonLabel},
			})
		}).
		Run(ctx)

	log.Info("[pix][usecase] create-order success")
	return tx, nil
}

// recordPending stores the pending record; a failure here must not hide a
// charge the gateway already created, so it is only logged.
func (u *PixOrderUseCase) recordPending(ctx context.Context, order entities.PixOrder, tx entities.PixTransaction) {
	if u.statusRepo == nil {
		return
	}
	rec := entities.PaymentRecord{
		TxID:        tx.TxID,
		Status:      entities.PaymentStatusPending,
		AmountCents: tx.AmountCents,
		Name:        order.Name,
		Email:       order.Email,
		Phone:       order.Phone,
		CreatedAt:   u.now(),
	}
	if err := u.statusRepo.Set(ctx, rec); err != nil {
		logging.FromCtx(ctx).Error("[pix][usecase] record pending failed", "txid", tx.TxID, "err", err)
	}
}
