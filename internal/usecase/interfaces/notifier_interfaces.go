package interfaces

import (
	"context"

	"pix_server/internal/domain/entities"
)

// IMessagingClient sends WhatsApp messages to a normalized phone number.
type IMessagingClient interface {
	SendText(ctx context.Context, phone, message string) error
	SendImage(ctx context.Context, phone, image, caption string) error
	SendButton(ctx context.Context, phone, message string, buttons []entities.MessageButton) error
}

// IConversionReporter reports a purchase to the ad-conversion API. It hashes
// customer identifiers itself; callers pass raw values.
type IConversionReporter interface {
	ReportPurchase(ctx context.Context, purchase entities.Purchase) error
}

// IAutomationNotifier posts payment status changes to the marketing
// automation webhook.
type IAutomationNotifier interface {
	NotifyStatus(ctx context.Context, notification entities.StatusNotification) error
}
