package tracking

import (
	"context"
	"errors"
	"strings"
	"time"

	"pix_server/internal/domain/entities"
	"pix_server/internal/infrastructure/vendorhttp"
	"pix_server/internal/usecase/interfaces"
)

var ErrAutomationNotConfigured = errors.New("automation webhook url not configured")

// AutomationWebhookClient posts status notifications to a marketing
// automation endpoint.
type AutomationWebhookClient struct {
	http *vendorhttp.Client
	url  string
}

var _ interfaces.IAutomationNotifier = (*AutomationWebhookClient)(nil)

func NewAutomationWebhookClient(url string, timeout time.Duration) (*AutomationWebhookClient, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrAutomationNotConfigured
	}
	return &AutomationWebhookClient{http: vendorhttp.New("automation", nil, timeout), url: url}, nil
}

func (c *AutomationWebhookClient) NotifyStatus(ctx context.Context, n entities.StatusNotification) error {
	if c == nil || c.http == nil {
		return ErrAutomationNotConfigured
	}
	return c.http.PostJSON(ctx, c.url, nil, n, nil)
}
