package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pix_server/internal/domain/entities"
	"pix_server/internal/infrastructure/vendorhttp"
	"pix_server/internal/usecase/interfaces"
)

var ErrZAPINotConfigured = errors.New("z-api instance or token not configured")

type zapiTextRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type zapiImageRequest struct {
	Phone   string `json:"phone"`
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}

type zapiButton struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Text string `json:"text"`
}

type zapiButtonRequest struct {
	Phone   string       `json:"phone"`
	Message string       `json:"message"`
	Buttons []zapiButton `json:"buttons"`
}

// ZAPIClient sends WhatsApp messages through a Z-API instance.
type ZAPIClient struct {
	http        *vendorhttp.Client
	baseURL     string
	instance    string
	token       string
	clientToken string
}

var _ interfaces.IMessagingClient = (*ZAPIClient)(nil)

func NewZAPIClient(baseURL, instance, token, clientToken string, timeout time.Duration) (*ZAPIClient, error) {
	if strings.TrimSpace(instance) == "" || strings.TrimSpace(token) == "" {
		return nil, ErrZAPINotConfigured
	}
	return &ZAPIClient{
		http:        vendorhttp.New("zapi", nil, timeout),
		baseURL:     strings.TrimRight(baseURL, "/"),
		instance:    instance,
		token:       token,
		clientToken: clientToken,
	}, nil
}

func (c *ZAPIClient) SendText(ctx context.Context, phone, message string) error {
	return c.post(ctx, "send-text", zapiTextRequest{Phone: phone, Message: message})
}

func (c *ZAPIClient) SendImage(ctx context.Context, phone, image, caption string) error {
	return c.post(ctx, "send-image", zapiImageRequest{Phone: phone, Image: image, Caption: caption})
}

// SendButton sends reply buttons. Z-API echoes the button id back in the
// customer's reply.
func (c *ZAPIClient) SendButton(ctx context.Context, phone, message string, buttons []entities.MessageButton) error {
	req := zapiButtonRequest{Phone: phone, Message: message, Buttons: make([]zapiButton, 0, len(buttons))}
	for _, b := range buttons {
		req.Buttons = append(req.Buttons, zapiButton{Type: "reply", ID: b.ID, Text: b.Label})
	}
	return c.post(ctx, "send-button", req)
}

func (c *ZAPIClient) post(ctx context.Context, action string, body any) error {
	if c == nil || c.http == nil {
		return ErrZAPINotConfigured
	}
	url := fmt.Sprintf("%s/instances/%s/token/%s/%s", c.baseURL, c.instance, c.token, action)
	return c.http.PostJSON(ctx, url, map[string]string{"Client-Token": c.clientToken}, body, nil)
}
