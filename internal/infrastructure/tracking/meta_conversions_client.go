package tracking

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pix_server/internal/domain/entities"
	"pix_server/internal/infrastructure/vendorhttp"
	"pix_server/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrMetaNotConfigured = errors.New("meta pixel id or access token not configured")

type metaUserData struct {
	Phones []string `json:"ph,omitempty"`
	Emails []string `json:"em,omitempty"`
}

type metaCustomData struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

type metaEvent struct {
	EventName    string         `json:"event_name"`
	EventTime    int64          `json:"event_time"`
	EventID      string         `json:"event_id"`
	ActionSource string         `json:"action_source"`
	UserData     metaUserData   `json:"user_data"`
	CustomData   metaCustomData `json:"custom_data"`
}

type metaEventsRequest struct {
	Data []metaEvent `json:"data"`
}

// MetaConversionsClient reports purchases to the Meta Conversions API.
type MetaConversionsClient struct {
	http        *vendorhttp.Client
	graphURL    string
	pixelID     string
	accessToken string
}

var _ interfaces.IConversionReporter = (*MetaConversionsClient)(nil)

func NewMetaConversionsClient(graphURL, pixelID, accessToken string, timeout time.Duration) (*MetaConversionsClient, error) {
	if strings.TrimSpace(pixelID) == "" || strings.TrimSpace(accessToken) == "" {
		return nil, ErrMetaNotConfigured
	}
	return &MetaConversionsClient{
		http:        vendorhttp.New("meta", nil, timeout),
		graphURL:    strings.TrimRight(graphURL, "/"),
		pixelID:     pixelID,
		accessToken: accessToken,
	}, nil
}

func (c *MetaConversionsClient) ReportPurchase(ctx context.Context, p entities.Purchase) error {
	if c == nil || c.http == nil {
		return ErrMetaNotConfigured
	}
	occurred := p.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}
	currency := p.Currency
	if currency == "" {
		currency = "BRL"
	}

	ev := metaEvent{
		EventName:    "Purchase",
		EventTime:    occurred.Unix(),
		EventID:      p.TxID,
		ActionSource: "website",
		CustomData: metaCustomData{
			Currency: currency,
			Value:    decimal.New(p.AmountCents, -2).InexactFloat64(),
		},
	}
	if h := hashIdentifier(p.Phone); h != "" {
		ev.UserData.Phones = []string{h}
	}
	if h := hashIdentifier(p.Email); h != "" {
		ev.UserData.Emails = []string{h}
	}

	endpoint := fmt.Sprintf("%s/%s/events?access_token=%s", c.graphURL, c.pixelID, url.QueryEscape(c.accessToken))
	return c.http.PostJSON(ctx, endpoint, nil, metaEventsRequest{Data: []metaEvent{ev}}, nil)
}

// hashIdentifier returns the lowercase hex SHA-256 of the trimmed, lowercased
// value, or "" for an empty value.
func hashIdentifier(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:])
}
