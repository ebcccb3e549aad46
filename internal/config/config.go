package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	GatewayBuckPay     = "buckpay"
	GatewayMercadoPago = "mercadopago"

	DriverMemory   = "memory"
	DriverDynamoDB = "dynamodb"
	DriverRedis    = "redis"
)

type Config struct {
	App struct {
		Port          int           `koanf:"port"`
		LogFile       string        `koanf:"log_file"`
		VendorTimeout time.Duration `koanf:"vendor_timeout"`
	} `koanf:"app"`

	Gateway struct {
		Provider string `koanf:"provider"`
		Mock     bool   `koanf:"mock"`
	} `koanf:"gateway"`

	BuckPay struct {
		Token   string `koanf:"token"`
		BaseURL string `koanf:"base_url"`
		OfferID string `koanf:"offer_id"`
	} `koanf:"buckpay"`

	MercadoPago struct {
		AccessToken string `koanf:"access_token"`
	} `koanf:"mercadopago"`

	ZAPI struct {
		Instance    string `koanf:"instance"`
		Token       string `koanf:"token"`
		ClientToken string `koanf:"client_token"`
		BaseURL     string `koanf:"base_url"`
	} `koanf:"zapi"`

	Meta struct {
		PixelID     string `koanf:"pixel_id"`
		AccessToken string `koanf:"access_token"`
		GraphURL    string `koanf:"graph_url"`
	} `koanf:"meta"`

	Automation struct {
		WebhookURL string `koanf:"webhook_url"`
	} `koanf:"automation"`

	Store struct {
		Driver string        `koanf:"driver"`
		Table  string        `koanf:"table"`
		TTL    time.Duration `koanf:"ttl"`
	} `koanf:"store"`

	Ledger struct {
		Driver string        `koanf:"driver"`
		Table  string        `koanf:"table"`
		TTL    time.Duration `koanf:"ttl"`
	} `koanf:"ledger"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`
}

// envKeys maps the flat variable names used by the deployment (.env) to
// koanf paths. Variables outside this table are ignored.
var envKeys = map[string]string{
	"PORT":                     "app.port",
	"LOG_FILE":                 "app.log_file",
	"VENDOR_TIMEOUT":           "app.vendor_timeout",
	"GATEWAY_PROVIDER":         "gateway.provider",
	"PAYMENT_GATEWAY_MOCK":     "gateway.mock",
	"MERCADOPAGO_MOCK":         "gateway.mock",
	"BUCKPAY_TOKEN":            "buckpay.token",
	"BUCKPAY_BASE_URL":         "buckpay.base_url",
	"BUCKPAY_OFFER_ID":         "buckpay.offer_id",
	"MERCADOPAGO_ACCESS_TOKEN": "mercadopago.access_token",
	"ZAPI_INSTANCE":            "zapi.instance",
	"ZAPI_TOKEN":               "zapi.token",
	"ZAPI_CLIENT_TOKEN":        "zapi.client_token",
	"ZAPI_BASE_URL":            "zapi.base_url",
	"META_PIXEL_ID":            "meta.pixel_id",
	"META_ACCESS_TOKEN":        "meta.access_token",
	"META_GRAPH_URL":           "meta.graph_url",
	"AUTOMATION_WEBHOOK_URL":   "automation.webhook_url",
	"STATUS_STORE":             "store.driver",
	"PAYMENTS_TABLE":           "store.table",
	"STATUS_TTL":               "store.ttl",
	"LEDGER":                   "ledger.driver",
	"LEDGER_TTL":               "ledger.ttl",
	"NOTIFICATIONS_TABLE":      "ledger.table",
	"REDIS_ADDR":               "redis.addr",
	"REDIS_PASSWORD":           "redis.password",
}

// Load reads the optional YAML file named by CONFIG_FILE and overlays the
// environment on top of it.
func Load() (Config, error) {
	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	// Empty variables are skipped so they never shadow file values or defaults.
	if err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		path := envKeys[key]
		if path == "gateway.mock" {
			return path, isTruthy(value)
		}
		return path, value
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.App.VendorTimeout <= 0 {
		c.App.VendorTimeout = 15 * time.Second
	}
	c.Gateway.Provider = strings.ToLower(strings.TrimSpace(c.Gateway.Provider))
	if c.Gateway.Provider == "" {
		c.Gateway.Provider = GatewayBuckPay
	}
	if c.BuckPay.BaseURL == "" {
		c.BuckPay.BaseURL = "https://api.realtechdev.com.br"
	}
	if c.ZAPI.BaseURL == "" {
		c.ZAPI.BaseURL = "https://api.z-api.io"
	}
	if c.Meta.GraphURL == "" {
		c.Meta.GraphURL = "https://graph.facebook.com/v18.0"
	}
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	if c.Store.Driver == "" {
		c.Store.Driver = DriverMemory
	}
	if c.Store.Table == "" {
		c.Store.Table = "pix_payments"
	}
	if c.Store.TTL <= 0 {
		c.Store.TTL = 30 * 24 * time.Hour
	}
	c.Ledger.Driver = strings.ToLower(strings.TrimSpace(c.Ledger.Driver))
	if c.Ledger.Driver == "" {
		c.Ledger.Driver = DriverMemory
	}
	if c.Ledger.Table == "" {
		c.Ledger.Table = "pix_notifications"
	}
	if c.Ledger.TTL <= 0 {
		c.Ledger.TTL = c.Store.TTL
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
}

func (c Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.App.Port)
	}
	switch c.Gateway.Provider {
	case GatewayBuckPay, GatewayMercadoPago:
	default:
		return fmt.Errorf("unknown GATEWAY_PROVIDER %q", c.Gateway.Provider)
	}
	switch c.Store.Driver {
	case DriverMemory, DriverDynamoDB:
	default:
		return fmt.Errorf("unknown STATUS_STORE %q", c.Store.Driver)
	}
	switch c.Ledger.Driver {
	case DriverMemory, DriverRedis, DriverDynamoDB:
	default:
		return fmt.Errorf("unknown LEDGER %q", c.Ledger.Driver)
	}
	return nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// MessagingEnabled reports whether every Z-API credential is present.
func (c Config) MessagingEnabled() bool {
	return c.ZAPI.Instance != "" && c.ZAPI.Token != ""
}

func (c Config) ConversionsEnabled() bool {
	return c.Meta.PixelID != "" && c.Meta.AccessToken != ""
}
