package config

import (
	"strings"
	"sync/atomic"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPort     = "8080"
	DefaultTimeZone = "America/Toronto"
)

var ConfigStore atomic.Value

type ServerConfig struct {
	Port        string `envconfig:"PORT"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	BaseURL     string `envconfig:"SITE_BASE_URL"`
	AdminAPIKey string `envconfig:"ADMIN_API_KEY"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT"`
}

type TablesConfig struct {
	Services            string `envconfig:"DYNAMODB_TABLE_SERVICES" default:"services"`
	PricingPlans        string `envconfig:"DYNAMODB_TABLE_PRICING_PLANS" default:"pricing_plans"`
	Projects            string `envconfig:"DYNAMODB_TABLE_PROJECTS" default:"projects"`
	BlogPosts           string `envconfig:"DYNAMODB_TABLE_BLOG_POSTS" default:"blog_posts"`
	PortfolioCategories string `envconfig:"DYNAMODB_TABLE_PORTFOLIO_CATEGORIES" default:"portfolio_categories"`
	Portfolios          string `envconfig:"DYNAMODB_TABLE_PORTFOLIOS" default:"portfolios"`
	Testimonials        string `envconfig:"DYNAMODB_TABLE_TESTIMONIALS" default:"testimonials"`
	TeamMembers         string `envconfig:"DYNAMODB_TABLE_TEAM_MEMBERS" default:"team_members"`
	SiteConfiguration   string `envconfig:"DYNAMODB_TABLE_SITE_CONFIGURATION" default:"site_configuration"`
	Leads               string `envconfig:"DYNAMODB_TABLE_LEADS" default:"leads"`
	Orders              string `envconfig:"DYNAMODB_TABLE_ORDERS" default:"orders"`
	CalendarEvents      string `envconfig:"DYNAMODB_TABLE_CALENDAR_EVENTS" default:"calendar_events"`
	AgentLogs           string `envconfig:"DYNAMODB_TABLE_AGENT_LOGS" default:"agent_logs"`
	Integrations        string `envconfig:"DYNAMODB_TABLE_INTEGRATIONS" default:"integrations"`
}

type DynamoConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Tables          TablesConfig
}

type PaymentConfig struct {
	AccessToken   string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	WebhookSecret string `envconfig:"MERCADOPAGO_WEBHOOK_SECRET"`
	Currency      string `envconfig:"PAYMENT_CURRENCY" default:"CAD"`
	Mock          string `envconfig:"PAYMENT_GATEWAY_MOCK"`
	LegacyMock    string `envconfig:"MERCADOPAGO_MOCK"`
}

// MockEnabled accepts the same truthy spellings for either mock variable.
func (p PaymentConfig) MockEnabled() bool {
	for _, v := range []string{p.Mock, p.LegacyMock} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

type ERPConfig struct {
	URL       string        `envconfig:"FRAPPE_URL"`
	APIKey    string        `envconfig:"FRAPPE_API_KEY"`
	APISecret string        `envconfig:"FRAPPE_API_SECRET"`
	Company   string        `envconfig:"FRAPPE_COMPANY"`
	Timeout   time.Duration `envconfig:"FRAPPE_TIMEOUT" default:"30s"`
}

func (e ERPConfig) Configured() bool {
	return e.URL != "" && e.APIKey != "" && e.APISecret != ""
}

type ChatConfig struct {
	WebhookURL string `envconfig:"SLACK_WEBHOOK_URL"`
	Channel    string `envconfig:"SLACK_CHANNEL" default:"#leads"`
}

type AgentConfig struct {
	WebhookURL string        `envconfig:"AI_AGENT_WEBHOOK_URL"`
	APIKey     string        `envconfig:"AI_AGENT_API_KEY"`
	Timeout    time.Duration `envconfig:"AI_AGENT_TIMEOUT" default:"30s"`
}

type CalendarConfig struct {
	ClientID     string `envconfig:"GOOGLE_CLIENT_ID"`
	ClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `envconfig:"GOOGLE_REDIRECT_URI"`
	CalendarID   string `envconfig:"GOOGLE_CALENDAR_ID" default:"primary"`
	TimeZone     string `envconfig:"GOOGLE_CALENDAR_TIMEZONE"`
}

func (c CalendarConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type RedisConfig struct {
	URL         string        `envconfig:"REDIS_URL"`
	Concurrency int           `envconfig:"WORKER_CONCURRENCY" default:"5"`
	MaxRetry    int           `envconfig:"SIDE_EFFECT_MAX_RETRY" default:"5"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

type RateLimitConfig struct {
	RequestsPerSecond *float64      `envconfig:"RATE_LIMIT_RPS"`
	Burst             *int          `envconfig:"RATE_LIMIT_BURST"`
	TTL               time.Duration `envconfig:"RATE_LIMIT_TTL" default:"1h"`
}

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	DynamoDB  DynamoConfig
	Payment   PaymentConfig
	ERP       ERPConfig
	Chat      ChatConfig
	Agent     AgentConfig
	Calendar  CalendarConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// Load reads the environment into a Config and stores it for Fetch.
func Load() (*Config, error) {
	var cnf Config
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, errors.Wrap(err, "process env")
	}
	if err := cnf.validateAndAddDefaults(); err != nil {
		return nil, err
	}
	ConfigStore.Store(&cnf)
	return &cnf, nil
}

func Fetch() (*Config, error) {
	c, ok := ConfigStore.Load().(*Config)
	if !ok {
		return nil, errors.New("config not loaded")
	}
	return c, nil
}

// MockConfig stores cnf as the current configuration.
func MockConfig(cnf *Config) {
	ConfigStore.Store(cnf)
}

func (cnf *Config) IsProduction() bool {
	return strings.EqualFold(cnf.Server.Environment, "production")
}

func (cnf *Config) validateAndAddDefaults() error {
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)
	if cnf.Server.Port == "" {
		cnf.Server.Port = DefaultPort
	}
	cnf.Server.BaseURL = strings.TrimRight(strings.TrimSpace(cnf.Server.BaseURL), "/")
	if cnf.Server.BaseURL == "" {
		cnf.Server.BaseURL = "http://localhost:" + cnf.Server.Port
	}
	if cnf.Server.AdminAPIKey == "" {
		logrus.Warn("[config] ADMIN_API_KEY is empty, admin API is disabled")
	}

	cnf.ERP.URL = strings.TrimRight(strings.TrimSpace(cnf.ERP.URL), "/")
	cnf.Agent.WebhookURL = strings.TrimRight(strings.TrimSpace(cnf.Agent.WebhookURL), "/")

	if cnf.Calendar.TimeZone == "" {
		cnf.Calendar.TimeZone = DefaultTimeZone
	}
	if _, err := time.LoadLocation(cnf.Calendar.TimeZone); err != nil {
		return errors.Wrapf(err, "invalid GOOGLE_CALENDAR_TIMEZONE %q", cnf.Calendar.TimeZone)
	}
	if cnf.Calendar.RedirectURL == "" {
		cnf.Calendar.RedirectURL = cnf.Server.BaseURL + "/calendar/callback"
	}

	if cnf.Redis.Concurrency <= 0 {
		return errors.New("WORKER_CONCURRENCY must be positive")
	}

	// Rate limiting stays off unless one of the two knobs is set.
	if cnf.RateLimit.RequestsPerSecond != nil && cnf.RateLimit.Burst == nil {
		burst := 2 * int(*cnf.RateLimit.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		cnf.RateLimit.Burst = &burst
	}
	if cnf.RateLimit.RequestsPerSecond == nil && cnf.RateLimit.Burst != nil {
		rps := float64(*cnf.RateLimit.Burst) / 2
		cnf.RateLimit.RequestsPerSecond = &rps
	}
	return nil
}
