package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "DELITO"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv              = "DELITO_APP_ENV"
	EnvPort                = "DELITO_APP_PORT"
	EnvFirebaseProjectID   = "DELITO_FIREBASE_PROJECT_ID"
	EnvFirebaseClientEmail = "DELITO_FIREBASE_CLIENT_EMAIL"
	EnvFirebasePrivateKey  = "DELITO_FIREBASE_PRIVATE_KEY"
	EnvJWTSecret           = "DELITO_JWT_SECRET"
	EnvJWTIssuer           = "DELITO_JWT_ISSUER"
	EnvRedisURL            = "DELITO_REDIS_URL"
	EnvPubSubAuditTopic    = "DELITO_PUBSUB_AUDIT_TOPIC"
	EnvBigQueryDataset     = "DELITO_BIGQUERY_DATASET"
	EnvCommissionRate      = "DELITO_DEFAULT_COMMISSION_RATE"
)

type Config struct {
	App      AppConfig
	Firebase FirebaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	PubSub   PubSubConfig
	BigQuery BigQueryConfig
	Cron     CronConfig
	Business BusinessConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Firebase.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Business.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DELITO_APP_ENV" required:"true"`
	Port         string `envconfig:"DELITO_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"DELITO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DELITO_LOG_WARN_STACK" default:"false"`
	// CORSOrigins is a comma separated allow-list for the dashboard frontends.
	CORSOrigins []string `envconfig:"DELITO_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// FirebaseConfig holds the service-account credentials for the Firestore project.
// All three values are required; the store is never replaced with mock data.
type FirebaseConfig struct {
	ProjectID   string `envconfig:"DELITO_FIREBASE_PROJECT_ID"`
	ClientEmail string `envconfig:"DELITO_FIREBASE_CLIENT_EMAIL"`
	PrivateKey  string `envconfig:"DELITO_FIREBASE_PRIVATE_KEY"`
	DatabaseID  string `envconfig:"DELITO_FIREBASE_DATABASE_ID" default:"(default)"`
	// EmulatorHost skips credential checks when talking to the local emulator.
	EmulatorHost string `envconfig:"FIRESTORE_EMULATOR_HOST"`
}

// NormalizedPrivateKey converts escaped newlines from env files into real ones.
func (f FirebaseConfig) NormalizedPrivateKey() string {
	return strings.ReplaceAll(strings.TrimSpace(f.PrivateKey), `\n`, "\n")
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// ServiceAccountJSON renders the credentials as a service-account key file.
// Firestore, Pub/Sub and BigQuery clients all authenticate with it.
func (f FirebaseConfig) ServiceAccountJSON() ([]byte, error) {
	return json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   f.ProjectID,
		ClientEmail: f.ClientEmail,
		PrivateKey:  f.NormalizedPrivateKey(),
		TokenURI:    "https://oauth2.googleapis.com/token",
	})
}

// UsesEmulator reports whether the Firestore emulator is configured.
func (f FirebaseConfig) UsesEmulator() bool {
	return strings.TrimSpace(f.EmulatorHost) != ""
}

func (f FirebaseConfig) validate() error {
	if strings.TrimSpace(f.ProjectID) == "" {
		return fmt.Errorf("firebase configuration missing: %s is required", EnvFirebaseProjectID)
	}
	if f.UsesEmulator() {
		return nil
	}
	missing := []string{}
	if strings.TrimSpace(f.ClientEmail) == "" {
		missing = append(missing, EnvFirebaseClientEmail)
	}
	if strings.TrimSpace(f.PrivateKey) == "" {
		missing = append(missing, EnvFirebasePrivateKey)
	}
	if len(missing) > 0 {
		return fmt.Errorf("firebase configuration missing: %s required", strings.Join(missing, ", "))
	}
	return nil
}

type JWTConfig struct {
	Secret string `envconfig:"DELITO_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"DELITO_JWT_ISSUER" default:"delito-admin"`
}

type RedisConfig struct {
	URL          string        `envconfig:"DELITO_REDIS_URL"`
	Address      string        `envconfig:"DELITO_REDIS_ADDR"`
	Password     string        `envconfig:"DELITO_REDIS_PASSWORD"`
	DB           int           `envconfig:"DELITO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DELITO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DELITO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DELITO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DELITO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DELITO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether any redis endpoint is configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type PubSubConfig struct {
	AuditTopic string `envconfig:"DELITO_PUBSUB_AUDIT_TOPIC"`
}

type BigQueryConfig struct {
	Dataset        string `envconfig:"DELITO_BIGQUERY_DATASET" default:"delito"`
	GSTLedgerTable string `envconfig:"DELITO_BIGQUERY_GST_LEDGER_TABLE" default:"gst_ledger"`
}

type CronConfig struct {
	Interval time.Duration `envconfig:"DELITO_CRON_INTERVAL" default:"1h"`
	LockTTL  time.Duration `envconfig:"DELITO_CRON_LOCK_TTL" default:"55m"`
}

// BusinessConfig carries the platform's money constants. Rates are percentages.
type BusinessConfig struct {
	DefaultCommissionRate float64 `envconfig:"DELITO_DEFAULT_COMMISSION_RATE" default:"15"`
	GSTRate               float64 `envconfig:"DELITO_GST_RATE" default:"18"`
	DeliveryBaseFee       float64 `envconfig:"DELITO_DELIVERY_BASE_FEE" default:"20"`
	DeliveryPerKmRate     float64 `envconfig:"DELITO_DELIVERY_PER_KM_RATE" default:"5"`
	DeliveryFlatTaskFee   float64 `envconfig:"DELITO_DELIVERY_FLAT_TASK_FEE" default:"30"`
	DeliveryFlatOrderFee  float64 `envconfig:"DELITO_DELIVERY_FLAT_ORDER_FEE" default:"30"`
}

func (b BusinessConfig) validate() error {
	if b.DefaultCommissionRate < 0 || b.DefaultCommissionRate > 100 {
		return fmt.Errorf("%s must be between 0 and 100", EnvCommissionRate)
	}
	if b.GSTRate < 0 || b.GSTRate > 100 {
		return fmt.Errorf("gst rate must be between 0 and 100")
	}
	return nil
}
