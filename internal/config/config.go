package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite or postgres
	Path            string        `mapstructure:"path"`   // sqlite file path, ":memory:" for an in-memory database
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// HederaConfig holds ledger network and operator configuration
type HederaConfig struct {
	Network           string `mapstructure:"network"` // testnet, mainnet or previewnet
	OperatorID        string `mapstructure:"operator_id"`
	OperatorKey       string `mapstructure:"operator_key"`
	TreasuryID        string `mapstructure:"treasury_id"`  // optional shared treasury; a new account per token when empty
	TreasuryKey       string `mapstructure:"treasury_key"` // private key of TreasuryID
	AuditTopicID      string `mapstructure:"audit_topic_id"`
	TreasuryBalance   int64  `mapstructure:"treasury_initial_balance"` // in hbar
	MaxTransactionFee int64  `mapstructure:"max_transaction_fee"`      // in hbar
}

// MirrorNodeConfig holds the indexing service configuration
type MirrorNodeConfig struct {
	URL         string        `mapstructure:"url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
	CacheTTL    CacheTTLs     `mapstructure:"cache_ttl"`
}

// CacheTTLs holds per-resource cache lifetimes
type CacheTTLs struct {
	Balances  time.Duration `mapstructure:"balances"`
	Transfers time.Duration `mapstructure:"transfers"`
	Messages  time.Duration `mapstructure:"messages"`
	Account   time.Duration `mapstructure:"account"`
	Token     time.Duration `mapstructure:"token"`
}

// IPFSConfig holds content store configuration
type IPFSConfig struct {
	Provider        string        `mapstructure:"provider"` // pinata, node or local
	APIURL          string        `mapstructure:"api_url"`
	PinataAPIKey    string        `mapstructure:"pinata_api_key"`
	PinataSecretKey string        `mapstructure:"pinata_secret_key"`
	PinataJWT       string        `mapstructure:"pinata_jwt"`
	ProjectID       string        `mapstructure:"project_id"`
	ProjectSecret   string        `mapstructure:"project_secret"`
	Gateways        []string      `mapstructure:"gateways"`
	Timeout         time.Duration `mapstructure:"timeout"`
	UploadWorkers   int           `mapstructure:"upload_workers"`
}

// PurchaseConfig holds purchase flow configuration
type PurchaseConfig struct {
	MinQuantity    int64         `mapstructure:"min_quantity"`
	MaxQuantity    int64         `mapstructure:"max_quantity"`
	DefaultPrice   string        `mapstructure:"default_price"`
	Currency       string        `mapstructure:"currency"`
	PaymentLatency time.Duration `mapstructure:"payment_latency"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host          string   `mapstructure:"host"`
	Port          int      `mapstructure:"port"`
	ReadTimeout   int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout  int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout   int      `mapstructure:"idle_timeout"`  // in seconds
	MaxUploadSize int64    `mapstructure:"max_upload_size"`
	CORSOrigins   []string `mapstructure:"cors_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Hedera     HederaConfig     `mapstructure:"hedera"`
	MirrorNode MirrorNodeConfig `mapstructure:"mirror_node"`
	IPFS       IPFSConfig       `mapstructure:"ipfs"`
	Purchase   PurchaseConfig   `mapstructure:"purchase"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Auth       AuthConfig       `mapstructure:"auth"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.max_upload_size", 20*1024*1024) // 20MB
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data/proptoken.db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("hedera.network", "testnet")
	v.SetDefault("hedera.treasury_initial_balance", 10)
	v.SetDefault("hedera.max_transaction_fee", 20)
	v.SetDefault("mirror_node.url", "https://testnet.mirrornode.hedera.com")
	v.SetDefault("mirror_node.timeout", "10s")
	v.SetDefault("mirror_node.max_attempts", 3)
	v.SetDefault("mirror_node.retry_delay", "1s")
	v.SetDefault("mirror_node.cache_ttl.balances", "30s")
	v.SetDefault("mirror_node.cache_ttl.transfers", "60s")
	v.SetDefault("mirror_node.cache_ttl.messages", "60s")
	v.SetDefault("mirror_node.cache_ttl.account", "120s")
	v.SetDefault("mirror_node.cache_ttl.token", "300s")
	v.SetDefault("ipfs.provider", "pinata")
	v.SetDefault("ipfs.gateways", []string{
		"https://gateway.pinata.cloud",
		"https://ipfs.io",
		"https://dweb.link",
		"https://cf-ipfs.com",
	})
	v.SetDefault("ipfs.timeout", "30s")
	v.SetDefault("ipfs.upload_workers", 4)
	v.SetDefault("purchase.min_quantity", 1)
	v.SetDefault("purchase.max_quantity", 10000)
	v.SetDefault("purchase.default_price", "100")
	v.SetDefault("purchase.currency", "USD")
	v.SetDefault("purchase.payment_latency", "500ms")
	v.SetDefault("nats.stream_name", "PROPTOKEN_EVENTS")
	v.SetDefault("nats.subject_prefix", "proptoken.events")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "proptoken-api")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *APIConfig) validate() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return errors.New("database.path is required for sqlite")
		}
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("database.host and database.dbname are required for postgres")
		}
	default:
		return fmt.Errorf("unsupported database.driver: %s", c.Database.Driver)
	}

	if c.MirrorNode.MaxAttempts < 1 {
		return errors.New("mirror_node.max_attempts must be at least 1")
	}
	if c.Purchase.MinQuantity < 1 || c.Purchase.MaxQuantity < c.Purchase.MinQuantity {
		return errors.New("purchase quantity bounds are invalid")
	}

	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search order: working directory, cmd/<service>/, config/
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("PROPTOKEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.max_upload_size",
		"server.cors_origins",
		// Database
		"database.driver",
		"database.path",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Hedera
		"hedera.network",
		"hedera.operator_id",
		"hedera.operator_key",
		"hedera.treasury_id",
		"hedera.treasury_key",
		"hedera.audit_topic_id",
		"hedera.treasury_initial_balance",
		"hedera.max_transaction_fee",
		// Mirror node
		"mirror_node.url",
		"mirror_node.timeout",
		"mirror_node.max_attempts",
		"mirror_node.retry_delay",
		"mirror_node.cache_ttl.balances",
		"mirror_node.cache_ttl.transfers",
		"mirror_node.cache_ttl.messages",
		"mirror_node.cache_ttl.account",
		"mirror_node.cache_ttl.token",
		// IPFS
		"ipfs.provider",
		"ipfs.api_url",
		"ipfs.pinata_api_key",
		"ipfs.pinata_secret_key",
		"ipfs.pinata_jwt",
		"ipfs.project_id",
		"ipfs.project_secret",
		"ipfs.gateways",
		"ipfs.timeout",
		"ipfs.upload_workers",
		// Purchase
		"purchase.min_quantity",
		"purchase.max_quantity",
		"purchase.default_price",
		"purchase.currency",
		"purchase.payment_latency",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads .env files from envPath; later files override earlier ones
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the postgres connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
