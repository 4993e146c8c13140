package config

import (
	"bytes"
	_ "embed" // for embedding default config
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.default.yml
var defaultConfig []byte

// Config ...
type Config struct {
	Env string `mapstructure:"env"`

	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Jaeger    JaegerConfig    `mapstructure:"jaeger"`
	MySQL     MySQLConfig     `mapstructure:"mysql"`
	Memcache  MemcacheConfig  `mapstructure:"memcache"`
	Payment   PaymentConfig   `mapstructure:"payment"`
	Mail      MailConfig      `mapstructure:"mail"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Checkout  CheckoutConfig  `mapstructure:"checkout"`
	Reconcile ReconcileConfig `mapstructure:"reconcile"`
	Notify    NotifyConfig    `mapstructure:"notify"`
}

// PaymentConfig for the card payment provider
type PaymentConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// MailConfig for outbound notification mail
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`

	// Timeout bounds one whole SMTP session
	Timeout    time.Duration `mapstructure:"timeout"`
	RequireTLS bool          `mapstructure:"require_tls"`
}

// Addr ...
func (c MailConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig for verifying bearer tokens issued by the identity provider
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// CheckoutConfig ...
type CheckoutConfig struct {
	CatalogCacheSize int           `mapstructure:"catalog_cache_size"`
	CatalogCacheTTL  time.Duration `mapstructure:"catalog_cache_ttl"`
}

// ReconcileConfig ...
type ReconcileConfig struct {
	// StrictLocking takes row locks on event and promo code during reconciliation
	StrictLocking bool          `mapstructure:"strict_locking"`
	SummaryTTL    time.Duration `mapstructure:"summary_ttl"`
}

// NotifyConfig ...
type NotifyConfig struct {
	BatchSize int `mapstructure:"batch_size"`
}

func loadConfig(dir string, name string) Config {
	vip := viper.New()

	vip.SetConfigType("yaml")
	err := vip.ReadConfig(bytes.NewReader(defaultConfig))
	if err != nil {
		panic(err)
	}

	vip.SetConfigName(name)
	vip.AddConfigPath(dir)
	err = vip.MergeInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
		fmt.Println("[WARN] config file not found, using default config:", path.Join(dir, name))
	}

	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	var cfg Config
	err = vip.Unmarshal(&cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load loads config.yml from the working directory
func Load() Config {
	return loadConfig(".", "config")
}

// LoadTestConfig loads config.test.yml from the root directory
func LoadTestConfig(rootDir string) Config {
	return loadConfig(rootDir, "config.test")
}
