package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	ce "github.com/storefront-services/storefront-backend/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const DefaultAppName = "storefront"

type Configuration struct {
	Database Database
	Logging  Logging
	Loaded   bool
	Platform Platform
	Metrics  Metrics
	Clients  Clients `mapstructure:"clients"`
	Kafka    Kafka   `mapstructure:"kafka"`
	Sentry   Sentry  `mapstructure:"sentry"`
}

type Database struct {
	Host              string
	Port              int
	User              string
	Password          string
	Name              string
	CACertPath        string         `mapstructure:"ca_cert_path"`
	PoolLimit         int            `mapstructure:"pool_limit"`
	SlowQueryDuration *time.Duration `mapstructure:"slow_query_duration"`
}

type Logging struct {
	Level   string
	Console bool
}

// Platform holds the tenant-routing configuration: the shared root domain
// under which subdomains are issued, and the server address custom domains
// must resolve to before they are activated.
type Platform struct {
	RootDomain     string        `mapstructure:"root_domain"`
	ServerIP       string        `mapstructure:"server_ip"`
	DevMode        bool          `mapstructure:"dev_mode"`
	InvitationCode string        `mapstructure:"invitation_code"`
	DNSTimeout     time.Duration `mapstructure:"dns_timeout"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	JWTExpiration  time.Duration `mapstructure:"jwt_expiration"`
}

type Clients struct {
	Redis Redis `mapstructure:"redis"`
}

type Redis struct {
	Host       string
	Port       int
	Username   string
	Password   string
	DB         int
	Expiration time.Duration
}

type Kafka struct {
	Brokers []string  `mapstructure:"brokers"`
	Topic   string    `mapstructure:"topic"`
	Sasl    KafkaSasl `mapstructure:"sasl"`
}

type KafkaSasl struct {
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Mechanism string `mapstructure:"mechanism"`
}

type Sentry struct {
	Dsn string
}

type Metrics struct {
	// Defines the path to the metrics server that the app should be configured to
	// listen on for metric traffic.
	Path string `mapstructure:"path"`

	// Defines the metrics port that the app should be configured to listen on for
	// metric traffic.
	Port int `mapstructure:"port"`
}

const (
	HeaderRequestId     = "x-request-id"
	RequestIdLoggingKey = "request_id"
	DefaultDNSTimeout   = 5 * time.Second
)

var LoadedConfig Configuration

func Get() *Configuration {
	if !LoadedConfig.Loaded {
		Load()
	}
	return &LoadedConfig
}

func RedisUrl() string {
	return fmt.Sprintf("%s:%d", Get().Clients.Redis.Host, Get().Clients.Redis.Port)
}

func readConfigFile(v *viper.Viper) {
	v.SetConfigName("config.yaml")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs/")
	v.AddConfigPath("../../configs/")
	v.AddConfigPath("../../../configs")

	if path, ok := os.LookupEnv("CONFIG_PATH"); ok {
		v.AddConfigPath(path)
	}
	err := v.ReadInConfig()
	if err != nil {
		log.Logger.Warn().Msgf("config.yaml file not loaded: %s", err.Error())
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Loaded", true)
	// In viper you have to set defaults, otherwise loading from ENV doesn't work
	//   without a config file present
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.pool_limit", 20)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.port", 9000)

	v.SetDefault("platform.root_domain", "storefront.localhost")
	v.SetDefault("platform.server_ip", "")
	v.SetDefault("platform.dev_mode", false)
	v.SetDefault("platform.invitation_code", "")
	v.SetDefault("platform.dns_timeout", DefaultDNSTimeout)
	v.SetDefault("platform.jwt_secret", "")
	v.SetDefault("platform.jwt_expiration", 24*time.Hour)

	v.SetDefault("clients.redis.host", "")
	v.SetDefault("clients.redis.port", "")
	v.SetDefault("clients.redis.username", "")
	v.SetDefault("clients.redis.password", "")
	v.SetDefault("clients.redis.db", 0)
	v.SetDefault("clients.redis.expiration", 1*time.Minute)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "platform.storefront.notifications")
	v.SetDefault("kafka.sasl.username", "")
	v.SetDefault("kafka.sasl.password", "")
	v.SetDefault("kafka.sasl.mechanism", "PLAIN")

	v.SetDefault("sentry.dsn", "")
}

func Load() {
	var err error
	v := viper.New()

	readConfigFile(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	err = v.Unmarshal(&LoadedConfig)
	if err != nil {
		panic(err)
	}

	if LoadedConfig.Clients.Redis.Host == "" {
		log.Warn().Msg("Caching is disabled.")
	}
	if LoadedConfig.Platform.ServerIP == "" {
		log.Warn().Msg("No platform server IP configured, domain verification will always fail.")
	}
}

func ProgramString() string {
	return strings.Join(os.Args, " ")
}

// SkipLogging skips logging for paths the proxy polls on every request.
func SkipLogging(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/ping" || p == "/ping/" || p == "/routing_check"
}

func CustomHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message ce.ErrorResponse

	if c.Response().Committed {
		c.Logger().Error(err)
		return
	}

	if errResp, ok := err.(ce.ErrorResponse); ok {
		code = ce.GetGeneralResponseCode(errResp)
		message = errResp
	} else if he, ok := err.(*echo.HTTPError); ok {
		errResp := ce.NewErrorResponseFromEchoError(he)
		code = errResp.Errors[0].Status
		message = errResp
	} else {
		code = http.StatusInternalServerError
		message = ce.NewErrorResponse(code, "", http.StatusText(http.StatusInternalServerError))
	}

	// Send response
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}
	if err != nil {
		log.Logger.Error().Err(err)
	}
}
