package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvClientID     = "REDDIT_CLIENT_ID"
	EnvClientSecret = "REDDIT_CLIENT_SECRET"
	EnvUsername     = "REDDIT_USERNAME"
	EnvPassword     = "REDDIT_PASSWORD"
)

// ErrMissingCredential is matched by every MissingEnvError.
var ErrMissingCredential = errors.New("missing required credential")

// MissingEnvError reports a required environment variable that is unset.
type MissingEnvError struct {
	Key string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("%s environment variable is required", e.Key)
}

func (e *MissingEnvError) Is(target error) bool {
	return target == ErrMissingCredential
}

// Credentials are the static script-app credentials used for the password grant.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}

type Config struct {
	Credentials    Credentials
	UserAgent      string
	ProxyURLs      []string
	RateLimitDelay time.Duration
	// consecutive upstream failures before the breaker opens
	BreakerFailures int
	BreakerTimeout  time.Duration
	RedditBaseURL   string
	RedditTokenURL  string
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	RequestTimeout  time.Duration
	LogLevel        string
	LogFormat       string
}

// LoadConfig reads a .env file when present and then the process environment.
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	creds, err := loadCredentials()
	if err != nil {
		return nil, err
	}

	proxyURLs, err := parseProxyURLs(os.Getenv("REDDIT_PROXY_URLS"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Credentials:     creds,
		UserAgent:       getEnv("REDDIT_USER_AGENT", "keep-alive"),
		ProxyURLs:       proxyURLs,
		RateLimitDelay:  getEnvDuration("REDDIT_RATE_LIMIT_DELAY", 600*time.Millisecond),
		BreakerFailures: getEnvInt("REDDIT_BREAKER_FAILURES", 5),
		BreakerTimeout:  getEnvDuration("REDDIT_BREAKER_TIMEOUT", 30*time.Second),
		RedditBaseURL:   os.Getenv("REDDIT_BASE_URL"),
		RedditTokenURL:  os.Getenv("REDDIT_TOKEN_URL"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
	}, nil
}

func loadCredentials() (Credentials, error) {
	var missing []error
	require := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, &MissingEnvError{Key: key})
		}
		return v
	}

	creds := Credentials{
		ClientID:     require(EnvClientID),
		ClientSecret: require(EnvClientSecret),
		Username:     require(EnvUsername),
		Password:     require(EnvPassword),
	}
	if len(missing) > 0 {
		return Credentials{}, errors.Join(missing...)
	}
	return creds, nil
}

func parseProxyURLs(raw string) ([]string, error) {
	var proxyURLs []string
	for _, proxy := range strings.Split(strings.TrimSpace(raw), ",") {
		proxy = strings.TrimSpace(proxy)
		if proxy == "" {
			continue
		}

		u, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %s: %w", proxy, err)
		}
		switch u.Scheme {
		case "http", "https", "socks5":
		default:
			return nil, fmt.Errorf("invalid proxy URL format, must start with http://, https:// or socks5://: %s", proxy)
		}

		proxyURLs = append(proxyURLs, proxy)
	}
	return proxyURLs, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
