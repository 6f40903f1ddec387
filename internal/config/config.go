// Package config loads runtime settings. Values come from defaults, an
// optional portfolio.yaml, and environment variables, in increasing order
// of precedence. A .env file is folded into the environment by main.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/18gaurav2021/portfolio/internal/contact"
)

const (
	configFileName = "portfolio"

	keyPort            = "port"
	keyMode            = "gin_mode"
	keyLogLevel        = "log.level"
	keyLogPretty       = "log.pretty"
	keySMTPHost        = "smtp.host"
	keySMTPPort        = "smtp.port"
	keySMTPUser        = "smtp.user"
	keySMTPPass        = "smtp.pass"
	keyToEmail         = "to_email"
	keyAdminStats      = "admin.stats"
	keyVisitsDSN       = "visits.dsn"
	keyVisitsRetention = "visits.retention"
	keySessionIdle     = "session.idle"
	keySessionMax      = "session.max"
	keyCORSOrigins     = "cors.origins"
	keyTrustedProxies  = "trusted_proxies"
)

type Config struct {
	Port      string
	Mode      string
	LogLevel  string
	LogPretty bool

	// Mail is only used when it carries credentials; otherwise contact
	// submissions are acknowledged without being sent anywhere.
	Mail contact.MailConfig

	AdminStats      bool
	VisitsDSN       string
	VisitsRetention time.Duration
	SessionIdle     time.Duration
	SessionMax      int

	// CORSOrigins lists origins allowed to call the fragment endpoints
	// cross-site. Empty disables CORS handling.
	CORSOrigins    []string
	// TrustedProxies defaults to loopback when empty.
	TrustedProxies []string
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func defaults(v *viper.Viper) {
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyMode, "release")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogPretty, true)
	v.SetDefault(keySMTPHost, "")
	v.SetDefault(keySMTPPort, "587")
	v.SetDefault(keySMTPUser, "")
	v.SetDefault(keySMTPPass, "")
	v.SetDefault(keyToEmail, "")
	v.SetDefault(keyAdminStats, false)
	v.SetDefault(keyVisitsDSN, ":memory:")
	v.SetDefault(keyVisitsRetention, 24*time.Hour)
	v.SetDefault(keySessionIdle, 30*time.Minute)
	v.SetDefault(keySessionMax, 10000)
	v.SetDefault(keyCORSOrigins, "")
	v.SetDefault(keyTrustedProxies, "")
}

// Load reads configuration. path names an explicit config file; when empty
// portfolio.yaml is looked up in the working directory and may be absent.
func Load(path string) (Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := Config{
		Port:      v.GetString(keyPort),
		Mode:      v.GetString(keyMode),
		LogLevel:  v.GetString(keyLogLevel),
		LogPretty: v.GetBool(keyLogPretty),
		Mail: contact.MailConfig{
			Host: v.GetString(keySMTPHost),
			Port: v.GetString(keySMTPPort),
			User: v.GetString(keySMTPUser),
			Pass: v.GetString(keySMTPPass),
			To:   v.GetString(keyToEmail),
		},
		AdminStats:      v.GetBool(keyAdminStats),
		VisitsDSN:       v.GetString(keyVisitsDSN),
		VisitsRetention: v.GetDuration(keyVisitsRetention),
		SessionIdle:     v.GetDuration(keySessionIdle),
		SessionMax:      v.GetInt(keySessionMax),
		CORSOrigins:     splitList(v.GetStringSlice(keyCORSOrigins)),
		TrustedProxies:  splitList(v.GetStringSlice(keyTrustedProxies)),
	}
	return cfg, cfg.validate()
}

// splitList flattens comma-separated entries. A yaml list arrives as
// separate entries, an environment variable as one "a,b" string.
func splitList(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, item := range strings.Split(entry, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func (c Config) validate() error {
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: gin_mode %q: want debug, release or test", c.Mode)
	}
	if c.Port == "" {
		return fmt.Errorf("config: port is empty")
	}
	if c.SessionIdle <= 0 {
		return fmt.Errorf("config: session.idle must be positive, got %s", c.SessionIdle)
	}
	if c.SessionMax <= 0 {
		return fmt.Errorf("config: session.max must be positive, got %d", c.SessionMax)
	}
	if c.VisitsRetention <= 0 {
		return fmt.Errorf("config: visits.retention must be positive, got %s", c.VisitsRetention)
	}
	return nil
}
