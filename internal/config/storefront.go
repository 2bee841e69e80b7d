package config

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// StorefrontConfig carries merchandising knobs that ops can change without a
// redeploy: which image hosts count as placeholders, the fallback swatch
// color, and the quote submission rate limit.
type StorefrontConfig struct {
	PlaceholderDomains []string       `mapstructure:"placeholderDomains"`
	DefaultSwatchHex   string         `mapstructure:"defaultSwatchHex"`
	QuoteRateLimit     QuoteRateLimit `mapstructure:"quoteRateLimit"`
}

type QuoteRateLimit struct {
	Capacity         int `mapstructure:"capacity"`
	RefillPerMinute  int `mapstructure:"refillPerMinute"`
	BurstGraceWindow int `mapstructure:"burstGraceWindowSeconds"`
}

func DefaultStorefrontConfig() StorefrontConfig {
	return StorefrontConfig{
		PlaceholderDomains: []string{"via.placeholder.com", "placehold.co", "placekitten.com"},
		DefaultSwatchHex:   "#9ca3af",
		QuoteRateLimit: QuoteRateLimit{
			Capacity:        5,
			RefillPerMinute: 2,
		},
	}
}

// StorefrontConfigHolder hot-reloads storefront.yml via viper/fsnotify.
type StorefrontConfigHolder struct {
	current atomic.Value // holds StorefrontConfig
}

func NewStorefrontConfigHolder() (*StorefrontConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("storefront")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/vestra/config") // Volume-mounted config
	v.AddConfigPath("/etc/vestra")            // System config
	v.AddConfigPath(".")                      // Current directory (dev mode)

	v.SetEnvPrefix("VESTRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultStorefrontConfig()
		v.SetDefault("storefront.placeholderDomains", defaults.PlaceholderDomains)
		v.SetDefault("storefront.defaultSwatchHex", defaults.DefaultSwatchHex)
		v.SetDefault("storefront.quoteRateLimit", defaults.QuoteRateLimit)
	}

	holder := &StorefrontConfigHolder{}
	if err := holder.load(v); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if err := holder.load(v); err != nil {
			log.Printf("storefront config reload failed: %v", err)
		}
	})
	v.WatchConfig()

	return holder, nil
}

func (h *StorefrontConfigHolder) load(v *viper.Viper) error {
	var cfg StorefrontConfig
	if err := v.UnmarshalKey("storefront", &cfg); err != nil {
		return err
	}
	if cfg.DefaultSwatchHex == "" {
		cfg.DefaultSwatchHex = DefaultStorefrontConfig().DefaultSwatchHex
	}
	if cfg.QuoteRateLimit.Capacity <= 0 {
		cfg.QuoteRateLimit = DefaultStorefrontConfig().QuoteRateLimit
	}
	h.current.Store(cfg)
	return nil
}

// StaticStorefrontConfigHolder pins the holder to cfg without watching a
// config file. Used by tests and one-off tooling.
func StaticStorefrontConfigHolder(cfg StorefrontConfig) *StorefrontConfigHolder {
	h := &StorefrontConfigHolder{}
	h.current.Store(cfg)
	return h
}

// Current returns the active storefront configuration snapshot.
func (h *StorefrontConfigHolder) Current() StorefrontConfig {
	if v, ok := h.current.Load().(StorefrontConfig); ok {
		return v
	}
	return DefaultStorefrontConfig()
}
