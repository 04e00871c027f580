package config

import "time"

// Defaults applied when no source provides a value. The token sign key and
// bootstrap admin password have fixed well-known defaults so that a
// zero-config start works out of the box; both are a documented operational
// caveat, not a recommendation.
const (
	DefaultHTTPAddress            = ":3000"
	DefaultRequestTimeout         = 30 * time.Second
	DefaultTokenIssuer            = "go-attendance"
	DefaultTokenDuration          = 24 * time.Hour
	DefaultTokenSignKey           = "your-secret-key"
	DefaultBootstrapAdminPassword = "admin123"
	DefaultDSN                    = "attendance.db"
)

// applyDefaults fills every still-unset field of the merged configuration
// with its default value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = DefaultTokenSignKey
	}
	if cfg.App.BootstrapAdminPassword == "" {
		cfg.App.BootstrapAdminPassword = DefaultBootstrapAdminPassword
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
