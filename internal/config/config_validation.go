package config

// validate checks the invariants every binary depends on. Binary-specific
// requirements are checked separately via [StructuredConfig.ValidateServer]
// and [StructuredConfig.ValidateSeed].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// ValidateServer checks the settings the live API server cannot start
// without: a listen address and the token verification pair. An unset issuer
// would reject every inbound session token, so it is as fatal as a missing
// sign key.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateSeed checks the settings the seed job cannot run without.
// A missing identity-service secret is fatal for the seed job only; the live
// server never reads it.
func (cfg *StructuredConfig) ValidateSeed() error {
	if cfg.Seed.IdentityURL == "" || cfg.Seed.SecretKey == "" {
		return ErrInvalidSeedConfigs
	}

	return nil
}
