// Package config fills tagged structs from the process environment.
//
// LoadEnv reads .env files with godotenv. The first file keeps variables
// that are already set and later files override them. Load parses a struct with caarlos0/env, runs its Validate
// method when it has one and caches the result by type, so later calls for
// the same type copy the cached value:
//
//	type MailConfig struct {
//		Driver string `env:"MAIL_DRIVER" envDefault:"log"`
//	}
//
//	var mc MailConfig
//	if err := config.Load(&mc); err != nil {
//		return err
//	}
//
// Failed parses and failed validation are never cached. Tests that change
// the environment call ResetCache or ForceReload.
//
// Errors wrap ErrParsingConfig, ErrInvalidConfig, ErrLoadingEnvFile or
// ErrNilPointer.
package config
