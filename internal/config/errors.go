package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidCipherConfigs indicates an unknown mode, alphabet or
	// fallback policy.
	ErrInvalidCipherConfigs = errors.New("invalid cipher configuration")
	// ErrIncompatibleModeFallback indicates the codepoint fallback combined
	// with modular mode, which cannot round-trip characters outside the
	// alphabet.
	ErrIncompatibleModeFallback = errors.New("codepoint fallback requires unbounded mode")
	// ErrInvalidVaultConfigs indicates invalid case folding or password
	// length.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidStorageConfigs indicates an unknown backend or a backend
	// missing its location.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnsupportedConfigFormat indicates a config file extension other
	// than .json, .yaml or .yml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
