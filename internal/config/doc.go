// Package config provides configuration loading, merging, and validation
// facilities for the key vault.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON or YAML config file
//  2. Environment variables (KEYVAULT_ prefix)
//  3. Command-line flags
//
// Fields left unset by every source take their value from [Default]. The
// main entry point is [GetStructuredConfig].
package config
