package config

import (
	"github.com/spf13/pflag"
)

// Flags holds configuration values bound to a pflag.FlagSet. Values stay
// zero until the flag set is parsed, so unset flags never override other
// sources.
type Flags struct {
	cfg StructuredConfig
}

// BindFlags registers the configuration flags on fs and returns the holder
// that receives their values. It is meant for a cobra root command's
// persistent flags.
//
// Flags:
//
//	-c/--config          configuration file (.json, .yaml, .yml)
//	--mode               cipher mode: modular | unbounded
//	--alphabet           alphabet name: lowercase | alphanumeric
//	--fallback           fallback policy: drop | codepoint
//	--case-folding       lower | none
//	--password-length    generated password length
//	-b/--backend         memory | file | sqlite | postgres | leveldb
//	--slot               vault name inside the backend
//	-f/--file            vault file path
//	--seal-key           seal the vault file at rest with this key
//	-d/--dsn             database DSN
//	--leveldb-dir        LevelDB directory
//	--log-level          log level
//	--log-file           log file
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	c := &f.cfg

	fs.StringVarP(&c.JSONFilePath, "config", "c", "", "configuration file path (.json, .yaml, .yml)")

	fs.StringVar(&c.Cipher.Mode, "mode", "", "cipher mode: modular | unbounded")
	fs.StringVar(&c.Cipher.Alphabet, "alphabet", "", "alphabet: lowercase | alphanumeric")
	fs.StringVar(&c.Cipher.Fallback, "fallback", "", "characters outside the alphabet: drop | codepoint")

	fs.StringVar(&c.Vault.CaseFolding, "case-folding", "", "case folding of account and password: lower | none")
	fs.IntVar(&c.Vault.PasswordLength, "password-length", 0, "length of generated passwords")

	fs.StringVarP(&c.Storage.Backend, "backend", "b", "", "storage backend: memory | file | sqlite | postgres | leveldb")
	fs.StringVar(&c.Storage.Slot, "slot", "", "vault name inside the storage backend")
	fs.StringVarP(&c.Storage.Files.Path, "file", "f", "", "vault file path")
	fs.StringVar(&c.Storage.Files.SealKey, "seal-key", "", "seal the vault file at rest with this key")
	fs.StringVarP(&c.Storage.DB.DSN, "dsn", "d", "", "database DSN")
	fs.StringVar(&c.Storage.LevelDB.Dir, "leveldb-dir", "", "LevelDB directory")

	fs.StringVar(&c.Log.Level, "log-level", "", "log level")
	fs.StringVar(&c.Log.File, "log-file", "", "log file")

	return f
}

// Config returns a copy of the values collected from the command line.
func (f *Flags) Config() *StructuredConfig {
	if f == nil {
		return &StructuredConfig{}
	}
	cfg := f.cfg
	return &cfg
}
