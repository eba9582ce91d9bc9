package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-key-vault/internal/cipher"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
)

// VaultOptions selects the vault format and the input handling of a
// VaultService.
type VaultOptions struct {
	Format         store.VaultFormat
	CaseFolding    string
	PasswordLength int
}

// VaultOptionsFromConfig builds VaultOptions from a validated configuration.
func VaultOptionsFromConfig(cfg config.StructuredConfig) (VaultOptions, error) {
	mode, err := cipher.ParseMode(cfg.Cipher.Mode)
	if err != nil {
		return VaultOptions{}, err
	}
	fallback, err := cipher.ParseFallback(cfg.Cipher.Fallback)
	if err != nil {
		return VaultOptions{}, err
	}

	return VaultOptions{
		Format: store.VaultFormat{
			Alphabet: cfg.Cipher.Alphabet,
			Fallback: fallback,
			Mode:     mode,
		},
		CaseFolding:    cfg.Vault.CaseFolding,
		PasswordLength: cfg.Vault.PasswordLength,
	}, nil
}

type vaultService struct {
	storage store.Storage
	format  store.VaultFormat

	// vault is nil until the first operation loads it.
	vault *store.VaultStore

	codec     *cipher.Codec
	engines   map[cipher.Mode]*cipher.Engine
	folder    *cases.Caser
	validator validators.Validator
	generator *PasswordGenerator

	passwordLength int

	newID  func() string
	logger *logger.Logger
}

func NewVaultService(storage store.Storage, opts VaultOptions, logger *logger.Logger) (VaultService, error) {
	alphabet, err := cipher.AlphabetByName(opts.Format.Alphabet)
	if err != nil {
		return nil, err
	}
	codec, err := cipher.NewCodec(alphabet, opts.Format.Fallback)
	if err != nil {
		return nil, err
	}
	if !opts.Format.Mode.Valid() {
		return nil, fmt.Errorf("%w: %d", cipher.ErrUnknownMode, opts.Format.Mode)
	}

	engines := make(map[cipher.Mode]*cipher.Engine, 2)
	for _, mode := range []cipher.Mode{cipher.ModeModular, cipher.ModeUnbounded} {
		engine, err := cipher.NewEngine(mode, alphabet.Size())
		if err != nil {
			return nil, err
		}
		engines[mode] = engine
	}

	var folder *cases.Caser
	switch opts.CaseFolding {
	case config.CaseFoldingLower, "":
		lower := cases.Lower(language.Und)
		folder = &lower
	case config.CaseFoldingNone:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCaseFolding, opts.CaseFolding)
	}

	passwordLength := opts.PasswordLength
	if passwordLength == 0 {
		passwordLength = config.DefaultPasswordLength
	}

	format := opts.Format
	format.Alphabet = alphabet.Name()

	generator := NewPasswordGenerator(alphabet)
	if folder != nil {
		// a generated password must survive Save unchanged
		generator = generator.without(func(r rune) bool {
			return folder.String(string(r)) != string(r)
		})
	}

	return &vaultService{
		storage:        storage,
		format:         format,
		codec:          codec,
		engines:        engines,
		folder:         folder,
		validator:      validators.NewVaultInputValidator(codec),
		generator:      generator,
		passwordLength: passwordLength,
		newID:          utils.NewOperationID,
		logger:         logger,
	}, nil
}

func (s *vaultService) Save(ctx context.Context, account, password, key string) error {
	ctx, log := s.operation(ctx, "save")

	request := models.SaveRequest{
		Account:  s.fold(account),
		Password: s.fold(password),
		Key:      key,
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Str("func", "vaultService.Save").Msg("save rejected")
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	vault, err := s.load(ctx)
	if err != nil {
		return err
	}

	mode := s.format.Mode
	payload, err := s.engines[mode].Encrypt(s.codec.OrdinalsOf(request.Password), s.codec.OrdinalsOf(request.Key))
	if err != nil {
		log.Err(err).Str("func", "vaultService.Save").Msg("failed to encrypt password")
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	next := vault.Clone()
	next.Append(models.VaultRecord{
		Account: request.Account,
		Payload: payload,
		Mode:    mode.String(),
	})
	if err := next.SaveTo(ctx, s.storage); err != nil {
		return fmt.Errorf("error saving account: %w", err)
	}

	s.vault = next
	log.Info().Str("func", "vaultService.Save").Int("records", next.Len()).Msg("account saved")
	return nil
}

func (s *vaultService) ListDecrypted(ctx context.Context, key string) ([]models.VaultEntry, error) {
	ctx, log := s.operation(ctx, "list")

	if err := s.validator.Validate(ctx, models.ListRequest{Key: key}); err != nil {
		log.Warn().Err(err).Str("func", "vaultService.ListDecrypted").Msg("list rejected")
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	vault, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	keyOrdinals := s.codec.OrdinalsOf(key)
	records := vault.List()
	entries := make([]models.VaultEntry, len(records))
	failed := 0
	for i, record := range records {
		entries[i] = models.VaultEntry{Index: i, Account: record.Account}

		password, err := s.decrypt(record, keyOrdinals)
		if err != nil {
			log.Debug().Err(err).Str("func", "vaultService.ListDecrypted").Int("index", i).Msg("record is undecryptable")
			entries[i].Password = UndecryptableMarker
			entries[i].Undecryptable = true
			failed++
			continue
		}
		entries[i].Password = password
	}

	log.Info().Str("func", "vaultService.ListDecrypted").
		Int("records", len(entries)).
		Int("undecryptable", failed).
		Msg("vault listed")
	return entries, nil
}

func (s *vaultService) Delete(ctx context.Context, index int) error {
	ctx, log := s.operation(ctx, "delete")

	vault, err := s.load(ctx)
	if err != nil {
		return err
	}

	next := vault.Clone()
	if err := next.DeleteAt(index); err != nil {
		log.Warn().Err(err).Str("func", "vaultService.Delete").Int("index", index).Msg("delete rejected")
		return err
	}
	if err := next.SaveTo(ctx, s.storage); err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}

	s.vault = next
	log.Info().Str("func", "vaultService.Delete").Int("index", index).Msg("account deleted")
	return nil
}

func (s *vaultService) Accounts(ctx context.Context) ([]string, error) {
	ctx, _ = s.operation(ctx, "accounts")

	vault, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	records := vault.List()
	accounts := make([]string, len(records))
	for i, record := range records {
		accounts[i] = record.Account
	}
	return accounts, nil
}

func (s *vaultService) ImportLegacy(ctx context.Context, r io.Reader) (int, error) {
	ctx, log := s.operation(ctx, "import")

	if s.format.Alphabet != cipher.AlphabetLowercase {
		log.Warn().Str("func", "vaultService.ImportLegacy").Str("alphabet", s.format.Alphabet).Msg("legacy import rejected")
		return 0, fmt.Errorf("%w: legacy vaults use %q, configured %q",
			store.ErrAlphabetMismatch, cipher.AlphabetLowercase, s.format.Alphabet)
	}

	records, err := store.DecodeLegacy(r, s.codec)
	if err != nil {
		log.Err(err).Str("func", "vaultService.ImportLegacy").Msg("failed to decode legacy vault")
		return 0, err
	}

	vault, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	next := vault.Clone()
	for _, record := range records {
		next.Append(record)
	}
	if err := next.SaveTo(ctx, s.storage); err != nil {
		return 0, fmt.Errorf("error importing legacy vault: %w", err)
	}

	s.vault = next
	log.Info().Str("func", "vaultService.ImportLegacy").Int("imported", len(records)).Msg("legacy vault imported")
	return len(records), nil
}

func (s *vaultService) Wipe(ctx context.Context) error {
	ctx, log := s.operation(ctx, "wipe")

	empty := store.NewVaultStore(s.format)
	if err := empty.SaveTo(ctx, s.storage); err != nil {
		return fmt.Errorf("error wiping vault: %w", err)
	}

	s.vault = empty
	log.Info().Str("func", "vaultService.Wipe").Msg("vault wiped")
	return nil
}

func (s *vaultService) GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = s.passwordLength
	}
	return s.generator.Generate(length)
}

// load reads the vault from storage on first use. A failed load leaves the
// service unloaded so the next operation retries.
func (s *vaultService) load(ctx context.Context) (*store.VaultStore, error) {
	if s.vault != nil {
		return s.vault, nil
	}

	vault := store.NewVaultStore(s.format)
	if err := vault.LoadFrom(ctx, s.storage); err != nil {
		return nil, fmt.Errorf("error loading vault: %w", err)
	}

	s.vault = vault
	return vault, nil
}

var errEmptyPayload = errors.New("empty payload")

func (s *vaultService) decrypt(record models.VaultRecord, key []int) (string, error) {
	if len(record.Payload) == 0 {
		return "", errEmptyPayload
	}

	mode := s.format.Mode
	if record.Mode != "" {
		m, err := cipher.ParseMode(record.Mode)
		if err != nil {
			return "", err
		}
		mode = m
	}

	plain, err := s.engines[mode].Decrypt(record.Payload, key)
	if err != nil {
		return "", err
	}

	return s.codec.TextOf(plain)
}

func (s *vaultService) fold(text string) string {
	if s.folder == nil {
		return text
	}
	return s.folder.String(text)
}

// operation tags ctx and the returned logger with a fresh operation ID.
func (s *vaultService) operation(ctx context.Context, name string) (context.Context, *logger.Logger) {
	id := s.newID()
	log := &logger.Logger{Logger: s.logger.With().
		Str("operation", name).
		Str("operation_id", id).
		Logger()}

	ctx = utils.WithOperationID(ctx, id)
	return log.WithContext(ctx), log
}
