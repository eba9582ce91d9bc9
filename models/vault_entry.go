package models

// VaultEntry is a record after decryption with a caller-supplied key.
//
// Index is the record's current position and is valid for a delete only
// until the vault is mutated. When Undecryptable is set, Password holds a
// marker instead of the password.
type VaultEntry struct {
	Index         int    `json:"index"`
	Account       string `json:"account"`
	Password      string `json:"password"`
	Undecryptable bool   `json:"undecryptable,omitempty"`
}
