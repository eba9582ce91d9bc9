package models

// SaveRequest carries the plaintext inputs of a save operation.
type SaveRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
	Key      string `json:"-"`
}

// ListRequest carries the key a vault listing is decrypted with.
type ListRequest struct {
	Key string `json:"-"`
}
