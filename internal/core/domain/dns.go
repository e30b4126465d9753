// Package domain contains the core business entities the DNSSEC
// verification core is wired against: the key material a zone's
// signer/verifier pair operates on.
package domain

import (
	"time"
)

// DNSSECKey represents a cryptographic key used for DNSSEC signing.
type DNSSECKey struct {
	ID         string    `json:"id"`
	ZoneID     string    `json:"zone_id"`
	KeyType    string    `json:"key_type"` // "KSK" or "ZSK"
	Algorithm  int       `json:"algorithm"`
	PrivateKey []byte    `json:"-"`
	PublicKey  []byte    `json:"public_key"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
