// Package ports defines the input and output ports the DNSSEC services
// depend on, in the hexagonal-architecture style the rest of cloudDNS
// uses for its own repository boundaries.
package ports

import (
	"context"
	"github.com/poyrazK/cloudDNS/internal/core/domain"
)

// DNSSECKeyRepository defines the persistence boundary for a zone's
// DNSSEC signing keys. It is the one slice of the teacher's larger
// repository interface the verification/signing services still need.
type DNSSECKeyRepository interface {
	CreateKey(ctx context.Context, key *domain.DNSSECKey) error
	ListKeysForZone(ctx context.Context, zoneID string) ([]domain.DNSSECKey, error)
	UpdateKey(ctx context.Context, key *domain.DNSSECKey) error
}
