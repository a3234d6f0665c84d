package common

import (
	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// VerifiedObjectInfo is one reconciled object: raw storage-network metadata
// joined with its registry descriptor, emitted only after the recomputed
// content hash matched the registered hash and the object names agreed.
type VerifiedObjectInfo struct {
	Name         string          `json:"name"`
	URICategory  rwa.URICategory `json:"uriCategory"`
	URIType      rwa.URIType     `json:"uriType"`
	Slot         int64           `json:"slot"` // -1 for CONTRACT-type records
	URITitle     string          `json:"uriTitle"`
	Owner        string          `json:"owner"`
	Creator      string          `json:"creator"`
	Size         int64           `json:"size"`
	Visibility   string          `json:"visibility"`
	CreationTime int64           `json:"creationTime"`
	URITimestamp int64           `json:"uriTimestamp"`
	Checksums    []string        `json:"checksums"`
}
