package storage

import "context"

// BucketInfo is the storage network's metadata for a bucket.
type BucketInfo struct {
	Name         string `json:"name"`
	Owner        string `json:"owner"`
	CreationTime int64  `json:"creationTime"`
}

// ObjectInfo is the raw storage-network metadata for an object. Checksums is
// the erasure-coded checksum set as reported by the network (Base64 strings,
// protocol order preserved). No registry cross-referencing happens at this
// level; that is the reconciliation pass's job.
type ObjectInfo struct {
	Name         string   `json:"name"`
	Owner        string   `json:"owner"`
	Creator      string   `json:"creator"`
	Size         int64    `json:"size"`
	Visibility   string   `json:"visibility"`
	CreationTime int64    `json:"creationTime"`
	Checksums    []string `json:"checksums"`
}

// Provider identifies a selected storage provider for bucket creation and
// list queries.
type Provider struct {
	ID                   uint32   `json:"id"`
	OperatorAddress      string   `json:"operatorAddress"`
	Endpoint             string   `json:"endpoint"`
	SealAddress          string   `json:"sealAddress"`
	SecondaryAddresses   []string `json:"secondaryAddresses"`
}

// CreateObjectRequest carries everything the network needs to admit a new
// object: the declared payload size and the expected checksum set are part
// of the creation transaction, the bytes follow in UploadObject.
type CreateObjectRequest struct {
	BucketName      string   `json:"bucketName"`
	ObjectName      string   `json:"objectName"`
	Creator         string   `json:"creator"`
	ContentType     string   `json:"contentType"`
	PayloadSize     int64    `json:"payloadSize"`
	ExpectChecksums []string `json:"expectChecksums"`
}

// Gateway is the narrow client surface of the decentralized object-storage
// network. Two implementations exist: a direct one signing transactions
// against the network itself, and a remote one proxying through a storage
// service. Which one a deployment uses is a matter of configuration, never
// of call sites.
//
// All mutating calls are signed by the gateway's credential. Errors carrying
// the network's "not found" signals are classified into the errorcode
// sentinels before they leave the gateway.
type Gateway interface {
	HeadBucket(ctx context.Context, bucketName string) (*BucketInfo, error)
	CreateBucket(ctx context.Context, bucketName string, creator string) (string, error)
	CreateObject(ctx context.Context, req *CreateObjectRequest, payload []byte) (string, error)
	UploadObject(ctx context.Context, bucketName string, objectName string, payload []byte, createTxRef string) error
	GetObject(ctx context.Context, bucketName string, objectName string) ([]byte, error)
	HeadObject(ctx context.Context, bucketName string, objectName string) (*ObjectInfo, error)
	ListObjects(ctx context.Context, bucketName string) ([]ObjectInfo, error)
	DeleteObject(ctx context.Context, bucketName string, objectName string) (string, error)
	SelectProvider(ctx context.Context) (*Provider, error)
}
