package controller

import (
	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// AddBucketRequest asks for the asset's bucket to be created if it does not
// exist yet.
type AddBucketRequest struct {
	AssetID string `json:"assetId"`
}

// AddObjectRequest attaches a document to an asset.
type AddObjectRequest struct {
	AssetID    string     `json:"assetId"`
	Object     rwa.Object `json:"object"`
	ToChainIDs []string   `json:"toChainIds"`
}

// GetChecksumRequest derives a document's checksum set without storing it.
type GetChecksumRequest struct {
	Object rwa.Object `json:"object"`
}

// ListObjectsRequest lists the verified objects of an asset.
type ListObjectsRequest struct {
	AssetID string `json:"assetId"`
}

// ListOneObjectRequest verifies and returns a single object of an asset.
type ListOneObjectRequest struct {
	AssetID    string `json:"assetId"`
	ObjectName string `json:"objectName"`
}

// GetObjectRequest fetches a stored document's payload.
type GetObjectRequest struct {
	AssetID    string `json:"assetId"`
	ObjectName string `json:"objectName"`
}

// BucketCreationInfo is returned to the client after an ensure-bucket call.
type BucketCreationInfo struct {
	BucketName string `json:"bucketName"`
}

// ChecksumInfo carries a derived checksum set and its content hash.
type ChecksumInfo struct {
	Checksums   []string `json:"checksums"`
	ContentHash string   `json:"contentHash"`
}
