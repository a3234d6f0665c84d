package errorcode

import "fmt"

// Substrings used to classify errors coming back from the storage-network
// SDK. The network reports "not found" and "already exists" conditions only
// through human-readable messages, so these are the agreed discriminants.
// No other message text may be matched anywhere in the codebase.
const (
	// CodeNoSuchBucket is the storage network's signal that a bucket does not exist.
	CodeNoSuchBucket = "No such bucket"
	// CodeNoSuchObject is the storage network's signal that an object does not exist.
	CodeNoSuchObject = "No such object"
	// CodeObjectExists is the storage network's signal that an object was already created.
	CodeObjectExists = "Object already exists"
)

// ErrorEncoding indicates the payload could not be erasure-coded into a checksum set.
var ErrorEncoding = fmt.Errorf("payload cannot be encoded")

// ErrorUnknownCategory indicates an RWA category outside the fixed category table.
var ErrorUnknownCategory = fmt.Errorf("unknown RWA category")

// ErrorSizeLimitExceeded indicates a payload larger than its category's byte ceiling.
var ErrorSizeLimitExceeded = fmt.Errorf("category size limit exceeded")

// ErrorMimeTypeMismatch indicates a media payload whose declared MIME type does not fit its category.
var ErrorMimeTypeMismatch = fmt.Errorf("MIME type does not match category")

// ErrorBucketNotFound indicates the bucket does not exist on the storage network.
// On the write path this is an expected condition and triggers bucket creation.
var ErrorBucketNotFound = fmt.Errorf("bucket not found")

// ErrorObjectNotFound indicates the object does not exist on the storage network.
var ErrorObjectNotFound = fmt.Errorf("object not found")

// ErrorDuplicateHash indicates the content hash is already registered on chain.
// Callers must switch to the reuse path instead of retrying.
var ErrorDuplicateHash = fmt.Errorf("content hash already registered")

// ErrorUploadFailed indicates the storage network rejected the object creation or upload.
var ErrorUploadFailed = fmt.Errorf("object upload failed")

// ErrorRegistryWrite indicates the descriptor write transaction failed or reverted.
// The object may already be uploaded at this point; it simply will not reconcile.
var ErrorRegistryWrite = fmt.Errorf("registry descriptor write failed")

// ErrorIssuerFirst indicates an attempt to bind a first descriptor that is not
// the obligatory ISSUER record of type CONTRACT.
var ErrorIssuerFirst = fmt.Errorf("first descriptor must be an ISSUER record of type CONTRACT")

// ErrorNoStorageContract indicates the asset ID has no storage contract in the registry map.
var ErrorNoStorageContract = fmt.Errorf("asset has no storage contract")

// ErrorUnknownChain indicates a chain ID without an entry in the network address table.
var ErrorUnknownChain = fmt.Errorf("chain not present in the network table")
