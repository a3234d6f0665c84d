package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/assetx/rwa-storage/internal/storage"
	"github.com/assetx/rwa-storage/internal/utils/checksumutils"
	"github.com/assetx/rwa-storage/pkg/errorcode"
	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// objectContentType is the content type of every stored document. Media
// payloads travel Base64-encoded inside the JSON envelope, so the envelope
// type is what the storage network sees.
const objectContentType = "application/json"

// ObjectService attaches documents to assets end to end.
type ObjectService struct {
	ServiceInfo  *Info
	NameResolver NameResolverServiceInterface
	Storage      StorageServiceInterface
	Binder       BinderServiceInterface
}

// AddObject attaches a document to an asset.
func (s *ObjectService) AddObject(ctx context.Context, assetID *big.Int, object *rwa.Object, toChainIDs []string) (*AddObjectResult, error) {
	category, uriType, err := parseObjectKind(object)
	if err != nil {
		return nil, err
	}

	payload, err := object.Serialize()
	if err != nil {
		return nil, errors.Wrap(err, "cannot serialize the object")
	}

	err = rwa.CheckObject(object, int64(len(payload)))
	if err != nil {
		return nil, err
	}

	checksums, err := checksumutils.ComputeChecksums(payload)
	if err != nil {
		return nil, err
	}

	hash, err := checksumutils.DeriveContentHash(checksums)
	if err != nil {
		return nil, err
	}

	bucketName, err := s.Storage.EnsureBucket(ctx, assetID)
	if err != nil {
		return nil, err
	}

	existingName, found, err := s.Storage.ExistingObjectForHash(ctx, assetID, hash)
	if err != nil {
		return nil, err
	}
	if found {
		log.Infof("Hash %v of asset %v is already bound to object '%v'. Reusing it.", hash, assetID, existingName)
		return &AddObjectResult{
			BucketName:  bucketName,
			ObjectName:  existingName,
			ContentHash: hash,
			Reused:      true,
		}, nil
	}

	slot := rwa.SlotOrZero(object.Slot)
	objectName, err := s.NameResolver.ResolveNextObjectName(ctx, assetID, uriType, slot)
	if err != nil {
		return nil, err
	}

	_, err = s.Storage.CreateAndUpload(ctx, &storage.CreateObjectRequest{
		BucketName:      bucketName,
		ObjectName:      objectName,
		Creator:         s.ServiceInfo.SignerAddress.Hex(),
		ContentType:     objectContentType,
		PayloadSize:     int64(len(payload)),
		ExpectChecksums: checksums,
	}, payload)
	if err != nil {
		return nil, err
	}

	txHash, err := s.Binder.BindDescriptor(ctx, &DescriptorBindRequest{
		AssetID:    assetID,
		Category:   category,
		URIType:    uriType,
		Title:      object.Title,
		Slot:       slot,
		Hash:       hash,
		ToChainIDs: toChainIDs,
	})
	if err != nil {
		return nil, err
	}

	return &AddObjectResult{
		BucketName:     bucketName,
		ObjectName:     objectName,
		ContentHash:    hash,
		TransactionRef: txHash,
	}, nil
}

// GetChecksum derives the checksum set and content hash of a document.
func (s *ObjectService) GetChecksum(object *rwa.Object) ([]string, common.Hash, error) {
	payload, err := object.Serialize()
	if err != nil {
		return nil, common.Hash{}, errors.Wrap(err, "cannot serialize the object")
	}

	checksums, err := checksumutils.ComputeChecksums(payload)
	if err != nil {
		return nil, common.Hash{}, err
	}

	hash, err := checksumutils.DeriveContentHash(checksums)
	if err != nil {
		return nil, common.Hash{}, err
	}

	return checksums, hash, nil
}

// parseObjectKind resolves the enum fields of an incoming object.
func parseObjectKind(object *rwa.Object) (rwa.URICategory, rwa.URIType, error) {
	category, err := rwa.NewURICategoryFromString(object.Category)
	if err != nil {
		return -1, -1, errorcode.ErrorUnknownCategory
	}

	uriType, err := rwa.NewURITypeFromString(object.Type)
	if err != nil {
		return -1, -1, err
	}

	return category, uriType, nil
}
