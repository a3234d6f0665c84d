package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/assetx/rwa-storage/internal/storage"
	"github.com/assetx/rwa-storage/pkg/errorcode"
)

// StorageService manages buckets and objects on the storage network.
type StorageService struct {
	ServiceInfo  *Info
	NameResolver NameResolverServiceInterface
}

// EnsureBucket ensures the asset's bucket exists on the storage network.
func (s *StorageService) EnsureBucket(ctx context.Context, assetID *big.Int) (string, error) {
	bucketName, err := s.NameResolver.ResolveBucketName(ctx, assetID)
	if err != nil {
		return "", err
	}

	_, err = s.ServiceInfo.Gateway.HeadBucket(ctx, bucketName)
	if err == nil {
		return bucketName, nil
	}
	if errors.Cause(err) != errorcode.ErrorBucketNotFound {
		return "", err
	}

	tokenAdmin, err := s.ServiceInfo.Registry.TokenAdmin(ctx, assetID)
	if err != nil {
		return "", errors.Wrapf(err, "cannot resolve the token admin for asset %v", assetID)
	}

	txRef, err := s.ServiceInfo.Gateway.CreateBucket(ctx, bucketName, tokenAdmin.Hex())
	if err != nil {
		return "", errors.Wrapf(err, "cannot create bucket '%v'", bucketName)
	}

	log.Infof("Created bucket '%v' for asset %v in transaction %v.", bucketName, assetID, txRef)

	return bucketName, nil
}

// ExistingObjectForHash looks up the object already bound to a content hash.
func (s *StorageService) ExistingObjectForHash(ctx context.Context, assetID *big.Int, hash common.Hash) (string, bool, error) {
	exists, err := s.ServiceInfo.Registry.ExistURIHash(ctx, assetID, hash)
	if err != nil {
		return "", false, errors.Wrapf(err, "cannot check hash %v for asset %v", hash, assetID)
	}
	if !exists {
		return "", false, nil
	}

	record, err := s.ServiceInfo.Registry.GetURIHash(ctx, assetID, hash)
	if err != nil {
		return "", false, errors.Wrapf(err, "cannot load the descriptor of hash %v for asset %v", hash, assetID)
	}

	return SanitizeName(record.ObjectName), true, nil
}

// CreateAndUpload creates an object on the storage network and uploads its
// payload. An "already exists" outcome from either phase is a success.
func (s *StorageService) CreateAndUpload(ctx context.Context, req *storage.CreateObjectRequest, payload []byte) (string, error) {
	txRef, err := s.ServiceInfo.Gateway.CreateObject(ctx, req, payload)
	if err != nil {
		if errors.Cause(err) == storage.ErrorObjectExists {
			log.Infof("Object '%v' in bucket '%v' was already created.", req.ObjectName, req.BucketName)
			return "", nil
		}
		return "", errors.Wrapf(errorcode.ErrorUploadFailed, "cannot create object '%v' in bucket '%v': %v", req.ObjectName, req.BucketName, err)
	}

	err = s.ServiceInfo.Gateway.UploadObject(ctx, req.BucketName, req.ObjectName, payload, txRef)
	if err != nil {
		if errors.Cause(err) == storage.ErrorObjectExists {
			log.Infof("Object '%v' in bucket '%v' was already sealed.", req.ObjectName, req.BucketName)
			return txRef, nil
		}
		return "", errors.Wrapf(errorcode.ErrorUploadFailed, "cannot upload object '%v' to bucket '%v': %v", req.ObjectName, req.BucketName, err)
	}

	return txRef, nil
}

// FetchObject fetches an object's payload from the storage network.
func (s *StorageService) FetchObject(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	payload, err := s.ServiceInfo.Gateway.GetObject(ctx, bucketName, objectName)
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// DeleteObject deletes an object from the storage network.
func (s *StorageService) DeleteObject(ctx context.Context, bucketName string, objectName string) (string, error) {
	txRef, err := s.ServiceInfo.Gateway.DeleteObject(ctx, bucketName, objectName)
	if err != nil {
		return "", err
	}

	log.Infof("Deleted object '%v' from bucket '%v' in transaction %v.", objectName, bucketName, txRef)

	return txRef, nil
}

// ListRawObjects lists the storage-network metadata of a bucket's objects.
func (s *StorageService) ListRawObjects(ctx context.Context, bucketName string) ([]storage.ObjectInfo, error) {
	objects, err := s.ServiceInfo.Gateway.ListObjects(ctx, bucketName)
	if err != nil {
		return nil, err
	}

	return objects, nil
}
