package service

import (
	"context"
	"math/big"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/assetx/rwa-storage/internal/models/common"
	"github.com/assetx/rwa-storage/internal/storage"
	"github.com/assetx/rwa-storage/internal/utils/checksumutils"
	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// reconcileWorkerCount bounds the registry reads a listing fans out.
const reconcileWorkerCount = 8

// ReconcileService joins storage-network listings with registry descriptors.
type ReconcileService struct {
	ServiceInfo  *Info
	NameResolver NameResolverServiceInterface
}

// Reconcile reconciles every object in the asset's bucket.
func (s *ReconcileService) Reconcile(ctx context.Context, assetID *big.Int) ([]common.VerifiedObjectInfo, error) {
	bucketName, err := s.NameResolver.ResolveBucketName(ctx, assetID)
	if err != nil {
		return nil, err
	}

	objects, err := s.ServiceInfo.Gateway.ListObjects(ctx, bucketName)
	if err != nil {
		return nil, err
	}

	verified := make([]*common.VerifiedObjectInfo, len(objects))

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < reconcileWorkerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := s.verifyObject(ctx, assetID, &objects[i])
				if err != nil {
					log.Warnf("Object '%v' in bucket '%v' failed verification: %v. Skipping it.", objects[i].Name, bucketName, err)
					continue
				}
				verified[i] = result
			}
		}()
	}
	for i := range objects {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	results := make([]common.VerifiedObjectInfo, 0, len(objects))
	for _, result := range verified {
		if result != nil {
			results = append(results, *result)
		}
	}

	return results, nil
}

// ReconcileOne reconciles a single object by name.
func (s *ReconcileService) ReconcileOne(ctx context.Context, assetID *big.Int, objectName string) (*common.VerifiedObjectInfo, error) {
	bucketName, err := s.NameResolver.ResolveBucketName(ctx, assetID)
	if err != nil {
		return nil, err
	}

	info, err := s.ServiceInfo.Gateway.HeadObject(ctx, bucketName, objectName)
	if err != nil {
		return nil, err
	}

	result, err := s.verifyObject(ctx, assetID, info)
	if err != nil {
		return nil, errors.Wrapf(err, "object '%v' in bucket '%v' failed verification", objectName, bucketName)
	}

	return result, nil
}

// verifyObject recomputes the object's content hash from its reported
// checksum set and requires the registry descriptor under that hash to name
// this very object. The reported checksums are untrusted input here, which
// is why only a full match admits the object.
func (s *ReconcileService) verifyObject(ctx context.Context, assetID *big.Int, info *storage.ObjectInfo) (*common.VerifiedObjectInfo, error) {
	hash, err := checksumutils.DeriveContentHash(info.Checksums)
	if err != nil {
		return nil, err
	}

	record, err := s.ServiceInfo.Registry.GetURIHash(ctx, assetID, hash)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load the descriptor of hash %v", hash)
	}
	if record.ObjectName == "" {
		return nil, errors.Errorf("hash %v is not registered", hash)
	}
	if SanitizeName(record.ObjectName) != info.Name {
		return nil, errors.Errorf("hash %v is registered under object '%v'", hash, record.ObjectName)
	}

	slot := int64(-1)
	if record.URIType == rwa.Slot {
		slot = record.Slot.Int64()
	}

	return &common.VerifiedObjectInfo{
		Name:         info.Name,
		URICategory:  record.Category,
		URIType:      record.URIType,
		Slot:         slot,
		URITitle:     record.Title,
		Owner:        info.Owner,
		Creator:      info.Creator,
		Size:         info.Size,
		Visibility:   info.Visibility,
		CreationTime: info.CreationTime,
		URITimestamp: record.TimeStamp.Int64(),
		Checksums:    info.Checksums,
	}, nil
}
