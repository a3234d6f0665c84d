package service

import (
	"context"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// NameResolverService resolves bucket and object names from the registry.
type NameResolverService struct {
	ServiceInfo *Info
}

// SanitizeName replaces the characters the registry emits that the storage
// network's naming rules disallow. Counter-derived names carry at most a
// single version dot, so distinct raw names stay distinct after this.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, ".", "-")
}

// ResolveBucketName resolves the storage-network bucket name of an asset.
func (s *NameResolverService) ResolveBucketName(ctx context.Context, assetID *big.Int) (string, error) {
	bucketName, err := s.ServiceInfo.Registry.GreenfieldBucket(ctx, assetID)
	if err != nil {
		return "", errors.Wrapf(err, "cannot resolve the bucket name for asset %v", assetID)
	}

	return SanitizeName(bucketName), nil
}

// ResolveNextObjectName resolves the next free object name for a (type,
// slot) pair of an asset.
func (s *NameResolverService) ResolveNextObjectName(ctx context.Context, assetID *big.Int, uriType rwa.URIType, slot uint64) (string, error) {
	if !uriType.IsValid() {
		return "", errors.Errorf("invalid URI type %v", int(uriType))
	}

	objectName, err := s.ServiceInfo.Registry.GreenfieldObject(ctx, assetID, uriType, slot)
	if err != nil {
		return "", errors.Wrapf(err, "cannot resolve the next object name for asset %v", assetID)
	}

	return SanitizeName(objectName), nil
}
