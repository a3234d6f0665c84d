package service

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/assetx/rwa-storage/internal/blockchain/feequote"
	"github.com/assetx/rwa-storage/pkg/errorcode"
	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// BinderService binds content hashes to the registry as descriptors.
type BinderService struct {
	ServiceInfo *Info
}

// BindDescriptor binds a content hash to the registry.
func (s *BinderService) BindDescriptor(ctx context.Context, req *DescriptorBindRequest) (string, error) {
	if !req.Category.IsValid() {
		return "", errorcode.ErrorUnknownCategory
	}
	if !req.URIType.IsValid() {
		return "", errors.Errorf("invalid URI type %v", int(req.URIType))
	}

	err := s.checkIssuerFirst(ctx, req)
	if err != nil {
		return "", err
	}

	exists, err := s.ServiceInfo.Registry.ExistURIHash(ctx, req.AssetID, req.Hash)
	if err != nil {
		return "", errors.Wrapf(err, "cannot check hash %v for asset %v", req.Hash, req.AssetID)
	}
	if exists {
		return "", errorcode.ErrorDuplicateHash
	}

	err = s.payRegistrationFee(ctx, req)
	if err != nil {
		return "", err
	}

	txHash, err := s.ServiceInfo.Registry.AddURI(ctx, req.AssetID, req.Category, req.URIType,
		req.Title, req.Slot, req.Hash, req.ToChainIDs, s.ServiceInfo.FeeTokenAddress)
	if err != nil {
		return "", err
	}

	log.Infof("Bound a %v/%v descriptor for asset %v in transaction %v.", req.Category, req.URIType, req.AssetID, txHash)

	return txHash, nil
}

// checkIssuerFirst rejects any first descriptor of an asset that is not the
// obligatory contract-level issuer record.
func (s *BinderService) checkIssuerFirst(ctx context.Context, req *DescriptorBindRequest) error {
	if req.Category == rwa.Issuer && req.URIType == rwa.Contract {
		return nil
	}

	issuerCount, err := s.ServiceInfo.Registry.GetURIHashCount(ctx, req.AssetID, rwa.Issuer, rwa.Contract)
	if err != nil {
		return errors.Wrapf(err, "cannot count the issuer descriptors of asset %v", req.AssetID)
	}
	if issuerCount == 0 {
		return errorcode.ErrorIssuerFirst
	}

	return nil
}

// payRegistrationFee quotes the category's cross-chain fee and approves the
// storage manager to spend it. The fee covers the destination chains only,
// never the local one.
func (s *BinderService) payRegistrationFee(ctx context.Context, req *DescriptorBindRequest) error {
	fee, err := s.ServiceInfo.Quoter.GetCrossChainFee(ctx, req.ToChainIDs, false,
		feequote.URIFeeType(req.Category), s.ServiceInfo.FeeTokenAddress)
	if err != nil {
		return errors.Wrapf(err, "cannot quote the registration fee for asset %v", req.AssetID)
	}

	if fee.Sign() == 0 {
		return nil
	}

	decimals, err := s.ServiceInfo.Quoter.FeeTokenDecimals(ctx, s.ServiceInfo.FeeTokenAddress)
	if err != nil {
		return errors.Wrap(err, "cannot resolve the fee token decimals")
	}

	amount := feequote.ScaleToWei(fee, decimals)
	txHash, err := s.ServiceInfo.Quoter.ApproveFee(ctx, s.ServiceInfo.FeeTokenAddress, s.ServiceInfo.StorageManagerAddress, amount)
	if err != nil {
		return errors.Wrapf(err, "cannot approve the registration fee for asset %v", req.AssetID)
	}

	log.Debugf("Approved %v wei of the fee token in transaction %v.", amount, txHash)

	return nil
}
