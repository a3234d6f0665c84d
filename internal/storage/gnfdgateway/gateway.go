package gnfdgateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"math/rand"
	"strings"

	gnfdclient "github.com/bnb-chain/greenfield-go-sdk/client"
	gnfdtypes "github.com/bnb-chain/greenfield-go-sdk/types"
	storagetypes "github.com/bnb-chain/greenfield/x/storage/types"
	"github.com/pkg/errors"

	"github.com/assetx/rwa-storage/internal/storage"
)

// codeRepeatedObject is the storage network's status code for an upload of
// an object that was already sealed. Treated the same as "already exists".
const codeRepeatedObject = "110004"

// Gateway is the direct write strategy: it signs bucket and object
// transactions against the storage network itself through the network's SDK.
type Gateway struct {
	client         gnfdclient.IClient
	paymentAddress string
	spFilter       string
}

var _ storage.Gateway = (*Gateway)(nil)

// New connects to the storage network.
//
// Parameters:
//   the storage network chain ID
//   the storage network RPC endpoint
//   the signing key (hex, no 0x prefix); it is held by the SDK and never logged
//   a substring used to restrict provider selection (empty for no filter)
func New(chainID string, rpcURL string, privateKey string, spFilter string) (*Gateway, error) {
	account, err := gnfdtypes.NewAccountFromPrivateKey("rwa-storage", privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "cannot build a storage network account from the signing key")
	}

	client, err := gnfdclient.New(chainID, rpcURL, gnfdclient.Option{DefaultAccount: account})
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to the storage network")
	}

	return &Gateway{
		client:         client,
		paymentAddress: account.GetAddress().String(),
		spFilter:       spFilter,
	}, nil
}

func (g *Gateway) HeadBucket(ctx context.Context, bucketName string) (*storage.BucketInfo, error) {
	info, err := g.client.HeadBucket(ctx, bucketName)
	if err != nil {
		return nil, storage.GetClassifiedError("headBucket", err)
	}

	return &storage.BucketInfo{
		Name:         info.BucketName,
		Owner:        info.Owner,
		CreationTime: info.CreateAt,
	}, nil
}

func (g *Gateway) CreateBucket(ctx context.Context, bucketName string, creator string) (string, error) {
	sp, err := g.SelectProvider(ctx)
	if err != nil {
		return "", err
	}

	visibility := storagetypes.VISIBILITY_TYPE_PUBLIC_READ
	txHash, err := g.client.CreateBucket(ctx, bucketName, sp.OperatorAddress, gnfdtypes.CreateBucketOptions{
		Visibility:     visibility,
		ChargedQuota:   0,
		PaymentAddress: g.paymentAddress,
	})
	if err != nil {
		return "", storage.GetClassifiedError("createBucket", err)
	}

	return txHash, nil
}

func (g *Gateway) CreateObject(ctx context.Context, req *storage.CreateObjectRequest, payload []byte) (string, error) {
	// The SDK recomputes the redundancy checksums from the reader during
	// object creation; the declared set in `req` is the one registered on
	// chain and must match, or the network refuses the seal.
	visibility := storagetypes.VISIBILITY_TYPE_PUBLIC_READ
	txHash, err := g.client.CreateObject(ctx, req.BucketName, req.ObjectName,
		bytes.NewReader(payload), gnfdtypes.CreateObjectOptions{
			Visibility:  visibility,
			ContentType: req.ContentType,
		})
	if err != nil {
		return "", storage.GetClassifiedError("createObject", err)
	}

	return txHash, nil
}

func (g *Gateway) UploadObject(ctx context.Context, bucketName string, objectName string, payload []byte, createTxRef string) error {
	err := g.client.PutObject(ctx, bucketName, objectName, int64(len(payload)),
		bytes.NewReader(payload), gnfdtypes.PutObjectOptions{
			TxnHash: createTxRef,
		})
	if err != nil {
		if strings.Contains(err.Error(), codeRepeatedObject) {
			return storage.ErrorObjectExists
		}
		return storage.GetClassifiedError("putObject", err)
	}

	return nil
}

func (g *Gateway) GetObject(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	body, _, err := g.client.GetObject(ctx, bucketName, objectName, gnfdtypes.GetObjectOptions{})
	if err != nil {
		return nil, storage.GetClassifiedError("getObject", err)
	}
	defer body.Close()

	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot buffer object '%v'", objectName)
	}

	return payload, nil
}

func (g *Gateway) HeadObject(ctx context.Context, bucketName string, objectName string) (*storage.ObjectInfo, error) {
	detail, err := g.client.HeadObject(ctx, bucketName, objectName)
	if err != nil {
		return nil, storage.GetClassifiedError("headObject", err)
	}

	return convertObjectInfo(detail.ObjectInfo), nil
}

func (g *Gateway) ListObjects(ctx context.Context, bucketName string) ([]storage.ObjectInfo, error) {
	sp, err := g.SelectProvider(ctx)
	if err != nil {
		return nil, err
	}

	result, err := g.client.ListObjects(ctx, bucketName, gnfdtypes.ListObjectsOptions{
		Endpoint: sp.Endpoint,
	})
	if err != nil {
		return nil, storage.GetClassifiedError("listObjects", err)
	}

	infos := make([]storage.ObjectInfo, 0, len(result.Objects))
	for _, object := range result.Objects {
		infos = append(infos, *convertObjectInfo(object.ObjectInfo))
	}

	return infos, nil
}

func (g *Gateway) DeleteObject(ctx context.Context, bucketName string, objectName string) (string, error) {
	txHash, err := g.client.DeleteObject(ctx, bucketName, objectName, gnfdtypes.DeleteObjectOption{})
	if err != nil {
		return "", storage.GetClassifiedError("deleteObject", err)
	}

	return txHash, nil
}

// SelectProvider picks a random in-service storage provider, restricted to
// endpoints matching the configured filter when one is set.
func (g *Gateway) SelectProvider(ctx context.Context) (*storage.Provider, error) {
	sps, err := g.client.ListStorageProviders(ctx, true)
	if err != nil {
		return nil, storage.GetClassifiedError("listStorageProviders", err)
	}

	candidates := make([]int, 0, len(sps))
	for i := range sps {
		if g.spFilter == "" || strings.Contains(sps[i].Endpoint, g.spFilter) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil, errors.New("no matching storage provider is in service")
	}

	selected := candidates[rand.Intn(len(candidates))]
	secondary := make([]string, 0, len(candidates)-1)
	for _, i := range candidates {
		if i != selected {
			secondary = append(secondary, sps[i].OperatorAddress)
		}
	}

	return &storage.Provider{
		ID:                 sps[selected].Id,
		OperatorAddress:    sps[selected].OperatorAddress,
		Endpoint:           sps[selected].Endpoint,
		SealAddress:        sps[selected].SealAddress,
		SecondaryAddresses: secondary,
	}, nil
}

func convertObjectInfo(info *storagetypes.ObjectInfo) *storage.ObjectInfo {
	// On-chain object info carries raw checksum bytes; the gateway surface
	// reports them Base64-encoded like the list endpoint does.
	checksums := make([]string, 0, len(info.Checksums))
	for _, checksum := range info.Checksums {
		checksums = append(checksums, base64.StdEncoding.EncodeToString(checksum))
	}

	return &storage.ObjectInfo{
		Name:         info.ObjectName,
		Owner:        info.Owner,
		Creator:      info.Creator,
		Size:         int64(info.PayloadSize),
		Visibility:   info.Visibility.String(),
		CreationTime: info.CreateAt,
		Checksums:    checksums,
	}
}
