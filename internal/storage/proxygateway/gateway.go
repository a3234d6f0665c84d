package proxygateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/assetx/rwa-storage/internal/storage"
)

// Gateway is the remote write strategy: instead of signing storage-network
// transactions locally, every operation is posted to a storage service that
// holds the network credential. Deployments without direct network access
// select this strategy by configuration.
type Gateway struct {
	endpoint string
	client   *http.Client
}

var _ storage.Gateway = (*Gateway)(nil)

// New builds a proxying gateway for the given storage-service base URL.
func New(endpoint string, timeout time.Duration) *Gateway {
	return &Gateway{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope is the uniform response shape of the remote storage service.
// Payload fields beyond {ok, msg} vary per endpoint.
type envelope struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`

	TransactionHash string               `json:"transactionHash,omitempty"`
	BucketInfo      *storage.BucketInfo  `json:"bucketInfo,omitempty"`
	ObjectInfo      *storage.ObjectInfo  `json:"objectInfo,omitempty"`
	ObjectList      []storage.ObjectInfo `json:"objectList,omitempty"`
	Payload         string               `json:"payload,omitempty"`
	Provider        *storage.Provider    `json:"provider,omitempty"`
}

func (g *Gateway) HeadBucket(ctx context.Context, bucketName string) (*storage.BucketInfo, error) {
	resp, err := g.post(ctx, "/bucket-meta", map[string]interface{}{
		"bucketName": bucketName,
	})
	if err != nil {
		return nil, storage.GetClassifiedError("bucketMeta", err)
	}

	return resp.BucketInfo, nil
}

func (g *Gateway) CreateBucket(ctx context.Context, bucketName string, creator string) (string, error) {
	resp, err := g.post(ctx, "/create-bucket", map[string]interface{}{
		"bucketName": bucketName,
		"creator":    creator,
	})
	if err != nil {
		return "", storage.GetClassifiedError("createBucket", err)
	}

	return resp.TransactionHash, nil
}

func (g *Gateway) CreateObject(ctx context.Context, req *storage.CreateObjectRequest, payload []byte) (string, error) {
	// The remote service recomputes the redundancy checksums itself, so the
	// creation call only ships the declared metadata, not the bytes.
	resp, err := g.post(ctx, "/create-object", req)
	if err != nil {
		return "", storage.GetClassifiedError("createObject", err)
	}

	return resp.TransactionHash, nil
}

func (g *Gateway) UploadObject(ctx context.Context, bucketName string, objectName string, payload []byte, createTxRef string) error {
	_, err := g.post(ctx, "/upload-object", map[string]interface{}{
		"bucketName":      bucketName,
		"objectName":      objectName,
		"payload":         base64.StdEncoding.EncodeToString(payload),
		"transactionHash": createTxRef,
	})
	if err != nil {
		return storage.GetClassifiedError("uploadObject", err)
	}

	return nil
}

func (g *Gateway) GetObject(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	resp, err := g.post(ctx, "/get-object", map[string]interface{}{
		"bucketName": bucketName,
		"objectName": objectName,
	})
	if err != nil {
		return nil, storage.GetClassifiedError("getObject", err)
	}

	payload, err := base64.StdEncoding.DecodeString(resp.Payload)
	if err != nil {
		return nil, errors.Wrapf(err, "storage service returned a malformed payload for object '%v'", objectName)
	}

	return payload, nil
}

func (g *Gateway) HeadObject(ctx context.Context, bucketName string, objectName string) (*storage.ObjectInfo, error) {
	resp, err := g.post(ctx, "/head-object", map[string]interface{}{
		"bucketName": bucketName,
		"objectName": objectName,
	})
	if err != nil {
		return nil, storage.GetClassifiedError("headObject", err)
	}

	return resp.ObjectInfo, nil
}

func (g *Gateway) ListObjects(ctx context.Context, bucketName string) ([]storage.ObjectInfo, error) {
	resp, err := g.post(ctx, "/list-objects", map[string]interface{}{
		"bucketName": bucketName,
	})
	if err != nil {
		return nil, storage.GetClassifiedError("listObjects", err)
	}

	return resp.ObjectList, nil
}

func (g *Gateway) DeleteObject(ctx context.Context, bucketName string, objectName string) (string, error) {
	resp, err := g.post(ctx, "/delete-object", map[string]interface{}{
		"bucketName": bucketName,
		"objectName": objectName,
	})
	if err != nil {
		return "", storage.GetClassifiedError("deleteObject", err)
	}

	return resp.TransactionHash, nil
}

func (g *Gateway) SelectProvider(ctx context.Context) (*storage.Provider, error) {
	resp, err := g.post(ctx, "/select-provider", map[string]interface{}{})
	if err != nil {
		return nil, storage.GetClassifiedError("selectProvider", err)
	}

	return resp.Provider, nil
}

// post sends a JSON body to the storage service and unwraps the response
// envelope. A response with ok == false becomes an error carrying the
// service's msg, so the network's "No such bucket" / "No such object"
// signals pass through to the classifier unchanged.
func (g *Gateway) post(ctx context.Context, path string, body interface{}) (*envelope, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "cannot serialize the storage service request")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.endpoint+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "cannot build the storage service request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "cannot reach the storage service")
	}
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read the storage service response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("storage service returned status %v: %v", resp.StatusCode, string(respBodyBytes))
	}

	var result envelope
	if err = json.Unmarshal(respBodyBytes, &result); err != nil {
		return nil, errors.Wrap(err, "storage service response is not a valid envelope")
	}
	if !result.OK {
		return nil, errors.New(result.Msg)
	}

	return &result, nil
}
