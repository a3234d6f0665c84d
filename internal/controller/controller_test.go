package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/assetx/rwa-storage/internal/service"
	"github.com/assetx/rwa-storage/internal/storage"
	"github.com/assetx/rwa-storage/pkg/errorcode"
	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

type stubObjectSvc struct {
	addResult *service.AddObjectResult
	addErr    error
}

func (s *stubObjectSvc) AddObject(ctx context.Context, assetID *big.Int, object *rwa.Object, toChainIDs []string) (*service.AddObjectResult, error) {
	return s.addResult, s.addErr
}

func (s *stubObjectSvc) GetChecksum(object *rwa.Object) ([]string, common.Hash, error) {
	return []string{"c0", "c1"}, common.HexToHash("0x01"), nil
}

type stubStorageSvc struct {
	bucketName string
	payload    []byte
	fetchErr   error
}

func (s *stubStorageSvc) EnsureBucket(ctx context.Context, assetID *big.Int) (string, error) {
	return s.bucketName, nil
}

func (s *stubStorageSvc) ExistingObjectForHash(ctx context.Context, assetID *big.Int, hash common.Hash) (string, bool, error) {
	return "", false, nil
}

func (s *stubStorageSvc) CreateAndUpload(ctx context.Context, req *storage.CreateObjectRequest, payload []byte) (string, error) {
	return "0xcreatetx", nil
}

func (s *stubStorageSvc) FetchObject(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	return s.payload, s.fetchErr
}

func (s *stubStorageSvc) DeleteObject(ctx context.Context, bucketName string, objectName string) (string, error) {
	return "", nil
}

func (s *stubStorageSvc) ListRawObjects(ctx context.Context, bucketName string) ([]storage.ObjectInfo, error) {
	return nil, nil
}

type stubNameResolverSvc struct {
	bucketName string
}

func (s *stubNameResolverSvc) ResolveBucketName(ctx context.Context, assetID *big.Int) (string, error) {
	return s.bucketName, nil
}

func (s *stubNameResolverSvc) ResolveNextObjectName(ctx context.Context, assetID *big.Int, uriType rwa.URIType, slot uint64) (string, error) {
	return "doc-0-0-0", nil
}

func newTestRouter(t *testing.T, objectSvc service.ObjectServiceInterface, storageSvc service.StorageServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1")

	err := RegisterHandlers(group, &PingPongController{})
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}
	err = RegisterHandlers(group, &ObjectController{
		GroupName:       "/storage",
		ObjectSvc:       objectSvc,
		StorageSvc:      storageSvc,
		NameResolverSvc: &stubNameResolverSvc{bucketName: "asset-1-bucket"},
	})
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}

	return router
}

func TestPingPong(t *testing.T) {
	router := newTestRouter(t, &stubObjectSvc{}, &stubStorageSvc{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestGetChecksumEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubObjectSvc{}, &stubStorageSvc{})

	body, err := json.Marshal(GetChecksumRequest{
		Object: rwa.Object{Title: "Issuer record", Type: "CONTRACT", Category: "ISSUER"},
	})
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/storage/get-checksum", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if isEqual := assert.Equal(t, http.StatusOK, w.Code); !isEqual {
		t.FailNow()
	}

	var envelope struct {
		OK      bool         `json:"ok"`
		Msg     string       `json:"msg"`
		Payload ChecksumInfo `json:"payload"`
	}
	err = json.Unmarshal(w.Body.Bytes(), &envelope)
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}
	assert.True(t, envelope.OK)
	assert.Equal(t, []string{"c0", "c1"}, envelope.Payload.Checksums)
	assert.Equal(t, common.HexToHash("0x01").Hex(), envelope.Payload.ContentHash)
}

func TestAddObjectEndpointRejectsBadAssetID(t *testing.T) {
	router := newTestRouter(t, &stubObjectSvc{}, &stubStorageSvc{})

	body, err := json.Marshal(AddObjectRequest{
		AssetID: "not-a-number",
		Object:  rwa.Object{Title: "Issuer record", Type: "CONTRACT", Category: "ISSUER"},
	})
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/storage/add-object", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if isEqual := assert.Equal(t, http.StatusBadRequest, w.Code); !isEqual {
		t.FailNow()
	}

	var envelope ResponseEnvelope
	err = json.Unmarshal(w.Body.Bytes(), &envelope)
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}
	assert.False(t, envelope.OK)
	assert.NotEmpty(t, envelope.Msg)
}

func TestGetObjectEndpointReportsMissingObjects(t *testing.T) {
	router := newTestRouter(t, &stubObjectSvc{}, &stubStorageSvc{
		bucketName: "asset-1-bucket",
		fetchErr:   errorcode.ErrorObjectNotFound,
	})

	body, err := json.Marshal(GetObjectRequest{AssetID: "1", ObjectName: "doc-0-0-0"})
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/storage/get-object", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
