package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/assetx/rwa-storage/internal/service"
	"github.com/assetx/rwa-storage/pkg/errorcode"
)

// An ObjectController contains a group name and the services that drive the
// write path of the store. It also implements the interface `Controller`.
type ObjectController struct {
	GroupName       string
	ObjectSvc       service.ObjectServiceInterface
	StorageSvc      service.StorageServiceInterface
	NameResolverSvc service.NameResolverServiceInterface
}

// GetGroupName returns the group name.
func (oc *ObjectController) GetGroupName() string {
	return oc.GroupName
}

// GetEndpointMap implements part of the interface `Controller`. It returns the API endpoints and handlers which are defined and managed by ObjectController.
func (oc *ObjectController) GetEndpointMap() EndpointMap {
	return EndpointMap{
		urlMethodPair{"/add-bucket", "POST"}:   []gin.HandlerFunc{oc.handleAddBucket},
		urlMethodPair{"/add-object", "POST"}:   []gin.HandlerFunc{oc.handleAddObject},
		urlMethodPair{"/get-checksum", "POST"}: []gin.HandlerFunc{oc.handleGetChecksum},
		urlMethodPair{"/get-object", "POST"}:   []gin.HandlerFunc{oc.handleGetObject},
	}
}

func (oc *ObjectController) handleAddBucket(c *gin.Context) {
	var req AddBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The request body is not valid JSON.")
		return
	}

	// Validity check
	pel := &ParameterErrorList{}
	assetID := pel.AppendIfNotAssetID(req.AssetID, "The asset ID must be a non-negative integer.")

	// Early return if there's parameter error
	if len(*pel) > 0 {
		respondParameterErrors(c, pel)
		return
	}

	bucketName, err := oc.StorageSvc.EnsureBucket(c.Request.Context(), assetID)
	if err == nil {
		respondOK(c, BucketCreationInfo{BucketName: bucketName})
	} else if errors.Cause(err) == errorcode.ErrorNoStorageContract {
		respondError(c, http.StatusNotFound, err.Error())
	} else {
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

func (oc *ObjectController) handleAddObject(c *gin.Context) {
	var req AddObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The request body is not valid JSON.")
		return
	}

	// Validity check
	pel := &ParameterErrorList{}
	assetID := pel.AppendIfNotAssetID(req.AssetID, "The asset ID must be a non-negative integer.")
	pel.AppendIfEmptyOrBlankSpaces(req.Object.Category, "The object category must not be empty.")
	pel.AppendIfEmptyOrBlankSpaces(req.Object.Type, "The object type must not be empty.")

	// Early return if the error list is not empty
	if len(*pel) > 0 {
		respondParameterErrors(c, pel)
		return
	}

	result, err := oc.ObjectSvc.AddObject(c.Request.Context(), assetID, &req.Object, req.ToChainIDs)

	// Check error type and generate the corresponding response
	if err == nil {
		respondOK(c, result)
	} else if isPolicyError(err) {
		respondError(c, http.StatusBadRequest, err.Error())
	} else if errors.Cause(err) == errorcode.ErrorIssuerFirst {
		respondError(c, http.StatusConflict, err.Error())
	} else if errors.Cause(err) == errorcode.ErrorNoStorageContract {
		respondError(c, http.StatusNotFound, err.Error())
	} else {
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

func (oc *ObjectController) handleGetChecksum(c *gin.Context) {
	var req GetChecksumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The request body is not valid JSON.")
		return
	}

	checksums, hash, err := oc.ObjectSvc.GetChecksum(&req.Object)
	if err == nil {
		respondOK(c, ChecksumInfo{Checksums: checksums, ContentHash: hash.Hex()})
	} else if errors.Cause(err) == errorcode.ErrorEncoding {
		respondError(c, http.StatusBadRequest, err.Error())
	} else {
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

func (oc *ObjectController) handleGetObject(c *gin.Context) {
	var req GetObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "The request body is not valid JSON.")
		return
	}

	// Validity check
	pel := &ParameterErrorList{}
	assetID := pel.AppendIfNotAssetID(req.AssetID, "The asset ID must be a non-negative integer.")
	objectName := pel.AppendIfEmptyOrBlankSpaces(req.ObjectName, "The object name must not be empty.")

	// Early return if there's parameter error
	if len(*pel) > 0 {
		respondParameterErrors(c, pel)
		return
	}

	bucketName, err := oc.NameResolverSvc.ResolveBucketName(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	payload, err := oc.StorageSvc.FetchObject(c.Request.Context(), bucketName, objectName)
	if err == nil {
		// Stored payloads are canonical JSON, so they embed into the
		// envelope without re-encoding.
		respondOK(c, json.RawMessage(payload))
	} else if errors.Cause(err) == errorcode.ErrorObjectNotFound {
		respondError(c, http.StatusNotFound, err.Error())
	} else if errors.Cause(err) == errorcode.ErrorBucketNotFound {
		respondError(c, http.StatusNotFound, err.Error())
	} else {
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

// isPolicyError reports whether the error is a local admission failure the
// client can fix by changing the request.
func isPolicyError(err error) bool {
	cause := errors.Cause(err)
	return cause == errorcode.ErrorUnknownCategory ||
		cause == errorcode.ErrorSizeLimitExceeded ||
		cause == errorcode.ErrorMimeTypeMismatch ||
		cause == errorcode.ErrorEncoding ||
		cause == errorcode.ErrorDuplicateHash
}
