package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/assetx/rwa-storage/internal/service"
	"github.com/assetx/rwa-storage/pkg/errorcode"
)

// A ListController contains a group name and a `ReconcileService` instance. It also implements the interface `Controller`.
type ListController struct {
	GroupName    string
	ReconcileSvc service.ReconcileServiceInterface
}

// GetGroupName returns the group name.
func (lc *ListController) GetGroupName() string {
	return lc.GroupName
}

// GetEndpointMap implements part of the interface `Controller`. It returns the API endpoints and handlers which are defined and managed by ListController.
func (lc *ListController) GetEndpointMap() EndpointMap {
	return EndpointMap{
		urlMethodPair{"/list-objects", "POST"}:    []gin.HandlerFunc{lc.handleListObjects},
		urlMethodPair{"/list-one-object", "POST"}: []gin.HandlerFunc{lc.handleListOneObject},
	}
}

func (lc *ListController) handleListObjects(c *gin.Context) {
	var req ListObjectsRequest
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

	objects, err := lc.ReconcileSvc.Reconcile(c.Request.Context(), assetID)
	if err == nil {
		respondOK(c, objects)
	} else if errors.Cause(err) == errorcode.ErrorBucketNotFound {
		respondError(c, http.StatusNotFound, err.Error())
	} else if errors.Cause(err) == errorcode.ErrorNoStorageContract {
		respondError(c, http.StatusNotFound, err.Error())
	} else {
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

func (lc *ListController) handleListOneObject(c *gin.Context) {
	var req ListOneObjectRequest
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

	object, err := lc.ReconcileSvc.ReconcileOne(c.Request.Context(), assetID, objectName)
	if err == nil {
		respondOK(c, object)
	} else if errors.Cause(err) == errorcode.ErrorObjectNotFound {
		respondError(c, http.StatusNotFound, err.Error())
	} else if errors.Cause(err) == errorcode.ErrorBucketNotFound {
		respondError(c, http.StatusNotFound, err.Error())
	} else {
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
