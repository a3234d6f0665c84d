package storage

import (
	"strings"

	"github.com/assetx/rwa-storage/pkg/errorcode"
	"github.com/pkg/errors"
)

// ErrorObjectExists reports that the object was already created on the
// storage network. The lifecycle manager treats it as a success outcome
// because the registry-side collision check ran immediately before.
var ErrorObjectExists = errors.New("object already exists on the storage network")

// GetClassifiedError converts the storage network's "not found" / "already
// exists" message signals into the predefined sentinels. Anything else is
// wrapped with the operation name and propagated as-is.
func GetClassifiedError(operation string, err error) error {
	if err == nil {
		return nil
	} else if strings.Contains(err.Error(), errorcode.CodeNoSuchBucket) {
		return errorcode.ErrorBucketNotFound
	} else if strings.Contains(err.Error(), errorcode.CodeNoSuchObject) {
		return errorcode.ErrorObjectNotFound
	} else if strings.Contains(err.Error(), errorcode.CodeObjectExists) {
		return ErrorObjectExists
	} else {
		return errors.Wrapf(err, "storage network call '%v' failed", operation)
	}
}
