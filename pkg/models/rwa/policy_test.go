package rwa

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/assetx/rwa-storage/pkg/errorcode"
)

func TestCheckObjectAcceptsPayloadAtTheLimit(t *testing.T) {
	object := &Object{
		Title:    "Asset logo",
		Type:     "CONTRACT",
		Category: "IMAGE",
		Properties: &MediaProperties{
			ImageName: "logo.png",
			ImageType: "image/png",
		},
	}

	err := CheckObject(object, 2_000_000)
	assert.NoError(t, err)
}

func TestCheckObjectRejectsPayloadOverTheLimit(t *testing.T) {
	object := &Object{
		Title:    "Asset logo",
		Type:     "CONTRACT",
		Category: "IMAGE",
		Properties: &MediaProperties{
			ImageName: "logo.png",
			ImageType: "image/png",
		},
	}

	err := CheckObject(object, 2_000_001)
	assert.Equal(t, errorcode.ErrorSizeLimitExceeded, errors.Cause(err))
}

func TestCheckObjectRejectsMismatchedMediaType(t *testing.T) {
	object := &Object{
		Title:    "Asset logo",
		Type:     "CONTRACT",
		Category: "IMAGE",
		Properties: &MediaProperties{
			ImageName: "logo.pdf",
			ImageType: "application/pdf",
		},
	}

	err := CheckObject(object, 1000)
	assert.Equal(t, errorcode.ErrorMimeTypeMismatch, errors.Cause(err))
}

func TestCheckObjectAcceptsVideoMediaType(t *testing.T) {
	object := &Object{
		Title:    "Asset walkthrough",
		Type:     "CONTRACT",
		Category: "VIDEO",
		Properties: &MediaProperties{
			ImageName: "tour.mp4",
			ImageType: "video/mp4",
		},
	}

	err := CheckObject(object, 1_000_000_000)
	assert.NoError(t, err)
}

func TestCheckObjectRejectsUnknownCategory(t *testing.T) {
	object := &Object{
		Title:    "Mystery",
		Type:     "CONTRACT",
		Category: "GOSSIP",
	}

	err := CheckObject(object, 10)
	assert.Equal(t, errorcode.ErrorUnknownCategory, errors.Cause(err))
}

func TestCheckObjectDecodesMediaPropertiesFromGenericMap(t *testing.T) {
	object := &Object{
		Title:    "Asset logo",
		Type:     "CONTRACT",
		Category: "IMAGE",
		Properties: map[string]interface{}{
			"image_name": "logo.png",
			"image_type": "image/png",
			"image_data": "aGVsbG8=",
		},
	}

	err := CheckObject(object, 1000)
	assert.NoError(t, err)
}

func TestCategorySizeLimits(t *testing.T) {
	limit, err := CategorySizeLimit(Issuer)
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}
	assert.Equal(t, int64(100_000), limit)

	limit, err = CategorySizeLimit(Prospectus)
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}
	assert.Equal(t, int64(1_000_000), limit)

	limit, err = CategorySizeLimit(Video)
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}
	assert.Equal(t, int64(50_000_000_000), limit)
}
