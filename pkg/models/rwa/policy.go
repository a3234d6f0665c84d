package rwa

import (
	"strings"

	"github.com/assetx/rwa-storage/pkg/errorcode"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// categorySizeLimits is the fixed byte-size ceiling per category. The gate
// runs before any network call; exceeding the ceiling rejects the object
// locally, not at the storage network.
var categorySizeLimits = map[URICategory]int64{
	Issuer:       100_000,
	Provenance:   500_000,
	Valuation:    500_000,
	Prospectus:   1_000_000,
	Rating:       200_000,
	Legal:        500_000,
	Financial:    500_000,
	License:      500_000,
	DueDiligence: 500_000,
	Notice:       500_000,
	Dividend:     200_000,
	Redemption:   200_000,
	WhoCanInvest: 200_000,
	Image:        2_000_000,
	Video:        50_000_000_000,
	Icon:         200_000,
}

// CategorySizeLimit returns the byte ceiling for a category.
func CategorySizeLimit(category URICategory) (int64, error) {
	limit, ok := categorySizeLimits[category]
	if !ok {
		return 0, errorcode.ErrorUnknownCategory
	}
	return limit, nil
}

// CheckObject validates an object's declared category against the size of
// its serialized payload and, for media categories, the declared MIME type.
//
// Parameters:
//   the object to be checked
//   the size of the serialized payload in bytes
//
// Returns:
//   nil if the object passes the gate, else one of the policy sentinels
func CheckObject(object *Object, size int64) error {
	category, err := NewURICategoryFromString(object.Category)
	if err != nil {
		return errorcode.ErrorUnknownCategory
	}

	limit, err := CategorySizeLimit(category)
	if err != nil {
		return err
	}
	if size > limit {
		return errors.Wrapf(errorcode.ErrorSizeLimitExceeded,
			"size %v exceeds the %v byte limit for category %v", size, limit, category)
	}

	switch category {
	case Image:
		return checkMediaType(object, "image/")
	case Video:
		return checkMediaType(object, "video/")
	}

	return nil
}

func checkMediaType(object *Object, wantPrefix string) error {
	media, err := DecodeMediaProperties(object.Properties)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(media.ImageType, wantPrefix) {
		return errors.Wrapf(errorcode.ErrorMimeTypeMismatch,
			"media type '%v' is not compatible with category %v", media.ImageType, object.Category)
	}
	return nil
}

// DecodeMediaProperties decodes an object's properties payload into
// MediaProperties. The payload arrives as a generic map when the object came
// in over HTTP, so the decode goes through mapstructure.
func DecodeMediaProperties(properties interface{}) (*MediaProperties, error) {
	if media, ok := properties.(*MediaProperties); ok {
		return media, nil
	}
	if media, ok := properties.(MediaProperties); ok {
		return &media, nil
	}

	var media MediaProperties
	if err := mapstructure.Decode(properties, &media); err != nil {
		return nil, errors.Wrap(err, "cannot decode media properties")
	}
	return &media, nil
}
