package checksumutils

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/assetx/rwa-storage/pkg/errorcode"
)

func TestComputeChecksumsIsDeterministic(t *testing.T) {
	payload := bytes.Repeat([]byte("rwa document payload "), 1000)

	first, err := ComputeChecksums(payload)
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}
	second, err := ComputeChecksums(payload)
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}

	assert.Equal(t, ChecksumCount, len(first))
	assert.Equal(t, first, second)
}

func TestComputeChecksumsDiffersPerPayload(t *testing.T) {
	first, err := ComputeChecksums([]byte("payload one"))
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}
	second, err := ComputeChecksums([]byte("payload two"))
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}

	assert.NotEqual(t, first, second)
}

func TestComputeChecksumsRejectsEmptyPayload(t *testing.T) {
	_, err := ComputeChecksums([]byte{})
	assert.Equal(t, errorcode.ErrorEncoding, errors.Cause(err))
}

func TestDeriveContentHashIsOrderSensitive(t *testing.T) {
	checksums, err := ComputeChecksums([]byte("a small document"))
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}

	original, err := DeriveContentHash(checksums)
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}

	reordered := make([]string, len(checksums))
	copy(reordered, checksums)
	reordered[0], reordered[1] = reordered[1], reordered[0]

	swapped, err := DeriveContentHash(reordered)
	if isNoError := assert.NoError(t, err); !isNoError {
		t.FailNow()
	}

	assert.NotEqual(t, original, swapped)
}

func TestDeriveContentHashRejectsEmptySet(t *testing.T) {
	_, err := DeriveContentHash(nil)
	assert.Equal(t, errorcode.ErrorEncoding, errors.Cause(err))
}
