package checksumutils

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/klauspost/reedsolomon"
	"github.com/pkg/errors"

	"github.com/assetx/rwa-storage/pkg/errorcode"
)

// Redundancy parameters fixed by the storage network's protocol. Changing
// any of them changes every checksum set and breaks reconciliation against
// already-registered hashes.
const (
	segmentSize  = 16 * 1024 * 1024
	dataShards   = 4
	parityShards = 2

	// ChecksumCount is the protocol-fixed cardinality of a checksum set:
	// one primary checksum plus one per erasure-coded piece.
	ChecksumCount = 1 + dataShards + parityShards

	// maxEncodableSize bounds what the encoder will attempt in one pass.
	maxEncodableSize = int64(1) << 36
)

// ComputeChecksums erasure-codes the serialized payload and returns the
// protocol-ordered checksum set as Base64 strings: element 0 is the primary
// checksum over the payload segments, elements 1..6 cover the erasure-coded
// pieces. The order is part of the protocol; reordering the set yields a
// different content hash.
func ComputeChecksums(payload []byte) ([]string, error) {
	if len(payload) == 0 {
		return nil, errors.Wrap(errorcode.ErrorEncoding, "payload is empty")
	}
	if int64(len(payload)) > maxEncodableSize {
		return nil, errors.Wrapf(errorcode.ErrorEncoding, "payload of %v bytes exceeds the encoder limit", len(payload))
	}

	encoder, err := reedsolomon.New(dataShards, parityShards)
	if err != nil {
		return nil, errors.Wrap(errorcode.ErrorEncoding, err.Error())
	}

	primary := sha256.New()
	pieces := make([][]byte, dataShards+parityShards)

	for offset := 0; offset < len(payload); offset += segmentSize {
		end := offset + segmentSize
		if end > len(payload) {
			end = len(payload)
		}
		segment := payload[offset:end]

		segmentHash := sha256.Sum256(segment)
		primary.Write(segmentHash[:])

		// Split pads the last shard and allocates the parity shards.
		shards, err := encoder.Split(segment)
		if err != nil {
			return nil, errors.Wrap(errorcode.ErrorEncoding, err.Error())
		}
		if err := encoder.Encode(shards); err != nil {
			return nil, errors.Wrap(errorcode.ErrorEncoding, err.Error())
		}

		for i, shard := range shards {
			shardHash := sha256.Sum256(shard)
			pieces[i] = append(pieces[i], shardHash[:]...)
		}
	}

	checksums := make([]string, 0, ChecksumCount)
	checksums = append(checksums, base64.StdEncoding.EncodeToString(primary.Sum(nil)))
	for _, piece := range pieces {
		pieceHash := sha256.Sum256(piece)
		checksums = append(checksums, base64.StdEncoding.EncodeToString(pieceHash[:]))
	}

	return checksums, nil
}

// DeriveContentHash ABI-encodes the checksum set as an ordered string tuple
// and returns its keccak-256 digest. This is the canonical content hash that
// binds a registry descriptor to the stored bytes. Pure function: same set,
// same order, same hash.
func DeriveContentHash(checksums []string) (common.Hash, error) {
	if len(checksums) == 0 {
		return common.Hash{}, errors.Wrap(errorcode.ErrorEncoding, "checksum set is empty")
	}

	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		return common.Hash{}, errors.Wrap(errorcode.ErrorEncoding, err.Error())
	}

	arguments := make(abi.Arguments, 0, len(checksums))
	values := make([]interface{}, 0, len(checksums))
	for _, checksum := range checksums {
		arguments = append(arguments, abi.Argument{Type: stringType})
		values = append(values, checksum)
	}

	packed, err := arguments.Pack(values...)
	if err != nil {
		return common.Hash{}, errors.Wrap(errorcode.ErrorEncoding, err.Error())
	}

	return common.BytesToHash(crypto.Keccak256(packed)), nil
}
