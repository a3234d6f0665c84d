package controller

import (
	"math/big"
	"strings"
)

// ParameterErrorList contains a list of human-readable errors about parameters.
type ParameterErrorList []string

// AppendIfEmptyOrBlankSpaces appends the error message specified if `str` is empty or contains only blank spaces.
//
// Parameters:
//   the string to be checked
//   the error message to append
//
// Returns:
//   the trimmed string
func (pel *ParameterErrorList) AppendIfEmptyOrBlankSpaces(str string, errMsg string) string {
	if str = strings.TrimSpace(str); str == "" {
		*pel = append(*pel, errMsg)
	}

	return str
}

// AppendIfNotAssetID appends the error message specified if `str` is not a
// non-negative decimal integer.
//
// Parameters:
//   the string to be checked
//   the error message to append
//
// Returns:
//   the parsed big integer or nil if there's error
func (pel *ParameterErrorList) AppendIfNotAssetID(str string, errMsg string) *big.Int {
	assetID, ok := new(big.Int).SetString(strings.TrimSpace(str), 10)
	if !ok || assetID.Sign() < 0 {
		*pel = append(*pel, errMsg)
		return nil
	}

	return assetID
}
