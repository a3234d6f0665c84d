package rwa

import "fmt"

// URICategory marks the kind of document a storage descriptor refers to.
// The ordinals are fixed by the registry contract and must never be reordered.
type URICategory int

const (
	Issuer URICategory = iota
	Provenance
	Valuation
	Prospectus
	Rating
	Legal
	Financial
	License
	DueDiligence
	Notice
	Dividend
	Redemption
	WhoCanInvest
	Image
	Video
	Icon
)

// categoryNames is the single source of both directions of the
// category <-> ordinal mapping. Index == contract ordinal.
var categoryNames = []string{
	"ISSUER",
	"PROVENANCE",
	"VALUATION",
	"PROSPECTUS",
	"RATING",
	"LEGAL",
	"FINANCIAL",
	"LICENSE",
	"DUEDILIGENCE",
	"NOTICE",
	"DIVIDEND",
	"REDEMPTION",
	"WHOCANINVEST",
	"IMAGE",
	"VIDEO",
	"ICON",
}

var categoryOrdinals = func() map[string]URICategory {
	m := make(map[string]URICategory, len(categoryNames))
	for i, name := range categoryNames {
		m[name] = URICategory(i)
	}
	return m
}()

func (c URICategory) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("%d", int(c))
	}
	return categoryNames[c]
}

// IsValid reports whether the category is within the fixed table.
func (c URICategory) IsValid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

// NewURICategoryFromString returns the URICategory for an enum name.
func NewURICategoryFromString(enumString string) (URICategory, error) {
	if c, ok := categoryOrdinals[enumString]; ok {
		return c, nil
	}
	return -1, fmt.Errorf("unknown URI category '%v'", enumString)
}

// URIType distinguishes documents bound to the whole contract from documents
// bound to a single slot.
type URIType int

const (
	Contract URIType = iota
	Slot
)

var typeNames = []string{"CONTRACT", "SLOT"}

var typeOrdinals = func() map[string]URIType {
	m := make(map[string]URIType, len(typeNames))
	for i, name := range typeNames {
		m[name] = URIType(i)
	}
	return m
}()

func (t URIType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("%d", int(t))
	}
	return typeNames[t]
}

// IsValid reports whether the type is CONTRACT or SLOT.
func (t URIType) IsValid() bool {
	return t >= 0 && int(t) < len(typeNames)
}

// NewURITypeFromString returns the URIType for an enum name.
func NewURITypeFromString(enumString string) (URIType, error) {
	if t, ok := typeOrdinals[enumString]; ok {
		return t, nil
	}
	return -1, fmt.Errorf("unknown URI type '%v'", enumString)
}
