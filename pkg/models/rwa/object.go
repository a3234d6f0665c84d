package rwa

import (
	"encoding/json"
	"strconv"
)

// Object is the off-chain payload written to the storage network for every
// descriptor. `Properties` carries the category-specific payload; `Text` is
// free-form narrative shown to holders.
//
// An Object is never mutated after its checksum set has been computed. A
// corrected document is a new Object with a new descriptor.
type Object struct {
	Title      string      `json:"title"`
	Type       string      `json:"type"`
	Slot       string      `json:"slot"`
	Category   string      `json:"category"`
	Properties interface{} `json:"properties"`
	Text       string      `json:"text"`
}

// Serialize produces the canonical byte sequence of the object. Struct field
// order is fixed, so the same object always serializes to the same bytes;
// the checksum set and content hash are only meaningful over this sequence.
func (o *Object) Serialize() ([]byte, error) {
	return json.Marshal(o)
}

// SlotOrZero maps the empty-slot convention: a blank slot string means
// "no slot" and is written to the contract as 0.
func SlotOrZero(slot string) uint64 {
	if slot == "" {
		return 0
	}
	n, err := strconv.ParseUint(slot, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
