// Package fieldcodec is the injective, type-directed byte encoding used
// for CSV cells: CBOR for the value bytes, raw-std base64 so the bytes
// survive a text cell. The encoding is not human-readable for non-numeric
// types and is not meant to be.
package fieldcodec

import (
	"encoding/base64"

	"github.com/fxamacker/cbor/v2"
)

// Encode renders v as a CSV-safe field string.
func Encode[T any](v T) (string, error) {
	b, err := cbor.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawStdEncoding.EncodeToString(b), nil
}

// Decode inverts Encode. A field that is not valid base64, not valid
// CBOR, or not decodable into T is an error; callers typically discard
// such fields.
func Decode[T any](field string) (T, error) {
	var v T
	b, err := base64.RawStdEncoding.DecodeString(field)
	if err != nil {
		return v, err
	}
	if err := cbor.Unmarshal(b, &v); err != nil {
		return v, err
	}
	return v, nil
}
