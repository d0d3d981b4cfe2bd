// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package wire

import (
	"errors"
	"fmt"
)

// Every failure the codec can report belongs to one of three kinds, and
// every error value returned by this package wraps exactly one of them:
// ErrParse when the byte source ends early or yields undecodable bytes,
// ErrGenerate when a value cannot be represented on the wire (or a numeric
// code falls outside a closed enumeration), and ErrMalformedPacket when the
// bytes decode cleanly but violate a MUST rule of the mqtt v5 spec. Callers
// classify with errors.Is.
var (
	ErrParse           = errors.New("parse error")
	ErrGenerate        = errors.New("generate error")
	ErrMalformedPacket = errors.New("malformed packet")
)

var (
	// ErrParse wraps.
	ErrInsufficientBytes = fmt.Errorf("%w: insufficient bytes", ErrParse)
	ErrInvalidUTF8       = fmt.Errorf("%w: invalid utf-8 string", ErrParse)
	ErrVarIntOverflow    = fmt.Errorf("%w: variable byte integer exceeds four bytes", ErrParse)

	// ErrGenerate wraps.
	ErrOversizedPayload     = fmt.Errorf("%w: payload exceeds 65535 bytes", ErrGenerate)
	ErrOversizedProperties  = fmt.Errorf("%w: properties exceed 65535 bytes", ErrGenerate)
	ErrVarIntRange          = fmt.Errorf("%w: value exceeds variable byte integer maximum", ErrGenerate)
	ErrPropertyTypeMismatch = fmt.Errorf("%w: value type not valid for property identifier", ErrGenerate)

	// ErrMalformedPacket wraps.
	ErrInvalidFlags        = fmt.Errorf("%w: invalid flags set for packet", ErrMalformedPacket)
	ErrInvalidQos          = fmt.Errorf("%w: qos out of range", ErrMalformedPacket)
	ErrTruncatedProperties = fmt.Errorf("%w: property length exceeds remaining property list length", ErrMalformedPacket)
)
