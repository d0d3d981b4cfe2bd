// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package wire

import "encoding/binary"

const (
	// MaxVarInt is the largest value representable as a variable byte
	// integer (2^28 - 1, the four byte limit).
	MaxVarInt = 268435455

	// MaxPayloadSize is the largest string or binary payload representable
	// behind a two byte length prefix.
	MaxPayloadSize = 65535
)

// Type identifies the wire shape of a Value.
type Type byte

// All of the valid data types defined in section 1.5 of the mqtt v5 spec.
const (
	TypeByte Type = iota + 1
	TypeTwoByteInteger
	TypeFourByteInteger
	TypeVarInt
	TypeUTF8String
	TypeBinaryData
	TypeStringPair
)

// Value is a single decoded mqtt v5 primitive. The seven implementations in
// this package form the closed set of data types the wire format defines;
// Encode is the exact inverse of the corresponding Read function.
type Value interface {
	// Type reports the wire shape of the value.
	Type() Type

	// Encode returns the value's wire bytes, failing with an ErrGenerate
	// wrap if the value cannot be represented.
	Encode() ([]byte, error)
}

// Byte is a single unsigned byte (1.5.1).
type Byte byte

func (v Byte) Type() Type { return TypeByte }

func (v Byte) Encode() ([]byte, error) {
	return []byte{byte(v)}, nil
}

// TwoByteInteger is a 16-bit unsigned integer in big-endian order (1.5.2).
type TwoByteInteger uint16

func (v TwoByteInteger) Type() Type { return TypeTwoByteInteger }

func (v TwoByteInteger) Encode() ([]byte, error) {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(v))
	return buf, nil
}

// FourByteInteger is a 32-bit unsigned integer in big-endian order (1.5.3).
type FourByteInteger uint32

func (v FourByteInteger) Type() Type { return TypeFourByteInteger }

func (v FourByteInteger) Encode() ([]byte, error) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(v))
	return buf, nil
}

// VarInt is a variable byte integer (1.5.5). Width is the number of bytes
// the value occupies on the wire, 1 to 4; it is derived from the value's
// range, never chosen by the caller, which preserves the spec's minimum
// bytes necessary rule [MQTT-1.5.5-1].
type VarInt struct {
	Value uint32
	Width int
}

// NewVarInt classifies a value into its minimal wire width. Values above
// MaxVarInt fail with an ErrGenerate wrap.
func NewVarInt(value uint32) (VarInt, error) {
	if value > MaxVarInt {
		return VarInt{}, ErrVarIntRange
	}
	return VarInt{Value: value, Width: varIntWidth(value)}, nil
}

func varIntWidth(value uint32) int {
	switch {
	case value <= 127:
		return 1
	case value <= 16383:
		return 2
	case value <= 2097151:
		return 3
	default:
		return 4
	}
}

func (v VarInt) Type() Type { return TypeVarInt }

// Encode performs the radix-128 expansion from section 1.5.5, setting the
// continuation bit on all but the final byte.
func (v VarInt) Encode() ([]byte, error) {
	if v.Value > MaxVarInt {
		return nil, ErrVarIntRange
	}

	buf := make([]byte, 0, 4)
	n := v.Value
	for {
		eb := byte(n % 128)
		n /= 128
		if n > 0 {
			eb |= 0x80
		}
		buf = append(buf, eb)
		if n == 0 {
			break
		}
	}

	return buf, nil
}

// UTF8String is a length-prefixed utf-8 string (1.5.4).
type UTF8String string

func (v UTF8String) Type() Type { return TypeUTF8String }

func (v UTF8String) Encode() ([]byte, error) {
	return encodeBytes([]byte(v))
}

// BinaryData is a length-prefixed byte sequence (1.5.6).
type BinaryData []byte

func (v BinaryData) Type() Type { return TypeBinaryData }

func (v BinaryData) Encode() ([]byte, error) {
	return encodeBytes(v)
}

// StringPair is a utf-8 string pair holding a name-value pair (1.5.7).
type StringPair struct {
	Key string
	Val string
}

func (v StringPair) Type() Type { return TypeStringPair }

func (v StringPair) Encode() ([]byte, error) {
	k, err := encodeBytes([]byte(v.Key))
	if err != nil {
		return nil, err
	}

	val, err := encodeBytes([]byte(v.Val))
	if err != nil {
		return nil, err
	}

	return append(k, val...), nil
}

// encodeBytes prefixes val with its two byte big-endian length. The length
// prefix is recomputed from the actual payload size; payloads over 65535
// bytes fail rather than truncate.
func encodeBytes(val []byte) ([]byte, error) {
	if len(val) > MaxPayloadSize {
		return nil, ErrOversizedPayload
	}

	buf := make([]byte, 2, 2+len(val))
	binary.BigEndian.PutUint16(buf, uint16(len(val)))
	return append(buf, val...), nil
}
