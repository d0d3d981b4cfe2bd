// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

// Package wire decodes and encodes the mqtt v5 wire format: the primitive
// data types of section 1.5, the property lists of section 2.2.2, the fixed
// header packet type and flag bits of section 2.1, and the reason codes of
// section 2.4. It is the building block underneath a client or broker's
// control packet layer; it performs no i/o of its own and holds no state,
// so every function is safe to call concurrently as long as each call owns
// its byte source.
package wire

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// readFull fills buf from r. A short read is never retryable here; the
// caller framed the packet, so running out of bytes means the value cannot
// be decoded at all.
func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return ErrInsufficientBytes
	}
	return nil
}

// ReadByte reads a single byte value.
func ReadByte(r io.Reader) (Byte, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Byte(buf[0]), nil
}

// ReadTwoByteInteger reads a 16-bit big-endian unsigned integer.
func ReadTwoByteInteger(r io.Reader) (TwoByteInteger, error) {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return TwoByteInteger(uint16(buf[0])<<8 | uint16(buf[1])), nil
}

// ReadFourByteInteger reads a 32-bit big-endian unsigned integer.
func ReadFourByteInteger(r io.Reader) (FourByteInteger, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return FourByteInteger(uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])), nil
}

// ReadVarInt reads a variable byte integer using the non-normative decode
// algorithm from section 1.5.5: accumulate the low seven bits of each byte
// while the continuation bit is set. A fifth encoded byte is an
// ErrParse wrap [MQTT-1.5.5-1]; the decoded value classifies into the
// smallest width that can hold it.
func ReadVarInt(r io.Reader) (VarInt, error) {
	var multiplier uint32 = 1
	var value uint32
	var buf [1]byte

	for {
		if err := readFull(r, buf[:]); err != nil {
			return VarInt{}, err
		}

		if multiplier > 128*128*128 {
			return VarInt{}, ErrVarIntOverflow
		}

		value += uint32(buf[0]&0x7F) * multiplier

		if buf[0]&0x80 == 0 {
			break
		}
		multiplier *= 128
	}

	return VarInt{Value: value, Width: varIntWidth(value)}, nil
}

// ReadUTF8String reads a length-prefixed string, validating it per
// [MQTT-1.5.4-1] and [MQTT-1.5.4-2].
func ReadUTF8String(r io.Reader) (UTF8String, error) {
	b, err := readLengthPrefixed(r)
	if err != nil {
		return "", err
	}

	if !validUTF8(b) {
		return "", ErrInvalidUTF8
	}

	return UTF8String(b), nil
}

// ReadBinaryData reads a length-prefixed byte sequence.
func ReadBinaryData(r io.Reader) (BinaryData, error) {
	b, err := readLengthPrefixed(r)
	if err != nil {
		return nil, err
	}
	return BinaryData(b), nil
}

// ReadStringPair reads two consecutive length-prefixed utf-8 strings.
func ReadStringPair(r io.Reader) (StringPair, error) {
	k, err := ReadUTF8String(r)
	if err != nil {
		return StringPair{}, err
	}

	v, err := ReadUTF8String(r)
	if err != nil {
		return StringPair{}, err
	}

	return StringPair{Key: string(k), Val: string(v)}, nil
}

// readLengthPrefixed reads a two byte big-endian length followed by exactly
// that many bytes.
func readLengthPrefixed(r io.Reader) ([]byte, error) {
	length, err := ReadTwoByteInteger(r)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, int(length))
	if err := readFull(r, buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// validUTF8 checks if the byte array contains valid utf-8 characters and no
// null character. [MQTT-1.5.4-1] [MQTT-1.5.4-2]
func validUTF8(b []byte) bool {
	return utf8.Valid(b) && bytes.IndexByte(b, 0x00) == -1
}
