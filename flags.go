// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package wire

// Flags is the interpreted low nibble of the first fixed header byte
// (2.1.3). PUBLISH carries structured flags; every other packet type
// carries four independent bits. Which variant applies is decided by the
// packet type passed to DecodeFlags, never stored on the wire.
type Flags interface {
	// Encode reassembles the canonical flag nibble.
	Encode() byte
}

// GenericFlags holds the four flag bits of every packet type except
// PUBLISH, bit 0 first.
type GenericFlags struct {
	Bit0 bool
	Bit1 bool
	Bit2 bool
	Bit3 bool
}

func (f GenericFlags) Encode() byte {
	return encodeBool(f.Bit0) | encodeBool(f.Bit1)<<1 | encodeBool(f.Bit2)<<2 | encodeBool(f.Bit3)<<3
}

// PublishFlags holds the retain, qos and dup flags of a PUBLISH packet
// (3.3.1).
type PublishFlags struct {
	Retain bool
	Qos    byte
	Dup    bool
}

func (f PublishFlags) Encode() byte {
	return encodeBool(f.Retain) | f.Qos<<1 | encodeBool(f.Dup)<<3
}

// DecodeFlags validates and interprets the flag nibble of a fixed header
// byte for the given packet type. A PUBLISH with both qos bits set, or a
// PUBREL, SUBSCRIBE or UNSUBSCRIBE whose nibble is not 0b0010, is
// structurally decodable but forbidden by the spec, so both fail with
// ErrMalformedPacket wraps rather than parse errors.
func DecodeFlags(header Byte, t PacketType) (Flags, error) {
	h := byte(header)
	generic := GenericFlags{
		Bit0: h&0x01 > 0,
		Bit1: h&0x02 > 0,
		Bit2: h&0x04 > 0,
		Bit3: h&0x08 > 0,
	}

	switch t {
	case Publish:
		// [MQTT-3.3.1-4] a PUBLISH packet MUST NOT have both qos bits set to 1.
		qos := (h >> 1) & 0x03
		if qos > 2 {
			return nil, ErrInvalidQos
		}

		return PublishFlags{
			Retain: h&0x01 > 0,
			Qos:    qos,
			Dup:    h&0x08 > 0,
		}, nil

	case Pubrel, Subscribe, Unsubscribe:
		// [MQTT-2.1.3-1] reserved flag bits MUST hold the listed values,
		// which for these three types is 0b0010.
		if h&0x0F != 0x02 {
			return nil, ErrInvalidFlags
		}
		return generic, nil

	default:
		return generic, nil
	}
}

// encodeBool returns a byte instead of a bool.
func encodeBool(b bool) byte {
	if b {
		return 1
	}
	return 0
}
