// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeFlagsPublish(t *testing.T) {
	tt := []struct {
		header Byte
		want   PublishFlags
	}{
		{0x30, PublishFlags{}},
		{0x31, PublishFlags{Retain: true}},
		{0x32, PublishFlags{Qos: 1}},
		{0x34, PublishFlags{Qos: 2}},
		{0x38, PublishFlags{Dup: true}},
		{0x3D, PublishFlags{Retain: true, Qos: 2, Dup: true}},
	}

	for _, tx := range tt {
		f, err := DecodeFlags(tx.header, Publish)
		require.NoError(t, err)
		require.Equal(t, tx.want, f)
		require.Equal(t, byte(tx.header)&0x0F, f.Encode())
	}
}

func TestDecodeFlagsPublishQosInvalid(t *testing.T) {
	// [MQTT-3.3.1-4] both qos bits set.
	_, err := DecodeFlags(0x3F, Publish)
	require.ErrorIs(t, err, ErrInvalidQos)
	require.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeFlagsReservedNibble(t *testing.T) {
	for _, pt := range []PacketType{Pubrel, Subscribe, Unsubscribe} {
		header := Byte(pt.Encode()<<4 | 0x02)
		f, err := DecodeFlags(header, pt)
		require.NoError(t, err, "packet type %s", pt)
		require.Equal(t, GenericFlags{Bit1: true}, f)
		require.Equal(t, byte(0x02), f.Encode())
	}

	// Any nibble other than 0b0010 is malformed on these three types.
	_, err := DecodeFlags(0xAF, Unsubscribe)
	require.ErrorIs(t, err, ErrInvalidFlags)
	require.ErrorIs(t, err, ErrMalformedPacket)

	_, err = DecodeFlags(0x60, Pubrel)
	require.ErrorIs(t, err, ErrMalformedPacket)

	_, err = DecodeFlags(0x83, Subscribe)
	require.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeFlagsGeneric(t *testing.T) {
	// Remaining packet types return the nibble unvalidated.
	f, err := DecodeFlags(0x1F, Connect)
	require.NoError(t, err)
	require.Equal(t, GenericFlags{Bit0: true, Bit1: true, Bit2: true, Bit3: true}, f)
	require.Equal(t, byte(0x0F), f.Encode())

	f, err = DecodeFlags(0x21, Connack)
	require.NoError(t, err)
	require.Equal(t, GenericFlags{Bit0: true}, f)

	f, err = DecodeFlags(0xE0, Disconnect)
	require.NoError(t, err)
	require.Equal(t, GenericFlags{}, f)
	require.Equal(t, byte(0x00), f.Encode())
}

func TestFlagsRoundTrip(t *testing.T) {
	headers := []Byte{0x30, 0x31, 0x32, 0x34, 0x38, 0x3D}
	for _, h := range headers {
		f, err := DecodeFlags(h, Publish)
		require.NoError(t, err)
		require.Equal(t, byte(h)&0x0F, f.Encode())
	}
}
