// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePacketType(t *testing.T) {
	tt := []struct {
		header Byte
		want   PacketType
	}{
		{0x10, Connect},
		{0x20, Connack},
		{0x3D, Publish}, // flag bits must not disturb the type nibble
		{0x40, Puback},
		{0x50, Pubrec},
		{0x62, Pubrel},
		{0x70, Pubcomp},
		{0x82, Subscribe},
		{0x90, Suback},
		{0xA2, Unsubscribe},
		{0xB0, Unsuback},
		{0xC0, Pingreq},
		{0xD0, Pingresp},
		{0xE0, Disconnect},
		{0xF0, Auth},
	}

	for _, tx := range tt {
		got, err := DecodePacketType(tx.header)
		require.NoError(t, err)
		require.Equal(t, tx.want, got)
		require.Equal(t, byte(tx.header)>>4, got.Encode())
	}
}

func TestDecodePacketTypeReserved(t *testing.T) {
	_, err := DecodePacketType(0x00)
	require.ErrorIs(t, err, ErrGenerate)

	// Only the nibble value matters; low bits set on a reserved type still fail.
	_, err = DecodePacketType(0x0F)
	require.ErrorIs(t, err, ErrGenerate)
}

func TestDecodePacketTypeFromSource(t *testing.T) {
	b, err := ReadByte(bytes.NewReader([]byte{0x10}))
	require.NoError(t, err)

	pt, err := DecodePacketType(b)
	require.NoError(t, err)
	require.Equal(t, Connect, pt)
	require.Equal(t, byte(1), pt.Encode())
}

func TestPacketTypeString(t *testing.T) {
	require.Equal(t, "CONNECT", Connect.String())
	require.Equal(t, "AUTH", Auth.String())
	require.Equal(t, "packet type 0x00", PacketType(0).String())
}
