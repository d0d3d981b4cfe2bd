// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package wire

// PacketType is the 4-bit control packet type carried in bits 7-4 of the
// first fixed header byte (2.1.2).
type PacketType byte

// All of the valid packet types and their wire codes.
const (
	Connect     PacketType = iota + 1 // 1
	Connack                           // 2
	Publish                           // 3
	Puback                            // 4
	Pubrec                            // 5
	Pubrel                            // 6
	Pubcomp                           // 7
	Subscribe                         // 8
	Suback                            // 9
	Unsubscribe                       // 10
	Unsuback                          // 11
	Pingreq                           // 12
	Pingresp                          // 13
	Disconnect                        // 14
	Auth                              // 15
)

var packetTypes = byteEnum[PacketType]{
	kind: "packet type",
	names: map[PacketType]string{
		Connect:     "CONNECT",
		Connack:     "CONNACK",
		Publish:     "PUBLISH",
		Puback:      "PUBACK",
		Pubrec:      "PUBREC",
		Pubrel:      "PUBREL",
		Pubcomp:     "PUBCOMP",
		Subscribe:   "SUBSCRIBE",
		Suback:      "SUBACK",
		Unsubscribe: "UNSUBSCRIBE",
		Unsuback:    "UNSUBACK",
		Pingreq:     "PINGREQ",
		Pingresp:    "PINGRESP",
		Disconnect:  "DISCONNECT",
		Auth:        "AUTH",
	},
}

// DecodePacketType extracts the packet type from the high nibble of the
// first fixed header byte. The reserved nibble 0 is outside the enumeration
// and fails with an ErrGenerate wrap, as the byte itself was read cleanly.
func DecodePacketType(header Byte) (PacketType, error) {
	return packetTypes.decode((byte(header) & 0xF0) >> 4)
}

// Encode returns the type's 4-bit wire code, the direct inverse of
// DecodePacketType before shifting.
func (t PacketType) Encode() byte {
	return byte(t)
}

// String returns the packet type's name.
func (t PacketType) String() string {
	return packetTypes.name(t)
}
