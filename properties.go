// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

// Identifier defines the usage and data type of a property (2.2.2.2).
type Identifier byte

// All of the valid property identifiers and their wire codes.
const (
	PropPayloadFormat          Identifier = 0x01
	PropMessageExpiryInterval  Identifier = 0x02
	PropContentType            Identifier = 0x03
	PropResponseTopic          Identifier = 0x08
	PropCorrelationData        Identifier = 0x09
	PropSubscriptionIdentifier Identifier = 0x0B
	PropSessionExpiryInterval  Identifier = 0x11
	PropAssignedClientID       Identifier = 0x12
	PropServerKeepAlive        Identifier = 0x13
	PropAuthenticationMethod   Identifier = 0x15
	PropAuthenticationData     Identifier = 0x16
	PropRequestProblemInfo     Identifier = 0x17
	PropWillDelayInterval      Identifier = 0x18
	PropRequestResponseInfo    Identifier = 0x19
	PropResponseInfo           Identifier = 0x1A
	PropServerReference        Identifier = 0x1C
	PropReasonString           Identifier = 0x1F
	PropReceiveMaximum         Identifier = 0x21
	PropTopicAliasMaximum      Identifier = 0x22
	PropTopicAlias             Identifier = 0x23
	PropMaximumQos             Identifier = 0x24
	PropRetainAvailable        Identifier = 0x25
	PropUser                   Identifier = 0x26
	PropMaximumPacketSize      Identifier = 0x27
	PropWildcardSubAvailable   Identifier = 0x28
	PropSubIDAvailable         Identifier = 0x29
	PropSharedSubAvailable     Identifier = 0x2A
)

var identifiers = byteEnum[Identifier]{
	kind: "property identifier",
	names: map[Identifier]string{
		PropPayloadFormat:          "payload format indicator",
		PropMessageExpiryInterval:  "message expiry interval",
		PropContentType:            "content type",
		PropResponseTopic:          "response topic",
		PropCorrelationData:        "correlation data",
		PropSubscriptionIdentifier: "subscription identifier",
		PropSessionExpiryInterval:  "session expiry interval",
		PropAssignedClientID:       "assigned client identifier",
		PropServerKeepAlive:        "server keep alive",
		PropAuthenticationMethod:   "authentication method",
		PropAuthenticationData:     "authentication data",
		PropRequestProblemInfo:     "request problem information",
		PropWillDelayInterval:      "will delay interval",
		PropRequestResponseInfo:    "request response information",
		PropResponseInfo:           "response information",
		PropServerReference:        "server reference",
		PropReasonString:           "reason string",
		PropReceiveMaximum:         "receive maximum",
		PropTopicAliasMaximum:      "topic alias maximum",
		PropTopicAlias:             "topic alias",
		PropMaximumQos:             "maximum qos",
		PropRetainAvailable:        "retain available",
		PropUser:                   "user property",
		PropMaximumPacketSize:      "maximum packet size",
		PropWildcardSubAvailable:   "wildcard subscription available",
		PropSubIDAvailable:         "subscription identifier available",
		PropSharedSubAvailable:     "shared subscription available",
	},
}

// propertyTypes fixes the wire shape of each identifier's value. The
// mapping is set by table 2-4 of the mqtt v5 spec; a value of any other
// shape against an identifier is a structural error.
var propertyTypes = map[Identifier]Type{
	PropPayloadFormat:          TypeByte,
	PropMessageExpiryInterval:  TypeFourByteInteger,
	PropContentType:            TypeUTF8String,
	PropResponseTopic:          TypeUTF8String,
	PropCorrelationData:        TypeBinaryData,
	PropSubscriptionIdentifier: TypeVarInt,
	PropSessionExpiryInterval:  TypeFourByteInteger,
	PropAssignedClientID:       TypeUTF8String,
	PropServerKeepAlive:        TypeTwoByteInteger,
	PropAuthenticationMethod:   TypeUTF8String,
	PropAuthenticationData:     TypeBinaryData,
	PropRequestProblemInfo:     TypeByte,
	PropWillDelayInterval:      TypeFourByteInteger,
	PropRequestResponseInfo:    TypeByte,
	PropResponseInfo:           TypeUTF8String,
	PropServerReference:        TypeUTF8String,
	PropReasonString:           TypeUTF8String,
	PropReceiveMaximum:         TypeTwoByteInteger,
	PropTopicAliasMaximum:      TypeTwoByteInteger,
	PropTopicAlias:             TypeTwoByteInteger,
	PropMaximumQos:             TypeByte,
	PropRetainAvailable:        TypeByte,
	PropUser:                   TypeStringPair,
	PropMaximumPacketSize:      TypeFourByteInteger,
	PropWildcardSubAvailable:   TypeByte,
	PropSubIDAvailable:         TypeByte,
	PropSharedSubAvailable:     TypeByte,
}

// String returns the identifier's name.
func (id Identifier) String() string {
	return identifiers.name(id)
}

// ValueType returns the wire shape fixed for the identifier's value.
func (id Identifier) ValueType() Type {
	return propertyTypes[id]
}

// readValue parses one value of the identifier's fixed shape.
func (id Identifier) readValue(r io.Reader) (Value, error) {
	switch propertyTypes[id] {
	case TypeByte:
		v, err := ReadByte(r)
		return v, err
	case TypeTwoByteInteger:
		v, err := ReadTwoByteInteger(r)
		return v, err
	case TypeFourByteInteger:
		v, err := ReadFourByteInteger(r)
		return v, err
	case TypeVarInt:
		v, err := ReadVarInt(r)
		return v, err
	case TypeUTF8String:
		v, err := ReadUTF8String(r)
		return v, err
	case TypeBinaryData:
		v, err := ReadBinaryData(r)
		return v, err
	case TypeStringPair:
		v, err := ReadStringPair(r)
		return v, err
	default:
		return nil, fmt.Errorf("%w: unknown property identifier 0x%02x", ErrGenerate, byte(id))
	}
}

// Properties is an ordered set of property values keyed by identifier. The
// user property (0x26) may appear any number of times per packet
// [MQTT-1.5.7-1] and is kept separately in wire order; every other
// identifier holds a single value, last write winning. Encode output is
// deterministic regardless of insertion order.
type Properties struct {
	values map[Identifier]Value
	user   []StringPair
}

// NewProperties returns an empty property set.
func NewProperties() *Properties {
	return &Properties{values: make(map[Identifier]Value)}
}

// Set stores a value against an identifier. Unknown identifiers and values
// whose wire shape does not match the identifier's fixed data type fail
// with ErrGenerate wraps.
func (p *Properties) Set(id Identifier, v Value) error {
	want, ok := propertyTypes[id]
	if !ok {
		return fmt.Errorf("%w: unknown property identifier 0x%02x", ErrGenerate, byte(id))
	}

	if v == nil || v.Type() != want {
		return fmt.Errorf("%w (%s)", ErrPropertyTypeMismatch, id)
	}

	if id == PropUser {
		p.user = append(p.user, v.(StringPair))
		return nil
	}

	if p.values == nil {
		p.values = make(map[Identifier]Value)
	}
	p.values[id] = v
	return nil
}

// Get returns the value stored against an identifier. User properties are
// reached through User instead, as they may repeat.
func (p *Properties) Get(id Identifier) (Value, bool) {
	v, ok := p.values[id]
	return v, ok
}

// User returns the user properties in the order they appeared.
func (p *Properties) User() []StringPair {
	return p.user
}

// Len returns the number of stored entries, counting each user property.
func (p *Properties) Len() int {
	return len(p.values) + len(p.user)
}

// Identifiers returns the stored identifiers in ascending numeric order,
// including PropUser once if any user properties are present. This is the
// order Encode emits.
func (p *Properties) Identifiers() []Identifier {
	ids := make([]Identifier, 0, len(p.values)+1)
	for id := range p.values {
		ids = append(ids, id)
	}
	if len(p.user) > 0 {
		ids = append(ids, PropUser)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DecodeProperties reads a complete property list: a two byte total length
// in bytes, then (identifier, value) entries until the declared length is
// spent. An identifier byte outside the table fails with an ErrGenerate
// wrap; an entry whose encoded length overruns the declared remaining
// length fails with an ErrMalformedPacket wrap, which is the structural
// guard against truncated or corrupted lists. Decoding ends only when the
// declared length reaches exactly zero, never at end of stream.
func DecodeProperties(r io.Reader) (*Properties, error) {
	total, err := ReadTwoByteInteger(r)
	if err != nil {
		return nil, err
	}

	p := NewProperties()
	cr := &countingReader{r: r}
	remaining := int(total)

	for remaining > 0 {
		cr.n = 0

		b, err := ReadByte(cr)
		if err != nil {
			return nil, err
		}

		id, err := identifiers.decode(byte(b))
		if err != nil {
			return nil, err
		}

		v, err := id.readValue(cr)
		if err != nil {
			return nil, err
		}

		remaining -= cr.n
		if remaining < 0 {
			return nil, fmt.Errorf("%w (%s)", ErrTruncatedProperties, id)
		}

		if id == PropUser {
			p.user = append(p.user, v.(StringPair))
			continue
		}
		p.values[id] = v
	}

	return p, nil
}

// Encode emits each identifier byte followed by its value's wire bytes, in
// ascending identifier order, prefixed with the recomputed two byte total
// length. A body over 65535 bytes cannot be represented behind the prefix
// and fails with an ErrGenerate wrap.
func (p *Properties) Encode() ([]byte, error) {
	var body bytes.Buffer
	for _, id := range p.Identifiers() {
		if id == PropUser {
			for _, pair := range p.user {
				body.WriteByte(byte(PropUser))
				b, err := pair.Encode()
				if err != nil {
					return nil, err
				}
				body.Write(b)
			}
			continue
		}

		body.WriteByte(byte(id))
		b, err := p.values[id].Encode()
		if err != nil {
			return nil, err
		}
		body.Write(b)
	}

	if body.Len() > MaxPayloadSize {
		return nil, ErrOversizedProperties
	}

	out := make([]byte, 2, 2+body.Len())
	binary.BigEndian.PutUint16(out, uint16(body.Len()))
	return append(out, body.Bytes()...), nil
}

// countingReader tracks how many bytes each property entry consumes so the
// decode loop can charge them against the declared list length.
type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}
