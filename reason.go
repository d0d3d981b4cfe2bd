// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package wire

import "io"

// ReasonCode is the one byte result code carried in acknowledgement-style
// control packets (2.4). Codes below 0x80 indicate success and codes of
// 0x80 or greater indicate failure; that split is a convention for callers
// and is not enforced here.
type ReasonCode byte

// All of the valid reason codes and their wire codes.
const (
	ReasonSuccess                             ReasonCode = 0x00
	ReasonGrantedQos1                         ReasonCode = 0x01
	ReasonGrantedQos2                         ReasonCode = 0x02
	ReasonDisconnectWithWillMessage           ReasonCode = 0x04
	ReasonNoMatchingSubscribers               ReasonCode = 0x10
	ReasonNoSubscriptionExisted               ReasonCode = 0x11
	ReasonContinueAuthentication              ReasonCode = 0x18
	ReasonReAuthenticate                      ReasonCode = 0x19
	ReasonUnspecifiedError                    ReasonCode = 0x80
	ReasonMalformedPacket                     ReasonCode = 0x81
	ReasonProtocolError                       ReasonCode = 0x82
	ReasonImplementationSpecificError         ReasonCode = 0x83
	ReasonUnsupportedProtocolVersion          ReasonCode = 0x84
	ReasonClientIdentifierNotValid            ReasonCode = 0x85
	ReasonBadUsernameOrPassword               ReasonCode = 0x86
	ReasonNotAuthorized                       ReasonCode = 0x87
	ReasonServerUnavailable                   ReasonCode = 0x88
	ReasonServerBusy                          ReasonCode = 0x89
	ReasonBanned                              ReasonCode = 0x8A
	ReasonServerShuttingDown                  ReasonCode = 0x8B
	ReasonBadAuthenticationMethod             ReasonCode = 0x8C
	ReasonKeepAliveTimeout                    ReasonCode = 0x8D
	ReasonSessionTakenOver                    ReasonCode = 0x8E
	ReasonTopicFilterInvalid                  ReasonCode = 0x8F
	ReasonTopicNameInvalid                    ReasonCode = 0x90
	ReasonPacketIdentifierInUse               ReasonCode = 0x91
	ReasonPacketIdentifierNotFound            ReasonCode = 0x92
	ReasonReceiveMaximumExceeded              ReasonCode = 0x93
	ReasonTopicAliasInvalid                   ReasonCode = 0x94
	ReasonPacketTooLarge                      ReasonCode = 0x95
	ReasonMessageRateTooHigh                  ReasonCode = 0x96
	ReasonQuotaExceeded                       ReasonCode = 0x97
	ReasonAdministrativeAction                ReasonCode = 0x98
	ReasonPayloadFormatInvalid                ReasonCode = 0x99
	ReasonRetainNotSupported                  ReasonCode = 0x9A
	ReasonQosNotSupported                     ReasonCode = 0x9B
	ReasonUseAnotherServer                    ReasonCode = 0x9C
	ReasonServerMoved                         ReasonCode = 0x9D
	ReasonSharedSubscriptionsNotSupported     ReasonCode = 0x9E
	ReasonConnectionRateExceeded              ReasonCode = 0x9F
	ReasonMaximumConnectTime                  ReasonCode = 0xA0
	ReasonSubscriptionIdentifiersNotSupported ReasonCode = 0xA1
	ReasonWildcardSubscriptionsNotSupported   ReasonCode = 0xA2
)

var reasonCodes = byteEnum[ReasonCode]{
	kind: "reason code",
	names: map[ReasonCode]string{
		ReasonSuccess:                             "success",
		ReasonGrantedQos1:                         "granted qos 1",
		ReasonGrantedQos2:                         "granted qos 2",
		ReasonDisconnectWithWillMessage:           "disconnect with will message",
		ReasonNoMatchingSubscribers:               "no matching subscribers",
		ReasonNoSubscriptionExisted:               "no subscription existed",
		ReasonContinueAuthentication:              "continue authentication",
		ReasonReAuthenticate:                      "re-authenticate",
		ReasonUnspecifiedError:                    "unspecified error",
		ReasonMalformedPacket:                     "malformed packet",
		ReasonProtocolError:                       "protocol error",
		ReasonImplementationSpecificError:         "implementation specific error",
		ReasonUnsupportedProtocolVersion:          "unsupported protocol version",
		ReasonClientIdentifierNotValid:            "client identifier not valid",
		ReasonBadUsernameOrPassword:               "bad user name or password",
		ReasonNotAuthorized:                       "not authorized",
		ReasonServerUnavailable:                   "server unavailable",
		ReasonServerBusy:                          "server busy",
		ReasonBanned:                              "banned",
		ReasonServerShuttingDown:                  "server shutting down",
		ReasonBadAuthenticationMethod:             "bad authentication method",
		ReasonKeepAliveTimeout:                    "keep alive timeout",
		ReasonSessionTakenOver:                    "session taken over",
		ReasonTopicFilterInvalid:                  "topic filter invalid",
		ReasonTopicNameInvalid:                    "topic name invalid",
		ReasonPacketIdentifierInUse:               "packet identifier in use",
		ReasonPacketIdentifierNotFound:            "packet identifier not found",
		ReasonReceiveMaximumExceeded:              "receive maximum exceeded",
		ReasonTopicAliasInvalid:                   "topic alias invalid",
		ReasonPacketTooLarge:                      "packet too large",
		ReasonMessageRateTooHigh:                  "message rate too high",
		ReasonQuotaExceeded:                       "quota exceeded",
		ReasonAdministrativeAction:                "administrative action",
		ReasonPayloadFormatInvalid:                "payload format invalid",
		ReasonRetainNotSupported:                  "retain not supported",
		ReasonQosNotSupported:                     "qos not supported",
		ReasonUseAnotherServer:                    "use another server",
		ReasonServerMoved:                         "server moved",
		ReasonSharedSubscriptionsNotSupported:     "shared subscriptions not supported",
		ReasonConnectionRateExceeded:              "connection rate exceeded",
		ReasonMaximumConnectTime:                  "maximum connect time",
		ReasonSubscriptionIdentifiersNotSupported: "subscription identifiers not supported",
		ReasonWildcardSubscriptionsNotSupported:   "wildcard subscriptions not supported",
	},
}

// DecodeReasonCode reads a single byte and maps it through the reason code
// table. Bytes outside the enumeration fail with an ErrGenerate wrap.
func DecodeReasonCode(r io.Reader) (ReasonCode, error) {
	b, err := ReadByte(r)
	if err != nil {
		return 0, err
	}
	return reasonCodes.decode(byte(b))
}

// Encode returns the code's wire byte.
func (c ReasonCode) Encode() byte {
	return byte(c)
}

// String returns the code's readable reason.
func (c ReasonCode) String() string {
	return reasonCodes.name(c)
}
