// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

package wire

import "fmt"

// byteEnum is the shared conversion table behind the closed, wire-coded
// enumerations (PacketType, Identifier, ReasonCode). All three share the
// same shape: a canonical one-byte code per variant, a total variant-to-code
// conversion (the numeric conversion itself), and a partial code-to-variant
// conversion which must fail, never panic, on codes the table does not
// cover.
type byteEnum[T ~byte] struct {
	kind  string
	names map[T]string
}

// decode converts a wire code to its variant. Codes outside the
// enumeration's domain fail with an ErrGenerate wrap.
func (e byteEnum[T]) decode(code byte) (T, error) {
	v := T(code)
	if _, ok := e.names[v]; !ok {
		return 0, fmt.Errorf("%w: unknown %s code 0x%02x", ErrGenerate, e.kind, code)
	}
	return v, nil
}

// name provides a human-readable name for a variant.
func (e byteEnum[T]) name(v T) string {
	if s, ok := e.names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s 0x%02x", e.kind, byte(v))
}
