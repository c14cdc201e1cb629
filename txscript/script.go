// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"io"

	"github.com/btcsuite/btcd/wire"
)

// Script is a serialized transaction script.  It is an ordinary byte slice, so
// it may be indexed, sliced and compared like one.  The Add* methods append
// canonically encoded opcodes and data pushes and return the script so calls
// can be chained:
//
//	var s txscript.Script
//	s.AddOp(txscript.OP_2).AddData(pubKey1).AddData(pubKey2)
//	s.AddData(pubKey3).AddOp(txscript.OP_3)
//	s.AddOp(txscript.OP_CHECKMULTISIG)
//	fmt.Printf("Final multi-sig script: %x\n", []byte(s))
//
// A script does not need to be valid or executable.  Nothing here restricts
// its content or size.
//
// Formatting a Script with fmt uses its String method for the %v, %s, %x and
// %X verbs, so %x prints the hex of the disassembly.  Use []byte(s) to print
// the script bytes, as in the example above.
type Script []byte

// AddOp pushes the passed opcode to the end of the script.
func (s *Script) AddOp(opcode byte) *Script {
	*s = append(*s, opcode)
	return s
}

// AddOps pushes the passed opcodes to the end of the script.
func (s *Script) AddOps(opcodes []byte) *Script {
	*s = append(*s, opcodes...)
	return s
}

// AddData pushes the passed data to the end of the script.  The push opcode is
// chosen from the length of the data alone: OP_DATA_# below OP_PUSHDATA1 and
// the smallest OP_PUSHDATA# that can hold the length otherwise.  Unlike the
// number pushes, data that happens to be a small integer is not replaced with
// OP_1 through OP_16, and no element size limit is enforced.
func (s *Script) AddData(data []byte) *Script {
	dataLen := len(data)

	// Use one of the OP_DATA_# opcodes if the length of the data is small
	// enough so the data push instruction is only a single byte.
	// Otherwise, choose the smallest possible OP_PUSHDATA# opcode that
	// can represent the length of the data.
	script := *s
	switch {
	case dataLen < OP_PUSHDATA1:
		script = append(script, byte((OP_DATA_1-1)+dataLen))
	case dataLen <= 0xff:
		script = append(script, OP_PUSHDATA1, byte(dataLen))
	case dataLen <= 0xffff:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(dataLen))
		script = append(script, OP_PUSHDATA2)
		script = append(script, buf[:]...)
	default:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(dataLen))
		script = append(script, OP_PUSHDATA4)
		script = append(script, buf[:]...)
	}

	// Append the actual data.
	*s = append(script, data...)
	return s
}

// AddInt64 pushes the passed integer to the end of the script.  Zero, -1 and
// 1 through 16 are pushed with their dedicated opcodes, everything else as the
// script number encoding of the value.
func (s *Script) AddInt64(val int64) *Script {
	// Fast path for small integers and OP_1NEGATE.
	if val == 0 {
		*s = append(*s, OP_0)
		return s
	}
	if val == -1 || (val >= 1 && val <= 16) {
		*s = append(*s, byte((OP_1-1)+val))
		return s
	}

	return s.AddData(ScriptNum(val).Bytes())
}

// AddScriptNum pushes the script number encoding of the passed value as data.
// Zero is pushed as an empty element with OP_0 since it encodes to no bytes.
func (s *Script) AddScriptNum(n ScriptNum) *Script {
	return s.AddData(n.Bytes())
}

// AddScript appends the raw bytes of another script.
func (s *Script) AddScript(other Script) *Script {
	*s = append(*s, other...)
	return s
}

// Clear empties the script and releases its backing storage.
func (s *Script) Clear() {
	*s = nil
}

// IsPushOnly returns true if the script only pushes data, which is the case
// when every opcode is at most OP_16.  OP_RESERVED is treated as a push for
// this purpose.  A script that fails to parse is not push only.
func (s Script) IsPushOnly() bool {
	return s.IsPushOnlyFrom(0)
}

// IsPushOnlyFrom is like IsPushOnly, but only examines the opcodes starting at
// the passed byte offset.
func (s Script) IsPushOnlyFrom(offset int32) bool {
	tokenizer := MakeScriptTokenizerAt(s, offset)
	for tokenizer.Next() {
		// All opcodes up to OP_16 are data push instructions.
		if tokenizer.Opcode() > OP_16 {
			return false
		}
	}
	return tokenizer.Err() == nil
}

// HasValidOps returns whether the script parses, uses only opcodes with an
// assigned meaning and pushes no element larger than MaxScriptElementSize.
func (s Script) HasValidOps() bool {
	tokenizer := MakeScriptTokenizer(s)
	for tokenizer.Next() {
		if tokenizer.Opcode() > MaxOpcode ||
			len(tokenizer.Data()) > MaxScriptElementSize {

			return false
		}
	}
	return tokenizer.Err() == nil
}

// IsUnspendable returns whether the script is provably unspendable, either
// because it begins with OP_RETURN or because it is larger than
// MaxScriptSize.
func (s Script) IsUnspendable() bool {
	return (len(s) > 0 && s[0] == OP_RETURN) || len(s) > MaxScriptSize
}

// SerializeSize returns the number of bytes it would take to serialize the
// script with Serialize.
func (s Script) SerializeSize() int {
	return wire.VarIntSerializeSize(uint64(len(s))) + len(s)
}

// Serialize writes the script to w as a variable length integer followed by
// the script bytes.
func (s Script) Serialize(w io.Writer) error {
	return wire.WriteVarBytes(w, 0, s)
}

// Deserialize reads a script written by Serialize from r into the receiver.
// A zero length script decodes to nil.
func (s *Script) Deserialize(r io.Reader) error {
	b, err := wire.ReadVarBytes(r, 0, wire.MaxMessagePayload, "script")
	if err != nil {
		return err
	}
	if len(b) == 0 {
		b = nil
	}
	*s = b
	return nil
}

// String returns the one-line disassembly of the script.  Scripts that fail
// to parse end with [error].
//
// Since Script is a fmt.Stringer, the %x and %X verbs format the disassembly
// text rather than the script bytes.  Convert to []byte first to print the
// raw script in hex.
func (s Script) String() string {
	disbuf, _ := DisasmString(s)
	return disbuf
}
