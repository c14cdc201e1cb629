// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// opcodeOnelineRepls defines opcode names which are replaced when doing a
// one-line disassembly.  This is done to match the output of the reference
// implementation.
var opcodeOnelineRepls = map[string]string{
	"OP_1NEGATE": "-1",
	"OP_0":       "0",
	"OP_1":       "1",
	"OP_2":       "2",
	"OP_3":       "3",
	"OP_4":       "4",
	"OP_5":       "5",
	"OP_6":       "6",
	"OP_7":       "7",
	"OP_8":       "8",
	"OP_9":       "9",
	"OP_10":      "10",
	"OP_11":      "11",
	"OP_12":      "12",
	"OP_13":      "13",
	"OP_14":      "14",
	"OP_15":      "15",
	"OP_16":      "16",
}

// disasmOpcode writes a human-readable disassembly of the provided opcode and
// data into the provided buffer.  Opcodes which represent values are written
// as the value and data pushes as the hex of the pushed data.
func disasmOpcode(buf *strings.Builder, op byte, data []byte) {
	opcodeName := OpcodeName(op)
	if replName, ok := opcodeOnelineRepls[opcodeName]; ok {
		opcodeName = replName
	}

	// Either write the human-readable opcode or the parsed data in hex for
	// data-carrying opcodes.
	switch {
	case opcodeArray[op].length == 1:
		buf.WriteString(opcodeName)

	default:
		buf.WriteString(hex.EncodeToString(data))
	}
}

// DisasmString formats a disassembled script for one line printing.  When the
// script fails to parse, the returned string will contain the disassembled
// script up to the point the failure occurred along with the string '[error]'
// appended.  In addition, the reason the script failed to parse is returned
// if the caller wants more information about the failure.
func DisasmString(script []byte) (string, error) {
	var disbuf strings.Builder
	tokenizer := MakeScriptTokenizer(script)
	if tokenizer.Next() {
		disasmOpcode(&disbuf, tokenizer.Opcode(), tokenizer.Data())
	}
	for tokenizer.Next() {
		disbuf.WriteByte(' ')
		disasmOpcode(&disbuf, tokenizer.Opcode(), tokenizer.Data())
	}
	if tokenizer.Err() != nil {
		if tokenizer.ByteIndex() != 0 {
			disbuf.WriteByte(' ')
		}
		disbuf.WriteString("[error]")
	}
	return disbuf.String(), tokenizer.Err()
}

var (
	shortFormOps     map[string]byte
	shortFormOpsOnce sync.Once
)

// buildShortFormOps returns the opcode names accepted by ParseShortForm.
func buildShortFormOps() map[string]byte {
	ops := make(map[string]byte)
	for opcodeName, opcodeValue := range OpcodeByName {
		if strings.Contains(opcodeName, "OP_UNKNOWN") {
			continue
		}
		ops[opcodeName] = opcodeValue

		// The opcodes named OP_# can't have the OP_ prefix stripped or
		// they would conflict with the plain numbers.  Also, since
		// OP_FALSE and OP_TRUE are aliases for the OP_0, and OP_1,
		// respectively, they have the same value, so detect those by
		// name and allow them.
		if (opcodeName == "OP_FALSE" || opcodeName == "OP_TRUE") ||
			(opcodeValue != OP_0 && (opcodeValue < OP_1 ||
				opcodeValue > OP_16)) {

			ops[strings.TrimPrefix(opcodeName, "OP_")] = opcodeValue
		}
	}
	return ops
}

// ParseShortForm assembles a script from the whitespace separated short form
// used by the reference script tests:
//
//   - decimal numbers are pushed with AddInt64
//   - 0x prefixed hex is copied into the script verbatim
//   - text in single quotes is pushed as data
//   - anything else must be an opcode name, with or without the OP_ prefix
//     except for OP_0 through OP_16
//
// An unrecognized token results in an ErrBadShortForm error.
func ParseShortForm(script string) (Script, error) {
	shortFormOpsOnce.Do(func() {
		shortFormOps = buildShortFormOps()
	})

	var result Script
	for _, tok := range strings.Fields(script) {
		// if parses as a plain number
		if num, err := strconv.ParseInt(tok, 10, 64); err == nil {
			result.AddInt64(num)
			continue
		}

		switch {
		case len(tok) > 2 && (tok[:2] == "0x" || tok[:2] == "0X"):
			bts, err := hex.DecodeString(tok[2:])
			if err != nil {
				str := fmt.Sprintf("bad hex token %q: %v", tok, err)
				return nil, scriptError(ErrBadShortForm, str)
			}
			result.AddOps(bts)

		case len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'':
			result.AddData([]byte(tok[1 : len(tok)-1]))

		default:
			opcode, ok := shortFormOps[tok]
			if !ok {
				str := fmt.Sprintf("bad token %q", tok)
				return nil, scriptError(ErrBadShortForm, str)
			}
			result.AddOp(opcode)
		}
	}
	return result, nil
}
