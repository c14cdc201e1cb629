// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOpcodeDisasm ensures each opcode disassembles to the expected one-line
// form.
func TestOpcodeDisasm(t *testing.T) {
	t.Parallel()

	// The expected strings for the data push opcodes are replaced in the
	// test loop below since they involve repeating bytes.  Also, the
	// OP_NOP# and OP_UNKNOWN# are replaced below too, since it's easier
	// than manually listing them here.
	oneBytes := []byte{0x01}
	oneStr := "01"
	expectedStrings := [256]string{0x00: "0", 0x4f: "-1",
		0x50: "OP_RESERVED", 0x61: "OP_NOP", 0x62: "OP_VER",
		0x63: "OP_IF", 0x64: "OP_NOTIF", 0x65: "OP_VERIF",
		0x66: "OP_VERNOTIF", 0x67: "OP_ELSE", 0x68: "OP_ENDIF",
		0x69: "OP_VERIFY", 0x6a: "OP_RETURN", 0x6b: "OP_TOALTSTACK",
		0x6c: "OP_FROMALTSTACK", 0x6d: "OP_2DROP", 0x6e: "OP_2DUP",
		0x6f: "OP_3DUP", 0x70: "OP_2OVER", 0x71: "OP_2ROT",
		0x72: "OP_2SWAP", 0x73: "OP_IFDUP", 0x74: "OP_DEPTH",
		0x75: "OP_DROP", 0x76: "OP_DUP", 0x77: "OP_NIP",
		0x78: "OP_OVER", 0x79: "OP_PICK", 0x7a: "OP_ROLL",
		0x7b: "OP_ROT", 0x7c: "OP_SWAP", 0x7d: "OP_TUCK",
		0x7e: "OP_CAT", 0x7f: "OP_SUBSTR", 0x80: "OP_LEFT",
		0x81: "OP_RIGHT", 0x82: "OP_SIZE", 0x83: "OP_INVERT",
		0x84: "OP_AND", 0x85: "OP_OR", 0x86: "OP_XOR",
		0x87: "OP_EQUAL", 0x88: "OP_EQUALVERIFY", 0x89: "OP_RESERVED1",
		0x8a: "OP_RESERVED2", 0x8b: "OP_1ADD", 0x8c: "OP_1SUB",
		0x8d: "OP_2MUL", 0x8e: "OP_2DIV", 0x8f: "OP_NEGATE",
		0x90: "OP_ABS", 0x91: "OP_NOT", 0x92: "OP_0NOTEQUAL",
		0x93: "OP_ADD", 0x94: "OP_SUB", 0x95: "OP_MUL", 0x96: "OP_DIV",
		0x97: "OP_MOD", 0x98: "OP_LSHIFT", 0x99: "OP_RSHIFT",
		0x9a: "OP_BOOLAND", 0x9b: "OP_BOOLOR", 0x9c: "OP_NUMEQUAL",
		0x9d: "OP_NUMEQUALVERIFY", 0x9e: "OP_NUMNOTEQUAL",
		0x9f: "OP_LESSTHAN", 0xa0: "OP_GREATERTHAN",
		0xa1: "OP_LESSTHANOREQUAL", 0xa2: "OP_GREATERTHANOREQUAL",
		0xa3: "OP_MIN", 0xa4: "OP_MAX", 0xa5: "OP_WITHIN",
		0xa6: "OP_RIPEMD160", 0xa7: "OP_SHA1", 0xa8: "OP_SHA256",
		0xa9: "OP_HASH160", 0xaa: "OP_HASH256", 0xab: "OP_CODESEPARATOR",
		0xac: "OP_CHECKSIG", 0xad: "OP_CHECKSIGVERIFY",
		0xae: "OP_CHECKMULTISIG", 0xaf: "OP_CHECKMULTISIGVERIFY",
		0xba: "OP_CHECKSIGADD", 0xff: "OP_INVALIDOPCODE",
	}
	for opcodeVal, expectedStr := range expectedStrings {
		var data []byte
		switch {
		// OP_DATA_1 through OP_DATA_75 display the pushed data.
		case opcodeVal >= 0x01 && opcodeVal < 0x4c:
			data = bytes.Repeat(oneBytes, opcodeVal)
			expectedStr = strings.Repeat(oneStr, opcodeVal)

		// OP_PUSHDATA1.
		case opcodeVal == 0x4c:
			data = bytes.Repeat(oneBytes, 1)
			expectedStr = strings.Repeat(oneStr, 1)

		// OP_PUSHDATA2.
		case opcodeVal == 0x4d:
			data = bytes.Repeat(oneBytes, 2)
			expectedStr = strings.Repeat(oneStr, 2)

		// OP_PUSHDATA4.
		case opcodeVal == 0x4e:
			data = bytes.Repeat(oneBytes, 3)
			expectedStr = strings.Repeat(oneStr, 3)

		// OP_1 through OP_16 display the numbers themselves.
		case opcodeVal >= 0x51 && opcodeVal <= 0x60:
			val := byte(opcodeVal - (0x51 - 1))
			expectedStr = strconv.Itoa(int(val))

		// OP_NOP1 through OP_NOP10.
		case opcodeVal >= 0xb0 && opcodeVal <= 0xb9:
			switch opcodeVal {
			case 0xb1:
				// OP_NOP2 is an alias of OP_CHECKLOCKTIMEVERIFY
				expectedStr = "OP_CHECKLOCKTIMEVERIFY"
			case 0xb2:
				// OP_NOP3 is an alias of OP_CHECKSEQUENCEVERIFY
				expectedStr = "OP_CHECKSEQUENCEVERIFY"
			default:
				val := byte(opcodeVal - (0xb0 - 1))
				expectedStr = "OP_NOP" + strconv.Itoa(int(val))
			}

		// OP_UNKNOWN#.
		case opcodeVal >= 0xbb && opcodeVal <= 0xfe:
			expectedStr = "OP_UNKNOWN" + strconv.Itoa(opcodeVal)
		}

		var buf strings.Builder
		disasmOpcode(&buf, byte(opcodeVal), data)
		gotStr := buf.String()
		if gotStr != expectedStr {
			t.Errorf("disasmOpcode (opcode %x): Unexpected disasm "+
				"string - got %v, want %v", opcodeVal, gotStr,
				expectedStr)
			continue
		}
	}
}

// TestDisasmString ensures whole scripts disassemble as expected, including
// those that fail to parse.
func TestDisasmString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script []byte
		want   string
		err    bool
	}{
		{"empty", nil, "", false},
		{"pay-to-script-hash", mustParseShortForm("HASH160 DATA_20 " +
			"0x02{20} EQUAL"), "OP_HASH160 " + strings.Repeat("02", 20) +
			" OP_EQUAL", false},
		{"numbers", mustParseShortForm("-1 0 1 16 17 1000"),
			"-1 0 1 16 11 e803", false},
		{"truncated first push", []byte{OP_DATA_2, 0x01}, "[error]", true},
		{"truncated later push", []byte{OP_1, OP_PUSHDATA4, 0x01},
			"1 [error]", true},
	}

	for i, test := range tests {
		got, err := DisasmString(test.script)
		if (err != nil) != test.err {
			t.Errorf("DisasmString #%d (%s): unexpected error %v", i,
				test.name, err)
			continue
		}
		if err != nil && !IsErrorCode(err, ErrMalformedPush) {
			t.Errorf("DisasmString #%d (%s): unexpected error code %v",
				i, test.name, err)
		}
		if got != test.want {
			t.Errorf("DisasmString #%d (%s): got %q, want %q", i,
				test.name, got, test.want)
		}
	}
}

// TestParseShortForm ensures the short form assembler accepts the documented
// tokens and rejects everything else.
func TestParseShortForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		short string
		want  []byte
	}{
		{"empty", "", nil},
		{"whitespace", " \t\n ", nil},
		{"numbers", "0 -1 16 17", []byte{OP_0, OP_1NEGATE, OP_16,
			OP_DATA_1, 0x11}},
		{"names", "DUP OP_DUP OP_0 OP_16 TRUE FALSE NOP2", []byte{OP_DUP,
			OP_DUP, OP_0, OP_16, OP_1, OP_0, OP_CHECKLOCKTIMEVERIFY}},
		{"raw hex", "0x4c01 0xFF", []byte{OP_PUSHDATA1, 0x01, 0xff}},
		{"quoted data", "'abc' ''", []byte{OP_DATA_3, 'a', 'b', 'c', OP_0}},
	}

	for i, test := range tests {
		got, err := ParseShortForm(test.short)
		if err != nil {
			t.Errorf("ParseShortForm #%d (%s): unexpected error %v", i,
				test.name, err)
			continue
		}
		if !bytes.Equal(got, test.want) {
			t.Errorf("ParseShortForm #%d (%s): got %x, want %x", i,
				test.name, []byte(got), test.want)
		}
	}

	// Unassigned opcodes have no name to assemble from.
	for _, bad := range []string{"1X", "UNKNOWN200", "OP_UNKNOWN200",
		"0xzz", "'abc", "CHECKSIG BOGUS"} {

		_, err := ParseShortForm(bad)
		require.True(t, IsErrorCode(err, ErrBadShortForm), bad)
	}
}

// TestDisasmShortFormRoundTrip ensures disassembled scripts made of named
// opcodes assemble back to the same bytes.
func TestDisasmShortFormRoundTrip(t *testing.T) {
	t.Parallel()

	scripts := []string{
		"DUP HASH160 DATA_20 0x01{20} EQUALVERIFY CHECKSIG",
		"2 DATA_33 0x02{33} DATA_33 0x03{33} 2 CHECKMULTISIG",
		"IF 1 ELSE RETURN ENDIF",
		"-1 0 16 NOP10",
	}
	for _, short := range scripts {
		script := mustParseShortForm(short)
		disasm, err := DisasmString(script)
		require.NoError(t, err)

		// Data pushes disassemble to bare hex, which would reassemble as
		// raw bytes, so quote the data to push it again.
		var tokens []string
		for _, tok := range strings.Fields(disasm) {
			if _, err := strconv.ParseInt(tok, 10, 64); err == nil ||
				strings.HasPrefix(tok, "OP_") {

				tokens = append(tokens, tok)
				continue
			}
			tokens = append(tokens, "'"+string(hexToBytes(tok))+"'")
		}
		got, err := ParseShortForm(strings.Join(tokens, " "))
		require.NoError(t, err)
		require.Equal(t, script, []byte(got), short)
	}
}
