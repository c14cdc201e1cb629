// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// expectPanicCode calls fn and reports a test error unless it panics with a
// script error carrying the passed code.
func expectPanicCode(t *testing.T, name string, code ErrorCode, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !IsErrorCode(err, code) {
			t.Errorf("%s: did not panic with %v - got %v", name, code, r)
		}
	}()
	fn()
}

// TestOpcodeTable ensures the opcode table is self consistent.
func TestOpcodeTable(t *testing.T) {
	t.Parallel()

	for i := 0; i < 256; i++ {
		op := opcodeArray[i]
		if int(op.value) != i {
			t.Errorf("opcode %#x: table value is %#x", i, op.value)
		}
		if op.name == "" {
			t.Errorf("opcode %#x: missing name", i)
		}

		var wantLen int
		switch {
		case i >= OP_DATA_1 && i <= OP_DATA_75:
			wantLen = i + 1
		case i == OP_PUSHDATA1:
			wantLen = -1
		case i == OP_PUSHDATA2:
			wantLen = -2
		case i == OP_PUSHDATA4:
			wantLen = -4
		default:
			wantLen = 1
		}
		if op.length != wantLen {
			t.Errorf("opcode %s: length is %d, want %d", op.name,
				op.length, wantLen)
		}

		// Every name maps back to its value.
		if got, ok := OpcodeByName[op.name]; !ok || got != op.value {
			t.Errorf("OpcodeByName[%s]: got %#x, want %#x", op.name,
				got, op.value)
		}
	}

	// Unassigned values are named by number.
	for i := OP_CHECKSIGADD + 1; i < OP_INVALIDOPCODE; i++ {
		want := fmt.Sprintf("OP_UNKNOWN%d", i)
		if got := OpcodeName(byte(i)); got != want {
			t.Errorf("OpcodeName(%#x): got %s, want %s", i, got, want)
		}
	}

	aliases := map[string]byte{
		"OP_FALSE": OP_0,
		"OP_TRUE":  OP_1,
		"OP_NOP2":  OP_CHECKLOCKTIMEVERIFY,
		"OP_NOP3":  OP_CHECKSEQUENCEVERIFY,
	}
	for name, want := range aliases {
		require.Equal(t, want, OpcodeByName[name], name)
	}
	require.Equal(t, "OP_0", OpcodeName(OP_FALSE))
	require.Equal(t, "OP_1", OpcodeName(OP_TRUE))
	require.Equal(t, byte(0xb9), byte(MaxOpcode))
}

// TestIsOpSuccess ensures exactly the enumerated OP_SUCCESSx values are
// reported.
func TestIsOpSuccess(t *testing.T) {
	t.Parallel()

	isSuccess := func(op int) bool {
		switch {
		case op == 80, op == 98:
			return true
		case op >= 126 && op <= 129:
			return true
		case op >= 131 && op <= 134:
			return true
		case op >= 137 && op <= 138:
			return true
		case op >= 141 && op <= 142:
			return true
		case op >= 149 && op <= 153:
			return true
		case op >= 187 && op <= 254:
			return true
		}
		return false
	}

	for op := 0; op < 256; op++ {
		if got, want := IsOpSuccess(byte(op)), isSuccess(op); got != want {
			t.Errorf("IsOpSuccess(%s): got %v, want %v",
				OpcodeName(byte(op)), got, want)
		}
	}
}

// TestIsDisabledOpcode ensures the disabled opcodes are reported.
func TestIsDisabledOpcode(t *testing.T) {
	t.Parallel()

	disabled := []byte{OP_CAT, OP_SUBSTR, OP_LEFT, OP_RIGHT, OP_INVERT,
		OP_AND, OP_OR, OP_XOR, OP_2MUL, OP_2DIV, OP_MUL, OP_DIV, OP_MOD,
		OP_LSHIFT, OP_RSHIFT,
	}
	for _, op := range disabled {
		if !IsDisabledOpcode(op) {
			t.Errorf("IsDisabledOpcode(%s): got false, want true",
				OpcodeName(op))
		}
	}

	for _, op := range []byte{OP_0, OP_SIZE, OP_ADD, OP_CHECKSIG, OP_RETURN} {
		if IsDisabledOpcode(op) {
			t.Errorf("IsDisabledOpcode(%s): got true, want false",
				OpcodeName(op))
		}
	}
}

// TestSmallInt ensures small integers round trip through their opcodes and
// that values outside the range panic.
func TestSmallInt(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 16; n++ {
		op := EncodeSmallInt(n)
		require.True(t, isSmallInt(op))
		require.Equal(t, n, DecodeSmallInt(op))
	}
	require.Equal(t, byte(OP_0), EncodeSmallInt(0))
	require.Equal(t, byte(OP_16), EncodeSmallInt(16))

	expectPanicCode(t, "encode -1", ErrInvalidSmallInt, func() {
		EncodeSmallInt(-1)
	})
	expectPanicCode(t, "encode 17", ErrInvalidSmallInt, func() {
		EncodeSmallInt(17)
	})
	expectPanicCode(t, "decode OP_1NEGATE", ErrInvalidSmallInt, func() {
		DecodeSmallInt(OP_1NEGATE)
	})
	expectPanicCode(t, "decode OP_DATA_1", ErrInvalidSmallInt, func() {
		DecodeSmallInt(OP_DATA_1)
	})
	expectPanicCode(t, "decode OP_NOP", ErrInvalidSmallInt, func() {
		DecodeSmallInt(OP_NOP)
	})
}

// TestCheckMinimalPush ensures the minimal push rules are applied for every
// data push opcode.
func TestCheckMinimalPush(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		op   byte
		want bool
	}{
		{"empty with OP_0", nil, OP_0, true},
		{"empty with PUSHDATA1", nil, OP_PUSHDATA1, false},
		{"1 with OP_1", []byte{1}, OP_1, true},
		{"1 with OP_2", []byte{1}, OP_2, false},
		{"16 with OP_16", []byte{16}, OP_16, true},
		{"-1 with OP_1NEGATE", []byte{0x81}, OP_1NEGATE, true},
		{"1 with OP_1NEGATE", []byte{0x01}, OP_1NEGATE, false},
		{"1 with DATA_1", []byte{1}, OP_DATA_1, false},
		{"16 with DATA_1", []byte{16}, OP_DATA_1, false},
		{"-1 with DATA_1", []byte{0x81}, OP_DATA_1, false},
		{"0 with DATA_1", []byte{0}, OP_DATA_1, true},
		{"17 with DATA_1", []byte{17}, OP_DATA_1, true},
		{"17 with PUSHDATA1", []byte{17}, OP_PUSHDATA1, false},
		{"20 bytes with DATA_20", bytes.Repeat([]byte{1}, 20), OP_DATA_20, true},
		{"20 bytes with DATA_21", bytes.Repeat([]byte{1}, 20), OP_DATA_21, false},
		{"75 bytes with DATA_75", bytes.Repeat([]byte{1}, 75), OP_DATA_75, true},
		{"75 bytes with PUSHDATA1", bytes.Repeat([]byte{1}, 75), OP_PUSHDATA1, false},
		{"76 bytes with PUSHDATA1", bytes.Repeat([]byte{1}, 76), OP_PUSHDATA1, true},
		{"255 bytes with PUSHDATA1", bytes.Repeat([]byte{1}, 255), OP_PUSHDATA1, true},
		{"255 bytes with PUSHDATA2", bytes.Repeat([]byte{1}, 255), OP_PUSHDATA2, false},
		{"256 bytes with PUSHDATA2", bytes.Repeat([]byte{1}, 256), OP_PUSHDATA2, true},
		{"65535 bytes with PUSHDATA4", bytes.Repeat([]byte{1}, 65535), OP_PUSHDATA4, false},
		{"65536 bytes with PUSHDATA4", bytes.Repeat([]byte{1}, 65536), OP_PUSHDATA4, true},
	}

	for i, test := range tests {
		got := CheckMinimalPush(test.data, test.op)
		if got != test.want {
			t.Errorf("CheckMinimalPush #%d (%s): got %v, want %v", i,
				test.name, got, test.want)
		}
	}

	// Every canonical data push produced by AddData for non small values
	// is minimal.
	for _, n := range []int{0, 2, 75, 76, 255, 256, 70000} {
		data := bytes.Repeat([]byte{0x42}, n)
		var s Script
		s.AddData(data)
		tokenizer := MakeScriptTokenizer(s)
		require.True(t, tokenizer.Next())
		require.True(t, CheckMinimalPush(tokenizer.Data(), tokenizer.Opcode()),
			"length %d", n)
	}

	expectPanicCode(t, "non push opcode", ErrInvalidOpcode, func() {
		CheckMinimalPush(nil, OP_NOP)
	})
	expectPanicCode(t, "OP_RESERVED", ErrInvalidOpcode, func() {
		CheckMinimalPush(nil, OP_RESERVED)
	})
}
