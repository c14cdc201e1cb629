// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// TestSigOpCount ensures the quick and accurate signature operation counts
// are computed as expected.
func TestSigOpCount(t *testing.T) {
	t.Parallel()

	pk := "DATA_33 0x02{33}"
	tests := []struct {
		name     string
		script   []byte
		quick    int
		accurate int
	}{
		{"empty", nil, 0, 0},
		{"checksig", mustParseShortForm("CHECKSIG"), 1, 1},
		{"checksigverify and checksig", mustParseShortForm(
			"CHECKSIGVERIFY CHECKSIG"), 2, 2},
		{"pay-to-pubkey-hash", mustParseShortForm("DUP HASH160 " +
			"DATA_20 0x01{20} EQUALVERIFY CHECKSIG"), 1, 1},
		{"3 of 3 multisig", mustParseShortForm("3 " + pk + " " + pk +
			" " + pk + " 3 CHECKMULTISIG"), 20, 3},
		{"1 of 2 multisigverify", mustParseShortForm("1 " + pk + " " +
			pk + " 2 CHECKMULTISIGVERIFY"), 20, 2},
		{"multisig with zero keys", mustParseShortForm("0 0 " +
			"CHECKMULTISIG"), 20, 20},
		{"multisig without key count", mustParseShortForm(
			"CHECKMULTISIG"), 20, 20},
		{"multisig with 17 keys", mustParseShortForm("17 " +
			"CHECKMULTISIG"), 20, 20},
		{"checksigadd is not counted", mustParseShortForm(
			"CHECKSIGADD"), 0, 0},
		{"count up to parse failure", mustParseShortForm("CHECKSIG " +
			"CHECKSIG DATA_5 0x01"), 2, 2},
		{"checksig in push data", mustParseShortForm("DATA_1 " +
			"CHECKSIG"), 0, 0},
	}

	for i, test := range tests {
		s := Script(test.script)
		if got := s.SigOpCount(false); got != test.quick {
			t.Errorf("SigOpCount(false) #%d (%s): got %d, want %d", i,
				test.name, got, test.quick)
		}
		if got := s.SigOpCount(true); got != test.accurate {
			t.Errorf("SigOpCount(true) #%d (%s): got %d, want %d", i,
				test.name, got, test.accurate)
		}
	}
}

// TestP2SHSigOpCount ensures the signature operations of a redeem script are
// counted through the signature script spending a pay-to-script-hash output.
func TestP2SHSigOpCount(t *testing.T) {
	t.Parallel()

	pk := "DATA_33 0x02{33}"
	redeemScript := Script(mustParseShortForm("2 " + pk + " " + pk + " " +
		pk + " 3 CHECKMULTISIG"))
	p2sh := PayToScriptHash(redeemScript)
	require.True(t, p2sh.IsPayToScriptHash())

	var scriptSig Script
	scriptSig.AddOp(OP_0).AddData(bytes.Repeat([]byte{0x30}, 71)).
		AddData(redeemScript)

	tests := []struct {
		name      string
		pkScript  Script
		scriptSig Script
		want      int
	}{
		{"redeem script multisig", p2sh, scriptSig, 3},
		{"non p2sh counts accurately", redeemScript, scriptSig, 3},
		{"non p2sh ignores signature script", Script(mustParseShortForm(
			"CHECKSIG")), nil, 1},
		{"empty signature script", p2sh, nil, 0},
		{"signature script ends with small int", p2sh,
			Script{OP_0, OP_16}, 0},
		{"signature script with non push", p2sh,
			BuildScript(Script{OP_NOP}, []byte(redeemScript)), 0},
		{"malformed signature script", p2sh,
			BuildScript([]byte(redeemScript), OP_DATA_2), 0},
		{"redeem script with checksig", p2sh,
			BuildScript([]byte(mustParseShortForm("CHECKSIG CHECKSIG"))), 2},
	}

	for i, test := range tests {
		got := test.pkScript.P2SHSigOpCount(test.scriptSig)
		if got != test.want {
			t.Errorf("P2SHSigOpCount #%d (%s): got %d, want %d", i,
				test.name, got, test.want)
		}
	}
}

// TestIsPayToScriptHash ensures only the exact P2SH template is recognized.
func TestIsPayToScriptHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script []byte
		want   bool
	}{
		{"p2sh", mustParseShortForm("HASH160 DATA_20 0x01{20} EQUAL"), true},
		{"wrong hash opcode", mustParseShortForm("HASH256 DATA_20 " +
			"0x01{20} EQUAL"), false},
		{"equalverify", mustParseShortForm("HASH160 DATA_20 0x01{20} " +
			"EQUALVERIFY"), false},
		{"pushdata1 hash", mustParseShortForm("HASH160 PUSHDATA1 0x14 " +
			"0x01{20} EQUAL"), false},
		{"trailing opcode", mustParseShortForm("HASH160 DATA_20 " +
			"0x01{20} EQUAL NOP"), false},
		{"short", mustParseShortForm("HASH160 DATA_19 0x01{19} EQUAL"), false},
		{"empty", nil, false},
	}

	for i, test := range tests {
		if got := Script(test.script).IsPayToScriptHash(); got != test.want {
			t.Errorf("IsPayToScriptHash #%d (%s): got %v, want %v", i,
				test.name, got, test.want)
		}
	}
}

// TestIsPayToWitnessScriptHash ensures only version 0 32-byte programs are
// recognized as P2WSH.
func TestIsPayToWitnessScriptHash(t *testing.T) {
	t.Parallel()

	require.True(t, Script(mustParseShortForm("0 DATA_32 0x01{32}")).
		IsPayToWitnessScriptHash())
	require.False(t, Script(mustParseShortForm("1 DATA_32 0x01{32}")).
		IsPayToWitnessScriptHash())
	require.False(t, Script(mustParseShortForm("0 DATA_20 0x01{20}")).
		IsPayToWitnessScriptHash())
	require.False(t, Script(mustParseShortForm("0 DATA_32 0x01{32} NOP")).
		IsPayToWitnessScriptHash())
}

// TestWitnessProgram ensures witness programs are recognized and their
// version and program extracted.
func TestWitnessProgram(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		script  []byte
		valid   bool
		version int
		program []byte
	}{
		{"v0 key hash", mustParseShortForm("0 DATA_20 0x01{20}"), true, 0,
			bytes.Repeat([]byte{0x01}, 20)},
		{"v0 script hash", mustParseShortForm("0 DATA_32 0x02{32}"), true,
			0, bytes.Repeat([]byte{0x02}, 32)},
		{"v1 taproot", mustParseShortForm("1 DATA_32 0x03{32}"), true, 1,
			bytes.Repeat([]byte{0x03}, 32)},
		{"v16 minimum program", mustParseShortForm("16 DATA_2 0x0102"),
			true, 16, []byte{0x01, 0x02}},
		{"v2 maximum program", mustParseShortForm("2 DATA_40 0x04{40}"),
			true, 2, bytes.Repeat([]byte{0x04}, 40)},
		{"program of 1 byte", mustParseShortForm("0 DATA_1 0x01"), false,
			0, nil},
		{"program of 41 bytes", mustParseShortForm("0 DATA_41 0x01{41}"),
			false, 0, nil},
		{"1negate version", mustParseShortForm("-1 DATA_20 0x01{20}"),
			false, 0, nil},
		{"data push version", mustParseShortForm("DATA_1 0x00 DATA_20 " +
			"0x01{20}"), false, 0, nil},
		{"length mismatch", mustParseShortForm("0 DATA_20 0x01{21}"),
			false, 0, nil},
		{"pushdata1 program", mustParseShortForm("0 PUSHDATA1 0x14 " +
			"0x01{20}"), false, 0, nil},
		{"empty", nil, false, 0, nil},
	}

	for i, test := range tests {
		s := Script(test.script)
		version, program, ok := s.WitnessProgram()
		if ok != test.valid || s.IsWitnessProgram() != test.valid {
			t.Errorf("WitnessProgram #%d (%s): got valid %v, want %v",
				i, test.name, ok, test.valid)
			continue
		}
		if version != test.version || !bytes.Equal(program, test.program) {
			t.Errorf("WitnessProgram #%d (%s): got v%d %x, want v%d %x",
				i, test.name, version, program, test.version,
				test.program)
		}
	}
}

// TestPayToScriptHashHelpers ensures the script hash helpers commit to the
// expected digests.
func TestPayToScriptHashHelpers(t *testing.T) {
	t.Parallel()

	// The empty script commits to the hash160 of the empty string.
	require.Equal(t, mustParseShortForm("HASH160 DATA_20 "+
		"0xb472a266d0bd89c13706a4132ccfb16f7c3b9fcb EQUAL"),
		[]byte(PayToScriptHash(nil)))

	redeemScript := Script(mustParseShortForm("1 2 ADD 3 EQUAL"))
	p2sh := PayToScriptHash(redeemScript)
	require.Len(t, p2sh, 23)
	require.True(t, p2sh.IsPayToScriptHash())
	require.Equal(t, btcutil.Hash160(redeemScript), []byte(p2sh[2:22]))

	// The committed hash is the one a pay-to-script-hash address encodes.
	addr, err := btcutil.NewAddressScriptHash(redeemScript,
		&chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, addr.ScriptAddress(), []byte(p2sh[2:22]))

	p2wsh := PayToWitnessScriptHash(redeemScript)
	require.True(t, p2wsh.IsPayToWitnessScriptHash())
	version, program, ok := p2wsh.WitnessProgram()
	require.True(t, ok)
	require.Zero(t, version)
	require.Equal(t, chainhash.HashB(redeemScript), program)
}
