// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
)

const (
	// payToScriptHashSize is the size of a pay-to-script-hash script:
	// OP_HASH160 <20-byte hash> OP_EQUAL.
	payToScriptHashSize = 23

	// payToWitnessScriptHashSize is the size of a version 0 witness script
	// hash program: OP_0 <32-byte hash>.
	payToWitnessScriptHashSize = 34

	// minWitnessProgramSize and maxWitnessProgramSize bound the size of a
	// script holding a witness program, which is a version opcode followed
	// by a single 2 to 40 byte direct push.
	minWitnessProgramSize = 4
	maxWitnessProgramSize = 42
)

// SigOpCount returns the number of signature operations in the script.
// OP_CHECKSIG and OP_CHECKSIGVERIFY count as one operation each.  With
// accurate set, an OP_CHECKMULTISIG or OP_CHECKMULTISIGVERIFY directly
// preceded by OP_1 through OP_16 counts as that many operations, otherwise it
// counts as MaxPubKeysPerMultiSig.
//
// Counting stops at the first parse failure and the count up to that point is
// returned.
func (s Script) SigOpCount(accurate bool) int {
	numSigOps := 0
	tokenizer := MakeScriptTokenizer(s)
	prevOp := byte(OP_INVALIDOPCODE)
	for tokenizer.Next() {
		switch tokenizer.Opcode() {
		case OP_CHECKSIG, OP_CHECKSIGVERIFY:
			numSigOps++

		case OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
			// OP_0 is deliberately counted as the maximum even though it
			// is a small integer.
			if accurate && prevOp >= OP_1 && prevOp <= OP_16 {
				numSigOps += DecodeSmallInt(prevOp)
			} else {
				numSigOps += MaxPubKeysPerMultiSig
			}
		}

		prevOp = tokenizer.Opcode()
	}

	return numSigOps
}

// P2SHSigOpCount returns the accurate number of signature operations of the
// redeem script when the receiver is a pay-to-script-hash script and the
// passed signature script spends it.  The redeem script is the data of the
// final push in the signature script.
//
// A receiver that is not pay-to-script-hash is counted with SigOpCount in
// accurate mode.  A signature script that fails to parse or contains anything
// other than pushes yields zero.
func (s Script) P2SHSigOpCount(scriptSig Script) int {
	if !s.IsPayToScriptHash() {
		return s.SigOpCount(true)
	}

	// Unlike the counting above, a signature script that does not fully
	// parse counts as zero operations.
	var data []byte
	tokenizer := MakeScriptTokenizer(scriptSig)
	for tokenizer.Next() {
		if tokenizer.Opcode() > OP_16 {
			return 0
		}
		data = tokenizer.Data()
	}
	if tokenizer.Err() != nil {
		return 0
	}

	redeemScript := Script(data)
	log.Tracef("Counting signature operations of redeem script %v",
		newLogClosure(func() string {
			return spew.Sdump(redeemScript)
		}))

	return redeemScript.SigOpCount(true)
}

// IsPayToScriptHash returns true if the script is in the standard
// pay-to-script-hash (P2SH) format, false otherwise.
func (s Script) IsPayToScriptHash() bool {
	// A pay-to-script-hash script is of the form:
	//  OP_HASH160 <20-byte scripthash> OP_EQUAL
	return len(s) == payToScriptHashSize &&
		s[0] == OP_HASH160 &&
		s[1] == OP_DATA_20 &&
		s[22] == OP_EQUAL
}

// IsPayToWitnessScriptHash returns true if the script is in the standard
// pay-to-witness-script-hash (P2WSH) format, false otherwise.
func (s Script) IsPayToWitnessScriptHash() bool {
	// A pay-to-witness-script-hash script is of the form:
	//  OP_0 <32-byte scripthash>
	return len(s) == payToWitnessScriptHashSize &&
		s[0] == OP_0 &&
		s[1] == OP_DATA_32
}

// WitnessProgram attempts to extract the witness program version and the
// witness program itself from the script.  A witness program is a script of
// 4 to 42 bytes made of a version opcode (OP_0 or OP_1 through OP_16)
// followed by one direct data push covering the rest of the script.  The
// returned program aliases the script.
func (s Script) WitnessProgram() (int, []byte, bool) {
	if len(s) < minWitnessProgramSize || len(s) > maxWitnessProgramSize {
		return 0, nil, false
	}
	if !isSmallInt(s[0]) {
		return 0, nil, false
	}
	if int(s[1])+2 != len(s) {
		return 0, nil, false
	}

	return DecodeSmallInt(s[0]), s[2:], true
}

// IsWitnessProgram returns true if the script is a witness program as
// described by WitnessProgram.
func (s Script) IsWitnessProgram() bool {
	_, _, ok := s.WitnessProgram()
	return ok
}

// PayToScriptHash returns a pay-to-script-hash script committing to the
// hash160 of the passed redeem script.
func PayToScriptHash(redeemScript Script) Script {
	var s Script
	s.AddOp(OP_HASH160).AddData(btcutil.Hash160(redeemScript)).AddOp(OP_EQUAL)
	return s
}

// PayToWitnessScriptHash returns a version 0 witness program committing to
// the sha256 of the passed witness script.
func PayToWitnessScriptHash(witnessScript Script) Script {
	var s Script
	s.AddOp(OP_0).AddData(chainhash.HashB(witnessScript))
	return s
}
