// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements the bitcoin transaction script bytecode layer.

This package provides the data types that script evaluation consumes: the
opcode table, the script byte container with its canonical push operators,
the consensus script number encoding, the opcode tokenizer, structural
queries over scripts, and the witness stack attached to transaction inputs.
It does not execute scripts.

# Script Overview

Bitcoin transaction scripts are written in a stack-base, FORTH-like language.

The bitcoin script language consists of a number of opcodes which fall into
several categories such pushing and popping data to and from the stack,
performing basic and bitwise arithmetic, conditional branching, comparing
hashes, and checking cryptographic signatures.  Scripts are processed from left
to right and intentionally do not provide loops.

# Script Numbers

Numeric opcodes only accept operands of up to four bytes, encoded little
endian with the sign in the most significant bit of the final byte.  Results
of arithmetic are allowed to exceed that range, so ScriptNum stores an int64
and the length restriction is applied only when data is interpreted as a
number through MakeScriptNum.

# Errors

Decoding failures are returned as values of type Error carrying an ErrorCode
such as ErrMalformedPush, ErrNumberTooBig or ErrMinimalData.  Misuse of the
API, for example encoding 17 as a small integer opcode, panics with an Error
since it indicates a bug in the caller rather than bad input.
*/
package txscript
