// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

// BuildScript assembles a script from the passed items, left to right:
//
//   - Script appends the raw script bytes
//   - []byte pushes data via AddData
//   - ScriptNum pushes the encoded number via AddScriptNum
//   - int64 pushes the integer via AddInt64
//   - byte and int append a single opcode
//
// An int item is always an opcode, which lets the untyped OP_* constants be
// passed directly.  It is never pushed as a number, so BuildScript(1) yields
// the single byte 0x01 (OP_DATA_1) rather than OP_1.  Pass int64(1) or
// ScriptNum(1) to push the number 1.
//
// A leading Script becomes the start of the result.  The result never shares
// storage with any of the items.
//
// Passing an int outside of the opcode range [0, 255] panics with
// ErrInvalidOpcode and passing an item of any other type panics with
// ErrInternal.  Both indicate a programming error.
func BuildScript(items ...interface{}) Script {
	var script Script
	for i, item := range items {
		switch v := item.(type) {
		case Script:
			if i == 0 {
				script = append(make(Script, 0, len(v)), v...)
				continue
			}
			script.AddScript(v)

		case []byte:
			script.AddData(v)

		case ScriptNum:
			script.AddScriptNum(v)

		case int64:
			script.AddInt64(v)

		case byte:
			script.AddOp(v)

		case int:
			if v < 0 || v > 0xff {
				str := fmt.Sprintf("opcode value %d is out of range", v)
				panic(scriptError(ErrInvalidOpcode, str))
			}
			script.AddOp(byte(v))

		default:
			str := fmt.Sprintf("unsupported script item %v of type %T",
				item, item)
			panic(scriptError(ErrInternal, str))
		}
	}
	return script
}
