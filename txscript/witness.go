// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/wire"
)

const (
	// maxWitnessItemsPerInput is the maximum number of witness items to
	// be read for the witness data for a single input.  This number is
	// derived using a possible lower bound for the encoding of a witness
	// item: 1 byte for length + 1 byte for the witness item itself, or two
	// bytes.  This value is then divided by the currently allowed maximum
	// "cost" for a transaction.
	maxWitnessItemsPerInput = 4_000_000

	// maxWitnessItemSize is the maximum allowed size for an item within
	// an input's witness data.
	maxWitnessItemSize = 4_000_000
)

// Witness is the ordered stack of byte vectors attached to a transaction
// input.  It carries no script semantics of its own.
type Witness [][]byte

// IsNull returns whether the witness has no items.
func (w Witness) IsNull() bool {
	return len(w) == 0
}

// SetNull removes all items and releases the backing storage.
func (w *Witness) SetNull() {
	*w = nil
}

// Annex returns the annex of the witness, if any.  A witness carries an annex
// when it has at least two items and the last one begins with AnnexTag.
func (w Witness) Annex() ([]byte, bool) {
	if len(w) < 2 {
		return nil, false
	}
	last := w[len(w)-1]
	if len(last) == 0 || last[0] != AnnexTag {
		return nil, false
	}
	return last, true
}

// String returns the items of the witness as comma separated hex.
func (w Witness) String() string {
	items := make([]string, 0, len(w))
	for _, item := range w {
		items = append(items, hex.EncodeToString(item))
	}
	return strings.Join(items, ",")
}

// SerializeSize returns the number of bytes it would take to serialize the
// witness with Serialize.
func (w Witness) SerializeSize() int {
	return wire.TxWitness(w).SerializeSize()
}

// Serialize writes the witness to w as the number of items followed by each
// item as variable length bytes, which is how it appears in a transaction.
func (w Witness) Serialize(wr io.Writer) error {
	err := wire.WriteVarInt(wr, 0, uint64(len(w)))
	if err != nil {
		return err
	}
	for _, item := range w {
		err = wire.WriteVarBytes(wr, 0, item)
		if err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads a witness written by Serialize from r into the receiver.
// The item count and the size of each item are bounded so a malicious stream
// can not cause excessive allocations.
func (w *Witness) Deserialize(r io.Reader) error {
	witCount, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return err
	}

	// Prevent a possible memory exhaustion attack by limiting the witCount
	// value to a sane upper bound.
	if witCount > maxWitnessItemsPerInput {
		str := fmt.Sprintf("too many witness items to fit into max "+
			"message size [count %d, max %d]", witCount,
			maxWitnessItemsPerInput)
		return scriptError(ErrTooManyWitnessItems, str)
	}

	// Then for witCount number of stack items, each item has a varint
	// length prefix, followed by the witness item itself.  The items are
	// read one at a time so the allocation grows with the data actually
	// present in the stream.
	var items Witness
	for i := uint64(0); i < witCount; i++ {
		item, err := wire.ReadVarBytes(r, 0, maxWitnessItemSize,
			"script witness item")
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	*w = items
	return nil
}

// ToTxWitness returns the witness as the wire representation used by
// transactions.  The items are shared, not copied.
func (w Witness) ToTxWitness() wire.TxWitness {
	return wire.TxWitness(w)
}

// WitnessFromTx returns the witness stack of a transaction input.  The items
// are shared, not copied.
func WitnessFromTx(tw wire.TxWitness) Witness {
	return Witness(tw)
}
