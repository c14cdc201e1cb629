// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/RandyMcMillan/bitcoin/txscript"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btclog"
)

var (
	cfg *config
	log = btclog.Disabled
)

// infoWriter formats report lines to an underlying writer and remembers the
// first write error so the report can be written without checking each line.
type infoWriter struct {
	w   io.Writer
	err error
}

// printf writes one formatted line unless an earlier write failed.
func (iw *infoWriter) printf(format string, a ...interface{}) {
	if iw.err != nil {
		return
	}
	_, iw.err = fmt.Fprintf(iw.w, format, a...)
}

// scriptAddress returns the address paying to the script on the passed
// network when the script is a pay-to-script-hash, version 0 witness script
// hash or version 1 taproot output.
func scriptAddress(script txscript.Script,
	params *chaincfg.Params) (btcutil.Address, bool) {

	var (
		addr btcutil.Address
		err  error
	)
	version, program, isWitness := script.WitnessProgram()
	switch {
	case script.IsPayToScriptHash():
		addr, err = btcutil.NewAddressScriptHashFromHash(script[2:22],
			params)
	case script.IsPayToWitnessScriptHash():
		addr, err = btcutil.NewAddressWitnessScriptHash(program, params)
	case isWitness && version == 1 && len(program) == 32:
		addr, err = btcutil.NewAddressTaproot(program, params)
	default:
		return nil, false
	}
	if err != nil {
		log.Warnf("Unable to encode address: %v", err)
		return nil, false
	}
	return addr, true
}

// writeScriptInfo writes the disassembly of the script along with the result
// of every structural query to w.  It returns the first error encountered
// while writing.
func writeScriptInfo(w io.Writer, params *chaincfg.Params, script,
	scriptSig txscript.Script, witness txscript.Witness) error {

	disasm, err := txscript.DisasmString(script)
	if err != nil {
		log.Warnf("Script does not fully parse: %v", err)
	}

	iw := &infoWriter{w: w}
	iw.printf("script:           %x\n", []byte(script))
	iw.printf("asm:              %s\n", disasm)
	iw.printf("size:             %d\n", len(script))
	iw.printf("push only:        %v\n", script.IsPushOnly())
	iw.printf("valid ops:        %v\n", script.HasValidOps())
	iw.printf("unspendable:      %v\n", script.IsUnspendable())
	iw.printf("p2sh:             %v\n", script.IsPayToScriptHash())
	iw.printf("p2wsh:            %v\n", script.IsPayToWitnessScriptHash())
	if version, program, ok := script.WitnessProgram(); ok {
		iw.printf("witness program:  v%d %x\n", version, program)
	}
	if addr, ok := scriptAddress(script, params); ok {
		iw.printf("address:          %s\n", addr.EncodeAddress())
	}
	if p2sh, err := btcutil.NewAddressScriptHash(script, params); err == nil {
		iw.printf("p2sh address:     %s\n", p2sh.EncodeAddress())
	}
	iw.printf("sigops:           %d\n", script.SigOpCount(false))
	iw.printf("accurate sigops:  %d\n", script.SigOpCount(true))
	if len(scriptSig) > 0 {
		iw.printf("p2sh sigops:      %d\n",
			script.P2SHSigOpCount(scriptSig))
	}

	if !witness.IsNull() {
		iw.printf("witness:          %v\n", witness)
		iw.printf("witness size:     %d\n", witness.SerializeSize())
		if annex, ok := witness.Annex(); ok {
			iw.printf("annex:            %x\n", annex)
		}
	}

	return iw.err
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stdout)
	defer os.Stdout.Sync()
	log = backendLogger.Logger("MAIN")
	scriptLog := backendLogger.Logger("SCRP")
	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log.SetLevel(level)
	scriptLog.SetLevel(level)
	txscript.UseLogger(scriptLog)

	script, err := cfg.script()
	if err != nil {
		log.Errorf("Unable to decode script: %v", err)
		return err
	}
	scriptSig, err := cfg.scriptSig()
	if err != nil {
		log.Errorf("Unable to decode signature script: %v", err)
		return err
	}
	witness, err := cfg.witness()
	if err != nil {
		log.Errorf("Unable to decode witness: %v", err)
		return err
	}

	return writeScriptInfo(os.Stdout, cfg.params(), script, scriptSig,
		witness)
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
