// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/RandyMcMillan/bitcoin/txscript"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultDebugLevel = "info"
	defaultNetwork    = "mainnet"
)

// config defines the configuration options for scriptinfo.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Hex        string   `short:"x" long:"hex" description:"Script to inspect, hex encoded"`
	Asm        string   `short:"a" long:"asm" description:"Script to inspect, in short form (e.g. \"DUP HASH160 0x14 0x... EQUALVERIFY CHECKSIG\")"`
	ScriptSig  string   `short:"s" long:"scriptsig" description:"Hex encoded signature script used to count P2SH signature operations"`
	Witness    []string `short:"w" long:"witness" description:"Hex encoded witness item; may be repeated, bottom of the stack first"`
	Network    string   `short:"n" long:"network" description:"Network used to encode addresses" choice:"mainnet" choice:"testnet3" choice:"regtest" choice:"signet" choice:"simnet"`
	DebugLevel string   `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		DebugLevel: defaultDebugLevel,
		Network:    defaultNetwork,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Exactly one script source is required.
	funcName := "loadConfig"
	if (cfg.Hex == "") == (cfg.Asm == "") {
		str := "%s: exactly one of --hex and --asm must be specified"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate the debug level.
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		str := "%s: the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// params returns the parameters of the network selected by the configuration.
func (cfg *config) params() *chaincfg.Params {
	switch cfg.Network {
	case "testnet3":
		return &chaincfg.TestNet3Params
	case "regtest":
		return &chaincfg.RegressionNetParams
	case "signet":
		return &chaincfg.SigNetParams
	case "simnet":
		return &chaincfg.SimNetParams
	}
	return &chaincfg.MainNetParams
}

// script returns the script selected by the configuration.
func (cfg *config) script() (txscript.Script, error) {
	if cfg.Asm != "" {
		return txscript.ParseShortForm(cfg.Asm)
	}
	return hex.DecodeString(cfg.Hex)
}

// scriptSig returns the decoded signature script, which is empty when none
// was given.
func (cfg *config) scriptSig() (txscript.Script, error) {
	return hex.DecodeString(cfg.ScriptSig)
}

// witness returns the decoded witness stack.
func (cfg *config) witness() (txscript.Witness, error) {
	var w txscript.Witness
	for i, item := range cfg.Witness {
		b, err := hex.DecodeString(item)
		if err != nil {
			return nil, fmt.Errorf("witness item %d: %w", i, err)
		}
		w = append(w, b)
	}
	return w, nil
}
