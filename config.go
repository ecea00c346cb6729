package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/czh0526/hd-keychain/hdkeychain"
	"github.com/czh0526/hd-keychain/mnemonic"
	"github.com/czh0526/hd-keychain/netparams"
)

const (
	defaultEntropyBits = 256
	defaultLogLevel    = "info"
)

type config struct {
	TestNet3    bool   `long:"testnet" description:"Use the test Bitcoin network (version 3) (default mainnet)"`
	SimNet      bool   `long:"simnet" description:"Use the simulation test network (default mainnet)"`
	Restore     bool   `long:"restore" description:"Rebuild the keychain from an existing mnemonic instead of generating a new one"`
	EntropyBits int    `long:"entropybits" description:"Entropy size of a generated mnemonic in bits -- must be a multiple of 32 between 128 and 256"`
	Rounds      int    `long:"rounds" description:"PBKDF2 iteration count used to stretch the mnemonic into the seed"`
	Path        string `long:"path" description:"Derivation path of the printed key (default m/44'/<cointype>'/<account>'/0/0)"`
	Account     uint32 `long:"account" description:"Account number used when building the default derivation path"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`

	path hdkeychain.DerivationPath
}

func loadConfig() (*config, []string, error) {
	cfg := config{
		EntropyBits: defaultEntropyBits,
		Rounds:      mnemonic.StandardSeedRounds,
		DebugLevel:  defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	numNets := 0
	if cfg.TestNet3 {
		activeNet = &netparams.TestNetParams
		numNets++
	}
	if cfg.SimNet {
		activeNet = &netparams.SimNetParams
		numNets++
	}
	if numNets > 1 {
		str := "%s: the testnet and simnet params can't be used " +
			"together -- choose one of the two"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// The entropy size rule matches what the mnemonic encoding can carry.
	if cfg.EntropyBits < 128 || cfg.EntropyBits > 256 ||
		cfg.EntropyBits%32 != 0 {

		str := "%s: the entropy size [%d] must be a multiple of 32 " +
			"between 128 and 256"
		err := fmt.Errorf(str, funcName, cfg.EntropyBits)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	if cfg.Rounds < 1 {
		str := "%s: the PBKDF2 iteration count [%d] must be positive"
		err := fmt.Errorf(str, funcName, cfg.Rounds)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err.Error())
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// An omitted path means the external chain head of the selected
	// account on the active network.
	if cfg.Path == "" {
		cfg.Path = fmt.Sprintf("m/44'/%d'/%d'/0/0",
			activeNet.CoinType, cfg.Account)
	}
	cfg.path, err = hdkeychain.ParseDerivationPath(cfg.Path)
	if err != nil {
		str := "%s: the derivation path [%s] is invalid: %v"
		err := fmt.Errorf(str, funcName, cfg.Path, err)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
