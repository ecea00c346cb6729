package netparams

import "github.com/btcsuite/btcd/chaincfg"

type Params struct {
	*chaincfg.Params
	CoinType uint32
}

var MainNetParams = Params{
	Params:   &chaincfg.MainNetParams,
	CoinType: 0,
}

var TestNetParams = Params{
	Params:   &chaincfg.TestNet3Params,
	CoinType: 1,
}

var SimNetParams = Params{
	Params:   &chaincfg.SimNetParams,
	CoinType: 115,
}
