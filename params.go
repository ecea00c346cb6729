package main

import "github.com/czh0526/hd-keychain/netparams"

// activeNet is the network the keychain derives keys for.  It points at
// the mainnet parameters until loadConfig switches it.
var activeNet = &netparams.MainNetParams
