package main

import (
	"os"
	"testing"

	"github.com/czh0526/hd-keychain/hdkeychain"
	"github.com/czh0526/hd-keychain/mnemonic"
	"github.com/czh0526/hd-keychain/netparams"
	"github.com/stretchr/testify/assert"
)

// loadConfigWithArgs runs loadConfig with the given command line,
// restoring the process arguments and the active network afterwards.
func loadConfigWithArgs(t *testing.T, args ...string) (*config, error) {
	t.Helper()

	oldArgs := os.Args
	oldNet := activeNet
	t.Cleanup(func() {
		os.Args = oldArgs
		activeNet = oldNet
	})

	os.Args = append([]string{"hd-keychain"}, args...)
	cfg, _, err := loadConfig()
	return cfg, err
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfigWithArgs(t)
	assert.NoError(t, err)

	// 检查缺省配置
	assert.Equal(t, defaultEntropyBits, cfg.EntropyBits)
	assert.Equal(t, mnemonic.StandardSeedRounds, cfg.Rounds)
	assert.Equal(t, defaultLogLevel, cfg.DebugLevel)
	assert.False(t, cfg.Restore)
	assert.Same(t, &netparams.MainNetParams, activeNet)

	// 缺省派生路径指向主网 0 号账户的首个外部密钥
	assert.Equal(t, "m/44'/0'/0'/0/0", cfg.Path)
	assert.Equal(t,
		hdkeychain.MustParseDerivationPath("m/44'/0'/0'/0/0"), cfg.path)
}

func TestLoadConfigNetworks(t *testing.T) {
	// 切换到测试网, 派生路径跟随 coin type 和账户号
	cfg, err := loadConfigWithArgs(t, "--testnet", "--account", "2")
	assert.NoError(t, err)
	assert.Same(t, &netparams.TestNetParams, activeNet)
	assert.Equal(t, "m/44'/1'/2'/0/0", cfg.Path)

	cfg, err = loadConfigWithArgs(t, "--simnet")
	assert.NoError(t, err)
	assert.Same(t, &netparams.SimNetParams, activeNet)
	assert.Equal(t, "m/44'/115'/0'/0/0", cfg.Path)

	_, err = loadConfigWithArgs(t, "--testnet", "--simnet")
	assert.Error(t, err)
}

func TestLoadConfigRejections(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "entropy not a multiple of 32", args: []string{"--entropybits", "100"}},
		{name: "entropy too small", args: []string{"--entropybits", "96"}},
		{name: "entropy too large", args: []string{"--entropybits", "288"}},
		{name: "zero rounds", args: []string{"--rounds", "0"}},
		{name: "negative rounds", args: []string{"--rounds", "-5"}},
		{name: "relative derivation path", args: []string{"--path", "44'/0'/0'"}},
		{name: "malformed derivation path", args: []string{"--path", "m/abc"}},
		{name: "unknown debug level", args: []string{"--debuglevel", "verbose"}},
		{name: "unknown log subsystem", args: []string{"--debuglevel", "XXXX=debug"}},
	}

	for _, test := range tests {
		_, err := loadConfigWithArgs(t, test.args...)
		assert.Error(t, err, test.name)
	}
}

func TestParseAndSetDebugLevels(t *testing.T) {
	defer setLogLevels(defaultLogLevel)

	assert.NoError(t, parseAndSetDebugLevels("trace"))
	assert.NoError(t, parseAndSetDebugLevels("HDKC=debug"))
	assert.NoError(t, parseAndSetDebugLevels("HDKC=debug,KRNG=trace"))

	assert.Error(t, parseAndSetDebugLevels("bogus"))
	assert.Error(t, parseAndSetDebugLevels("HDKC"))
	assert.Error(t, parseAndSetDebugLevels("HDKC=bogus"))
	assert.Error(t, parseAndSetDebugLevels("XXXX=debug"))
}

func TestSupportedSubsystems(t *testing.T) {
	assert.Equal(t, []string{"HDKC", "KRNG"}, supportedSubsystems())
}
