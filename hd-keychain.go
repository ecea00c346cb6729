package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"

	"github.com/czh0526/hd-keychain/internal/prompt"
	"github.com/czh0526/hd-keychain/internal/zero"
	"github.com/czh0526/hd-keychain/keyring"
)

var (
	cfg *config
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := keychainMain(); err != nil {
		os.Exit(1)
	}
}

func keychainMain() error {
	fmt.Println("1) 加载配置：config => ")
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	fmt.Printf("2) 构建日志系统：level = `%s` \n", cfg.DebugLevel)
	mainLog.Debugf("Active network: %s", activeNet.Name)

	fmt.Printf("3) 获取助记词 (%s) \n", activeNet.Name)
	reader := bufio.NewReader(os.Stdin)
	sentence, err := obtainMnemonic(cfg, reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to obtain mnemonic: %v \n", err)
		return err
	}
	passphrase, err := prompt.Passphrase(reader, !cfg.Restore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read passphrase: %v \n", err)
		return err
	}

	// 助记词只回显一次, 持有这句话(和口令)就能重建下面的每一把密钥
	fmt.Printf("mnemonic \t=> %s \n", sentence)

	fmt.Printf("4) 派生种子 (PBKDF2, %d rounds)，生成主密钥，构建 KeyRing \n",
		cfg.Rounds)
	ring, err := buildKeyRing(sentence, passphrase, cfg)
	zero.Bytes(passphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to build keyring: %v \n", err)
		return err
	}

	addInterruptHandler(func() {
		err := ring.Close()
		if err != nil && !keyring.IsError(err, keyring.ErrKeyRingClosed) {
			mainLog.Errorf("Failed to close keyring: %v", err)
		}
	})

	fmt.Printf("5) 派生路径：`%s` \n", cfg.Path)
	if err := printDerivedKey(ring, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to derive key: %v \n", err)
		return err
	}

	fmt.Println("6) 清除密钥数据")
	err = ring.Close()
	if err != nil && !keyring.IsError(err, keyring.ErrKeyRingClosed) {
		mainLog.Errorf("Failed to close keyring: %v", err)
	}
	if keyring.IsError(err, keyring.ErrKeyRingClosed) {
		// KeyRing 已被中断处理器关闭, 等待其余回调执行完毕
		<-interruptHandlersDone
	}

	fmt.Println("\nShutdown complete")
	return nil
}
