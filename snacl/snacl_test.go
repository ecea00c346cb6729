package snacl

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/nacl/secretbox"
	"io"
	"testing"
)

func TestConstantTimeCompare(t *testing.T) {
	a := []byte("Hello World")
	b := []byte("Hello World")

	ret := constantTimeCompare(a, b)
	assert.Equal(t, 1, ret)
}

func TestCryptoKey_Seal(t *testing.T) {

	var nonce [NonceSize]byte
	_, err := io.ReadFull(prng, nonce[:])
	assert.Nil(t, err)

	cryptoKey, err := GenerateCryptoKey()
	assert.Nil(t, err)

	in := []byte("Hello World")
	blob := secretbox.Seal(nil, in, &nonce, (*[KeySize]byte)(cryptoKey))
	fmt.Printf("size: %v, blob: %x\n", len(blob), blob)

	in = []byte("Hello World")
	blob = secretbox.Seal(nil, in, &nonce, (*[KeySize]byte)(cryptoKey))
	fmt.Printf("size: %v, blob: %x\n", len(blob), blob)

	in = []byte("Hello World 1")
	blob = secretbox.Seal(nil, in, &nonce, (*[KeySize]byte)(cryptoKey))
	fmt.Printf("size: %v, blob: %x\n", len(blob), blob)

	in = []byte("Hello World 12345678")
	blob = secretbox.Seal(nil, in, &nonce, (*[KeySize]byte)(cryptoKey))
	fmt.Printf("size: %v, blob: %x\n", len(blob), blob)
}

func TestCryptoKey_Open(t *testing.T) {

	// 构建 CryptoKey
	cryptoKey, err := GenerateCryptoKey()
	assert.Nil(t, err)

	// 加密消息
	msg := []byte("Hello World")
	encryptedMsg, err := cryptoKey.Encrypt(msg)
	assert.Nil(t, err)

	// 恢复消息
	msg2, err := cryptoKey.Decrypt(encryptedMsg)
	assert.Nil(t, err)

	assert.Equal(t, msg, msg2)
}

func TestCryptoKey_DecryptErrors(t *testing.T) {
	cryptoKey, err := GenerateCryptoKey()
	assert.Nil(t, err)

	_, err = cryptoKey.Decrypt([]byte("too short"))
	assert.Equal(t, ErrMalformed, err)

	blob, err := cryptoKey.Encrypt([]byte("Hello World"))
	assert.Nil(t, err)
	blob[len(blob)-1] ^= 0x80

	_, err = cryptoKey.Decrypt(blob)
	assert.Equal(t, ErrDecryptFailed, err)
}

func TestSecretKey(t *testing.T) {
	password := []byte("sikrit")

	// 根据口令构建 SecretKey, 测试用低强度参数
	secretKey, err := NewSecretKey(&password, 16, 8, 1)
	assert.Nil(t, err)

	msg := []byte("Hello World")
	blob, err := secretKey.Encrypt(msg)
	assert.Nil(t, err)

	msg2, err := secretKey.Decrypt(blob)
	assert.Nil(t, err)
	assert.Equal(t, msg, msg2)
}

func TestSecretKey_DeriveKey(t *testing.T) {
	password := []byte("sikrit")

	secretKey, err := NewSecretKey(&password, 16, 8, 1)
	assert.Nil(t, err)

	msg := []byte("Hello World")
	blob, err := secretKey.Encrypt(msg)
	assert.Nil(t, err)

	// 序列化参数, 在一个新的 SecretKey 上恢复
	marshalled := secretKey.Marshal()

	var secretKey2 SecretKey
	err = secretKey2.Unmarshal(marshalled)
	assert.Nil(t, err)

	err = secretKey2.DeriveKey(&password)
	assert.Nil(t, err)

	msg2, err := secretKey2.Decrypt(blob)
	assert.Nil(t, err)
	assert.Equal(t, msg, msg2)

	// 错误的口令无法通过校验
	badPassword := []byte("sikrit2")
	var secretKey3 SecretKey
	err = secretKey3.Unmarshal(marshalled)
	assert.Nil(t, err)

	err = secretKey3.DeriveKey(&badPassword)
	assert.Equal(t, ErrInvalidPassword, err)
}

func TestSecretKey_UnmarshalErrors(t *testing.T) {
	var secretKey SecretKey
	err := secretKey.Unmarshal([]byte("malformed"))
	assert.Equal(t, ErrMalformed, err)
}

func TestSecretKey_Zero(t *testing.T) {
	password := []byte("sikrit")

	secretKey, err := NewSecretKey(&password, 16, 8, 1)
	assert.Nil(t, err)

	secretKey.Zero()
	assert.Equal(t, CryptoKey{}, *secretKey.Key)
}
