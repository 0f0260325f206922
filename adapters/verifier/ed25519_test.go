package verifier

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/Crystara-Markets/supra-multiwallet/core"
)

func signedEnvelope(t *testing.T, message string) (core.SignatureEnvelope, ed25519.PublicKey) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	sig := ed25519.Sign(priv, []byte(message))

	return core.SignatureEnvelope{
		Signature: hexutil.Encode(sig),
		PublicKey: hexutil.Encode(pub),
	}, pub
}

func TestVerify(t *testing.T) {
	v := NewEd25519Verifier()

	envelope, _ := signedEnvelope(t, core.SignMessage)
	require.NoError(t, v.Verify(core.SignMessage, envelope, "0xABCD"))
}

func TestVerifyWrongPublicKey(t *testing.T) {
	v := NewEd25519Verifier()

	envelope, _ := signedEnvelope(t, core.SignMessage)

	otherPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	envelope.PublicKey = hexutil.Encode(otherPub)

	err = v.Verify(core.SignMessage, envelope, "0xABCD")
	require.ErrorIs(t, err, core.ErrInvalidSignature)
}

func TestVerifyWrongMessage(t *testing.T) {
	v := NewEd25519Verifier()

	envelope, _ := signedEnvelope(t, "some other message")

	err := v.Verify(core.SignMessage, envelope, "0xABCD")
	require.ErrorIs(t, err, core.ErrInvalidSignature)
}

func TestVerifyMalformedHex(t *testing.T) {
	v := NewEd25519Verifier()

	valid, _ := signedEnvelope(t, core.SignMessage)

	cases := map[string]core.SignatureEnvelope{
		"missing 0x prefix on signature": {Signature: valid.Signature[2:], PublicKey: valid.PublicKey},
		"missing 0x prefix on key":       {Signature: valid.Signature, PublicKey: valid.PublicKey[2:]},
		"non-hex signature":              {Signature: "0xzz", PublicKey: valid.PublicKey},
		"non-hex key":                    {Signature: valid.Signature, PublicKey: "0xzz"},
		"empty":                          {},
	}

	for name, envelope := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, v.Verify(core.SignMessage, envelope, "0xABCD"))
		})
	}
}

func TestVerifyWrongLengths(t *testing.T) {
	v := NewEd25519Verifier()

	valid, pub := signedEnvelope(t, core.SignMessage)

	short := core.SignatureEnvelope{Signature: "0xdeadbeef", PublicKey: valid.PublicKey}
	require.Error(t, v.Verify(core.SignMessage, short, "0xABCD"))

	truncated := core.SignatureEnvelope{Signature: valid.Signature, PublicKey: hexutil.Encode(pub[:16])}
	require.Error(t, v.Verify(core.SignMessage, truncated, "0xABCD"))
}
