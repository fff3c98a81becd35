package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/internal/testkeys"
)

func TestVerifyClassicalRoundTrip(t *testing.T) {
	priv, addr := testkeys.GenEvenY(t)
	msg := []byte("lumina signing preimage")
	sig := testkeys.Sign(priv, msg)
	require.NoError(t, VerifyClassical(addr, msg, sig))
}

func TestVerifyClassicalRejectsWrongMessage(t *testing.T) {
	priv, addr := testkeys.GenEvenY(t)
	sig := testkeys.Sign(priv, []byte("original"))
	require.Error(t, VerifyClassical(addr, []byte("tampered"), sig))
}

func TestVerifyClassicalRejectsMalformedSignature(t *testing.T) {
	_, addr := testkeys.GenEvenY(t)
	require.Error(t, VerifyClassical(addr, []byte("msg"), []byte("too-short")))
}

func TestVerifyClassicalRejectsEmptyMessage(t *testing.T) {
	priv, addr := testkeys.GenEvenY(t)
	sig := testkeys.Sign(priv, []byte("x"))
	require.Error(t, VerifyClassical(addr, nil, sig))
}
