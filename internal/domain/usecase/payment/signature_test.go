package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureRoundtrip(t *testing.T) {
	sig := ComputeSignature("order_abc", "pay_xyz", "key-secret")

	assert.Len(t, sig, 64)
	assert.True(t, VerifySignature("order_abc", "pay_xyz", "key-secret", sig))
}

func TestSignatureRejectsTampering(t *testing.T) {
	sig := ComputeSignature("order_abc", "pay_xyz", "key-secret")

	t.Run("single flipped character", func(t *testing.T) {
		tampered := []byte(sig)
		if tampered[0] == 'a' {
			tampered[0] = 'b'
		} else {
			tampered[0] = 'a'
		}
		assert.False(t, VerifySignature("order_abc", "pay_xyz", "key-secret", string(tampered)))
	})

	t.Run("different order id", func(t *testing.T) {
		assert.False(t, VerifySignature("order_def", "pay_xyz", "key-secret", sig))
	})

	t.Run("different payment id", func(t *testing.T) {
		assert.False(t, VerifySignature("order_abc", "pay_other", "key-secret", sig))
	})

	t.Run("different secret", func(t *testing.T) {
		assert.False(t, VerifySignature("order_abc", "pay_xyz", "other-secret", sig))
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, VerifySignature("order_abc", "pay_xyz", "key-secret", ""))
	})
}
