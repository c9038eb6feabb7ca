package crypto

import (
	"testing"

	composite "github.com/iov-one/composite"
	"github.com/iov-one/composite/compositetest"
	"github.com/iov-one/composite/compositetest/assert"
	"github.com/iov-one/composite/errors"
)

func TestSchemes(t *testing.T) {
	want := []string{
		"ed25519", "ed448",
		"mldsa44", "mldsa65", "mldsa87",
		"p256", "p384",
		"rsa2048", "rsa3072",
		"secp256k1",
	}
	assert.Equal(t, want, Schemes())
	for _, name := range want {
		if !Has(name) {
			t.Errorf("%s not registered", name)
		}
	}
	if Has("rsa1024") {
		t.Error("rsa1024 must not be registered")
	}
}

func TestGenerateUnknown(t *testing.T) {
	k, err := Generate("dsa")
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.Nil(t, k)
}

func TestRegisterDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		Register(Ed25519Name, func() (composite.ComponentKey, error) {
			return compositetest.NewComponent("x"), nil
		})
	})
	assert.Panics(t, func() {
		Register("", nil)
	})
}
