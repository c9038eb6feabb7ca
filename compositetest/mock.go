package compositetest

import (
	composite "github.com/iov-one/composite"
	"github.com/stretchr/testify/mock"
)

// MockComponent is a ComponentKey driven by testify expectations.
type MockComponent struct {
	mock.Mock
}

var _ composite.ComponentKey = (*MockComponent)(nil)

func (m *MockComponent) Sign(digest []byte) ([]byte, error) {
	args := m.Called(digest)
	sig, _ := args.Get(0).([]byte)
	return sig, args.Error(1)
}

func (m *MockComponent) Verify(digest, sig []byte) bool {
	args := m.Called(digest, sig)
	return args.Bool(0)
}

func (m *MockComponent) MaxSignatureSize() int {
	return m.Called().Int(0)
}

func (m *MockComponent) Bits() int {
	return m.Called().Int(0)
}

func (m *MockComponent) SecurityBits() int {
	return m.Called().Int(0)
}
