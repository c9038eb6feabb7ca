package composite

import (
	"fmt"
	"sort"
	"sync"

	"github.com/iov-one/composite/errors"
	"github.com/opencontainers/go-digest"
)

// CtrlOp is a control operation that can be requested on a context via
// Method.Ctrl.
type CtrlOp int

const (
	// CtrlGetDigest returns the digest algorithm of the context.
	CtrlGetDigest CtrlOp = iota + 1
	// CtrlSetDigest sets the digest algorithm. Value must be a
	// digest.Algorithm or a string.
	CtrlSetDigest
	// CtrlPush appends the ComponentKey passed as the value.
	CtrlPush
	// CtrlAdd inserts the ComponentKey passed as the value at position id.
	CtrlAdd
	// CtrlDel removes the component at position id.
	CtrlDel
	// CtrlPop removes the last component. Id is checked the same way as for
	// CtrlDel.
	CtrlPop
	// CtrlClear removes all components.
	CtrlClear
)

func (op CtrlOp) String() string {
	switch op {
	case CtrlGetDigest:
		return "get-digest"
	case CtrlSetDigest:
		return "set-digest"
	case CtrlPush:
		return "push"
	case CtrlAdd:
		return "add"
	case CtrlDel:
		return "del"
	case CtrlPop:
		return "pop"
	case CtrlClear:
		return "clear"
	default:
		return fmt.Sprintf("ctrl(%d)", int(op))
	}
}

// Method is a signature method that can be looked up by name. It bundles the
// context lifecycle with the sign and verify operations so that callers can
// dispatch without knowing the concrete implementation.
type Method interface {
	Name() string
	// Init returns a fresh context.
	Init() *Context
	// Keygen turns the components accumulated in given context into a key.
	Keygen(*Context) (*Key, error)
	Sign(key *Key, digest []byte) ([]byte, error)
	Verify(key *Key, digest, sig []byte) error
	// Ctrl executes a control operation on a context. Only CtrlGetDigest
	// returns a value.
	Ctrl(ctx *Context, op CtrlOp, id int, value interface{}) (interface{}, error)
}

// MethodName is the name the composite method is registered with.
const MethodName = "composite"

func init() {
	RegisterMethod(NewMethod(NewSigner(), NewVerifier()))
}

var methods = struct {
	sync.RWMutex
	byName map[string]Method
}{
	byName: make(map[string]Method),
}

// RegisterMethod makes given method available via LookupMethod.
//
// Registration should be done during the program initialization phase.
// Registering a name twice results in panic.
func RegisterMethod(m Method) {
	methods.Lock()
	defer methods.Unlock()

	name := m.Name()
	if _, ok := methods.byName[name]; ok {
		panic(errors.ErrDuplicate.Newf("method %q already registered", name))
	}
	methods.byName[name] = m
}

// LookupMethod returns the method registered under given name.
func LookupMethod(name string) (Method, error) {
	methods.RLock()
	m, ok := methods.byName[name]
	methods.RUnlock()
	if !ok {
		return nil, errors.ErrNotFound.Newf("method %q", name)
	}
	return m, nil
}

// Methods returns the names of all registered methods in lexical order.
func Methods() []string {
	methods.RLock()
	names := make([]string, 0, len(methods.byName))
	for name := range methods.byName {
		names = append(names, name)
	}
	methods.RUnlock()
	sort.Strings(names)
	return names
}

// NewMethod returns the composite method using given signer and verifier.
func NewMethod(s Signer, v Verifier) Method {
	return &compositeMethod{signer: s, verifier: v}
}

type compositeMethod struct {
	signer   Signer
	verifier Verifier
}

var _ Method = (*compositeMethod)(nil)

func (compositeMethod) Name() string {
	return MethodName
}

func (compositeMethod) Init() *Context {
	return NewContext()
}

func (compositeMethod) Keygen(ctx *Context) (*Key, error) {
	if ctx == nil {
		return nil, errors.ErrParamNull.New("context")
	}
	return ctx.Finalize()
}

func (m *compositeMethod) Sign(key *Key, digest []byte) ([]byte, error) {
	return m.signer.Sign(key, digest)
}

func (m *compositeMethod) Verify(key *Key, digest, sig []byte) error {
	return m.verifier.Verify(key, digest, sig)
}

func (compositeMethod) Ctrl(ctx *Context, op CtrlOp, id int, value interface{}) (interface{}, error) {
	if ctx == nil {
		return nil, errors.ErrParamNull.New("context")
	}

	switch op {
	case CtrlGetDigest:
		return ctx.Digest(), nil
	case CtrlSetDigest:
		switch alg := value.(type) {
		case digest.Algorithm:
			return nil, ctx.SetDigest(alg)
		case string:
			return nil, ctx.SetDigest(digest.Algorithm(alg))
		case nil:
			return nil, errors.ErrParamNull.New("digest algorithm")
		default:
			return nil, errors.Wrapf(errors.ErrInvalidInput, "digest algorithm of type %T", value)
		}
	case CtrlPush:
		k, err := componentValue(value)
		if err != nil {
			return nil, err
		}
		return nil, ctx.Push(k)
	case CtrlAdd:
		k, err := componentValue(value)
		if err != nil {
			return nil, err
		}
		return nil, ctx.Add(k, id)
	case CtrlDel:
		return nil, ctx.Remove(id)
	case CtrlPop:
		_, err := ctx.popChecked(id)
		return nil, err
	case CtrlClear:
		ctx.Clear()
		return nil, nil
	default:
		return nil, errors.ErrUnsupported.Newf("control operation %s", op)
	}
}

func componentValue(value interface{}) (ComponentKey, error) {
	if value == nil {
		return nil, errors.ErrParamNull.New("component key")
	}
	k, ok := value.(ComponentKey)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "%T is not a component key", value)
	}
	return k, nil
}
