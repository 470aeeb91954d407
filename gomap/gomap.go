package gomap

import (
	"reflect"
	"sync"

	"github.com/bmsexpr/bms/debug"
	"github.com/bmsexpr/bms/ir"
)

// Codec converts values of type T to and from IR nodes.
type Codec[T any] interface {
	Serialize(v T) *ir.Node
	Deserialize(n *ir.Node) (T, error)
}

// CodecFuncs builds a Codec from a pair of functions.
type CodecFuncs[T any] struct {
	To   func(T) *ir.Node
	From func(*ir.Node) (T, error)
}

func (c CodecFuncs[T]) Serialize(v T) *ir.Node             { return c.To(v) }
func (c CodecFuncs[T]) Deserialize(n *ir.Node) (T, error) { return c.From(n) }

// Marshaler is implemented by types which produce their own node.
type Marshaler interface {
	ToSExpr() (*ir.Node, error)
}

// Unmarshaler is implemented by pointers to types which read themselves
// from a node.
type Unmarshaler interface {
	FromSExpr(*ir.Node) error
}

var (
	mu     sync.RWMutex
	codecs = map[reflect.Type]any{}
)

// Register sets the codec used for T, replacing any previous one.
func Register[T any](c Codec[T]) {
	mu.Lock()
	defer mu.Unlock()
	codecs[reflect.TypeFor[T]()] = c
}

// Lookup returns the codec registered for T.
func Lookup[T any]() (Codec[T], bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := codecs[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return c.(Codec[T]), true
}

// Serialize converts v to a node.
func Serialize[T any](v T) (*ir.Node, error) {
	if c, ok := Lookup[T](); ok {
		return c.Serialize(v), nil
	}
	if m, ok := any(v).(Marshaler); ok {
		return m.ToSExpr()
	}
	return nil, &UnregisteredError{Type: reflect.TypeFor[T]()}
}

// Deserialize converts n to a value of type T.
func Deserialize[T any](n *ir.Node) (T, error) {
	var v T
	var err error
	if c, ok := Lookup[T](); ok {
		v, err = c.Deserialize(n)
	} else if u, ok := any(&v).(Unmarshaler); ok {
		err = u.FromSExpr(n)
	} else {
		err = &UnregisteredError{Type: reflect.TypeFor[T]()}
	}
	if err != nil {
		if debug.GoMap() {
			debug.Logf("gomap: %v reading %v", err, n)
		}
		var zero T
		return zero, err
	}
	return v, nil
}

// MustDeserialize is like Deserialize but panics on error.
func MustDeserialize[T any](n *ir.Node) T {
	v, err := Deserialize[T](n)
	if err != nil {
		panic(err)
	}
	return v
}

// Append serializes v and appends it to list, returning the stored node.
func Append[T any](list *ir.Node, v T) (*ir.Node, error) {
	n, err := Serialize(v)
	if err != nil {
		return nil, err
	}
	return list.AppendChild(n), nil
}

// AppendNamed appends (name <v>) to list and returns the new named list.
func AppendNamed[T any](list *ir.Node, name string, v T) (*ir.Node, error) {
	n, err := Serialize(v)
	if err != nil {
		return nil, err
	}
	res := list.AppendList(name)
	res.AppendChild(n)
	return res, nil
}

// MustAppend is like Append but panics on error. It suits Serialize methods
// whose field types are known to be registered.
func MustAppend[T any](list *ir.Node, v T) *ir.Node {
	n, err := Append(list, v)
	if err != nil {
		panic(err)
	}
	return n
}

// MustAppendNamed is like AppendNamed but panics on error.
func MustAppendNamed[T any](list *ir.Node, name string, v T) *ir.Node {
	n, err := AppendNamed(list, name, v)
	if err != nil {
		panic(err)
	}
	return n
}
