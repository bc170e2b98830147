//go:build !js

package mascui

import (
	"fmt"
	"strconv"
)

// scalar is a primitive JavaScript value held as a Go string, bool or
// float64.
type scalar struct{ v interface{} }

func (s scalar) String() string {
	if str, ok := s.v.(string); ok {
		return str
	}
	return fmt.Sprint(s.v)
}

// Truthy follows JavaScript: "", false and 0 are falsy.
func (s scalar) Truthy() bool {
	switch v := s.v.(type) {
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	}
	return false
}

func (s scalar) Bool() bool { return s.Truthy() }

func (s scalar) Float() float64 {
	switch v := s.v.(type) {
	case bool:
		if v {
			return 1
		}
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

func (s scalar) Int() int { return int(s.Float()) }

func (s scalar) Equal(o jsObject) bool {
	other, ok := o.(scalar)
	return ok && s.v == other.v
}

func (scalar) Set(string, interface{})              {}
func (scalar) Get(string) jsObject                  { return nil }
func (scalar) Delete(string)                        {}
func (scalar) Call(string, ...interface{}) jsObject { return nil }
func (scalar) IsUndefined() bool                    { return false }

// object is a plain JavaScript object backed by a Go map.
type object struct {
	props map[string]interface{}
}

// NewObject constructs a synthetic JavaScript object for native builds, e.g.
// to hand a fake event to a listener in tests.
func NewObject(props map[string]interface{}) SyscallJSValue {
	obj := &object{props: make(map[string]interface{}, len(props))}
	for k, v := range props {
		obj.Set(k, v)
	}
	return SyscallJSValue(obj)
}

func (o *object) Set(key string, value interface{}) { o.props[key] = value }
func (o *object) Delete(key string)                 { delete(o.props, key) }

func (o *object) Get(key string) jsObject {
	v, ok := o.props[key]
	if !ok {
		return nil
	}
	return toValue(v)
}

func (o *object) Equal(other jsObject) bool {
	p, ok := other.(*object)
	return ok && o == p
}

func (o *object) String() string                     { return "[object Object]" }
func (*object) Call(string, ...interface{}) jsObject { return nil }
func (*object) Truthy() bool                         { return true }
func (*object) IsUndefined() bool                    { return false }
func (*object) Bool() bool                           { return true }
func (*object) Int() int                             { return 0 }
func (*object) Float() float64                       { return 0 }

// toValue converts a Go value to its JavaScript counterpart.
func toValue(v interface{}) jsObject {
	switch v := v.(type) {
	case nil:
		return nil
	case jsObject:
		return v
	case string, bool, float64:
		return scalar{v}
	case int:
		return scalar{float64(v)}
	case int32:
		return scalar{float64(v)}
	case int64:
		return scalar{float64(v)}
	case float32:
		return scalar{float64(v)}
	case map[string]interface{}:
		return NewObject(v)
	}
	return scalar{fmt.Sprint(v)}
}
