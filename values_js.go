//go:build js

package mascui

import "syscall/js"

// SyscallJSValue is syscall/js.Value under WebAssembly.
type SyscallJSValue = js.Value

// NewObject returns a new JavaScript object holding props.
func NewObject(props map[string]interface{}) SyscallJSValue {
	return js.ValueOf(props)
}
