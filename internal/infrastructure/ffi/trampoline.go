package ffi

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/bnema/goluigi/pkg/luigi/native"
)

// The toolkit calls back through exactly three fixed entry points. purego callbacks are
// never freed, so they are created once per process and dispatch on the context value.
var (
	trampolineOnce       sync.Once
	invokeTrampolinePtr  uintptr
	tableTrampolinePtr   uintptr
	destroyTrampolinePtr uintptr

	// dispatcher is only read on the message-loop thread.
	dispatcher native.Dispatcher
)

func trampolines() (invoke, table uintptr) {
	trampolineOnce.Do(func() {
		invokeTrampolinePtr = purego.NewCallback(invokeTrampoline)
		tableTrampolinePtr = purego.NewCallback(tableItemTrampoline)
		destroyTrampolinePtr = purego.NewCallback(destroyedTrampoline)
	})
	return invokeTrampolinePtr, tableTrampolinePtr
}

func destroyHook() uintptr {
	trampolines()
	return destroyTrampolinePtr
}

// invokeTrampoline matches void (*)(void *cp).
func invokeTrampoline(cp uintptr) uintptr {
	if d := dispatcher; d != nil {
		d.DispatchInvoke(native.Context(cp))
	}
	return 0
}

// tableItemTrampoline matches
// int (*)(void *cp, int index, int column, int selected, char *buffer, size_t capacity)
// and returns the number of bytes written into buffer.
func tableItemTrampoline(cp, index, column, selected, buffer, capacity uintptr) uintptr {
	d := dispatcher
	if d == nil || buffer == 0 || capacity == 0 {
		return 0
	}
	text := d.DispatchTableItem(native.Context(cp), native.TableItemRequest{
		Index:    int(int32(index)),
		Column:   int(int32(column)),
		Selected: int32(selected) != 0,
	})
	// buffer is C memory owned by the toolkit for the duration of the call.
	dst := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), capacity)
	return uintptr(copy(dst, text))
}

// destroyedTrampoline matches void (*)(void *element).
func destroyedTrampoline(element uintptr) uintptr {
	if d := dispatcher; d != nil && element != 0 {
		d.DispatchDestroyed(native.Handle(element))
	}
	return 0
}
