//go:build !linux && !windows

package ffi

// The toolkit ships only a Windows backend and a Linux/X11 backend.
var _ = luigiRequiresLinuxOrWindows
