package main

import "runtime/debug"

func enableCrashForensics() {
	debug.SetTraceback("crash")
}
