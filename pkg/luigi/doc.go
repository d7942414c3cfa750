// Package luigi is a memory-safe binding to the Luigi immediate-mode style C toolkit.
//
// The toolkit owns every widget; this package hands out thin wrappers that check, on
// each call, that the native object behind them is still alive. A wrapper whose
// element, or any ancestor, was destroyed returns ErrDestroyed. Once the message loop
// returns, every wrapper returns ErrTerminated.
//
// Go closures never cross into native code. Event handlers are kept in a per-environment
// registry and the toolkit only sees a numeric slot ID, so a handler is always detached
// natively before it is released.
//
// Typical use:
//
//	env, err := luigi.Init()
//	if err != nil {
//		return err
//	}
//	win, err := luigi.NewWindow(env, "Hello", 0, 0, 0)
//	if err != nil {
//		return err
//	}
//	panel, _ := luigi.NewPanel(win, luigi.PanelGray|luigi.PanelMediumSpacing)
//	label, _ := luigi.NewLabel(panel, 0, "Hello, world")
//	button, _ := luigi.NewButton(panel, 0, "Press me")
//	_ = button.OnClick(func() { _ = label.SetContent("Pressed") })
//	os.Exit(env.MessageLoop())
//
// Init, MessageLoop and every wrapper method must run on the same goroutine. Contract
// violations that cannot be recovered from (initialising twice, entering the loop
// before Init or re-entering it) panic with the matching sentinel error.
package luigi
