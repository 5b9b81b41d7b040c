// Package wm implements the albumdesk window manager core.
//
// The core is headless: it owns window lifecycle (spawn, focus, drag,
// minimize-to-taskbar, close), z-order and viewport-aware placement, and
// knows nothing about how windows are drawn. The app package renders the
// state held here and feeds pointer events back in.
//
// Everything runs on a single goroutine. Work that the UI would normally
// defer to a later event-loop turn (the measured re-clamp after attach, the
// removal after a close animation) is scheduled on a Loop and runs when the
// owner calls Manager.Tick.
//
// # Basic Usage
//
//	providers := wm.NewProviders()
//	_ = providers.Register("About", wm.ProviderFunc(buildAbout))
//
//	opts := wm.DefaultOptions()
//	opts.Providers = providers
//	m := wm.NewManager(opts)
//	m.SetViewport(120, 40)
//
//	m.Open("About")
//	m.Tick(time.Now())
package wm
