// Package browser opens the game page in the default browser shortly after
// the dev server starts.
//
// The Launcher is fire-and-forget: Schedule starts a timer and returns, the
// timer calls the Opener once, and any error ends up in the log rather than
// in the process exit status.
//
// # Usage
//
//	l := browser.NewLauncher(browser.SystemOpener{}, cfg.URL(browser.TargetPath), log)
//	l.Schedule()
package browser
