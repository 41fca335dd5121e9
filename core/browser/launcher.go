package browser

import (
	"io"
	"time"

	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"
)

const (
	// TargetPath is the page opened once the server is up.
	TargetPath = "build-web/pirate-scrabble.html"
	// DefaultDelay gives the server time to start accepting before the browser connects.
	DefaultDelay = time.Second
)

// Opener opens a URL in the user's browser.
type Opener interface {
	Open(url string) error
}

// The helper pkg/browser spawns (open, xdg-open, rundll32) inherits its
// Stdout; discard it so nothing interleaves with the server's startup line.
func init() {
	pkgbrowser.Stdout = io.Discard
}

// SystemOpener uses the host OS facility for opening URLs.
type SystemOpener struct{}

// Open implements Opener.
func (SystemOpener) Open(url string) error {
	return pkgbrowser.OpenURL(url)
}

// Launcher opens a fixed URL once, after a delay.
type Launcher struct {
	// Delay is how long Schedule waits before opening.
	Delay time.Duration

	opener Opener
	url    string
	log    *zap.Logger
}

// NewLauncher creates a launcher for url using DefaultDelay.
func NewLauncher(opener Opener, url string, log *zap.Logger) *Launcher {
	return &Launcher{
		Delay:  DefaultDelay,
		opener: opener,
		url:    url,
		log:    log,
	}
}

// URL returns the address the launcher opens.
func (l *Launcher) URL() string {
	return l.url
}

// Schedule arranges for the URL to be opened after Delay and returns
// immediately. The open happens exactly once; it is neither retried nor
// cancellable, and a failure is only logged.
func (l *Launcher) Schedule() {
	time.AfterFunc(l.Delay, l.open)
}

func (l *Launcher) open() {
	if err := l.opener.Open(l.url); err != nil {
		l.log.Warn("Failed to open browser", zap.String("url", l.url), zap.Error(err))
		return
	}
	l.log.Debug("Opened browser", zap.String("url", l.url))
}
