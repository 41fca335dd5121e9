package cmd

import (
	"fmt"
	"net"

	"scrabble-devserver/core/browser"
	"scrabble-devserver/core/config"
	"scrabble-devserver/core/logger"
	"scrabble-devserver/core/server"

	"github.com/spf13/cobra"
)

// bootstrap holds the pieces runServer wires together. Tests swap it out to
// bind an ephemeral port, record browser launches and stop the accept loop.
type bootstrap struct {
	serverConfig func() server.Config
	opener       func() browser.Opener
	serve        func(srv *server.Server, ln net.Listener) error
}

var defaultBootstrap = bootstrap{
	serverConfig: server.DefaultConfig,
	opener:       func() browser.Opener { return browser.SystemOpener{} },
	serve:        (*server.Server).Serve,
}

func runServer(cmd *cobra.Command, openBrowser bool) error {
	return defaultBootstrap.run(cmd, openBrowser)
}

func (b bootstrap) run(cmd *cobra.Command, openBrowser bool) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logg.Sync()

	// 3. Bind
	srv := server.New(b.serverConfig(), logg)
	ln, err := srv.Bind()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), srv.StartupMessage())

	// 4. Browser, only once the socket is accepting
	if openBrowser {
		url := srv.Config().URL(browser.TargetPath)
		browser.NewLauncher(b.opener(), url, logg).Schedule()
	}

	// 5. Serve until killed
	return b.serve(srv, ln)
}
