package cmd

import (
	"github.com/spf13/cobra"
)

// playCmd serves and opens the game in the default browser.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Serve and open the game in the default browser",
	Long: `Same as the root command, and additionally opens
http://localhost:8000/build-web/pirate-scrabble.html one second after start.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd, true)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
}
