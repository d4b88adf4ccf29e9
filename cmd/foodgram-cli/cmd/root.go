package cmd

import (
	"log/slog"
	"os"

	"github.com/nfrund/foodgram/internal/logging"
	"github.com/nfrund/foodgram/web/src/templates/layouts"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

// appFs is the filesystem commands write to; tests swap in a memory filesystem.
var appFs = afero.NewOsFs()

var (
	logLevel string
	baseURL  string
)

// printer formats command output numbers the way the site's readers
// write them, e.g. "12 345" for Russian.
func printer() *message.Printer {
	return message.NewPrinter(layouts.DocumentLanguage)
}

var rootCmd = &cobra.Command{
	Use:   "foodgram-cli",
	Short: "Foodgram site CLI",
	Long: `foodgram-cli renders and exports the Foodgram static pages.

Available commands:
  render     Render the technologies page as HTML
  export     Write the whole site as static files
  version    Print the CLI version

Use "foodgram-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), "text", logLevel))
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "address the site is hosted at, used for social preview links")
}
