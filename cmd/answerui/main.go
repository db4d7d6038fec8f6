// Command answerui serves the chat answer renderer and renders answers
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/youssefsiam38/answerui/internal/logging"
	"go.uber.org/zap"
)

var (
	configFile string
	verbose    bool
	logger     *zap.Logger
)

func main() {
	rootCommand := &cobra.Command{
		Use:           "answerui",
		Short:         "Render chat answers with numbered citations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCommand.AddCommand(
		newServeCommand(),
		newRenderCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "answerui: %v\n", err)
		os.Exit(1)
	}
}
