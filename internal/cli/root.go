package cli

import (
	"context"
	stderrors "errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/livalex/egraph/pkg/buildinfo"
	"github.com/livalex/egraph/pkg/errors"
)

// Execute runs the egraph CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree. The
// logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "egraph",
		Short:         "egraph reasons over Peirce's Existential Graphs",
		Long:          `egraph parses the bracket notation for Existential Graphs and applies Peirce's structural inference rules: double-cut removal, erasure, and deiteration.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			c := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfigPath(c, configPath))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/egraph/config.toml)")

	root.AddCommand(newParseCmd())
	root.AddCommand(newSitesCmd())
	root.AddCommand(newApplyCmd())
	root.AddCommand(newProveCmd())
	root.AddCommand(newStoreCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		if !stderrors.Is(err, context.Canceled) {
			printError("%s", errors.UserMessage(err))
		}
		return err
	}
	return nil
}

// configPathKey is the context key for the --config flag value.
const configPathKey ctxKey = 1

func withConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey, path)
}

func configPathFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(configPathKey).(string); ok {
		return p
	}
	return ""
}
