package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plazo/internal/app"
)

type contextKey string

const appKey contextKey = "plazo.app"

// WithApp returns a context carrying a prebuilt App. Commands executed with
// it use that App instead of loading configuration and opening a data source.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the App injected into ctx, or a new
// CLI built from configuration and opts.
func GetCLIFromContext(ctx context.Context, opts Options) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx, borrowed: true}, nil
	}
	return NewCLI(ctx, opts)
}

// FromCommand builds the CLI for a running cobra command, honouring the
// global --source and --data flags.
func FromCommand(cmd *cobra.Command) (*CLI, error) {
	return GetCLIFromContext(cmd.Context(), OptionsFromFlags(cmd))
}

// OptionsFromFlags reads the global data source flags. Missing flags read
// as empty, which keeps the configured source.
func OptionsFromFlags(cmd *cobra.Command) Options {
	source, _ := cmd.Flags().GetString("source")
	data, _ := cmd.Flags().GetString("data")
	return Options{Source: source, DataPath: data}
}
