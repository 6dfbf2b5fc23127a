package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-contact/pkg/loader"
	"github.com/goliatone/go-contact/pkg/orchestrator"
	"github.com/goliatone/go-contact/pkg/pageindex"
	"github.com/goliatone/go-contact/pkg/prompt"
	"github.com/goliatone/go-contact/pkg/render"
)

var (
	verbose bool

	contactID  string
	rendererID string
	outputPath string
	style      string
	cssVars    map[string]string
	bodyFormat string
	pageIndex  bool

	logger *zap.Logger

	newPromptDriver = func() prompt.PromptDriver {
		return prompt.NewSurveyDriver(os.Stderr)
	}
)

var rootCmd = &cobra.Command{
	Use:   "contact-cli",
	Short: "Render contact documents as HTML tables",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render contacts from a YAML/JSON file or directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Enter a contact interactively and render it",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	for _, cmd := range []*cobra.Command{renderCmd, newCmd} {
		cmd.Flags().StringVarP(&rendererID, "renderer", "r", "table", "renderer to use (table, vanilla)")
		cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (stdout if empty)")
		cmd.Flags().StringVar(&style, "style", "", "inline style for the table element")
		cmd.Flags().StringToStringVar(&cssVars, "css-var", nil, "theme CSS variables applied as inline style (name=value)")
		cmd.Flags().StringVar(&bodyFormat, "body", "", "body format: trusted, text, sanitized or markdown (default: per document)")
	}
	renderCmd.Flags().StringVar(&contactID, "id", "", "render only the contact with this id")
	renderCmd.Flags().BoolVar(&pageIndex, "page-index", true, "prefix table ids with the page position")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(newCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	store, err := loadStore(args[0])
	if err != nil {
		return err
	}
	if store.Empty() {
		return fmt.Errorf("no contacts found in %s", args[0])
	}
	logger.Debug("contacts loaded", zap.String("source", args[0]), zap.Int("count", len(store.Records())))

	gen := orchestrator.New(orchestrator.WithStore(store), orchestrator.WithLogger(logger))

	options := renderOptions()
	if !pageIndex {
		options.Indexer = pageindex.New()
	}

	var requests []orchestrator.Request
	if contactID != "" {
		requests = append(requests, orchestrator.Request{ContactID: contactID, BodyFormat: bodyFormat})
	} else {
		for _, record := range store.Records() {
			format := bodyFormat
			if format == "" {
				format = record.BodyFormat
			}
			requests = append(requests, orchestrator.Request{Contact: &record.Contact, BodyFormat: format})
		}
	}

	var fragments []string
	for _, req := range requests {
		req.Renderer = rendererID
		req.RenderOptions = options
		out, err := gen.Generate(ctx, req)
		if err != nil {
			return err
		}
		fragments = append(fragments, string(out))
	}

	return writeOutput(cmd.OutOrStdout(), strings.Join(fragments, "\n"))
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	builder := prompt.NewBuilder(
		prompt.WithDriver(newPromptDriver()),
		prompt.WithLogger(logger),
	)
	contact, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	gen := orchestrator.New(orchestrator.WithLogger(logger))
	out, err := gen.Generate(ctx, orchestrator.Request{
		Contact:       &contact,
		BodyFormat:    bodyFormat,
		Renderer:      rendererID,
		RenderOptions: renderOptions(),
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), string(out))
}

func loadStore(path string) (*loader.Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return loader.LoadFS(os.DirFS(path))
	}
	return loader.LoadFile(path)
}

func renderOptions() render.RenderOptions {
	options := render.RenderOptions{}
	if style != "" {
		options.Style = style
	}
	if len(cssVars) > 0 {
		options.Theme = &theme.RendererConfig{CSSVars: cssVars}
	}
	return options
}

func writeOutput(stdout io.Writer, html string) error {
	if outputPath == "" {
		_, err := fmt.Fprintln(stdout, html)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("contact table written", zap.String("path", outputPath))
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
