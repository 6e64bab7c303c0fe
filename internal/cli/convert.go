package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dot2tikz/pkg/convert"
	"github.com/matzehuels/dot2tikz/pkg/errors"
	gio "github.com/matzehuels/dot2tikz/pkg/io"
	"github.com/matzehuels/dot2tikz/pkg/layout"
	"github.com/matzehuels/dot2tikz/pkg/pipeline"
)

// stdinPath names standard input as a command argument.
const stdinPath = "-"

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output  string          // output file; empty writes to stdout
	from    string          // input format: dot or json
	layout  string          // layout engine to run first; empty if the input is laid out
	noCache bool            // skip the layout cache
	refresh bool            // recompute cached layouts
	style   convert.Options // node/path styles and picture options
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a laid-out graph to a TikZ document",
		Long: `Convert a graph with layout positions to a standalone TikZ document.

The input is read from file, or from stdin when file is omitted or "-".
Positions normally come from running "dot -Tdot" beforehand; with --layout
the named Graphviz engine is run in-process instead and its result cached.`,
		Example: `  dot -Tdot graph.dot | dot2tikz convert -o graph.tex
  dot2tikz convert --layout neato graph.dot
  dot2tikz convert --from json --path-style "draw,->" graph.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stdinPath
			if len(args) == 1 {
				path = args[0]
			}
			c.applyConfig(&opts)
			c.applyLayoutConfig(&opts)
			return c.runConvert(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.from, "from", "", "input format: "+gio.FormatDOT+" (default), "+gio.FormatJSON)
	cmd.Flags().StringVar(&opts.layout, "layout", "", "run a layout engine first: "+strings.Join(layout.Engines(), ", "))
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached layouts")
	addStyleFlags(cmd, &opts.style)
	registerValueCompletions(cmd)

	return cmd
}

// addStyleFlags registers the styling flags shared by convert and demo.
func addStyleFlags(cmd *cobra.Command, style *convert.Options) {
	cmd.Flags().StringVar(&style.NodeStyle, "node-style", "", "TikZ options for node markers")
	cmd.Flags().StringVar(&style.PathStyle, "path-style", "", "TikZ options for edge paths")
	cmd.Flags().StringVar(&style.PictureOptions, "picture-options", "", "TikZ options for the tikzpicture environment")
}

// applyConfig fills options the user left empty from the config file.
func (c *CLI) applyConfig(opts *convertOpts) {
	cfg := c.config
	if cfg == nil {
		return
	}
	if opts.from == "" {
		opts.from = cfg.From
	}
	opts.noCache = opts.noCache || cfg.Cache.Disabled
	applyStyleConfig(&opts.style, cfg.Style)
}

// applyLayoutConfig sets the configured layout engine when --layout is
// absent. Only the convert command consults it; the bare root command always
// expects positioned input.
func (c *CLI) applyLayoutConfig(opts *convertOpts) {
	if c.config != nil && opts.layout == "" {
		opts.layout = c.config.Layout
	}
}

func applyStyleConfig(style *convert.Options, cfg convert.Options) {
	if style.NodeStyle == "" {
		style.NodeStyle = cfg.NodeStyle
	}
	if style.PathStyle == "" {
		style.PathStyle = cfg.PathStyle
	}
	if style.PictureOptions == "" {
		style.PictureOptions = cfg.PictureOptions
	}
}

// runConvert reads the graph at path, converts it and writes the document.
func (c *CLI) runConvert(ctx context.Context, path string, opts convertOpts) error {
	logger := loggerFromContext(ctx)
	st := startStage(ctx, "converted "+displayName(path))

	data, err := c.readInput(path)
	if err != nil {
		return err
	}
	logger.Debug("read input", "path", path, "bytes", len(data))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		From:    opts.from,
		Layout:  opts.layout,
		Refresh: opts.refresh,
		Style:   opts.style,
	}

	var spin *spinner
	if opts.output != "" && popts.NeedsLayout() {
		spin = startSpinner(ctx, os.Stderr, fmt.Sprintf("Running %s layout...", opts.layout))
	}
	result, err := runner.Execute(ctx, data, popts)
	if spin != nil {
		spin.stop()
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := io.WriteString(c.Stdout, result.Document+"\n")
		return err
	}

	if err := writeFile(opts.output, result.Document+"\n"); err != nil {
		return err
	}
	st.done("nodes", result.Stats.NodeCount, "paths", result.Stats.PathCount)
	printSuccess("Wrote TikZ document")
	printStats(result.Stats.NodeCount, result.Stats.PathCount, popts.NeedsLayout(), result.CacheInfo.LayoutHit)
	printFile(opts.output)
	return nil
}

func (c *CLI) readInput(path string) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(c.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func displayName(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return filepath.Base(path)
}

