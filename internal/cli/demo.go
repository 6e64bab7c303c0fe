package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dot2tikz/pkg/convert"
	"github.com/matzehuels/dot2tikz/pkg/demo"
)

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	rim    int             // number of rim nodes
	output string          // output file, "-" for stdout
	style  convert.Options // node/path styles and picture options
}

// demoCommand creates the demo command, which draws a wheel without any input.
func (c *CLI) demoCommand() *cobra.Command {
	opts := demoOpts{
		rim:    demo.DefaultRim,
		output: demo.DefaultOutput,
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a sample wheel drawing",
		Long: `Write a TikZ drawing of a wheel: k nodes on the unit circle joined by a
closed rim, with a spoke from each node in the first half to the node
opposite it. Useful for checking a TeX installation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyStyleConfig(&opts.style, c.config.Style)
			return c.runDemo(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.rim, "rim", "k", opts.rim, "number of rim nodes")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, `output file ("-" for stdout)`)
	addStyleFlags(cmd, &opts.style)

	return cmd
}

func (c *CLI) runDemo(ctx context.Context, opts demoOpts) error {
	logger := loggerFromContext(ctx)

	f, err := demo.Wheel(opts.rim, opts.style)
	if err != nil {
		return err
	}
	logger.Debug("built wheel", "nodes", f.NodeCount(), "paths", f.PathCount())

	if opts.output == stdinPath {
		_, err := f.WriteTo(c.Stdout)
		return err
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	if _, err := f.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opts.output, err)
	}

	printSuccess("Wrote %d-node wheel", opts.rim)
	printFile(opts.output)
	return nil
}
