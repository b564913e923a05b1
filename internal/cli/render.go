package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chtl/nametags/sheet"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	input      string // form file, "-" for stdin
	output     string // PDF file, "-" for stdout
	background bool   // force the background template on
}

func newRenderCmd(g *globals) *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a JSON form into a PDF sheet",
		Long: `Render reads a form such as

  {"labels": [{"title": "Sam Wolfson", "subtitle": "he/him", "print": true}]}

and writes a one-page PDF with every label marked for printing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, gen, err := g.setup()
			if err != nil {
				return err
			}

			data, err := readInput(cmd.InOrStdin(), opts.input)
			if err != nil {
				return err
			}
			form, err := sheet.Parse(data)
			if err != nil {
				return err
			}
			if opts.background {
				form.Background = true
			}

			var buf bytes.Buffer
			if err := sheet.RenderForm(cmd.Context(), &buf, gen, form); err != nil {
				return err
			}
			if err := writeOutput(cmd.OutOrStdout(), opts.output, buf.Bytes()); err != nil {
				return err
			}
			logger.Info("sheet written", "output", opts.output, "bytes", buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "form JSON file (\"-\" for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "nametags.pdf", "output PDF file (\"-\" for stdout)")
	cmd.Flags().BoolVar(&opts.background, "background", false, "draw the configured background template")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading form: %w", err)
	}
	return data, nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
