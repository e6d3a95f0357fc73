package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	renderTemplate    string
	renderFormat      string
	renderCoverLetter bool
	renderAll         bool
	renderPrint       bool
	renderOut         string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume or cover letter as HTML, Markdown or text",
	Long: `Renders the document with the active template (or --template). With --all
every template is rendered concurrently into the --out directory.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template: classic, modern or minimal (default: active)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html, markdown or text")
	renderCmd.Flags().BoolVar(&renderCoverLetter, "cover-letter", false, "Render the cover letter instead of the resume")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every template")
	renderCmd.Flags().BoolVar(&renderPrint, "print", false, "Use the print layout (no on-screen page frame)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (directory with --all); stdout when empty")
	rootCmd.AddCommand(renderCmd)
}

// formatExt maps output formats to file extensions.
var formatExt = map[string]string{
	"html":     "html",
	"markdown": "md",
	"text":     "txt",
}

func documentFor(coverLetter bool) rendering.Document {
	if coverLetter {
		return rendering.DocumentCoverLetter
	}
	return rendering.DocumentResume
}

// renderAs renders one document of data in format.
func renderAs(data types.AppData, which rendering.Document, id types.TemplateID, format string, printLayout bool) ([]byte, error) {
	n, err := rendering.RenderDocument(data, which, id)
	if err != nil {
		return nil, err
	}
	switch format {
	case "html":
		return rendering.Page(n, id, rendering.PageOptions{
			Title: data.Resume.PersonalInfo.FullName,
			Print: printLayout,
		})
	case "markdown":
		md, err := rendering.Markdown(n)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	case "text":
		return []byte(rendering.PlainText(n) + "\n"), nil
	default:
		return nil, fmt.Errorf("unknown format %q: must be html, markdown or text", format)
	}
}

func runRender(cmd *cobra.Command, _ []string) error {
	ext, ok := formatExt[renderFormat]
	if !ok {
		return fmt.Errorf("unknown format %q: must be html, markdown or text", renderFormat)
	}
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	which := documentFor(renderCoverLetter)

	if renderAll {
		if renderOut == "" {
			return fmt.Errorf("--out directory is required with --all")
		}
		return renderEveryTemplate(cmd, ws.Document(), which, ext)
	}

	id := ws.Template()
	if renderTemplate != "" {
		if id, err = types.ParseTemplateID(renderTemplate); err != nil {
			return err
		}
	}
	out, err := renderAs(ws.Document(), which, id, renderFormat, renderPrint)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", which, err)
	}
	if err := writeOutput(cmd.OutOrStdout(), renderOut, out); err != nil {
		return err
	}
	if renderOut != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s (%s) to %s\n", which, id, renderOut)
	}
	return nil
}

// renderEveryTemplate renders each template from its own copy of doc.
func renderEveryTemplate(cmd *cobra.Command, doc types.AppData, which rendering.Document, ext string) error {
	paths := make([]string, len(types.Templates))
	g, _ := errgroup.WithContext(cmd.Context())
	for i, t := range types.Templates {
		data := doc.Clone()
		g.Go(func() error {
			out, err := renderAs(data, which, t.ID, renderFormat, renderPrint)
			if err != nil {
				return fmt.Errorf("failed to render %s with %s: %w", which, t.ID, err)
			}
			path := filepath.Join(renderOut, fmt.Sprintf("%s-%s.%s", which, t.ID, ext))
			if err := writeOutput(nil, path, out); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, p := range paths {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", p)
	}
	return nil
}
