package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/framed-app/framed/internal/app"
	"github.com/framed-app/framed/internal/config"
	"github.com/framed-app/framed/internal/processor"
	"github.com/framed-app/framed/internal/render"
)

type sampleOptions struct {
	RawDir   string
	OutDir   string
	Template string // empty renders every template
	Lang     string
}

func newSamplesCommand(ctx *commandContext) *cobra.Command {
	var opts sampleOptions

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Render a directory of raw screenshots with every template",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.newApp(cmd)
			if err != nil {
				return err
			}
			n, err := generateSamples(cmd.Context(), a, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d sample image(s) in %s\n", n, opts.OutDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.RawDir, "raws", "sample_raws", "Directory of raw PNG screenshots")
	cmd.Flags().StringVar(&opts.OutDir, "out", "samples", "Directory receiving one subdirectory per template")
	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "Render this template only")
	cmd.Flags().StringVar(&opts.Lang, "lang", "", "Language of the text (default: first project language)")
	return cmd
}

// generateSamples renders every PNG in opts.RawDir with each template and,
// for group-aware templates, one group image of all of them. Screens
// configured under the same key keep their text; others are titled by key.
func generateSamples(ctx context.Context, a *app.App, opts sampleOptions, out io.Writer) (int, error) {
	variants := render.Variants()
	if opts.Template != "" {
		v, ok := render.ParseVariant(opts.Template)
		if !ok {
			return 0, fmt.Errorf("unknown template %q", opts.Template)
		}
		variants = []render.Variant{v}
	}

	keys, err := rawKeys(opts.RawDir)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, fmt.Errorf("no PNG screenshots in %s", opts.RawDir)
	}
	if err := a.Processor.LoadAssets(); err != nil {
		return 0, err
	}

	lang := opts.Lang
	if lang == "" {
		lang = a.Config.Project.Languages[0]
	}
	src := processor.DirLoader{Dir: opts.RawDir}
	screens := make([]config.Screen, len(keys))
	for i, key := range keys {
		screen, _, ok := a.Config.Screen(key)
		if !ok {
			screen = config.Screen{Key: key, Overlay: config.Overlay{Title: key}}
		}
		screens[i] = screen
	}

	generated := 0
	for _, v := range variants {
		dir := filepath.Join(opts.OutDir, v.String())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return generated, fmt.Errorf("create %s: %w", dir, err)
		}
		fmt.Fprintf(out, "%s...\n", v)
		for i, screen := range screens {
			if err := ctx.Err(); err != nil {
				return generated, err
			}
			img, err := a.Processor.RenderScreen(screen, src, lang, v, i, len(screens))
			if err != nil {
				return generated, fmt.Errorf("%s: %s: %w", v, screen.Key, err)
			}
			if err := imaging.Save(img, filepath.Join(dir, processor.OutputName(screen.Key, i+1))); err != nil {
				return generated, err
			}
			generated++
		}
		if !v.GroupAware() {
			continue
		}
		group := config.Group{Output: "group.png", Screens: keys, Template: v.String()}
		img, err := a.Processor.RenderGroup(ctx, group, src, lang)
		if err != nil {
			return generated, fmt.Errorf("%s: group: %w", v, err)
		}
		if err := imaging.Save(img, filepath.Join(dir, group.Output)); err != nil {
			return generated, err
		}
		generated++
	}
	return generated, nil
}

// rawKeys lists the PNG files of dir by name without extension.
func rawKeys(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".png" {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	return keys, nil
}
