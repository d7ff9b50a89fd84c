package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framed-app/framed/internal/render"
)

func newTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "templates",
		Short:       "List the available templates",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(render.Variants()))
			for _, v := range render.Variants() {
				rows = append(rows, []string{v.String(), yesNo(v.GroupAware()), v.Description()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Template", "Groups", "Description"}, rows, nil))
			return nil
		},
	}
}

func newTemplateHelpCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:         "template-help",
		Short:       "Show the settings a template accepts",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := render.ParseVariant(name)
			if !ok {
				return fmt.Errorf("unknown template %q", name)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Template: %s\n", v)
			fmt.Fprintf(out, "  %s\n\n", v.Description())
			fmt.Fprintln(out, "Settings (template_settings, screens, groups):")
			rows := [][]string{
				{"title", "", "string or table of language tag to string"},
				{"subtitle", "", "string or table of language tag to string"},
			}
			for _, kv := range v.Defaults().Fields() {
				rows = append(rows, []string{kv[0], kv[1], ""})
			}
			fmt.Fprintln(out, renderTable([]string{"Key", "Default", "Notes"}, rows, nil))
			l := v.Layout()
			fmt.Fprintf(out, "Output %dx%d, canvas %dx%d\n", l.Output.X, l.Output.Y, l.Canvas.X, l.Canvas.Y)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "standard", "Template to inspect")
	return cmd
}
