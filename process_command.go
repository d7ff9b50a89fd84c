package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/framed-app/framed/internal/processor"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Render every configured screen and group",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.newApp(cmd)
			if err != nil {
				return err
			}
			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report, err := a.Process(runCtx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(report.Results) == 0 {
				fmt.Fprintln(out, "Nothing to render")
				return nil
			}
			fmt.Fprintf(out, "Run %s\n", report.RunID)
			fmt.Fprintln(out, report.Table())
			fmt.Fprintf(out, "%d generated, %d skipped, %d failed\n",
				report.Count(processor.StatusGenerated),
				report.Count(processor.StatusSkipped),
				report.Count(processor.StatusFailed))
			if n := report.Count(processor.StatusFailed); n > 0 {
				return fmt.Errorf("%d image(s) failed", n)
			}
			return nil
		},
	}
}
