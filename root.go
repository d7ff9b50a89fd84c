package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const envStdioLog = "FRAMED_STDIO_LOG"

func newRootCommand() *cobra.Command {
	var configFlag string
	var stdioLog string
	var logFile string

	ctx := newCommandContext(&configFlag)
	ctx.logFile = &logFile

	rootCmd := &cobra.Command{
		Use:           "framed",
		Short:         "Render app store screenshots from raw captures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Redirect first so panics while loading config land in the file.
			logPath := strings.TrimSpace(stdioLog)
			if logPath == "" {
				logPath = os.Getenv(envStdioLog)
			}
			if logPath != "" {
				if err := redirectStdIO(logPath); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "stdio log redirect error:", err)
				}
			}
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Project file path (default ./framed.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append plain log lines to this file")
	rootCmd.PersistentFlags().StringVar(&stdioLog, "stdio-log", "", "Redirect stdout and stderr, including panics, to this file; also "+envStdioLog)

	rootCmd.AddCommand(newProcessCommand(ctx))
	rootCmd.AddCommand(newTemplatesCommand())
	rootCmd.AddCommand(newTemplateHelpCommand())
	rootCmd.AddCommand(newSamplesCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
