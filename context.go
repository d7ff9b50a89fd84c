package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/framed-app/framed/internal/app"
	"github.com/framed-app/framed/internal/config"
	"github.com/framed-app/framed/internal/logging"
)

type commandContext struct {
	configFlag *string
	logFile    *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
	exists     bool

	closers []io.Closer
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) flagPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.flagPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.exists = exists
	})
	return c.config, c.configErr
}

// newApp builds the application with logs written to the command's stderr.
func (c *commandContext) newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := app.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if path := c.logFilePath(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		c.closers = append(c.closers, f)
		logger = logging.Tee{logger, logging.NewFileLogger(f)}
	}
	if !c.exists {
		logger.Infof("config", "%s not found, using defaults", c.configPath)
	}
	return app.New(cfg, logger)
}

func (c *commandContext) logFilePath() string {
	if c.logFile == nil {
		return ""
	}
	return strings.TrimSpace(*c.logFile)
}

// close releases files opened for the command.
func (c *commandContext) close() {
	for _, cl := range c.closers {
		_ = cl.Close()
	}
	c.closers = nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
