package config

const (
	defaultOutputDir        = "docs/screenshots"
	defaultBezel            = "resources/bezel.png"
	defaultTemplate         = "standard"
	defaultScreenshotWidth  = 1206
	defaultScreenshotHeight = 2622
	defaultLanguage         = "en"
	defaultLogLevel         = "info"
	defaultLogFormat        = "auto"
	defaultListenAddr       = "127.0.0.1:8080"

	// DefaultFileName is looked up in the working directory when no path is given.
	DefaultFileName = "framed.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Project: Project{
			OutputDir:        defaultOutputDir,
			Bezel:            defaultBezel,
			Template:         defaultTemplate,
			ScreenshotWidth:  defaultScreenshotWidth,
			ScreenshotHeight: defaultScreenshotHeight,
			Languages:        []string{defaultLanguage},
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Server: Server{
			Listen: defaultListenAddr,
		},
	}
}
