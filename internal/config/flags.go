package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagFile   = flag.String("file", "", "Particle effect file to open")
	flagWidth  = flag.Int("width", 0, "Window width")
	flagHeight = flag.Int("height", 0, "Window height")
	flagMute   = flag.Bool("mute", false, "Disable sound cues")
	flagAuto   = flag.Bool("automation", false, "Enable the command-file automation interface")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFile != "" {
		cfg.Editor.OpenFile = *flagFile
	} else if flag.NArg() > 0 {
		cfg.Editor.OpenFile = flag.Arg(0)
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagMute {
		cfg.Audio.Cues = false
	}
	if *flagAuto {
		cfg.Automation.Enabled = true
	}
}
