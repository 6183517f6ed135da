package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvOutDir     = "PWAGEN_OUT"
	EnvFont       = "PWAGEN_FONT"
	EnvInstallURL = "PWAGEN_INSTALL_URL"
	EnvPreviewFB  = "PWAGEN_PREVIEW_FB"
	EnvStdioLog   = "PWAGEN_STDIO_LOG"
	EnvDebug      = "PWAGEN_DEBUG"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Config contains settings for a generation run.
//
// Every field is optional: the zero Config writes icons/ and screenshots/
// into the working directory with the bundled font.
type Config struct {
	// OutDir is the root that icons/ and screenshots/ are created in.
	OutDir string
	// FontPath selects a TrueType file for labels instead of the bundled font.
	FontPath string
	// InstallURL, when set, is drawn as a QR code on every screenshot.
	InstallURL string
	// PreviewFB names a framebuffer device that shows each asset as it is saved.
	PreviewFB string
}

// Settings is everything the command line configures: the generator Config
// plus process options the command handles before a run starts.
type Settings struct {
	Config
	// StdioLog receives progress, the debug log and stderr when set.
	StdioLog string
	Debug    bool
}

// LoadSettings resolves defaults, then env files (DefaultEnvFile when none
// are given; missing files are ignored), then the process environment.
func LoadSettings(defaultOutDir string, envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	fileValues := map[string]string{}
	for _, path := range envFiles {
		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Settings{}, fmt.Errorf("read %s: %w", path, err)
		}
		for key, value := range values {
			fileValues[key] = value
		}
	}
	lookup := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fileValues[key]
	}

	cfg := Settings{
		Config: Config{
			OutDir:     lookup(EnvOutDir),
			FontPath:   lookup(EnvFont),
			InstallURL: lookup(EnvInstallURL),
			PreviewFB:  lookup(EnvPreviewFB),
		},
		StdioLog: lookup(EnvStdioLog),
	}
	if cfg.OutDir == "" {
		cfg.OutDir = defaultOutDir
	}
	if raw := lookup(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}
	return cfg, nil
}
