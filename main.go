package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/orientalgrid-web/sos-guardian-pro/internal/app"
)

const debugLogPath = "./pwagen-debug.log"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run generates the asset set and returns the process exit code: 0 on
// success, 1 when generation fails, 2 for bad configuration.
func run(args []string, stdout io.Writer) int {
	settings, err := app.LoadSettings(".")
	if err != nil {
		fmt.Fprintln(stdout, "config error:", err)
		return 2
	}

	// Flags
	flags := flag.NewFlagSet("pwagen", flag.ContinueOnError)
	flags.SetOutput(stdout)
	outDir := flags.String("out", settings.OutDir, "output root for icons/ and screenshots/; also configurable via "+app.EnvOutDir)
	fontPath := flags.String("font", settings.FontPath, "TrueType font for labels (default: bundled Go Regular); also configurable via "+app.EnvFont)
	installURL := flags.String("install-url", settings.InstallURL, "draw a QR code for this URL on screenshots; also configurable via "+app.EnvInstallURL)
	previewFB := flags.String("preview-fb", settings.PreviewFB, "show each asset on this framebuffer device, e.g. /dev/fb0; also configurable via "+app.EnvPreviewFB)
	stdioLog := flags.String("stdio-log", settings.StdioLog, "write progress, debug log and stderr (including panics) to this file; also configurable via "+app.EnvStdioLog)
	debug := flags.Bool("debug", settings.Debug, "enable debug logging to "+debugLogPath+" (or the -stdio-log file); also configurable via "+app.EnvDebug)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// Unattended builds (CI, image builds) keep everything in one file.
	out := stdout
	var logFile *os.File
	if *stdioLog != "" {
		f, err := openStdioLog(*stdioLog)
		if err != nil {
			fmt.Fprintln(stdout, "stdio log error:", err)
		} else {
			defer f.Close()
			out, logFile = f, f
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		switch {
		case logFile != nil:
			logger = app.NewFileLogger(logFile)
		default:
			f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				fmt.Fprintln(out, "debug log open error:", err)
				break
			}
			defer f.Close()
			logger = app.NewFileLogger(f)
		}
		logger.Infof("main", "debug logging enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := app.New(app.Config{
		OutDir:     *outDir,
		FontPath:   *fontPath,
		InstallURL: *installURL,
		PreviewFB:  *previewFB,
	})
	generator.Logger = logger
	generator.Out = out
	defer generator.Close()

	// The preview is a convenience; a missing device never stops the build.
	if *previewFB != "" {
		if err := generator.OpenPreview(); err != nil {
			logger.Warnf("fb", "preview disabled: %v", err)
			fmt.Fprintln(out, "preview error:", err)
		}
	}

	if _, err := generator.Run(ctx); err != nil {
		fmt.Fprintln(out, "pwagen:", err)
		return 1
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "✅ All files created successfully!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To use:")
	fmt.Fprintln(out, "1. Install Go 1.24 or newer")
	fmt.Fprintln(out, "2. Run: go run . -out <web root>")
	return 0
}
