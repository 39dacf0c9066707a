// Command png2bitmap converts an image into a 1-bit monochrome bitmap header
// for embedded displays.
//
// Usage:
//
//	png2bitmap [flags] <input.png> <output.h> <var_name> <width> <height> [invert]
//
// Example:
//
//	png2bitmap mountain-logo.png mountain_logo_bitmap.h MOUNTAIN_LOGO 220 160 true
//
// With -config, every bitmap listed in a YAML manifest is generated instead:
//
//	png2bitmap -config bitmaps.yaml
//
// With -watch, headers are regenerated whenever their input image changes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/flavioheleno/monobitmap"
	"github.com/flavioheleno/monobitmap/config"
	"github.com/flavioheleno/monobitmap/watcher"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("png2bitmap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML manifest listing the bitmaps to generate")
	watch := fs.Bool("watch", false, "Regenerate headers when input images change")
	quiet := fs.Bool("q", false, "Only report errors")
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logger := log.New(stdout, "", 0)
	if *quiet {
		logger.SetOutput(io.Discard)
	}

	var jobs []monobitmap.Job
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		jobs = cfg.Jobs()
	} else {
		job, err := parseArgs(fs.Args())
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n\n", err)
			fs.Usage()
			return 1
		}
		jobs = []monobitmap.Job{job}
	}

	for _, j := range jobs {
		if _, err := monobitmap.Run(j, logger); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if *watch {
		if err := watchJobs(jobs, logger, stderr); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// parseArgs builds a job from the positional arguments.
func parseArgs(args []string) (monobitmap.Job, error) {
	if len(args) < 5 {
		return monobitmap.Job{}, fmt.Errorf("%w: expected at least 5 arguments, got %d", monobitmap.ErrUsage, len(args))
	}

	width, err := strconv.Atoi(args[3])
	if err != nil {
		return monobitmap.Job{}, fmt.Errorf("%w: invalid width %q", monobitmap.ErrUsage, args[3])
	}
	height, err := strconv.Atoi(args[4])
	if err != nil {
		return monobitmap.Job{}, fmt.Errorf("%w: invalid height %q", monobitmap.ErrUsage, args[4])
	}

	invert := true
	if len(args) > 5 {
		invert = parseInvert(args[5])
	}

	job := monobitmap.Job{
		Input:  args[0],
		Output: args[1],
		Name:   args[2],
		Width:  width,
		Height: height,
		Invert: invert,
	}
	return job, job.Validate()
}

// parseInvert reports whether s is one of true, 1, yes or y, ignoring case.
func parseInvert(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: png2bitmap [flags] <input.png> <output.h> <var_name> <width> <height> [invert]\n")
	fmt.Fprintf(w, "\nExample:\n")
	fmt.Fprintf(w, "  png2bitmap mountain-logo.png mountain_logo_bitmap.h MOUNTAIN_LOGO 220 160 true\n")
	fmt.Fprintf(w, "\nArguments:\n")
	fmt.Fprintf(w, "  input.png  - Input image file path\n")
	fmt.Fprintf(w, "  output.h   - Output header file path\n")
	fmt.Fprintf(w, "  var_name   - Variable name prefix (e.g., MOUNTAIN_LOGO)\n")
	fmt.Fprintf(w, "  width      - Target width in pixels\n")
	fmt.Fprintf(w, "  height     - Target height in pixels\n")
	fmt.Fprintf(w, "  invert     - Optional: 'true' to invert colors (default: true)\n")
	fmt.Fprintf(w, "\nFlags:\n")
	fs.PrintDefaults()
}

// watchJobs regenerates headers on input changes until SIGINT or SIGTERM.
func watchJobs(jobs []monobitmap.Job, logger *log.Logger, stderr io.Writer) error {
	errLog := log.New(stderr, "", log.LstdFlags)
	w, err := watcher.New(jobs, func(j monobitmap.Job) {
		if _, err := monobitmap.Run(j, logger); err != nil {
			errLog.Printf("Error: %v", err)
		}
	}, logger)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}

	logger.Println("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Println("Shutting down...")
	return w.Stop()
}
