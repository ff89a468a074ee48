package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/mat-calc/internal/config"
	"github.com/iwvelando/mat-calc/internal/logging"
	"github.com/iwvelando/mat-calc/internal/matcalc"
	"github.com/iwvelando/mat-calc/pkg/constants"
	"github.com/iwvelando/mat-calc/pkg/output"
	"github.com/iwvelando/mat-calc/pkg/validation"
	"go.uber.org/zap"
)

type options struct {
	configLocation string
	configExplicit bool
	frameWidth     string
	frameHeight    string
	photoWidth     string
	photoHeight    string
	preset         string
	style          string
	outputFormat   string
	logLevel       string
	listStyles     bool
	listPresets    bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	flags := flag.NewFlagSet("mat-calc", flag.ContinueOnError)
	flags.StringVar(&opts.configLocation, "config", constants.DefaultConfigFile, "path to configuration file, or - for stdin")
	flags.StringVar(&opts.frameWidth, "frame-width", "", "interior frame width in mm")
	flags.StringVar(&opts.frameHeight, "frame-height", "", "interior frame height in mm")
	flags.StringVar(&opts.photoWidth, "photo-width", "", "photo width in mm")
	flags.StringVar(&opts.photoHeight, "photo-height", "", "photo height in mm")
	flags.StringVar(&opts.preset, "preset", "", "named frame and photo size, e.g. a4-frame")
	flags.StringVar(&opts.style, "style", "", "cutting style override: proportional, uniform, talon, panoramic, portrait")
	flags.StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.BoolVar(&opts.listStyles, "list-styles", false, "print the available styles and exit")
	flags.BoolVar(&opts.listPresets, "list-presets", false, "print the available presets and exit")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			opts.configExplicit = true
		}
	})
	return opts, nil
}

// loadConfiguration reads the config file, or stdin when the location is
// "-". A missing default file falls back to built-in defaults; a missing
// explicit file is an error.
func loadConfiguration(opts options, stdin io.Reader) (*config.Configuration, error) {
	if opts.configLocation == "-" {
		return config.LoadConfigurationFromReader(stdin)
	}
	conf, err := config.LoadConfiguration(opts.configLocation)
	if err != nil && !opts.configExplicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default()
	}
	return conf, err
}

// inputs resolves the frame and photo from the preset and explicit flags.
// Explicit flags win over preset values per dimension.
func inputs(conf *config.Configuration, opts options) (matcalc.Input, matcalc.Input, error) {
	frame := matcalc.Input{Width: opts.frameWidth, Height: opts.frameHeight}
	photo := matcalc.Input{Width: opts.photoWidth, Height: opts.photoHeight}

	if opts.preset == "" {
		return frame, photo, nil
	}

	preset, err := conf.LookupPreset(opts.preset)
	if err != nil {
		return frame, photo, err
	}
	if opts.frameWidth == "" {
		frame.Width = preset.Frame.Width
	}
	if opts.frameHeight == "" {
		frame.Height = preset.Frame.Height
	}
	if opts.photoWidth == "" {
		photo.Width = preset.Photo.Width
	}
	if opts.photoHeight == "" {
		photo.Height = preset.Photo.Height
	}
	return frame, photo, nil
}

// validateDimensions rejects dimension flags that do not start with a
// non-negative number.
func validateDimensions(opts options) error {
	dimensions := []struct {
		flag  string
		value string
	}{
		{"frame-width", opts.frameWidth},
		{"frame-height", opts.frameHeight},
		{"photo-width", opts.photoWidth},
		{"photo-height", opts.photoHeight},
	}
	for _, d := range dimensions {
		if !validation.ValidateDimensionText(d.value) {
			return fmt.Errorf("invalid -%s %q: expected a non-negative number of millimeters", d.flag, d.value)
		}
	}
	return nil
}

func writeResult(w io.Writer, format string, result matcalc.Result, warnings []string) error {
	switch format {
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, result)
	case constants.OutputFormatJSON:
		return output.JSONFormat(w, result, warnings)
	default:
		return output.PrettyFormat(w, result)
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}

	conf, err := loadConfiguration(opts, os.Stdin)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", opts.configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(conf.Logging, opts.logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if opts.listStyles {
		fmt.Println(strings.Join(matcalc.StyleNames(), "\n"))
		return
	}
	if opts.listPresets {
		presets := conf.AllPresets()
		for _, name := range config.PresetNames(presets) {
			p := presets[name]
			fmt.Printf("%s: frame %gx%g, photo %gx%g\n", name, p.Frame.Width, p.Frame.Height, p.Photo.Width, p.Photo.Height)
		}
		return
	}

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	style := conf.Calculation.Style
	if opts.style != "" {
		style = opts.style
	}
	var resultWarnings []string
	if !matcalc.Style(style).Known() {
		warning := validation.StyleWarning(style, matcalc.StyleNames())
		logger.Warn(warning,
			zap.String("op", "main"),
		)
		resultWarnings = append(resultWarnings, warning)
	}

	if err := validateDimensions(opts); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	frame, photo, err := inputs(conf, opts)
	if err != nil {
		logger.Fatal("failed to resolve preset",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	result := matcalc.Calculate(frame, photo, style)
	logger.Debug("calculation computed",
		zap.String("op", "main"),
		zap.String("style", style),
		zap.Bool("empty", result.IsEmpty()),
		zap.Strings("recommendations", recommendationStrings(result.Recommendations)),
	)

	if err := writeResult(os.Stdout, outputFormat, result, resultWarnings); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if calcErr := result.Err(); calcErr != nil {
		logger.Warn("calculation rejected",
			zap.String("op", "main"),
			zap.Error(calcErr),
		)
		_ = logger.Sync()
		os.Exit(constants.ExitPhotoTooLarge)
	}
}

func recommendationStrings(keys []matcalc.RecommendationKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
