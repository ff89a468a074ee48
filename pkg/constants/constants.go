// Package constants provides shared constants for the mat-calc application.
package constants

// Style name constants
const (
	StyleProportional = "proportional"
	StyleUniform      = "uniform"
	StyleTalon        = "talon"
	StylePanoramic    = "panoramic"
	StylePortrait     = "portrait"

	// DefaultStyle is used when no style is configured. Unknown styles also
	// behave like this one.
	DefaultStyle = StyleProportional
)

// Style ratios
const (
	// TalonTopRatio is the share of vertical space given to the top margin in talon style.
	TalonTopRatio = 0.4

	// TalonBottomRatio is the share of vertical space given to the bottom margin in talon style.
	TalonBottomRatio = 0.6

	// NarrowRatio is the per-side share of the narrowed axis in panoramic and portrait styles.
	NarrowRatio = 0.3
)

// Recommendation thresholds, all in millimeters
const (
	// SmallMarginThreshold is the average margin below which margins are considered small.
	SmallMarginThreshold = 2.0

	// GenerousMarginThreshold is the average margin above which margins are considered generous.
	GenerousMarginThreshold = 10.0

	// BalanceTolerance is the maximum difference between opposite sides for balanced margins.
	BalanceTolerance = 0.1

	// OptimalMinimumMargin is the smallest side width for optimal dimensions.
	OptimalMinimumMargin = 3.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "mat-calc.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "MATCALC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)

// Exit codes for the CLI
const (
	// ExitPhotoTooLarge is returned when the photo does not fit inside the frame.
	ExitPhotoTooLarge = 2
)
