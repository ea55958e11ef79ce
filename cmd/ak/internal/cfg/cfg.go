// Package cfg contains common configuration variables.
package cfg

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"

	"github.com/rustemperor/assetkit/bitmap"
)

// DotEnv is the optional file with environment defaults, it is loaded before
// the variables below are initialised.
const DotEnv = ".env"

var _ = loadDotEnv(DotEnv)

var (
	TraceFile   string = osenv.Value("TRACE_FILE", "")
	LogFile     string = osenv.Value("LOG_FILE", "")
	JSONHandler bool   = osenv.Value("JSON_LOG", false)
	Verbose     bool   = osenv.Value("DEBUG", false)

	Dark   string = bitmap.Hex(bitmap.GoldAccent)
	Light  string = bitmap.Hex(bitmap.ParchmentLight)
	Levels int
	Dither string

	// Log is the logger of the running command, tagged with the command name
	// and the run id once the command starts.
	Log *slog.Logger = slog.Default()
)

type FlagMask uint16

const (
	DefaultFlags      FlagMask = 0
	OmitGradientFlags FlagMask = 1 << (iota - 1)

	OmitAll = OmitGradientFlags
)

// SetBaseFlags sets base flags.
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", TraceFile, "trace `filename`")
	fs.StringVar(&LogFile, "log", LogFile, "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JSONHandler, "log-json", JSONHandler, "log in JSON format")
	fs.BoolVar(&Verbose, "v", Verbose, "verbose messages")

	if mask&OmitGradientFlags == 0 {
		fs.StringVar(&Dark, "dark", Dark, "gradient `colour` for black pixels, hex")
		fs.StringVar(&Light, "light", Light, "gradient `colour` for white pixels, hex")
		fs.IntVar(&Levels, "levels", Levels, "quantise the gradient to `n` colours, 0 keeps it continuous")
		fs.StringVar(&Dither, "dither", Dither, fmt.Sprintf("dithering used with -levels, one of: %v", bitmap.AllDitherFunctions()))
	}
}

// SetDebugLevel enables debug messages of the default logger.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func loadDotEnv(filename string) error {
	if err := godotenv.Load(filename); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("unable to load environment file", "filename", filename, "error", err)
		}
		return err
	}
	return nil
}
