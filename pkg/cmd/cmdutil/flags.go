package cmdutil

import (
	"time"

	"github.com/spf13/pflag"
)

// PersistentFlags defines the flags shared by the commands that read bar files.
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "", "indicator preset file (yaml)")
	flags.String("csv-format", "binance", "bar file format: binance or metatrader")
	flags.Duration("interval", 24*time.Hour, "bar interval")
}
