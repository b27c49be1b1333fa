// Command calendar performs calendar-field arithmetic from the command line.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/internal/config"
	"github.com/reugn/go-calendar/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by the commands of a single invocation.
type app struct {
	// Global flags
	configPath string
	location   string
	maxYear    int
	verbose    bool
	epoch      bool

	logger   *zap.Logger
	calendar *calendar.Calendar
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "calendar",
		Short: "Calendar-field arithmetic on instants",
		Long: `calendar truncates, rounds and computes ceilings of instants relative to a
calendar field, extracts fragments and compares instants.

Instants are RFC 3339 values (2021-03-15T23:40:10.500Z), local date-times
interpreted in the --tz location (2021-03-15T23:40:10), or integer
milliseconds since the Unix epoch.

Fields: YEAR, MONTH, DAY, HOUR_OF_DAY, MINUTE, SECOND, MILLISECOND.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path of the YAML configuration file")
	flags.StringVar(&a.location, "tz", "", "location of instants given without an offset (default UTC)")
	flags.IntVar(&a.maxYear, "max-year", 0, "year bound beyond which operations overflow")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.epoch, "epoch", false, "print moments as epoch milliseconds")

	rootCmd.AddCommand(
		a.modifyCmd("truncate", "Truncate an instant to a field", (*calendar.Calendar).Truncate),
		a.modifyCmd("ceiling", "Compute the ceiling of an instant at a field", (*calendar.Calendar).Ceiling),
		a.modifyCmd("round", "Round an instant to the nearest field boundary", (*calendar.Calendar).Round),
		a.fragmentCmd(),
		a.sameCmd(),
		fieldsCmd(),
	)
	return rootCmd
}

// init loads the configuration, applies the flag overrides and builds the
// logger and the calendar.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tz") {
		cfg.Location = a.location
	}
	if cmd.Flags().Changed("max-year") {
		cfg.MaxYear = a.maxYear
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.logger, err = cfg.Logging.BuildLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	opts, err := cfg.CalendarOptions(logger.NewZapLogger(a.logger).WithTrace(cfg.Logging.TraceEnabled()))
	if err != nil {
		return err
	}
	a.calendar, err = calendar.New(opts)
	if err != nil {
		return err
	}
	a.logger.Debug("Calendar configured",
		zap.String("location", opts.Location.String()),
		zap.Int("max_year", a.calendar.MaxYear()))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
