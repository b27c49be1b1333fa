package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reugn/go-calendar/calendar"
	"github.com/spf13/cobra"
)

type modifyFunc func(*calendar.Calendar, calendar.Moment, calendar.Field) (calendar.Moment, error)

func (a *app) modifyCmd(name, short string, modify modifyFunc) *cobra.Command {
	var fieldName string
	cmd := &cobra.Command{
		Use:   name + " [instant]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := calendar.ParseField(fieldName)
			if err != nil {
				return err
			}
			m, err := a.parseMoment(args[0])
			if err != nil {
				return err
			}
			result, err := modify(a.calendar, m, field)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatMoment(result))
			return nil
		},
	}
	cmd.Flags().StringVarP(&fieldName, "field", "f", "", "calendar field, e.g. DAY or HOUR_OF_DAY")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

func (a *app) fragmentCmd() *cobra.Command {
	var fieldName, unitName string
	cmd := &cobra.Command{
		Use:   "fragment [instant]",
		Short: "Count the units elapsed within a field",
		Long: `Prints the time carried by the fields less significant than --field, as a
whole number of --unit. For example the minutes fragment of 23:40 relative
to DAY is 1420.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := calendar.ParseField(fieldName)
			if err != nil {
				return err
			}
			unit, err := parseUnit(unitName)
			if err != nil {
				return err
			}
			m, err := a.parseMoment(args[0])
			if err != nil {
				return err
			}
			result, err := a.calendar.Fragment(m, field, unit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fieldName, "field", "f", "", "fragment field, e.g. DAY")
	cmd.Flags().StringVarP(&unitName, "unit", "u", "MILLISECOND", "unit: days, hours, minutes, seconds or milliseconds")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

// parseUnit accepts field names and their plurals, e.g. "minutes".
func parseUnit(name string) (calendar.Field, error) {
	unit, err := calendar.ParseField(name)
	if err == nil {
		return unit, nil
	}
	if singular, ok := strings.CutSuffix(strings.ToUpper(name), "S"); ok {
		if unit, err := calendar.ParseField(singular); err == nil {
			return unit, nil
		}
	}
	return unit, err
}

// parseMoment parses RFC 3339 values, local date-times in the calendar's
// location and epoch milliseconds.
func (a *app) parseMoment(value string) (calendar.Moment, error) {
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return a.calendar.FromEpochMilli(ms), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return a.calendar.ToMoment(t, t.Location())
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, a.calendar.Location()); err == nil {
			return a.calendar.ToMoment(t, nil)
		}
	}
	return calendar.Moment{}, fmt.Errorf("invalid instant: %q", value)
}

func (a *app) formatMoment(m calendar.Moment) string {
	if a.epoch {
		return strconv.FormatInt(m.EpochMilli(), 10)
	}
	return m.String()
}
