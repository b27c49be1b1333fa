package main

import (
	"fmt"

	"github.com/reugn/go-calendar/calendar"
	"github.com/spf13/cobra"
)

type predicateFunc func(c *calendar.Calendar, a, b calendar.Moment) (bool, error)

func (a *app) sameCmd() *cobra.Command {
	sameCmd := &cobra.Command{
		Use:   "same",
		Short: "Compare two instants",
	}

	var fieldName string
	truncatedCmd := a.predicateCmd("truncated", "Report whether two instants are equal once truncated to a field",
		func(c *calendar.Calendar, x, y calendar.Moment) (bool, error) {
			field, err := calendar.ParseField(fieldName)
			if err != nil {
				return false, err
			}
			return c.TruncatedEquals(x, y, field)
		})
	truncatedCmd.Flags().StringVarP(&fieldName, "field", "f", "", "calendar field, e.g. HOUR_OF_DAY")
	_ = truncatedCmd.MarkFlagRequired("field")

	sameCmd.AddCommand(
		a.predicateCmd("day", "Report whether two instants fall on the same day", (*calendar.Calendar).IsSameDay),
		a.predicateCmd("instant", "Report whether two instants are the same instant", (*calendar.Calendar).IsSameInstant),
		a.predicateCmd("local", "Report whether two instants have the same local time", (*calendar.Calendar).IsSameLocalTime),
		truncatedCmd,
	)
	return sameCmd
}

func (a *app) predicateCmd(name, short string, predicate predicateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [instant] [instant]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parseMoment(args[0])
			if err != nil {
				return err
			}
			y, err := a.parseMoment(args[1])
			if err != nil {
				return err
			}
			same, err := predicate(a.calendar, x, y)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), same)
			return nil
		},
	}
}
