package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReminderCmd() *cobra.Command {
	var set string
	var off bool

	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Show, set or clear the daily reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			switch {
			case off:
				if err = c.DeleteReminder(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "알림을 껐어요.")
			case set != "":
				t, err := c.SetReminder(cmd.Context(), set)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "매일 %s에 알려드릴게요.\n", t)
			default:
				t, err := c.GetReminder(cmd.Context())
				if err != nil {
					return err
				}
				if t == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "설정된 알림이 없어요.")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), *t)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "Reminder time, HH:MM")
	cmd.Flags().BoolVar(&off, "clear", false, "Turn the reminder off")
	cmd.MarkFlagsMutuallyExclusive("set", "clear")

	return cmd
}

func newReviewCmd() *cobra.Command {
	var periodType, date string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Show the weekly or monthly review",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if date == "" {
				date = today()
			}
			review, err := c.ResolveReview(cmd.Context(), periodType, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s %s]\n%s\n", review.PeriodType, review.PeriodKey, review.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&periodType, "period", "weekly", "weekly or monthly")
	cmd.Flags().StringVar(&date, "date", "", "Any date inside the period, defaults to today")

	return cmd
}

func newReportCmd() *cobra.Command {
	var periodType, date string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the emotion report as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if date == "" {
				date = today()
			}
			report, err := c.Report(cmd.Context(), periodType, date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&periodType, "period", "weekly", "weekly or monthly")
	cmd.Flags().StringVar(&date, "date", "", "Any date inside the period, defaults to today")

	return cmd
}

func newEmotionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emotions",
		Short: "List the emotion palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			emotions, err := c.Emotions(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range emotions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %s\n", e.Emoji, e.ID, e.Label)
			}
			return nil
		},
	}
}
