package main

import (
	"Todak/internal/api/dto"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newMoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Write and browse mood records",
	}
	cmd.AddCommand(newMoodListCmd())
	cmd.AddCommand(newMoodWriteCmd())
	cmd.AddCommand(newMoodDeleteCmd())
	return cmd
}

func newMoodListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			moods, err := c.ListMoods(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range moods {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s [%s] %s\n", m.ID, m.Date, strings.Join(m.EmotionIDs, ","), m.Content)
			}
			return nil
		},
	}
}

// newMoodWriteCmd 先让 AI 回应，再连同推荐一起保存今天的记录
func newMoodWriteCmd() *cobra.Command {
	var emotions []string
	var content string
	var skipAI bool

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Save today's record",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			req := dto.SaveMoodDTO{Date: today(), EmotionIDs: emotions, Content: content}

			if !skipAI {
				reflection, err := c.Reflect(cmd.Context(), emotions, content)
				if err != nil {
					return err
				}
				req.AIMessage = &reflection.AIMessage
				req.Recommendations = reflection.Recommendations
				fmt.Fprintf(cmd.OutOrStdout(), "토닥: %s\n", reflection.AIMessage)
				for _, rec := range reflection.Recommendations {
					link := ""
					if rec.Link != nil {
						link = " " + *rec.Link
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  - [%s] %s%s\n", rec.Type, rec.Title, link)
				}
			}

			record, err := c.SaveMood(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s 기록을 저장했어요. (#%d)\n", record.Date, record.ID)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&emotions, "emotion", "e", nil, "Emotion ids, up to 3 (required)")
	cmd.Flags().StringVarP(&content, "content", "c", "", "What happened today (required)")
	cmd.Flags().BoolVar(&skipAI, "no-ai", false, "Save without asking for an AI reply")
	_ = cmd.MarkFlagRequired("emotion")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newMoodDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete today's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			if err = c.DeleteMood(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "기록을 삭제했어요.")
			return nil
		},
	}
}
