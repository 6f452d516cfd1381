package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSignupCmd() *cobra.Command {
	var loginID, password, nickname string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			user, err := c.Signup(cmd.Context(), loginID, password, nickname)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "반가워요, %s! (id %d)\n", user.Nickname, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&loginID, "id", "", "Login id (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Nickname (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("nickname")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var loginID, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			user, err := c.Login(cmd.Context(), loginID, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "다시 만나서 반가워요, %s!\n", user.Nickname)
			return nil
		},
	}

	cmd.Flags().StringVar(&loginID, "id", "", "Login id (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the token and clear the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err = c.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "로그아웃했어요.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			state := c.Session().Current()
			if state.User == nil {
				return errors.New("not logged in")
			}
			return printJSON(cmd.OutOrStdout(), state.User)
		},
	}
}

func newCheckIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-id <loginId>",
		Short: "Check whether a login id is still available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			available, err := c.CheckLoginID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if available {
				fmt.Fprintln(cmd.OutOrStdout(), "사용 가능한 아이디예요.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "이미 사용 중인 아이디예요.")
			}
			return nil
		},
	}
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide-seen",
		Short: "Mark the onboarding guide as seen",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			user, err := c.MarkGuideSeen(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}

func newDeleteAccountCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the account and every record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return errors.New("pass --yes to delete the account")
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			if err = c.DeleteAccount(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "계정이 삭제되었어요.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm deletion")

	return cmd
}
