package main

import (
	"Todak/internal/client"
	"Todak/internal/pkg/util"
	"fmt"
	"io"
	log "log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	serverURL   string
	sessionFile string
	timezone    string
	debug       bool
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// NewRootCmd 测试中直接构造
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "todak",
		Short:         "Todak mood journal command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.LevelWarn
			if debug {
				level = log.LevelDebug
			}
			log.SetDefault(log.New(log.NewTextHandler(os.Stderr, &log.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", getEnv("TODAK_SERVER_URL", "http://localhost:8080/api"), "Base URL of the Todak API")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session", getEnv("TODAK_SESSION_FILE", defaultSessionFile()), "Where the login session is stored")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", getEnv("TODAK_TIMEZONE", "Asia/Seoul"), "Timezone used to decide today's date")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(newSignupCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newCheckIDCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newDeleteAccountCmd())
	rootCmd.AddCommand(newMoodCmd())
	rootCmd.AddCommand(newReminderCmd())
	rootCmd.AddCommand(newReviewCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newEmotionsCmd())

	return rootCmd
}

// newClient 每个命令都先从文件恢复会话
func newClient() (*client.Client, error) {
	session := client.NewSession(sessionFile)
	if err := session.Load(); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	log.Debug("client ready", "server", serverURL, "logged_in", session.LoggedIn())
	return client.New(serverURL, client.WithSession(session), client.WithTimeout(30*time.Second)), nil
}

func today() string {
	return util.NewSystemClock(timezone).Today()
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".todak-session.json"
	}
	return filepath.Join(dir, "todak", "session.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
