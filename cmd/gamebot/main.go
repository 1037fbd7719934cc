// Command gamebot follows one team's NHL games and posts updates to the
// configured channels.
//
// Usage:
//
//	gamebot run [--dry-run]
//	gamebot schedule [--date 2026-10-17]
//	gamebot version
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gboparai/nhl-gamebot-sub000/internal/config"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
	"github.com/gboparai/nhl-gamebot-sub000/internal/server"
	"github.com/gboparai/nhl-gamebot-sub000/internal/timeutil"
)

const (
	appName    = "nhl-gamebot"
	appVersion = "dev"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gamebot",
		Short:         "NHL single-game lifecycle bot",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)

	root.AddCommand(runCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(versionCmd())
	return root
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
		Team:    cfg.Team.Abbrev,
		Output:  out,
	})
}

func runCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Track the team's next game until the recap is posted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg, os.Stderr)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := server.New(cfg, logger, server.Options{DryRun: dryRun, Version: appVersion})
			if err != nil {
				logging.Error(logger, "failed to build server", err)
				return err
			}
			srv.Run(ctx, stop)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log notifications instead of posting them")
	return cmd
}

func scheduleCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the team's game for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg, io.Discard)
			loc := timeutil.ResolveTimezone(cfg.Team.Timezone)

			if date == "" {
				date = timeutil.LocalDate(time.Now(), loc)
			} else if _, err := timeutil.ParseDate(date); err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			provider := server.NewProvider(cfg, logger, nil)
			sched, err := provider.FetchSchedule(ctx, date)
			if err != nil {
				return fmt.Errorf("fetch schedule: %w", err)
			}

			out := cmd.OutOrStdout()
			g, ok := sched.Find(cfg.Team.Abbrev)
			if !ok {
				fmt.Fprintf(out, "%s: no %s game\n", date, cfg.Team.Abbrev)
				return nil
			}
			fmt.Fprintf(out, "%s: %s @ %s, %s at %s (game %d, %s)\n",
				date, g.Away.FullName(), g.Home.FullName(), timeutil.FormatClock(g.StartUTC, loc), g.Venue, g.ID, g.State)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Local date (YYYY-MM-DD), defaults to today")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, appVersion)
		},
	}
}
