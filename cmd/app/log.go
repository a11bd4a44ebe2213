package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tmather/daybook/internal/duration"
	"github.com/tmather/daybook/internal/journal"
	"github.com/tmather/daybook/internal/logbook"
)

// logTypeCommand builds the subcommand that records one activity type.
func logTypeCommand(typ string) *cli.Command {
	return &cli.Command{
		Name:      typ,
		Usage:     fmt.Sprintf("Log a %s entry", typ),
		ArgsUsage: "[duration]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "datetime",
				Aliases: []string{"d"},
				Usage:   "Specify a custom datetime (default: current time)",
			},
			&cli.BoolFlag{
				Name:    "today",
				Aliases: []string{"t"},
				Usage:   "Set the date to today (yyyy-mm-dd)",
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "Add an optional message to the log entry",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := newServices(cmd)
			if err != nil {
				return err
			}

			datetime := cmd.String("datetime")
			if datetime == "" && cmd.Bool("today") {
				datetime = time.Now().Format("2006-01-02")
			}

			entry, err := logbook.NewEntry(typ, datetime, cmd.Args().First(), cmd.String("message"))
			if err != nil {
				return err
			}
			return svc.logs.Append(entry)
		},
	}
}

func logCommands() []*cli.Command {
	sub := make([]*cli.Command, 0, len(logbook.Types))
	for _, typ := range logbook.Types {
		sub = append(sub, logTypeCommand(typ))
	}

	return []*cli.Command{
		{
			Name:     "log",
			Usage:    "Record an activity in the daybook log",
			Commands: sub,
		},
		{
			Name:  "today",
			Usage: "Print today's daily note and summarize the day's log entries",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				svc, err := newServices(cmd)
				if err != nil {
					return err
				}

				rel, _, err := svc.prov.GetOrCreate(journal.Daily, journal.Anchor{})
				if err != nil {
					return err
				}
				content, err := svc.store.Read(rel)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.Writer, "Today's Daily Note:")
				fmt.Fprintln(cmd.Writer, string(content))

				fmt.Fprintln(cmd.Writer, "\nToday's Log Events Summary:")
				entries, err := svc.logs.LoadForDay(time.Now())
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Fprintln(cmd.Writer, "No log events for today.")
					return nil
				}
				summary := logbook.Summarize(entries)
				for _, typ := range logbook.Types {
					s, ok := summary[typ]
					if !ok {
						continue
					}
					details := strings.TrimSpace(strings.Join([]string{
						duration.Format(s.TotalSeconds), s.LastMessage,
					}, " "))
					if details != "" {
						details = " (" + details + ")"
					}
					fmt.Fprintf(cmd.Writer, "%s: %d%s\n", typ, s.Count, details)
				}
				return nil
			},
		},
	}
}
