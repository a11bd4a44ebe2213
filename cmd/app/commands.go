package main

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tmather/daybook/internal/editor"
	"github.com/tmather/daybook/internal/index"
	"github.com/tmather/daybook/internal/journal"
	"github.com/tmather/daybook/internal/mcpserver"
	"github.com/tmather/daybook/internal/vcs"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseDateOrOffset interprets a positional argument as either a calendar
// date (YYYY-MM-DD) or a signed period offset from today.
func parseDateOrOffset(arg string) (journal.Anchor, error) {
	var anchor journal.Anchor
	if arg == "" {
		return anchor, nil
	}
	if dateRe.MatchString(arg) {
		parsed, err := time.ParseInLocation("2006-01-02", arg, time.Local)
		if err != nil {
			return anchor, fmt.Errorf("invalid date %q: %w", arg, err)
		}
		anchor.Date = &parsed
		return anchor, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		anchor.Offset = &n
		return anchor, nil
	}
	return anchor, fmt.Errorf("invalid input: must be a date in YYYY-MM-DD format or a number, got %q", arg)
}

// provisionAction opens or creates the journal note of the given kind.
func provisionAction(kind journal.Kind) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		svc, err := newServices(cmd)
		if err != nil {
			return err
		}
		anchor, err := parseDateOrOffset(cmd.Args().First())
		if err != nil {
			return err
		}
		rel, _, err := svc.prov.GetOrCreate(kind, anchor)
		if err != nil {
			return err
		}
		abs, err := svc.store.Abs(rel)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.Writer, abs)
		if cmd.Bool("no-open") {
			return nil
		}
		return editor.Open(abs)
	}
}

func journalCommands() []*cli.Command {
	noOpen := &cli.BoolFlag{
		Name:    "no-open",
		Aliases: []string{"n"},
		Usage:   "Create the note without opening it",
	}

	return []*cli.Command{
		{
			Name:      "daily",
			Usage:     "Open or create a daily note, for today or an optional date or day offset",
			ArgsUsage: "[dateOrOffset]",
			Flags:     []cli.Flag{noOpen},
			Action:    provisionAction(journal.Daily),
		},
		{
			Name:      "weekly",
			Usage:     "Open or create a weekly note, for this week or an optional date or week offset",
			ArgsUsage: "[dateOrOffset]",
			Flags:     []cli.Flag{noOpen},
			Action:    provisionAction(journal.Weekly),
		},
		{
			Name:      "monthly",
			Usage:     "Open or create a monthly note, for this month or an optional date or month offset",
			ArgsUsage: "[dateOrOffset]",
			Flags:     []cli.Flag{noOpen},
			Action:    provisionAction(journal.Monthly),
		},
		{
			Name:      "note",
			Usage:     "Create a note with an optional name",
			ArgsUsage: "[name]",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				svc, err := newServices(cmd)
				if err != nil {
					return err
				}
				rel, err := svc.prov.CreateNote(cmd.Args().First())
				if err != nil {
					return err
				}
				abs, err := svc.store.Abs(rel)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.Writer, abs)
				return editor.Open(abs)
			},
		},
		{
			Name:      "post",
			Usage:     "Create a timestamped post, optionally in a directory under the root",
			ArgsUsage: "[dir]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "message",
					Aliases: []string{"m"},
					Usage:   "Content of the post",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				svc, err := newServices(cmd)
				if err != nil {
					return err
				}
				message := cmd.String("message")
				rel, err := svc.prov.CreatePost(cmd.Args().First(), message)
				if err != nil {
					return err
				}
				abs, err := svc.store.Abs(rel)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.Writer, abs)
				if message != "" {
					return nil
				}
				return editor.Open(abs)
			},
		},
		{
			Name:      "list",
			Usage:     "List Markdown files under the root or a subdirectory",
			ArgsUsage: "[dir]",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				svc, err := newServices(cmd)
				if err != nil {
					return err
				}
				files, err := svc.store.List(cmd.Args().First())
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.Writer, f.Path)
				}
				return nil
			},
		},
		{
			Name:      "search",
			Usage:     "Full-text search through notes, posts, and journals",
			ArgsUsage: "<query>",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "limit",
					Usage: "Maximum number of results",
					Value: 20,
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				query := cmd.Args().First()
				if query == "" {
					return fmt.Errorf("search query is required")
				}
				svc, err := newServices(cmd)
				if err != nil {
					return err
				}
				db, err := svc.openIndex()
				if err != nil {
					return err
				}
				defer db.Close()
				if err := index.Sync(db, svc.store, nil); err != nil {
					return err
				}
				results, err := db.Search(query, int(cmd.Int("limit")))
				if err != nil {
					return err
				}
				for _, r := range results {
					fmt.Fprintf(cmd.Writer, "%s\t%s\n", r.Path, r.Title)
				}
				return nil
			},
		},
		{
			Name:  "mcp",
			Usage: "Run the MCP server on stdin/stdout",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				svc, err := newServices(cmd)
				if err != nil {
					return err
				}
				db, err := svc.openIndex()
				if err != nil {
					return err
				}
				defer db.Close()
				if err := index.Sync(db, svc.store, nil); err != nil {
					return err
				}
				return mcpserver.New(svc.store, svc.logs, svc.prov, db).ServeStdio()
			},
		},
		{
			Name:  "sync",
			Usage: "Commit and push all changes in the root directory",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				return vcs.NewRepo(cfg.Root.Path).Sync(ctx)
			},
		},
		{
			Name:  "diffs",
			Usage: "Show diffs of recent note changes",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "since",
					Usage: "Time range for diffs (e.g. '2 days ago')",
					Value: "1 week ago",
				},
				&cli.BoolFlag{
					Name:  "include-journals",
					Usage: "Include journal entries in the diff",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				out, err := vcs.NewRepo(cfg.Root.Path).Diffs(ctx, cmd.String("since"), cmd.Bool("include-journals"))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.Writer, out)
				return nil
			},
		},
	}
}
