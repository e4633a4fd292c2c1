package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/mstrace/mstrace/mstrace"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var (
		cfg    mstrace.Config
		parsed bool
	)

	app := &cli.App{
		Name:            "mstrace",
		Usage:           "trace BSD system calls on macOS, SIP left on",
		ArgsUsage:       "[command [args...]]",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "pid",
				Aliases: []string{"p"},
				Usage:   "attach to `PID` instead of launching a command",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the event stream to `FILE` instead of stderr",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit JSON Lines instead of strace-style text",
			},
			&cli.StringFlag{
				Name:  "color",
				Value: "auto",
				Usage: "color the text output: auto, always or never",
			},
			&cli.BoolFlag{
				Name:    "summary",
				Aliases: []string{"c"},
				Usage:   "suppress per-event output and print a summary table on exit",
			},
			&cli.StringFlag{
				Name:    "trace",
				Aliases: []string{"e"},
				Usage:   "comma-separated syscall names and/or categories to trace",
			},
			&cli.BoolFlag{
				Name:  "count-rejected",
				Usage: "keep filter-rejected calls in the summary counts",
			},
			&cli.BoolFlag{
				Name:  "no-abbrev",
				Usage: "print raw hex instead of symbolic flag names",
			},
			&cli.IntFlag{
				Name:  "string-limit",
				Value: 32,
				Usage: "display cap in `BYTES` for strings and buffers",
			},
			&cli.BoolFlag{
				Name:    "follow",
				Aliases: []string{"f"},
				Usage:   "ask newly spawned children to stop for attachment",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: func(c *cli.Context) error {
			cfg = mstrace.Config{
				Command:       c.Args().Slice(),
				AttachPID:     c.Int("pid"),
				OutputPath:    c.String("output"),
				JSON:          c.Bool("json"),
				SummaryOnly:   c.Bool("summary"),
				TraceExpr:     c.String("trace"),
				CountRejected: c.Bool("count-rejected"),
				NoAbbrev:      c.Bool("no-abbrev"),
				StringLimit:   c.Int("string-limit"),
				FollowSpawn:   c.Bool("follow"),
				Verbose:       c.Bool("verbose"),
			}

			switch c.String("color") {
			case "always":
				cfg.Color = mstrace.ColorAlways
			case "never":
				cfg.Color = mstrace.ColorNever
			case "auto", "":
				cfg.Color = mstrace.ColorAuto
			default:
				return mstrace.E(mstrace.UsageError, nil, "invalid --color value %q", c.String("color"))
			}

			parsed = true

			return nil
		},
	}

	if err := app.Run(args); err != nil {
		fmt.Fprintf(os.Stderr, "mstrace: %v\n", err)

		return mstrace.ExitCode(err)
	}

	// --help and friends complete inside Run without reaching the action.
	if !parsed {
		return 0
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)

	if cfg.Verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	prodLogger, err := logCfg.Build()
	if err != nil {
		log.Fatalf("failed to get logger: %v", err)
	}
	defer prodLogger.Sync()

	logger := prodLogger.Sugar()

	session, err := mstrace.NewSession(logger, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mstrace: %v\n", err)

		return mstrace.ExitCode(err)
	}

	code, err := session.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mstrace: %v\n", err)

		return mstrace.ExitCode(err)
	}

	return code
}
