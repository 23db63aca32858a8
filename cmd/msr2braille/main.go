package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/grame-cncm/libmusicxml-sub019/internal/batch"
	"github.com/grame-cncm/libmusicxml-sub019/internal/config"
	"github.com/grame-cncm/libmusicxml-sub019/internal/store"
	"github.com/grame-cncm/libmusicxml-sub019/internal/translate"
)

func main() {
	var (
		outputFlag     = flag.String("output", "", "Output directory (overrides config)")
		configFlag     = flag.String("config", "", "Path to config file")
		encodingFlag   = flag.String("encoding", "", "Output encoding: ascii, utf8 or utf16")
		bomFlag        = flag.Bool("bom", false, "Write a byte order mark in UTF-16 output")
		tagFlag        = flag.Bool("encoding-in-name", false, "Add the encoding to the output file name")
		cellsFlag      = flag.Int("cells", 0, "Cells per line")
		measuresFlag   = flag.Int("measures", 0, "Measures per line")
		linesFlag      = flag.Int("lines", 0, "Lines per page")
		noClefsFlag    = flag.Bool("no-clefs", false, "Leave out clef changes after the first clef")
		noTemposFlag   = flag.Bool("no-tempos", false, "Leave out tempo indications")
		noHeadingsFlag = flag.Bool("no-music-headings", false, "Write key, time and tempo inline")
		jobsFlag       = flag.Int("jobs", 0, "Scores translated in parallel")
		historyFlag    = flag.String("history", "", "Record runs in this SQLite database")
		listFlag       = flag.Int("list-history", -1, "List the last N recorded runs and exit (0 for all)")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag     = flag.Bool("dry-run", false, "Load scores without translating")
	)

	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if *historyFlag != "" {
		settings.RecordHistory = true
		settings.HistoryDBPath = *historyFlag
	}

	if *listFlag >= 0 {
		if err := listHistory(settings.HistoryDBPath, *listFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Println("msr2braille - Translate scores into braille music")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  msr2braille [options] <score file or directory>...")
		fmt.Println()
		fmt.Println("For interactive mode, use: braille-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Apply flags
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *encodingFlag != "" {
		settings.OutputEncoding = *encodingFlag
	}
	if *bomFlag {
		settings.ByteOrderMark = true
	}
	if *tagFlag {
		settings.EncodingInFileName = true
	}
	if *cellsFlag > 0 {
		settings.CellsPerLine = *cellsFlag
	}
	if *measuresFlag > 0 {
		settings.MeasuresPerLine = *measuresFlag
	}
	if *linesFlag > 0 {
		settings.LinesPerPage = *linesFlag
	}
	if *noClefsFlag {
		settings.IncludeClefs = false
	}
	if *noTemposFlag {
		settings.NoTempos = true
	}
	if *noHeadingsFlag {
		settings.NoBrailleMusicHeadings = true
	}
	if *jobsFlag > 0 {
		settings.MaxConcurrentScores = *jobsFlag
	}

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	manager := batch.NewManager(settings, func(event translate.Event) {
		if event.Level == translate.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case translate.LevelError:
			prefix = "✗ "
		case translate.LevelWarning:
			prefix = "! "
		case translate.LevelSuccess:
			prefix = "✓ "
		case translate.LevelInfo:
			prefix = "› "
		default:
			prefix = "  "
		}

		if event.InputLine > 0 {
			fmt.Printf("%s%s (line %d)\n", prefix, event.Message, event.InputLine)
			return
		}
		fmt.Println(prefix + event.Message)
	})

	fmt.Println("⠍ msr2braille")
	fmt.Println(strings.Repeat("━", 40))
	fmt.Println()

	if err := manager.Initialize(ctx, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		fmt.Println("\n[Dry run - not translating]")
		return
	}

	fmt.Println()

	if err := manager.Start(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nTranslation cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during translation: %v\n", err)
		os.Exit(1)
	}

	done, failed, total := manager.GetProgress()
	fmt.Println()
	fmt.Println(strings.Repeat("━", 40))
	fmt.Printf("Complete! Translated %d/%d scores\n", done-failed, total)
	if failed > 0 {
		os.Exit(1)
	}
}

func listHistory(path string, limit int) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(limit)
	if err != nil {
		return err
	}

	for _, r := range runs {
		status := "ok"
		if r.Failed {
			status = "failed"
		}
		fmt.Printf("%s  %s  %-24s %-6s %3d pages %4d measures %3d warnings  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.ID[:8], r.Title, status, r.Pages, r.Measures, r.Warnings, r.Output)
	}
	return nil
}
