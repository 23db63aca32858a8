// Package batch translates many score files into braille files.
//
// # Manager
//
// The Manager coordinates a run:
//
//  1. Expand the input files and directories
//  2. Load every score file
//  3. Translate the scores concurrently
//  4. Encode and write the braille files
//  5. Record each run in the history database (optional)
//
// # Basic Usage
//
//	manager := batch.NewManager(settings, func(event translate.Event) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, []string{"scores/"}); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Settings.MaxConcurrentScores bounds how many scores are translated in
// parallel. A failing score is reported and does not stop the others. The
// progress callback may be called from several goroutines at once.
package batch
