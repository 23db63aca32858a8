package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/grame-cncm/libmusicxml-sub019/internal/braille"
	"github.com/grame-cncm/libmusicxml-sub019/internal/bsr"
	"github.com/grame-cncm/libmusicxml-sub019/internal/config"
	ioutils "github.com/grame-cncm/libmusicxml-sub019/internal/io"
	"github.com/grame-cncm/libmusicxml-sub019/internal/msr"
	"github.com/grame-cncm/libmusicxml-sub019/internal/scorefile"
	"github.com/grame-cncm/libmusicxml-sub019/internal/store"
	"github.com/grame-cncm/libmusicxml-sub019/internal/translate"
)

// ErrNoScores is returned by Initialize when no score file could be loaded.
var ErrNoScores = errors.New("no score files loaded")

// Result is the outcome of one score.
type Result struct {
	Input     string
	Output    string
	Title     string
	Braille   *bsr.Score
	Events    []translate.Event
	Warnings  int
	Overflows []braille.Overflow
	RunID     string
	Err       error
}

type job struct {
	input string
	score *msr.Score
}

// Manager coordinates score translations.
type Manager struct {
	settings *config.Settings
	encoder  *braille.Encoder

	jobs    []job
	results []*Result

	translated int32
	failed     int32

	onProgress func(translate.Event)
	mu         sync.Mutex
}

// NewManager creates a new Manager.
func NewManager(settings *config.Settings, onProgress func(translate.Event)) *Manager {
	return &Manager{
		settings:   settings,
		encoder:    braille.NewEncoder(settings.ToEncoderConfig()),
		onProgress: onProgress,
	}
}

// Initialize loads the score files named by inputs. Directories contribute
// the score files they contain. Files that fail to load are reported and
// skipped.
func (m *Manager) Initialize(ctx context.Context, inputs []string) error {
	files, err := ioutils.ExpandInputs(inputs)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.progress(translate.Event{Message: fmt.Sprintf("Loading score: %s", file), Level: translate.LevelVerbose})

		score, err := scorefile.Load(file)
		if err != nil {
			m.progress(translate.Event{Message: fmt.Sprintf("Error loading %s: %v", file, err), Level: translate.LevelError})
			continue
		}

		m.jobs = append(m.jobs, job{input: file, score: score})
		m.progress(translate.Event{Message: fmt.Sprintf("Found score: %s", titleOf(file, score)), Level: translate.LevelInfo})
	}

	if len(m.jobs) == 0 {
		return ErrNoScores
	}
	return nil
}

// Start translates every initialized score.
func (m *Manager) Start(ctx context.Context) error {
	var history *store.DB
	if m.settings.RecordHistory {
		db, err := store.Open(m.settings.HistoryDBPath)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer db.Close()
		history = db
	}

	m.results = make([]*Result, len(m.jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentScores)

	for i, j := range m.jobs {
		g.Go(func() error {
			m.results[i] = m.translateScore(ctx, j, history)
			return ctx.Err()
		})
	}

	return g.Wait()
}

// GetProgress returns how many scores are done, how many of them failed and
// how many there are in total.
func (m *Manager) GetProgress() (done, failed, total int32) {
	return atomic.LoadInt32(&m.translated), atomic.LoadInt32(&m.failed), int32(len(m.jobs))
}

// GetScoreNames returns the titles of all initialized scores.
func (m *Manager) GetScoreNames() []string {
	names := make([]string, len(m.jobs))
	for i, j := range m.jobs {
		names[i] = titleOf(j.input, j.score)
	}
	return names
}

// Results returns one result per score in input order, after Start returns.
// Scores that never ran are nil.
func (m *Manager) Results() []*Result {
	return m.results
}

func (m *Manager) translateScore(ctx context.Context, j job, history *store.DB) *Result {
	res := &Result{Input: j.input, Title: titleOf(j.input, j.score)}
	base := filepath.Base(j.input)

	defer func() {
		if res.Err != nil {
			atomic.AddInt32(&m.failed, 1)
		}
		atomic.AddInt32(&m.translated, 1)
		if history != nil {
			m.record(history, res)
		}
	}()

	tr := translate.New(m.settings.ToTranslateConfig(), func(e translate.Event) {
		if e.Level == translate.LevelWarning {
			res.Warnings++
		}
		res.Events = append(res.Events, e)
		e.Message = fmt.Sprintf("%s: %s", base, e.Message)
		m.progress(e)
	})

	bs, err := tr.Translate(j.score)
	res.Braille = bs
	if err != nil {
		res.Err = err
		m.progress(translate.Event{Message: fmt.Sprintf("Error translating %s: %v", base, err), Level: translate.LevelError})
		return res
	}

	res.Overflows = braille.Validate(bs)
	for _, o := range res.Overflows {
		m.progress(translate.Event{
			Message: fmt.Sprintf("%s: page %d line %d has %d cells, capacity is %d", base, o.Page, o.Line, o.Cells, o.Capacity),
			Level:   translate.LevelVerbose,
		})
	}

	data, err := m.encoder.Encode(bs)
	if err != nil {
		res.Err = err
		m.progress(translate.Event{Message: fmt.Sprintf("Error encoding %s: %v", base, err), Level: translate.LevelError})
		return res
	}

	name := m.encoder.OutputFileName(ioutils.SanitizeFileName(ioutils.BaseName(j.input)))
	path, err := ioutils.WriteOutput(ctx, m.settings.OutputDir(j.input), name, data)
	if err != nil {
		res.Err = err
		m.progress(translate.Event{Message: fmt.Sprintf("Error writing %s: %v", name, err), Level: translate.LevelError})
		return res
	}
	res.Output = path

	if res.Warnings == 0 {
		m.progress(translate.Event{Message: fmt.Sprintf("Translated %s to %s", res.Title, path), Level: translate.LevelSuccess})
	} else {
		m.progress(translate.Event{Message: fmt.Sprintf("Translated %s to %s with %d warnings", res.Title, path, res.Warnings), Level: translate.LevelWarning})
	}
	return res
}

func (m *Manager) record(history *store.DB, res *Result) {
	run := store.Run{
		Input:    res.Input,
		Output:   res.Output,
		Title:    res.Title,
		Encoding: m.encoder.Encoding().String(),
		Warnings: res.Warnings,
		Failed:   res.Err != nil,
	}
	if res.Braille != nil {
		run.Pages = len(res.Braille.Pages)
		run.Lines = res.Braille.NumberOfLines()
		run.Measures = res.Braille.NumberOfMeasures()
	}

	var diags []store.Diagnostic
	for _, e := range res.Events {
		if e.Level == translate.LevelWarning || e.Level == translate.LevelError {
			diags = append(diags, store.Diagnostic{Level: e.Level.String(), InputLine: e.InputLine, Message: e.Message})
		}
	}
	if res.Err != nil {
		diag := store.Diagnostic{Level: translate.LevelError.String(), Message: res.Err.Error()}
		var fatal *translate.FatalError
		if errors.As(res.Err, &fatal) {
			diag.InputLine = fatal.InputLine
		}
		diags = append(diags, diag)
	}

	id, err := history.RecordRun(run, diags)
	if err != nil {
		m.progress(translate.Event{Message: fmt.Sprintf("Error recording history for %s: %v", res.Title, err), Level: translate.LevelWarning})
		return
	}
	res.RunID = id
}

func (m *Manager) progress(event translate.Event) {
	if m.onProgress == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onProgress(event)
}

func titleOf(input string, score *msr.Score) string {
	if score != nil && score.WorkTitle != "" {
		return score.WorkTitle
	}
	return ioutils.BaseName(input)
}
