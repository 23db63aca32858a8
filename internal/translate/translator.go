package translate

import (
	"errors"
	"fmt"

	"github.com/grame-cncm/libmusicxml-sub019/internal/bsr"
	"github.com/grame-cncm/libmusicxml-sub019/internal/layout"
	"github.com/grame-cncm/libmusicxml-sub019/internal/msr"
)

// Translator converts score models into braille models.
type Translator struct {
	cfg     Config
	onEvent func(Event)
}

// New creates a Translator. onEvent may be nil.
func New(cfg Config, onEvent func(Event)) *Translator {
	return &Translator{cfg: cfg, onEvent: onEvent}
}

// Translate runs one pass over s. On a fatal error the braille produced so
// far is returned along with a *FatalError.
func (t *Translator) Translate(s *msr.Score) (*bsr.Score, error) {
	if err := t.cfg.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &FatalError{Message: "no score to translate", Err: ErrNoScore}
	}

	p := newPass(t.cfg, t.emit)
	if err := msr.Browse(s, p); err != nil {
		var fatal *FatalError
		if errors.As(err, &fatal) {
			return p.score, fatal
		}
		return p.score, &FatalError{InputLine: p.lastInputLine, Message: err.Error(), Err: err}
	}

	t.emit(Event{
		Message: fmt.Sprintf("Translated %d measures into %d pages, %d lines (%d warnings)",
			p.score.NumberOfMeasures(), len(p.score.Pages), p.score.NumberOfLines(), p.warnings),
		Level: LevelVerbose,
	})
	return p.score, nil
}

func (t *Translator) emit(e Event) {
	if t.onEvent != nil {
		t.onEvent(e)
	}
}

// newPass creates the context of a single translation.
func newPass(cfg Config, emit func(Event)) *pass {
	return &pass{
		cfg:    cfg,
		policy: layout.New(cfg.Capacities()),
		emit:   emit,
		score:  &bsr.Score{},
	}
}
