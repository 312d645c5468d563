package flow

import (
	"slices"
	"strings"
	"time"

	"github.com/dshills/pcoscare/internal/assessment"
	"github.com/dshills/pcoscare/internal/history"
	"github.com/dshills/pcoscare/internal/intake"
	"go.uber.org/zap"
)

// Session holds the wizard state for a single user.
// It is not safe for concurrent use.
type Session struct {
	state  State
	record *assessment.Record
	sink   history.Sink
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the operator log. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession starts at the login screen. A nil sink discards history.
func NewSession(sink history.Sink, opts ...Option) *Session {
	if sink == nil {
		sink = history.Discard{}
	}
	s := &Session{
		state:  StateLogin,
		sink:   sink,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Record returns the latest score record, if any submission has succeeded.
func (s *Session) Record() (assessment.Record, bool) {
	if s.record == nil {
		return assessment.Record{}, false
	}
	return *s.record, true
}

// Login accepts any non-empty pair. There is no authentication behind it.
func (s *Session) Login(email, password string) error {
	if err := s.guard(StateHome, StateLogin); err != nil {
		return err
	}
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return ErrCredentialsRequired
	}
	s.enter(StateHome)
	return nil
}

// Start opens the questionnaire.
func (s *Session) Start() error {
	if err := s.guard(StateInput, StateHome); err != nil {
		return err
	}
	s.enter(StateInput)
	return nil
}

// Submit validates and scores raw answers, appends the score to history and shows the result.
// On a validation error the session stays on the input screen and nothing is written.
// A history failure is logged and otherwise ignored.
func (s *Session) Submit(raw intake.Raw) (assessment.Record, error) {
	if err := s.guard(StateResult, StateInput); err != nil {
		return assessment.Record{}, err
	}

	answers, err := intake.Validate(raw)
	if err != nil {
		s.logger.Debug("submission rejected", zap.Error(err))
		return assessment.Record{}, err
	}

	rec := assessment.Evaluate(answers, s.now())
	if err := s.sink.Append(rec.Timestamp, rec.Score); err != nil {
		s.logger.Warn("history append failed",
			zap.Error(err),
			zap.String("record_id", rec.ID.String()),
			zap.Int("score", rec.Score))
	}

	s.record = &rec
	s.enter(StateResult)
	return rec, nil
}

// Suggestions moves from the result to the guidance screen.
func (s *Session) Suggestions() error {
	if err := s.guard(StateSuggestion, StateResult); err != nil {
		return err
	}
	s.enter(StateSuggestion)
	return nil
}

// Home returns to the landing screen from the result or guidance screens.
func (s *Session) Home() error {
	if err := s.guard(StateHome, StateResult, StateSuggestion); err != nil {
		return err
	}
	s.enter(StateHome)
	return nil
}

// guard checks that the action is available from the current state.
// Login and Home share a target, so each action names its own sources.
func (s *Session) guard(to State, from ...State) error {
	if !slices.Contains(from, s.state) || !CanTransition(s.state, to) {
		return &TransitionError{From: s.state, To: to}
	}
	return nil
}

func (s *Session) enter(to State) {
	s.logger.Debug("screen change", zap.Stringer("from", s.state), zap.Stringer("to", to))
	s.state = to
}
