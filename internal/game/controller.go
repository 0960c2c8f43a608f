package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alexanderramin/testament/internal/catalog"
	"github.com/alexanderramin/testament/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Result reports what a Submit or Tick did.
type Result struct {
	Verdict domain.Verdict
	Outcome domain.Outcome
	// Summary is set when the action ended the session.
	Summary *domain.Summary
}

// Controller owns a play session: level progression, cumulative score, the
// countdown epoch and the best-score record. Every method takes the same
// mutex, so ticks and answers never interleave.
//
// Each level start (and each ending) advances the epoch. A tick carries the
// epoch it was scheduled for, and ticks from older epochs are rejected, so
// at most one countdown can drive the current level.
type Controller struct {
	mu sync.Mutex

	cat        *catalog.Catalog
	classifier Classifier
	scores     BestScores
	display    DisplaySink
	ambience   Ambience
	log        zerolog.Logger
	rng        *rand.Rand
	now        func() time.Time
	newID      func() string

	difficulty domain.Difficulty
	music      bool

	sessionID string
	phase     domain.Phase
	level     int
	score     int
	epoch     uint64
	round     *Round
	summary   *domain.Summary
}

// Option configures a Controller.
type Option func(*Controller)

func WithDisplay(d DisplaySink) Option {
	return func(c *Controller) { c.display = d }
}

func WithAmbience(a Ambience) Option {
	return func(c *Controller) { c.ambience = a }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func WithDifficulty(d domain.Difficulty) Option {
	return func(c *Controller) { c.difficulty = d }
}

func WithMusic(on bool) Option {
	return func(c *Controller) { c.music = on }
}

// WithRand fixes the shuffle source, for reproducible tests.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithClassifier overrides how the current item is resolved. Defaults to the
// catalog itself.
func WithClassifier(cl Classifier) Option {
	return func(c *Controller) { c.classifier = cl }
}

// NewController returns a controller sitting at the menu (PhaseIdle).
func NewController(cat *catalog.Catalog, scores BestScores, opts ...Option) *Controller {
	c := &Controller{
		cat:        cat,
		scores:     scores,
		display:    noopDisplay{},
		ambience:   noopAmbience{},
		log:        zerolog.Nop(),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
		difficulty: domain.DifficultyNormal,
		music:      true,
		phase:      domain.PhaseIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.classifier == nil {
		c.classifier = cat
	}
	if !c.difficulty.Valid() {
		c.difficulty = domain.DifficultyNormal
	}
	return c
}

// ── session lifecycle ────────────────────────────────────────────────────────

// NewSession resets level and score and records the difficulty for the levels
// to come. A session still in progress is finalized as a loss first.
func (c *Controller) NewSession(ctx context.Context, d domain.Difficulty) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !d.Valid() {
		return fmt.Errorf("starting session: unknown difficulty %q", d)
	}
	if c.phase.InSession() {
		c.finalizeLocked(ctx, false)
	}

	c.difficulty = d
	c.sessionID = c.newID()
	c.level = 0
	c.score = 0
	c.summary = nil
	c.round = NewRound(c.classifier)
	c.phase = domain.PhaseReady
	if c.music {
		c.ambience.Start()
	}

	c.log.Info().
		Str("session_id", c.sessionID).
		Str("difficulty", string(d)).
		Msg("session started")
	c.pushLocked()
	return nil
}

// StartLevel begins the next level and returns its countdown epoch. It is
// valid right after NewSession and after a completed level.
func (c *Controller) StartLevel(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLevelLocked(ctx)
}

// Advance moves on from the level-complete card.
func (c *Controller) Advance(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != domain.PhaseLevelComplete {
		return 0, c.rejectLocked("advance", ErrInvalidTransition)
	}
	return c.startLevelLocked(ctx)
}

func (c *Controller) startLevelLocked(ctx context.Context) (uint64, error) {
	if c.phase != domain.PhaseReady && c.phase != domain.PhaseLevelComplete {
		return 0, c.rejectLocked("start level", ErrInvalidTransition)
	}

	budget := c.difficulty.LevelBudget()
	round := NewRound(c.classifier)
	if err := round.Begin(budget, catalog.NewPool(c.cat, c.rng)); err != nil {
		return 0, fmt.Errorf("starting level %d: %w", c.level+1, err)
	}

	c.level++
	c.round = round
	c.epoch++
	c.phase = domain.PhasePlaying

	c.log.Debug().
		Str("session_id", c.sessionID).
		Int("level", c.level).
		Int("budget_s", budget).
		Uint64("epoch", c.epoch).
		Msg("level started")
	c.pushLocked()
	return c.epoch, nil
}

// Abort ends the session in progress as a loss, e.g. when the player leaves
// the game screen or quits.
func (c *Controller) Abort(ctx context.Context) (*domain.Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.phase.InSession() {
		return nil, c.rejectLocked("abort", ErrInvalidTransition)
	}
	sum := c.finalizeLocked(ctx, false)
	c.pushLocked()
	return sum, nil
}

// ── gameplay ─────────────────────────────────────────────────────────────────

// Submit applies the player's classification of the current item.
func (c *Controller) Submit(ctx context.Context, choice domain.Category) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != domain.PhasePlaying {
		return Result{}, c.rejectLocked("submit", ErrInvalidTransition)
	}

	item := c.round.Current()
	verdict, err := c.round.Submit(choice)
	if err != nil {
		if !errors.Is(err, ErrInternalInconsistency) {
			return Result{}, c.rejectLocked("submit", err)
		}
		c.log.Error().Err(err).
			Str("session_id", c.sessionID).
			Int("level", c.level).
			Str("item", item).
			Msg("current item missing from catalog; failing level")
		res := Result{Outcome: domain.OutcomeFailed, Summary: c.finalizeLocked(ctx, false)}
		c.pushLocked()
		return res, err
	}

	if verdict == domain.VerdictCorrect {
		c.score += domain.Reward
	}
	res := Result{Verdict: verdict}
	c.resolveLocked(ctx, &res)
	c.pushLocked()
	return res, nil
}

// Tick delivers one elapsed second for the countdown scheduled under epoch.
func (c *Controller) Tick(ctx context.Context, epoch uint64) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch || c.phase != domain.PhasePlaying {
		return Result{}, c.rejectLocked("tick", ErrStaleTick)
	}
	if _, err := c.round.Tick(); err != nil {
		return Result{}, c.rejectLocked("tick", err)
	}

	var res Result
	c.resolveLocked(ctx, &res)
	c.pushLocked()
	return res, nil
}

// resolveLocked reacts to a round that reached a terminal state.
func (c *Controller) resolveLocked(ctx context.Context, res *Result) {
	res.Outcome = c.round.Outcome()
	switch res.Outcome {
	case domain.OutcomeNone:
		return
	case domain.OutcomeComplete:
		if c.level >= domain.FinalLevel {
			res.Summary = c.finalizeLocked(ctx, true)
			return
		}
		c.epoch++
		c.phase = domain.PhaseLevelComplete
		c.log.Debug().
			Str("session_id", c.sessionID).
			Int("level", c.level).
			Int("score", c.score).
			Int("time_left_s", c.round.Remaining()).
			Msg("level complete")
	default:
		res.Summary = c.finalizeLocked(ctx, false)
	}
}

// finalizeLocked is the single exit for every session ending.
func (c *Controller) finalizeLocked(ctx context.Context, won bool) *domain.Summary {
	c.epoch++
	best := c.scores.Record(ctx, c.score)
	c.ambience.Stop()
	c.phase = domain.PhaseGameOver

	sum := domain.Summary{
		SessionID:  c.sessionID,
		Won:        won,
		Score:      c.score,
		Best:       best,
		Level:      c.level,
		Difficulty: c.difficulty,
		EndedAt:    c.now().UTC(),
	}
	c.summary = &sum

	c.log.Info().
		Str("session_id", c.sessionID).
		Bool("won", won).
		Int("score", c.score).
		Int("best", best).
		Int("level", c.level).
		Str("outcome", string(c.round.Outcome())).
		Msg("session finished")

	out := sum
	return &out
}

func (c *Controller) rejectLocked(action string, err error) error {
	c.log.Debug().
		Str("action", action).
		Str("phase", string(c.phase)).
		Err(err).
		Msg("action ignored")
	return fmt.Errorf("%s: %w", action, err)
}

// ── settings ─────────────────────────────────────────────────────────────────

// SetDifficulty changes the budget for levels not yet started. A level in
// progress keeps its remaining time.
func (c *Controller) SetDifficulty(d domain.Difficulty) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !d.Valid() {
		return fmt.Errorf("unknown difficulty %q", d)
	}
	c.difficulty = d
	c.pushLocked()
	return nil
}

// SetMusic toggles background music, starting or stopping it right away when
// a session is underway.
func (c *Controller) SetMusic(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.music = on
	if !c.phase.InSession() {
		return
	}
	if on {
		c.ambience.Start()
	} else {
		c.ambience.Stop()
	}
}

// ── projections ──────────────────────────────────────────────────────────────

func (c *Controller) Snapshot() domain.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

func (c *Controller) frameLocked() domain.Frame {
	f := domain.Frame{
		Phase:      c.phase,
		Difficulty: c.difficulty,
		Level:      c.level,
		Budget:     c.difficulty.LevelBudget(),
		Score:      c.score,
	}
	if c.round != nil && c.round.State() != domain.RoundIdle {
		f.Remaining = c.round.Remaining()
		f.Selections = c.round.Selections()
		f.Item = c.round.Current()
	} else {
		f.Remaining = f.Budget
	}
	return f
}

func (c *Controller) pushLocked() {
	c.display.Show(c.frameLocked())
}

func (c *Controller) Phase() domain.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Epoch is the countdown generation of the current level.
func (c *Controller) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

func (c *Controller) Difficulty() domain.Difficulty {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.difficulty
}

func (c *Controller) Music() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.music
}

// Summary returns the result of the last finished session, or nil.
func (c *Controller) Summary() *domain.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.summary == nil {
		return nil
	}
	out := *c.summary
	return &out
}

// Best reads the persisted best score.
func (c *Controller) Best(ctx context.Context) int {
	return c.scores.Best(ctx)
}

// ClearBest resets the persisted best score to zero.
func (c *Controller) ClearBest(ctx context.Context) error {
	if err := c.scores.Clear(ctx); err != nil {
		return fmt.Errorf("clearing best score: %w", err)
	}
	c.log.Info().Msg("best score cleared")
	return nil
}
