package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/events"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
)

//go:generate mockgen -destination=mock_listener_test.go -package=session ctchen222/tictactoe/internal/events Listener

// DefaultBotDelay is how long the bot "thinks" before moving.
const DefaultBotDelay = 420 * time.Millisecond

var tracer = otel.Tracer("session")

var ErrNotYourTurn = errors.New("it's not your turn")

// Session drives a single game for one caller: it turns human input into
// moves and plays the bot's replies after a delay.
type Session struct {
	ID string

	mu         sync.Mutex
	game       *game.Game
	mode       player.Mode
	seats      player.Seats
	difficulty bot.Difficulty
	generation uint64
	pending    Timer

	policy    *bot.Policy
	botDelay  time.Duration
	scheduler Scheduler
	listener  events.Listener
	logger    *slog.Logger
	metrics   *instruments
}

// Option configures a Session.
type Option func(*Session)

// WithPolicy sets the bot policy.
func WithPolicy(p *bot.Policy) Option {
	return func(s *Session) { s.policy = p }
}

// WithScheduler replaces the timer used for bot moves.
func WithScheduler(sch Scheduler) Option {
	return func(s *Session) { s.scheduler = sch }
}

// WithBotDelay sets the pause before the bot moves.
func WithBotDelay(d time.Duration) Option {
	return func(s *Session) { s.botDelay = d }
}

// WithListener sets the receiver of session events.
func WithListener(l events.Listener) Option {
	return func(s *Session) { s.listener = l }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New creates a session in bot mode at medium difficulty. Call Start to pick
// another mode or difficulty.
func New(opts ...Option) (*Session, error) {
	metrics, err := newInstruments()
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:         uuid.New().String(),
		game:       game.NewGame(),
		mode:       player.ModeBot,
		seats:      player.SeatsFor(player.ModeBot),
		difficulty: bot.Medium,
		botDelay:   DefaultBotDelay,
		scheduler:  realScheduler{},
		listener:   events.Discard,
		logger:     slog.Default(),
		metrics:    metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.policy == nil {
		s.policy = bot.NewPolicy(nil)
	}
	s.logger = s.logger.With("session.id", s.ID)

	return s, nil
}

// Start selects the mode and difficulty and begins a fresh game.
func (s *Session) Start(ctx context.Context, mode player.Mode, difficulty bot.Difficulty) error {
	ctx, span := tracer.Start(ctx, "session.Start", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("game.mode", string(mode)),
		attribute.String("bot.difficulty", difficulty.String()),
	))
	defer span.End()

	mode, err := player.ParseMode(string(mode))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unknown play mode")
		return err
	}
	if !slices.Contains(bot.Difficulties, difficulty) {
		err := fmt.Errorf("%w: %q", bot.ErrUnknownDifficulty, difficulty)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unknown difficulty")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = mode
	s.seats = player.SeatsFor(mode)
	s.difficulty = difficulty
	s.resetLocked(ctx)

	s.logger.InfoContext(ctx, "Game started", "game.mode", mode, "bot.difficulty", difficulty)
	return nil
}

// Restart clears the board. A bot move that is still pending is dropped.
func (s *Session) Restart(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "session.Restart", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked(ctx)
	s.logger.InfoContext(ctx, "Game restarted")
}

// Play applies a human move at index.
func (s *Session) Play(ctx context.Context, index int) (game.Status, error) {
	ctx, span := tracer.Start(ctx, "session.Play", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("move.index", index),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if mark := s.game.CurrentPlayer(); !s.game.Status().IsTerminal() && !s.seats.AcceptsInput(mark) {
		s.logger.WarnContext(ctx, "Ignoring input on the bot's turn", "move.index", index)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.SetStatus(codes.Error, "Not the player's turn")
		return s.game.Status(), ErrNotYourTurn
	}

	status, err := s.applyLocked(ctx, index, false)
	if err != nil {
		s.logger.WarnContext(ctx, "Invalid move from player", "move.index", index, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		return status, err
	}
	span.SetAttributes(attribute.Bool("move.valid", true))

	s.scheduleBotLocked(ctx)
	return status, nil
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	ID         string
	Board      game.Board
	Current    game.PlayerMark
	Status     game.Status
	Mode       player.Mode
	Seats      player.Seats
	Difficulty bot.Difficulty
	// BotPending is set while a bot move is scheduled.
	BotPending bool
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:         s.ID,
		Board:      s.game.Board(),
		Current:    s.game.CurrentPlayer(),
		Status:     s.game.Status(),
		Mode:       s.mode,
		Seats:      s.seats,
		Difficulty: s.difficulty,
		BotPending: s.pending != nil,
	}
}

// Close cancels any pending bot move.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.stopPendingLocked()
}

func (s *Session) resetLocked(ctx context.Context) {
	s.generation++
	s.stopPendingLocked()
	s.game.Reset()

	s.listener.OnEvent(ctx, events.Event{
		Type:   events.TypeReset,
		Index:  -1,
		Status: s.game.Status(),
		Next:   s.game.CurrentPlayer(),
		Board:  s.game.Board(),
	})
	s.scheduleBotLocked(ctx)
}

func (s *Session) stopPendingLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// applyLocked moves for the current player and publishes the resulting events.
func (s *Session) applyLocked(ctx context.Context, index int, byBot bool) (game.Status, error) {
	mark := s.game.CurrentPlayer()
	status, err := s.game.ApplyMove(index)
	if err != nil {
		return status, err
	}

	s.metrics.moves.Add(ctx, 1, metric.WithAttributes(
		attribute.String("player.mark", string(mark)),
		attribute.Bool("player.bot", byBot),
	))

	s.listener.OnEvent(ctx, events.Event{
		Type:   events.TypeMove,
		Index:  index,
		Mark:   mark,
		Status: status,
		Next:   s.game.CurrentPlayer(),
		Board:  s.game.Board(),
		ByBot:  byBot,
	})

	if status.IsTerminal() {
		s.metrics.gamesFinished.Add(ctx, 1, metric.WithAttributes(
			attribute.String("game.mode", string(s.mode)),
			attribute.String("outcome", status.String()),
		))
		s.logger.InfoContext(ctx, "Game over", "outcome", status.String())

		s.listener.OnEvent(ctx, events.Event{
			Type:   events.TypeGameOver,
			Index:  index,
			Mark:   mark,
			Status: status,
			Board:  s.game.Board(),
			ByBot:  byBot,
		})
	}

	return status, nil
}

// scheduleBotLocked arms the bot timer when the bot is to move.
func (s *Session) scheduleBotLocked(ctx context.Context) {
	if s.game.Status().IsTerminal() || !s.seats.IsBot(s.game.CurrentPlayer()) || s.pending != nil {
		return
	}

	generation := s.generation
	botCtx := context.WithoutCancel(ctx)
	s.pending = s.scheduler.AfterFunc(s.botDelay, func() {
		s.botMove(botCtx, generation)
	})
}

// botMove is the scheduled bot turn. It gives up when the game it was
// scheduled for has been reset or decided in the meantime.
func (s *Session) botMove(ctx context.Context, generation uint64) {
	ctx, span := tracer.Start(ctx, "session.botMove", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	span.SetAttributes(attribute.String("bot.difficulty", s.difficulty.String()))

	if generation != s.generation {
		s.logger.DebugContext(ctx, "Dropping bot move scheduled before a reset")
		span.SetAttributes(attribute.Bool("bot.stale", true))
		return
	}
	s.pending = nil

	if s.game.Status().IsTerminal() || !s.seats.IsBot(s.game.CurrentPlayer()) {
		s.logger.DebugContext(ctx, "Dropping bot move, not the bot's turn")
		span.SetAttributes(attribute.Bool("bot.stale", true))
		return
	}

	started := time.Now()
	index, ok := s.policy.SelectMove(s.game.Board(), s.difficulty)
	elapsed := float64(time.Since(started).Microseconds()) / 1000
	s.metrics.botDecision.Record(ctx, elapsed, metric.WithAttributes(
		attribute.String("bot.difficulty", s.difficulty.String()),
	))

	if !ok {
		s.logger.WarnContext(ctx, "Bot found no move")
		span.SetStatus(codes.Error, "No available moves")
		return
	}
	span.SetAttributes(attribute.Int("move.index", index))

	if _, err := s.applyLocked(ctx, index, true); err != nil {
		s.logger.ErrorContext(ctx, "Bot produced an invalid move", "move.index", index, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid bot move")
		return
	}
	s.logger.DebugContext(ctx, "Bot moved", "move.index", index, "bot.decision_ms", elapsed)

	s.scheduleBotLocked(ctx)
}
