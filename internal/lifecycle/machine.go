package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/compose"
	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers"
)

// Notifier delivers one notification to every configured channel.
// It returns an error only when nothing was delivered.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) error
}

// Renderer draws a graphic and returns the file path to attach.
type Renderer interface {
	Render(ctx context.Context, req notification.GraphicRequest) (string, error)
}

// Deps are the collaborators a Machine drives. Renderer may be nil.
type Deps struct {
	Provider  providers.DataProvider
	Officials providers.OfficialsProvider
	Notifier  Notifier
	Renderer  Renderer
	Composer  compose.Composer
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Now       func() time.Time
}

// Config holds the team and the per-phase cadence.
type Config struct {
	Team               string
	Location           *time.Location
	IdleWait           time.Duration
	PregameWindow      time.Duration
	AwaitingWait       time.Duration
	OfficialsRetryWait time.Duration
	LiveWait           time.Duration
	IntermissionWait   time.Duration
	RecapRetryWait     time.Duration
	CooldownWait       time.Duration
	RecapDeadline      time.Duration
	GoalHoldCycles     int
}

// session is the state of one tracked game, discarded on return to Idle.
type session struct {
	game                 game.TrackedGame
	ledger               *Ledger
	lastPlayCount        int
	holdCycles           int
	intermissionNotified int
	plays                []game.Play
	home, away           game.TeamScore
	endedAt              time.Time
}

// Machine is the single-game lifecycle state machine. It is not safe for
// concurrent use; one host loop owns it.
type Machine struct {
	deps    Deps
	cfg     Config
	now     func() time.Time
	phase   game.Phase
	session *session
	ledger  *Ledger
}

// New constructs a machine in the Idle phase.
func New(deps Deps, cfg Config) *Machine {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Machine{
		deps:   deps,
		cfg:    cfg,
		now:    now,
		phase:  game.PhaseIdle,
		ledger: NewLedger(),
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() game.Phase {
	return m.phase
}

// Step performs exactly one phase's action and returns how long the host
// should wait before the next step. A non-nil error reports a failed upstream
// fetch; the machine has already absorbed it and the wait is still valid.
func (m *Machine) Step(ctx context.Context) (time.Duration, error) {
	start := m.now()
	phase := m.phase

	var (
		wait time.Duration
		err  error
	)
	switch phase {
	case game.PhaseIdle:
		wait, err = m.stepIdle(ctx)
	case game.PhaseAwaitingStart:
		wait, err = m.stepAwaitingStart(ctx)
	case game.PhaseLivePlay, game.PhaseIntermission:
		wait, err = m.stepLive(ctx)
	case game.PhaseEnded:
		wait, err = m.stepEnded(ctx)
	case game.PhaseRecapPending:
		wait, err = m.stepRecapPending(ctx)
	case game.PhaseClosed:
		wait, err = m.stepClosed(ctx)
	default:
		m.transition(game.PhaseIdle)
	}

	m.deps.Metrics.RecordCycle(phase.String(), m.now().Sub(start), err)
	return wait, err
}

func (m *Machine) transition(to game.Phase) {
	from := m.phase
	if from == to {
		return
	}
	m.phase = to
	if m.session != nil {
		m.session.game.Phase = to
	}

	args := []any{logging.FieldPhase, from.String(), logging.FieldNextPhase, to.String()}
	if m.session != nil {
		args = append(args, logging.FieldGameID, m.session.game.ID)
	}
	logging.Info(m.deps.Logger, "phase transition", args...)
	m.deps.Metrics.RecordPhaseTransition(from.String(), to.String())

	if to == game.PhaseIdle {
		m.endSession()
	}
}

func (m *Machine) startSession(g game.TrackedGame) {
	m.ledger.Reset()
	m.session = &session{game: g, ledger: m.ledger}
}

// endSession drops the tracked game and clears the ledger.
func (m *Machine) endSession() {
	m.session = nil
	m.ledger.Reset()
}

func (m *Machine) log() *slog.Logger {
	if m.session == nil {
		return logging.With(m.deps.Logger, logging.FieldPhase, m.phase.String())
	}
	return logging.With(m.deps.Logger, logging.FieldPhase, m.phase.String(), logging.FieldGameID, m.session.game.ID)
}

// send renders the optional graphic and delivers the message. Rendering
// failures degrade to a text-only notification.
func (m *Machine) send(ctx context.Context, msg notification.Message) error {
	n := notification.Notification{Text: msg.Text}
	if msg.Graphic != nil && m.deps.Renderer != nil {
		path, err := m.deps.Renderer.Render(ctx, *msg.Graphic)
		if err != nil {
			logging.Warn(m.log(), "graphic render failed", "graphic", msg.Graphic.Kind.String(), "err", err)
		} else if path != "" {
			n.Attachments = []string{path}
		}
	}
	if n.Empty() || m.deps.Notifier == nil {
		return nil
	}
	if err := m.deps.Notifier.Notify(ctx, n); err != nil {
		logging.Error(m.log(), "notification not delivered", err)
		return err
	}
	return nil
}

// Snapshot is a read-only view of the machine for the status API.
type Snapshot struct {
	Phase                game.Phase        `json:"phase"`
	Game                 *game.TrackedGame `json:"game,omitempty"`
	Home                 *game.TeamScore   `json:"home,omitempty"`
	Away                 *game.TeamScore   `json:"away,omitempty"`
	LedgerSize           int               `json:"ledgerSize"`
	HighWaterKey         int               `json:"highWaterKey"`
	IntermissionNotified int               `json:"intermissionNotified"`
}

func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        m.phase,
		LedgerSize:   m.ledger.Len(),
		HighWaterKey: m.ledger.HighWaterKey(),
	}
	if s := m.session; s != nil {
		g := s.game
		home, away := s.home, s.away
		snap.Game = &g
		snap.Home = &home
		snap.Away = &away
		snap.IntermissionNotified = s.intermissionNotified
	}
	return snap
}
