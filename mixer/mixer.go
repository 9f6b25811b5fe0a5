package mixer

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/vx-labs/mix-engine/adapters/registry"
	"github.com/vx-labs/mix-engine/events"
	"go.uber.org/zap"
)

// schedulerTick bounds the background worker's wait: thresholds are
// re-evaluated at least this often even without update signals.
const schedulerTick = 500 * time.Millisecond

var (
	// ErrStopped is returned by a cycle interrupted by Stop.
	ErrStopped = errors.New("mixer stopped")
)

// Config is the immutable mixer configuration.
type Config struct {
	// Kind and Name select the learner fleet in the registry.
	Kind string
	Name string
	// CountThreshold fires a mix after this many local updates.
	// Zero disables the count trigger.
	CountThreshold int
	// TickThreshold fires a mix after this much time since the last
	// one. Zero disables the time trigger.
	TickThreshold time.Duration
	// RPCTimeout bounds each peer call.
	RPCTimeout time.Duration
	// Self is the advertised endpoint of this node.
	Self registry.NodeID
}

func (c Config) Validate() error {
	if c.CountThreshold < 0 {
		return errors.New("count threshold must not be negative")
	}
	if c.TickThreshold < 0 {
		return errors.New("tick threshold must not be negative")
	}
	if c.RPCTimeout <= 0 {
		return errors.New("rpc timeout must be positive")
	}
	return nil
}

// PushMixer keeps the local model loosely synchronized with the fleet
// by periodically running bilateral delta exchanges with peers. A mix
// fires when enough local updates accumulated or enough time passed,
// whichever comes first, and can be forced through DoMix.
type PushMixer struct {
	config  Config
	logger  *zap.Logger
	clock   clockwork.Clock
	comm    Communication
	members *MembershipView
	filter  CandidateFilter
	bus     *events.EventBus

	modelLock *sync.RWMutex
	mixable   PushMixable

	mtx      sync.Mutex
	counter  int
	ticktime time.Time
	mixCount uint64
	running  bool
	wake     chan struct{}
	quit     chan struct{}
	done     chan struct{}

	// mixMtx serializes cycles: the scheduler and DoMix callers never
	// exchange concurrently.
	mixMtx sync.Mutex
}

type Option func(*PushMixer)

// WithClock replaces the wall clock, for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(m *PushMixer) {
		m.clock = clock
	}
}

// WithCandidateFilter replaces the default all-peers selection.
func WithCandidateFilter(filter CandidateFilter) Option {
	return func(m *PushMixer) {
		m.filter = filter
	}
}

// New builds an idle mixer. The model lock is owned by the caller and
// shared with whatever serves local updates; the mixer acquires it
// around every mixable invocation and never across network calls.
func New(logger *zap.Logger, config Config, reg registry.Registry, comm Communication, modelLock *sync.RWMutex, opts ...Option) (*PushMixer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	m := &PushMixer{
		config:    config,
		logger:    logger,
		clock:     clockwork.NewRealClock(),
		comm:      comm,
		members:   NewMembershipView(reg, config.Kind, config.Name),
		filter:    FilterAll(),
		bus:       events.NewEventBus(),
		modelLock: modelLock,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.ticktime = m.clock.Now()
	return m, nil
}

// SetMixable wires the model. Only models with push-mix capability are
// accepted, and the mixer must not be running.
func (m *PushMixer) SetMixable(mixable Mixable) error {
	pushMixable, ok := mixable.(PushMixable)
	if !ok {
		return ErrNotPushMixable
	}
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.running {
		return errors.New("cannot swap mixable on a running mixer")
	}
	m.mixable = pushMixable
	return nil
}

// Events subscribes to the mix lifecycle.
func (m *PushMixer) Events() (chan events.Event, events.CancelFunc) {
	return m.bus.Events()
}

// Start launches the background worker. Calling Start on a running
// mixer is a no-op.
func (m *PushMixer) Start() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.running {
		return nil
	}
	if m.mixable == nil {
		return ErrNoMixable
	}
	m.running = true
	m.counter = 0
	m.ticktime = m.clock.Now()
	m.wake = make(chan struct{}, 1)
	m.quit = make(chan struct{})
	m.done = make(chan struct{})
	go m.loop()
	return nil
}

// Stop terminates the background worker and waits for it. An in-flight
// cycle finishes the peer exchange it is running and skips the
// remaining candidates. Calling Stop on an idle mixer is a no-op.
func (m *PushMixer) Stop() {
	m.mtx.Lock()
	if !m.running {
		m.mtx.Unlock()
		return
	}
	m.running = false
	close(m.quit)
	done := m.done
	m.mtx.Unlock()
	<-done
	// A forced cycle may still be in flight: wait for it before
	// tearing down connections.
	m.mixMtx.Lock()
	m.mixMtx.Unlock()
	m.comm.Close()
}

// NotifyUpdated records one local model update. The scheduler is
// signaled when a threshold is crossed; the signal is advisory, the
// worker re-checks on wake.
func (m *PushMixer) NotifyUpdated() {
	m.mtx.Lock()
	m.counter++
	mixPendingUpdates.Set(float64(m.counter))
	crossed := (m.config.CountThreshold > 0 && m.counter >= m.config.CountThreshold) ||
		(m.config.TickThreshold > 0 && m.clock.Now().Sub(m.ticktime) > m.config.TickThreshold)
	running := m.running
	wake := m.wake
	m.mtx.Unlock()
	if crossed && running {
		select {
		case wake <- struct{}{}:
		default:
		}
	}
}

// DoMix resets both triggers and runs one cycle synchronously,
// regardless of thresholds. It reports whether the cycle completed.
func (m *PushMixer) DoMix() bool {
	m.mtx.Lock()
	if !m.running {
		m.mtx.Unlock()
		return false
	}
	m.counter = 0
	m.ticktime = m.clock.Now()
	mixPendingUpdates.Set(0)
	m.mtx.Unlock()

	m.logger.Info("forced to mix by user RPC")
	return m.mix() == nil
}

// Status reports the mixer counters for operator introspection.
func (m *PushMixer) Status() map[string]string {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return map[string]string{
		"push_mixer.count":     fmt.Sprintf("%d", m.counter),
		"push_mixer.ticktime":  fmt.Sprintf("%d", m.ticktime.Unix()),
		"push_mixer.mix_count": fmt.Sprintf("%d", m.mixCount),
	}
}

// MixCount returns the number of completed cycles.
func (m *PushMixer) MixCount() uint64 {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.mixCount
}

// UpdateCount returns the number of local updates since the last mix.
func (m *PushMixer) UpdateCount() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.counter
}

func (m *PushMixer) isRunning() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.running
}

func (m *PushMixer) loop() {
	defer close(m.done)
	for {
		select {
		case <-m.quit:
			return
		case <-m.wake:
		case <-m.clock.After(schedulerTick):
		}
		m.mtx.Lock()
		if !m.running {
			m.mtx.Unlock()
			return
		}
		now := m.clock.Now()
		byCount := m.config.CountThreshold > 0 && m.counter >= m.config.CountThreshold
		byTick := m.config.TickThreshold > 0 && now.Sub(m.ticktime) > m.config.TickThreshold
		if !byCount && !byTick {
			m.mtx.Unlock()
			continue
		}
		trigger := "tick_time"
		if byCount {
			trigger = "counter"
		}
		// Reset before releasing the lock so updates arriving during
		// the cycle count toward the next one.
		m.counter = 0
		m.ticktime = now
		mixPendingUpdates.Set(0)
		m.mtx.Unlock()

		m.logger.Debug("starting mix", zap.String("mix_trigger", trigger))
		m.mix()
	}
}

// mix runs one full cycle: refresh membership, select candidates, and
// exchange with each of them in order.
func (m *PushMixer) mix() error {
	m.mixMtx.Lock()
	defer m.mixMtx.Unlock()

	start := m.clock.Now()
	sPull, sPush := 0, 0

	count, err := m.members.Refresh()
	if err != nil {
		mixFailures.Inc()
		m.logger.Warn("mix aborted", zap.Error(err))
		m.bus.Emit(events.Event{Kind: events.MixFailed, Err: err})
		return err
	}
	if count == 0 {
		m.logger.Warn("no other server")
		return nil
	}
	candidates := m.filter.Select(m.members.Snapshot())
	if len(candidates) == 0 {
		m.logger.Warn("no server selected")
		return nil
	}
	m.bus.Emit(events.Event{Kind: events.MixStarted, Peers: len(candidates)})
	m.logger.Debug("mix started", zap.Int("mix_candidates", len(candidates)))

	for _, peer := range candidates {
		if !m.isRunning() {
			m.logger.Debug("mix interrupted by shutdown")
			return ErrStopped
		}
		if err := m.exchange(peer, &sPull, &sPush); err != nil {
			mixFailures.Inc()
			m.logger.Warn("mix exchange failed",
				zap.String("peer", peer.String()),
				zap.Error(err))
			m.bus.Emit(events.Event{Kind: events.MixFailed, Err: err})
			return err
		}
	}

	elapsed := m.clock.Now().Sub(start)
	m.mtx.Lock()
	m.mixCount++
	total := m.mixCount
	m.mtx.Unlock()
	mixCycles.Inc()
	mixPulledBytes.Add(float64(sPull))
	mixPushedBytes.Add(float64(sPush))
	m.logger.Info("mix done",
		zap.Duration("mix_elapsed", elapsed),
		zap.Int("mix_pulled_bytes", sPull),
		zap.Int("mix_pushed_bytes", sPush),
		zap.Uint64("mix_count", total))
	m.bus.Emit(events.Event{
		Kind:        events.MixDone,
		Peers:       len(candidates),
		Elapsed:     elapsed,
		PulledBytes: sPull,
		PushedBytes: sPush,
	})
	return nil
}

// exchange runs the bilateral protocol with one peer. The model lock
// is taken around each local callback, never across a peer call.
func (m *PushMixer) exchange(peer registry.NodeID, sPull, sPush *int) error {
	// pull from her
	myArgs, err := m.GetPullArgument()
	if err != nil {
		return err
	}
	herDiff, err := m.comm.Pull(peer, myArgs)
	if err != nil {
		return err
	}

	// pull from me
	herArgs, err := m.comm.GetPullArgument(peer)
	if err != nil {
		return err
	}
	myDiff, err := m.Pull(herArgs)
	if err != nil {
		return err
	}

	// push to her and me
	if err := m.comm.Push(peer, myDiff); err != nil {
		return err
	}
	if err := m.push(herDiff, false); err != nil {
		return err
	}

	*sPull += len(herDiff)
	*sPush += len(myDiff)
	return nil
}

// Pull serves a peer's pull request: the model produces the diff
// matching the given argument, under the read lock.
func (m *PushMixer) Pull(argument []byte) ([]byte, error) {
	m.modelLock.RLock()
	defer m.modelLock.RUnlock()
	if m.mixable == nil {
		return nil, ErrNoMixable
	}
	diff, err := m.mixable.Pull(argument)
	if err != nil {
		return nil, errors.Wrap(err, "mixable pull failed")
	}
	return diff, nil
}

// GetPullArgument serves the model's current pull argument, under the
// read lock.
func (m *PushMixer) GetPullArgument() ([]byte, error) {
	m.modelLock.RLock()
	defer m.modelLock.RUnlock()
	if m.mixable == nil {
		return nil, ErrNoMixable
	}
	argument, err := m.mixable.GetArgument()
	if err != nil {
		return nil, errors.Wrap(err, "mixable get_argument failed")
	}
	return argument, nil
}

// Push merges a diff into the model under the write lock, then resets
// both triggers: the model just caught up with a peer, a scheduled mix
// would be redundant.
func (m *PushMixer) Push(diff []byte) error {
	return m.push(diff, true)
}

// push merges a diff under the write lock. The executor applies the
// peer's diff with resetTriggers false, so local updates recorded
// during a cycle still count toward the next one.
func (m *PushMixer) push(diff []byte, resetTriggers bool) error {
	m.modelLock.Lock()
	defer m.modelLock.Unlock()
	if m.mixable == nil {
		return ErrNoMixable
	}
	if err := m.mixable.Push(diff); err != nil {
		return errors.Wrap(err, "mixable push failed")
	}
	if resetTriggers {
		m.mtx.Lock()
		m.counter = 0
		m.ticktime = m.clock.Now()
		mixPendingUpdates.Set(0)
		m.mtx.Unlock()
	}
	mixPushApplied.Inc()
	m.bus.Emit(events.Event{Kind: events.PushApplied})
	return nil
}
