package mixer

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vx-labs/mix-engine/adapters/registry"
	"github.com/vx-labs/mix-engine/events"
	"go.uber.org/zap"
)

type fakeRegistry struct {
	mtx   sync.Mutex
	nodes []registry.NodeID
	err   error
	calls int
}

func (r *fakeRegistry) GetAllNodes(kind, name string) ([]registry.NodeID, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	out := make([]registry.NodeID, len(r.nodes))
	copy(out, r.nodes)
	return out, nil
}
func (r *fakeRegistry) Register(kind, name string, self registry.NodeID) error   { return nil }
func (r *fakeRegistry) Unregister(kind, name string, self registry.NodeID) error { return nil }
func (r *fakeRegistry) Shutdown() error                                          { return nil }
func (r *fakeRegistry) callCount() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.calls
}

type fakeComm struct {
	mtx       sync.Mutex
	calls     []string
	pullDiff  []byte
	pullArg   []byte
	failPull  map[string]error
	blockPull chan struct{}
	started   chan struct{}
}

func newFakeComm() *fakeComm {
	return &fakeComm{
		pullDiff: []byte("her-diff"),
		pullArg:  []byte("her-args"),
		failPull: map[string]error{},
	}
}

func (c *fakeComm) record(verb string, peer registry.NodeID) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.calls = append(c.calls, fmt.Sprintf("%s:%s", verb, peer))
}
func (c *fakeComm) count(prefix string) int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	total := 0
	for _, call := range c.calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			total++
		}
	}
	return total
}
func (c *fakeComm) callList() []string {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	out := make([]string, len(c.calls))
	copy(out, c.calls)
	return out
}

func (c *fakeComm) Pull(peer registry.NodeID, argument []byte) ([]byte, error) {
	if c.started != nil {
		select {
		case c.started <- struct{}{}:
		default:
		}
	}
	if c.blockPull != nil {
		<-c.blockPull
	}
	c.record("pull", peer)
	c.mtx.Lock()
	err := c.failPull[peer.String()]
	c.mtx.Unlock()
	if err != nil {
		return nil, err
	}
	return c.pullDiff, nil
}
func (c *fakeComm) GetPullArgument(peer registry.NodeID) ([]byte, error) {
	c.record("get_pull_argument", peer)
	return c.pullArg, nil
}
func (c *fakeComm) Push(peer registry.NodeID, diff []byte) error {
	c.record("push", peer)
	return nil
}
func (c *fakeComm) Close() {}

type recordingMixable struct {
	argument []byte
	diff     []byte
	pulled   [][]byte
	pushed   [][]byte
	pushErr  error
}

func (m *recordingMixable) MixableName() string { return "recording" }
func (m *recordingMixable) GetArgument() ([]byte, error) {
	return m.argument, nil
}
func (m *recordingMixable) Pull(argument []byte) ([]byte, error) {
	m.pulled = append(m.pulled, argument)
	return m.diff, nil
}
func (m *recordingMixable) Push(diff []byte) error {
	if m.pushErr != nil {
		return m.pushErr
	}
	m.pushed = append(m.pushed, diff)
	return nil
}

type pullOnlyMixable struct{}

func (pullOnlyMixable) MixableName() string { return "pull-only" }

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func testConfig(count int, tick time.Duration) Config {
	return Config{
		Kind:           "recommender",
		Name:           "news",
		CountThreshold: count,
		TickThreshold:  tick,
		RPCTimeout:     time.Second,
		Self:           registry.NodeID{Host: "10.0.0.9", Port: 4001},
	}
}

func newTestMixer(t *testing.T, config Config, reg *fakeRegistry, comm *fakeComm, opts ...Option) (*PushMixer, *recordingMixable) {
	t.Helper()
	modelLock := &sync.RWMutex{}
	m, err := New(zap.NewNop(), config, reg, comm, modelLock, opts...)
	require.NoError(t, err)
	mixable := &recordingMixable{
		argument: []byte("my-args"),
		diff:     []byte("my-diff"),
	}
	require.NoError(t, m.SetMixable(mixable))
	return m, mixable
}

func TestConfigValidate(t *testing.T) {
	require.Error(t, Config{CountThreshold: -1, RPCTimeout: time.Second}.Validate())
	require.Error(t, Config{TickThreshold: -time.Second, RPCTimeout: time.Second}.Validate())
	require.Error(t, Config{}.Validate())
	require.NoError(t, testConfig(0, 0).Validate())
}

func TestSetMixable(t *testing.T) {
	reg := &fakeRegistry{}
	m, _ := newTestMixer(t, testConfig(1, 0), reg, newFakeComm())
	t.Run("rejects models without push capability", func(t *testing.T) {
		assert.Equal(t, ErrNotPushMixable, m.SetMixable(pullOnlyMixable{}))
	})
	t.Run("rejects swap while running", func(t *testing.T) {
		require.NoError(t, m.Start())
		defer m.Stop()
		assert.Error(t, m.SetMixable(&recordingMixable{}))
	})
}

func TestStartStop(t *testing.T) {
	t.Run("start requires a mixable", func(t *testing.T) {
		modelLock := &sync.RWMutex{}
		m, err := New(zap.NewNop(), testConfig(1, 0), &fakeRegistry{}, newFakeComm(), modelLock)
		require.NoError(t, err)
		assert.Equal(t, ErrNoMixable, m.Start())
	})
	t.Run("start and stop are idempotent", func(t *testing.T) {
		m, _ := newTestMixer(t, testConfig(1, 0), &fakeRegistry{}, newFakeComm())
		require.NoError(t, m.Start())
		require.NoError(t, m.Start())
		m.Stop()
		m.Stop()
	})
}

func TestCountThresholdTriggersMix(t *testing.T) {
	peer := registry.NodeID{Host: "10.0.0.1", Port: 4001}
	reg := &fakeRegistry{nodes: []registry.NodeID{peer}}
	comm := newFakeComm()
	m, mixable := newTestMixer(t, testConfig(3, time.Hour), reg, comm)
	require.NoError(t, m.Start())
	defer m.Stop()

	m.NotifyUpdated()
	m.NotifyUpdated()
	m.NotifyUpdated()

	waitFor(t, "mix cycle", func() bool { return m.MixCount() == 1 })
	assert.Equal(t, 1, comm.count("pull:"+peer.String()))
	assert.Equal(t, 1, comm.count("get_pull_argument:"+peer.String()))
	assert.Equal(t, 1, comm.count("push:"+peer.String()))
	assert.Equal(t, 0, m.UpdateCount())
	assert.Equal(t, [][]byte{[]byte("her-diff")}, mixable.pushed)
	assert.Equal(t, [][]byte{[]byte("her-args")}, mixable.pulled)
}

func TestTickThresholdTriggersMix(t *testing.T) {
	clock := clockwork.NewFakeClock()
	reg := &fakeRegistry{}
	comm := newFakeComm()
	m, _ := newTestMixer(t, testConfig(0, time.Second), reg, comm, WithClock(clock))
	require.NoError(t, m.Start())
	defer m.Stop()

	clock.BlockUntil(1)
	clock.Advance(600 * time.Millisecond)
	clock.BlockUntil(1)
	clock.Advance(600 * time.Millisecond)

	// 1.2s elapsed since start: the tick trigger fires even though no
	// update was recorded. The fleet is empty, so the cycle stops at
	// the membership refresh.
	waitFor(t, "registry refresh", func() bool { return reg.callCount() >= 1 })
	assert.Equal(t, uint64(0), m.MixCount())
	assert.Equal(t, 0, len(comm.callList()))
}

func TestCountOnlyNeverFiresOnTime(t *testing.T) {
	clock := clockwork.NewFakeClock()
	peer := registry.NodeID{Host: "10.0.0.1", Port: 4001}
	reg := &fakeRegistry{nodes: []registry.NodeID{peer}}
	comm := newFakeComm()
	m, _ := newTestMixer(t, testConfig(2, 0), reg, comm, WithClock(clock))
	require.NoError(t, m.Start())
	defer m.Stop()

	clock.BlockUntil(1)
	clock.Advance(10 * time.Second)
	clock.BlockUntil(1)
	clock.Advance(10 * time.Second)
	assert.Equal(t, 0, reg.callCount())

	m.NotifyUpdated()
	m.NotifyUpdated()
	waitFor(t, "count-triggered mix", func() bool { return m.MixCount() == 1 })
}

func TestDisabledThresholdsOnlyMixOnDemand(t *testing.T) {
	clock := clockwork.NewFakeClock()
	peer := registry.NodeID{Host: "10.0.0.1", Port: 4001}
	reg := &fakeRegistry{nodes: []registry.NodeID{peer}}
	comm := newFakeComm()
	m, _ := newTestMixer(t, testConfig(0, 0), reg, comm, WithClock(clock))
	require.NoError(t, m.Start())
	defer m.Stop()

	for i := 0; i < 10; i++ {
		m.NotifyUpdated()
	}
	clock.BlockUntil(1)
	clock.Advance(time.Minute)
	clock.BlockUntil(1)
	clock.Advance(time.Minute)
	assert.Equal(t, 0, reg.callCount())
	assert.Equal(t, 10, m.UpdateCount())

	require.True(t, m.DoMix())
	assert.Equal(t, uint64(1), m.MixCount())
	assert.Equal(t, 0, m.UpdateCount())
}

func TestDoMix(t *testing.T) {
	peerA := registry.NodeID{Host: "10.0.0.1", Port: 4001}
	peerB := registry.NodeID{Host: "10.0.0.2", Port: 4001}

	t.Run("exchanges with every candidate in order", func(t *testing.T) {
		reg := &fakeRegistry{nodes: []registry.NodeID{peerA, peerB}}
		comm := newFakeComm()
		m, mixable := newTestMixer(t, testConfig(0, 0), reg, comm)
		require.NoError(t, m.Start())
		defer m.Stop()

		require.True(t, m.DoMix())
		assert.Equal(t, []string{
			"pull:" + peerA.String(),
			"get_pull_argument:" + peerA.String(),
			"push:" + peerA.String(),
			"pull:" + peerB.String(),
			"get_pull_argument:" + peerB.String(),
			"push:" + peerB.String(),
		}, comm.callList())
		assert.Equal(t, 2, len(mixable.pushed))
		assert.Equal(t, uint64(1), m.MixCount())
	})

	t.Run("returns false on an idle mixer", func(t *testing.T) {
		reg := &fakeRegistry{nodes: []registry.NodeID{peerA}}
		m, _ := newTestMixer(t, testConfig(0, 0), reg, newFakeComm())
		assert.False(t, m.DoMix())
	})

	t.Run("completes with an empty fleet without issuing calls", func(t *testing.T) {
		reg := &fakeRegistry{}
		comm := newFakeComm()
		m, _ := newTestMixer(t, testConfig(0, 0), reg, comm)
		require.NoError(t, m.Start())
		defer m.Stop()

		require.True(t, m.DoMix())
		assert.Equal(t, 0, len(comm.callList()))
		assert.Equal(t, uint64(0), m.MixCount())
	})

	t.Run("returns false when the registry fails", func(t *testing.T) {
		reg := &fakeRegistry{err: errors.New("registry unreachable")}
		m, _ := newTestMixer(t, testConfig(0, 0), reg, newFakeComm())
		require.NoError(t, m.Start())
		defer m.Stop()

		assert.False(t, m.DoMix())
		assert.Equal(t, uint64(0), m.MixCount())
	})
}

func TestPeerFailureAbortsRemainderOfCycle(t *testing.T) {
	peerA := registry.NodeID{Host: "10.0.0.1", Port: 4001}
	peerB := registry.NodeID{Host: "10.0.0.2", Port: 4001}
	reg := &fakeRegistry{nodes: []registry.NodeID{peerA, peerB}}
	comm := newFakeComm()
	comm.failPull[peerB.String()] = errors.New("connection timed out")
	m, mixable := newTestMixer(t, testConfig(0, 0), reg, comm)
	require.NoError(t, m.Start())
	defer m.Stop()

	require.False(t, m.DoMix())

	// The first peer's exchange stays applied to the local model.
	assert.Equal(t, [][]byte{[]byte("her-diff")}, mixable.pushed)
	assert.Equal(t, 1, comm.count("push:"+peerA.String()))
	// The failing peer got its pull and nothing further.
	assert.Equal(t, 0, comm.count("push:"+peerB.String()))
	// An aborted cycle does not count as a completed mix.
	assert.Equal(t, uint64(0), m.MixCount())
}

func TestCandidateFilterEmptySelection(t *testing.T) {
	peer := registry.NodeID{Host: "10.0.0.9", Port: 4001}
	reg := &fakeRegistry{nodes: []registry.NodeID{peer}}
	comm := newFakeComm()
	m, _ := newTestMixer(t, testConfig(0, 0), reg, comm,
		WithCandidateFilter(ExcludeSelf(peer)))
	require.NoError(t, m.Start())
	defer m.Stop()

	require.True(t, m.DoMix())
	assert.Equal(t, 0, len(comm.callList()))
}

func TestInboundPushResetsTriggers(t *testing.T) {
	reg := &fakeRegistry{}
	m, mixable := newTestMixer(t, testConfig(5, 0), reg, newFakeComm())
	require.NoError(t, m.Start())
	defer m.Stop()

	m.NotifyUpdated()
	m.NotifyUpdated()
	assert.Equal(t, 2, m.UpdateCount())

	require.NoError(t, m.Push([]byte("remote-diff")))
	assert.Equal(t, 0, m.UpdateCount())
	assert.Equal(t, [][]byte{[]byte("remote-diff")}, mixable.pushed)
}

func TestInboundPushDuringCycle(t *testing.T) {
	peer := registry.NodeID{Host: "10.0.0.1", Port: 4001}
	reg := &fakeRegistry{nodes: []registry.NodeID{peer}}
	comm := newFakeComm()
	comm.blockPull = make(chan struct{})
	comm.started = make(chan struct{}, 1)
	m, _ := newTestMixer(t, testConfig(1, 0), reg, comm)
	require.NoError(t, m.Start())
	defer m.Stop()

	m.NotifyUpdated()
	<-comm.started

	// The executor is parked inside a peer call and holds no lock: an
	// inbound push must get through.
	pushed := make(chan error, 1)
	go func() {
		pushed <- m.Push([]byte("remote-diff"))
	}()
	select {
	case err := <-pushed:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("inbound push deadlocked against the running cycle")
	}

	close(comm.blockPull)
	waitFor(t, "cycle completion", func() bool { return m.MixCount() == 1 })
}

func TestStopWaitsForCycle(t *testing.T) {
	peerA := registry.NodeID{Host: "10.0.0.1", Port: 4001}
	peerB := registry.NodeID{Host: "10.0.0.2", Port: 4001}
	reg := &fakeRegistry{nodes: []registry.NodeID{peerA, peerB}}
	comm := newFakeComm()
	comm.blockPull = make(chan struct{})
	comm.started = make(chan struct{}, 1)
	m, _ := newTestMixer(t, testConfig(1, 0), reg, comm)
	require.NoError(t, m.Start())

	m.NotifyUpdated()
	<-comm.started

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(comm.blockPull)
	}()
	m.Stop()

	// The cycle observed the shutdown between peers: the second peer
	// was never contacted, and no call happens after Stop returned.
	after := comm.callList()
	assert.Equal(t, 0, comm.count("pull:"+peerB.String()))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, after, comm.callList())
}

func TestMixEvents(t *testing.T) {
	peer := registry.NodeID{Host: "10.0.0.1", Port: 4001}
	reg := &fakeRegistry{nodes: []registry.NodeID{peer}}
	m, _ := newTestMixer(t, testConfig(0, 0), reg, newFakeComm())
	require.NoError(t, m.Start())
	defer m.Stop()

	ch, cancel := m.Events()
	defer cancel()
	var kinds []events.EventKind
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range ch {
			kinds = append(kinds, ev.Kind)
			if ev.Kind == events.MixDone {
				return
			}
		}
	}()

	require.True(t, m.DoMix())
	<-done
	assert.Equal(t, []events.EventKind{
		events.MixStarted,
		events.PushApplied,
		events.MixDone,
	}, kinds)
}

func TestStatus(t *testing.T) {
	reg := &fakeRegistry{}
	m, _ := newTestMixer(t, testConfig(3, 0), reg, newFakeComm())
	m.NotifyUpdated()
	status := m.Status()
	assert.Equal(t, "1", status["push_mixer.count"])
	assert.Contains(t, status, "push_mixer.ticktime")
	assert.Equal(t, "0", status["push_mixer.mix_count"])
}
