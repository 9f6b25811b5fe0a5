package mixer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vx-labs/mix-engine/mixer/pb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServerHandlers(t *testing.T) {
	ctx := context.Background()
	reg := &fakeRegistry{}
	m, mixable := newTestMixer(t, testConfig(0, 0), reg, newFakeComm())
	server := NewServer(m, zap.NewNop())

	t.Run("pull", func(t *testing.T) {
		out, err := server.Pull(ctx, &pb.PullInput{Argument: []byte("peer-args")})
		require.NoError(t, err)
		assert.Equal(t, []byte("my-diff"), out.Diff)
		assert.Equal(t, [][]byte{[]byte("peer-args")}, mixable.pulled)
	})

	t.Run("get_pull_argument", func(t *testing.T) {
		out, err := server.GetPullArgument(ctx, &pb.GetPullArgumentInput{})
		require.NoError(t, err)
		assert.Equal(t, []byte("my-args"), out.Argument)
	})

	t.Run("push applies the diff and resets the triggers", func(t *testing.T) {
		m.NotifyUpdated()
		_, err := server.Push(ctx, &pb.PushInput{Diff: []byte("peer-diff")})
		require.NoError(t, err)
		assert.Equal(t, 0, m.UpdateCount())
		assert.Equal(t, [][]byte{[]byte("peer-diff")}, mixable.pushed)
	})

	t.Run("push surfaces model failures as grpc errors", func(t *testing.T) {
		mixable.pushErr = assert.AnError
		defer func() { mixable.pushErr = nil }()
		_, err := server.Push(ctx, &pb.PushInput{Diff: []byte("broken")})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("do_mix on an idle mixer reports failure", func(t *testing.T) {
		out, err := server.DoMix(ctx, &pb.DoMixInput{})
		require.NoError(t, err)
		assert.False(t, out.Ok)
	})

	t.Run("do_mix runs a cycle synchronously", func(t *testing.T) {
		require.NoError(t, m.Start())
		defer m.Stop()
		out, err := server.DoMix(ctx, &pb.DoMixInput{})
		require.NoError(t, err)
		// An empty fleet completes trivially.
		assert.True(t, out.Ok)
	})
}
