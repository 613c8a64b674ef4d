package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestIdentifierAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user_id", logger.UserID("u1").Key)
	assert.Equal(t, "u1", logger.UserID("u1").Value.String())
	assert.True(t, logger.UserID("").Equal(slog.Attr{}))

	assert.Equal(t, "session_id", logger.SessionID("s1").Key)
	assert.True(t, logger.SessionID("").Equal(slog.Attr{}))

	assert.Equal(t, "request_id", logger.RequestID("r1").Key)
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestHTTPAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GET", logger.Method("GET").Value.String())
	assert.Equal(t, "/login", logger.Path("/login").Value.String())
	assert.Equal(t, int64(204), logger.StatusCode(204).Value.Int64())
	assert.Equal(t, "10.0.0.1", logger.ClientIP("10.0.0.1").Value.String())
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
}

func TestTimingAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())

	elapsed := logger.Elapsed(time.Now().Add(-time.Millisecond))
	assert.Equal(t, "elapsed", elapsed.Key)
	assert.GreaterOrEqual(t, elapsed.Value.Duration(), time.Millisecond)
}

func TestMetadataAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "auth", logger.Component("auth").Value.String())
	assert.Equal(t, "login", logger.Event("login").Value.String())
	assert.Equal(t, int64(3), logger.Count("sessions", 3).Value.Int64())
}
