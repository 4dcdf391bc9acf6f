package editor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient returns a client pointed at server, plus the server's port.
func testClient(t *testing.T, server *httptest.Server, opts ...ClientOption) (*Client, string) {
	t.Helper()

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	return NewClient(opts...), u.Port()
}

func TestProbe_LiveEditor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/command/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, port := testClient(t, server, WithHost("127.0.0.1"))
	assert.True(t, client.Probe(context.Background(), port))
}

func TestProbe_StatusOutside2xxIsNotLive(t *testing.T) {
	for _, status := range []int{http.StatusMovedPermanently, http.StatusNotFound, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client, port := testClient(t, server, WithHost("127.0.0.1"))
		assert.False(t, client.Probe(context.Background(), port), "status %d should not count as live", status)
		server.Close()
	}
}

func TestProbe_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, port := testClient(t, server, WithHost("127.0.0.1"))
	server.Close() // nothing listens on the port anymore

	assert.False(t, client.Probe(context.Background(), port))
}

func TestDispatch_Success(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(status)
		}))

		client, port := testClient(t, server, WithHost("127.0.0.1"))
		assert.True(t, client.Dispatch(context.Background(), port, CmdHotReload), "status %d should succeed", status)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/command/hot-reload", gotPath)
		server.Close()
	}
}

func TestDispatch_Failure(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client, port := testClient(t, server, WithHost("127.0.0.1"))
		assert.False(t, client.Dispatch(context.Background(), port, CmdBuild), "status %d should fail", status)
		server.Close()
	}
}

func TestDispatch_TimeoutIsFalse(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, port := testClient(t, server,
		WithHost("127.0.0.1"),
		WithDispatchTimeout(50*time.Millisecond),
	)

	start := time.Now()
	assert.False(t, client.Dispatch(context.Background(), port, CmdHotReload))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCommand_Valid(t *testing.T) {
	assert.True(t, CmdHotReload.Valid())
	assert.True(t, CmdDebuggerStart.Valid())
	assert.False(t, Command("format-hard-drive").Valid())
	assert.False(t, Command("").Valid())
}

func TestCommands_ContainsVocabulary(t *testing.T) {
	all := Commands()
	assert.Contains(t, all, CmdHotReload)
	assert.Contains(t, all, CmdBuild)
	assert.NotEmpty(t, all)
}
