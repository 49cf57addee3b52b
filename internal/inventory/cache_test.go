package inventory

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herdware/herdctl/internal/provider"
)

func listing(names ...string) func(context.Context) ([]*provider.Server, error) {
	return func(context.Context) ([]*provider.Server, error) {
		servers := make([]*provider.Server, 0, len(names))
		for i, name := range names {
			servers = append(servers, &provider.Server{
				ID:        int64(i + 1),
				Name:      name,
				Addresses: map[int]net.IP{4: net.ParseIP("192.0.2.1")},
			})
		}
		return servers, nil
	}
}

func TestCache_RefreshAndLookup(t *testing.T) {
	t.Parallel()

	mock := &provider.MockClient{ListServersFunc: listing("web1", "saltmaster")}
	cache := New(mock)
	require.NoError(t, cache.Refresh(context.Background()))

	srv, err := cache.Lookup("web1")
	require.NoError(t, err)
	assert.Equal(t, "web1", srv.Name)

	_, err = cache.Lookup("nope")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Name)
}

func TestCache_RefreshReplacesSnapshot(t *testing.T) {
	t.Parallel()

	mock := &provider.MockClient{ListServersFunc: listing("web1", "web2")}
	cache := New(mock)
	require.NoError(t, cache.Refresh(context.Background()))

	// web2 disappears provider-side; the next refresh must not keep it.
	mock.ListServersFunc = listing("web1")
	require.NoError(t, cache.Refresh(context.Background()))

	_, err := cache.Lookup("web2")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, []string{"web1"}, cache.Names())
}

func TestCache_RefreshErrorKeepsSnapshot(t *testing.T) {
	t.Parallel()

	mock := &provider.MockClient{ListServersFunc: listing("web1")}
	cache := New(mock)
	require.NoError(t, cache.Refresh(context.Background()))

	mock.ListServersFunc = func(context.Context) ([]*provider.Server, error) {
		return nil, errors.New("api down")
	}
	require.Error(t, cache.Refresh(context.Background()))

	srv, err := cache.Lookup("web1")
	require.NoError(t, err)
	assert.Equal(t, "web1", srv.Name)
}

func TestCache_Remove(t *testing.T) {
	t.Parallel()

	cache := New(&provider.MockClient{ListServersFunc: listing("web1")})
	require.NoError(t, cache.Refresh(context.Background()))

	cache.Remove("web1")
	_, err := cache.Lookup("web1")
	assert.True(t, IsNotFound(err))
}

func TestCache_NoImplicitRefresh(t *testing.T) {
	t.Parallel()

	calls := 0
	mock := &provider.MockClient{ListServersFunc: func(ctx context.Context) ([]*provider.Server, error) {
		calls++
		return listing("web1")(ctx)
	}}
	cache := New(mock)
	require.NoError(t, cache.Refresh(context.Background()))

	for i := 0; i < 3; i++ {
		_, err := cache.Lookup("web1")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)
}
