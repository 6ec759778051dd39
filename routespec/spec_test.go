package routespec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid pattern", func(t *testing.T) {
		spec, err := New("/users/:id(/*rest)")
		require.NoError(t, err)
		assert.Equal(t, "/users/:id(/*rest)", spec.Pattern())
		assert.Equal(t, "/users/:id(/*rest)", spec.String())
		assert.Equal(t, []string{"id", "rest"}, spec.Names())
		assert.Equal(t, KindRoot, spec.AST().Kind())
	})

	t.Run("invalid pattern", func(t *testing.T) {
		spec, err := New("/users/(:id")
		assert.Nil(t, spec)
		assert.ErrorIs(t, err, ErrUnclosedGroup)
	})

	t.Run("names are copied", func(t *testing.T) {
		spec := MustNew("/:a/:b")
		names := spec.Names()
		names[0] = "changed"
		assert.Equal(t, []string{"a", "b"}, spec.Names())
	})
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() { MustNew("/ok/:id") })
	assert.Panics(t, func() { MustNew("/bad/:") })
}

func TestRouteSpecConcurrentUse(t *testing.T) {
	spec := MustNew("/users/:id(/posts/*rest)")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				captures, ok := spec.Match("/users/7/posts/a/b")
				assert.True(t, ok)
				assert.Equal(t, Captures{"id": "7", "rest": "a/b"}, captures)

				path, ok := spec.Reverse(Params{"id": "7"})
				assert.True(t, ok)
				assert.Equal(t, "/users/7", path)
			}
		}()
	}
	wg.Wait()
}

func TestMatcherIsBuiltOnce(t *testing.T) {
	spec := MustNew("/users/:id")

	m1, err := spec.Matcher()
	require.NoError(t, err)
	m2, err := spec.Matcher()
	require.NoError(t, err)
	assert.Same(t, m1, m2)
}
