package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/routekit/routespec"
	"github.com/vitalvas/routekit/routetable"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTable(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "routes.yaml")
	data := []byte(`routes:
  - name: user
    pattern: /users/:id
    methods: [GET, PUT]
  - name: post
    pattern: /posts(/:id)
    defaults:
      id: latest
  - name: file
    pattern: /files/*path
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestAstCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "tree",
			args:     []string{"ast", "*rest"},
			expected: "Root\n  Splat rest\n",
		},
		{
			name:     "canonical",
			args:     []string{"ast", "--canonical", "/posts(/:id)"},
			expected: "/posts(/:id)\n",
		},
		{
			name:     "regexp",
			args:     []string{"ast", "--regexp", "/users/:id"},
			expected: "(?s)^/users/([^/?]+)(?:\\?.*)?$\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}

	t.Run("parse error", func(t *testing.T) {
		_, _, err := execute(t, "ast", "/a(")
		assert.ErrorIs(t, err, routespec.ErrUnclosedGroup)
	})

	t.Run("exclusive flags", func(t *testing.T) {
		_, _, err := execute(t, "ast", "--canonical", "--regexp", "/a")
		assert.Error(t, err)
	})
}

func TestMatchCmd(t *testing.T) {
	t.Run("captures in pattern order", func(t *testing.T) {
		stdout, _, err := execute(t, "match", "/:a/:b(/*rest)", "/x/y%20z?q=1")
		require.NoError(t, err)
		assert.Equal(t, "a=x\nb=y z\n", stdout)
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := execute(t, "match", "--json", "/users/:id", "/users/42")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"42"}`, stdout)
	})

	t.Run("no match", func(t *testing.T) {
		stdout, _, err := execute(t, "match", "/users/:id", "/users/42/edit")
		assert.ErrorIs(t, err, errNoResult)
		assert.Equal(t, "no match\n", stdout)
	})

	t.Run("debug log", func(t *testing.T) {
		_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "match", "/users/:id", "/users/1")
		require.NoError(t, err)
		assert.Contains(t, stderr, `"msg":"compiled pattern"`)
		assert.Contains(t, stderr, `"pattern":"/users/:id"`)
	})

	t.Run("quiet by default", func(t *testing.T) {
		_, stderr, err := execute(t, "match", "/users/:id", "/users/1")
		require.NoError(t, err)
		assert.Empty(t, stderr)
	})
}

func TestReverseCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		err      error
	}{
		{name: "params", args: []string{"reverse", "/users/:id", "id=7"}, expected: "/users/7\n"},
		{name: "optional absent", args: []string{"reverse", "/posts(/:id)"}, expected: "/posts\n"},
		{name: "encoded", args: []string{"reverse", "/files/*path", "path=a b/c"}, expected: "/files/a%20b/c\n"},
		{name: "value with equals", args: []string{"reverse", "/q/:v", "v=a=b"}, expected: "/q/a=b\n"},
		{name: "missing", args: []string{"reverse", "/users/:id"}, expected: "cannot render\n", err: errNoResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, stdout)
		})
	}

	t.Run("malformed parameter", func(t *testing.T) {
		_, _, err := execute(t, "reverse", "/users/:id", "id")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errNoResult)
		assert.Contains(t, err.Error(), `invalid parameter "id"`)
	})
}

func TestTableCmd(t *testing.T) {
	file := writeTable(t)

	t.Run("check", func(t *testing.T) {
		stdout, _, err := execute(t, "table", "check", "-f", file)
		require.NoError(t, err)
		assert.Contains(t, stdout, "user")
		assert.Contains(t, stdout, "GET,PUT")
		assert.Contains(t, stdout, "/posts(/:id)")
		assert.Contains(t, stdout, "ok: 3 routes\n")
	})

	t.Run("check requires file", func(t *testing.T) {
		_, _, err := execute(t, "table", "check")
		assert.Error(t, err)
	})

	t.Run("check invalid table", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("routes:\n  - pattern: /a\n"), 0o600))

		_, _, err := execute(t, "table", "check", "-f", bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("match", func(t *testing.T) {
		stdout, _, err := execute(t, "table", "match", "-f", file, "/users/3")
		require.NoError(t, err)
		assert.Equal(t, "user\nid=3\n", stdout)
	})

	t.Run("match with method", func(t *testing.T) {
		stdout, _, err := execute(t, "table", "match", "-f", file, "-X", "delete", "/users/3")
		assert.ErrorIs(t, err, errNoResult)
		assert.Equal(t, "no match\n", stdout)
	})

	t.Run("reverse with defaults", func(t *testing.T) {
		stdout, _, err := execute(t, "table", "reverse", "-f", file, "post")
		require.NoError(t, err)
		assert.Equal(t, "/posts/latest\n", stdout)
	})

	t.Run("reverse missing params", func(t *testing.T) {
		stdout, _, err := execute(t, "table", "reverse", "-f", file, "user")
		assert.ErrorIs(t, err, errNoResult)
		assert.Equal(t, "cannot render\n", stdout)
	})

	t.Run("reverse unknown route", func(t *testing.T) {
		_, _, err := execute(t, "table", "reverse", "-f", file, "nope")
		assert.ErrorIs(t, err, routetable.ErrUnknownRoute)
	})
}

func TestLoggerFlags(t *testing.T) {
	t.Run("bad level", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud", "version")
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, _, err := execute(t, "--log-format", "xml", "version")
		assert.ErrorContains(t, err, `unknown log format "xml"`)
	})

	t.Run("version", func(t *testing.T) {
		stdout, _, err := execute(t, "version")
		require.NoError(t, err)
		assert.Equal(t, "routespec dev (none)\n", stdout)
	})
}
