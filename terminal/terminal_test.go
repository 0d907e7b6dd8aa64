package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name                           string
		tty, noColor, envNoColor, dumb bool
		wantColor                      bool
	}{
		{name: "tty", tty: true, wantColor: true},
		{name: "pipe", tty: false},
		{name: "flag", tty: true, noColor: true},
		{name: "env", tty: true, envNoColor: true},
		{name: "dumb", tty: true, dumb: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			info := resolve(c.tty, c.noColor, c.envNoColor, c.dumb)
			assert.Equal(t, c.tty, info.IsTerminal)
			assert.Equal(t, c.wantColor, info.ColorEnabled)
		})
	}
}

func TestIsDumb(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.True(t, IsDumb())

	t.Setenv("TERM", "xterm-256color")
	assert.False(t, IsDumb())
}

func TestDetectNonFileWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")

	info := Detect(&bytes.Buffer{}, false)
	assert.False(t, info.IsTerminal)
	assert.False(t, info.ColorEnabled)
}

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}

func TestNoColorEnv(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{value: "", want: false},
		{value: "1", want: true},
		{value: "yes", want: true},
		{value: "false", want: true},
	}

	for _, c := range cases {
		t.Run(c.value, func(t *testing.T) {
			t.Setenv("NO_COLOR", c.value)
			assert.Equal(t, c.want, NoColorEnv())
		})
	}
}
