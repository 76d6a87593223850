package spinning_test

import (
	"bytes"
	"context"
	. "github.com/janpfeifer/droplet/internal/ui/spinning"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"time"
)

func TestSpinning(t *testing.T) {
	var buf bytes.Buffer
	s := New(context.Background(), &buf)
	time.Sleep(3 * Period)
	s.Done()
	s.Done()
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\033[?25l|\b"), "output %q", out)
	assert.True(t, strings.HasSuffix(out, " \b\033[?25h"), "output %q", out)

	// Cancelling the context also stops it.
	buf.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	s = New(ctx, &buf)
	cancel()
	s.Done()
	assert.True(t, strings.HasSuffix(buf.String(), "\033[?25h"))
}

func TestTheme(t *testing.T) {
	defer func(theme []rune) { Theme = theme }(Theme)
	Theme = []rune("⠋⠙⠹⠸")
	var buf bytes.Buffer
	s := New(context.Background(), &buf)
	s.Done()
	assert.True(t, strings.HasPrefix(buf.String(), "\033[?25l⠋\b"), "output %q", buf.String())
}
