// Package spinning provides a spinning symbol to display on a terminal while long batches are computed,
// and graceful handling of interruptions.
package spinning

import (
	"context"
	"fmt"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Spinning display, see New.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
}

var (
	// Theme is the sequence of symbols displayed. It can be changed before calling New.
	Theme = []rune(`|/-\`)

	// Period between updates of the symbol.
	Period = 200 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program hasn't exited after gracePeriod, it exits with an error.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// New starts a spinning display on w, updated on a separate goroutine.
// It stops, erasing the symbol, when Spinning.Done is called or ctx is cancelled.
func New(ctx context.Context, w io.Writer) *Spinning {
	s := &Spinning{}
	ctx, s.cancel = context.WithCancel(ctx)
	theme := Theme
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		// Hide the cursor while spinning.
		_, _ = fmt.Fprint(w, "\033[?25l")
		defer func() { _, _ = fmt.Fprint(w, "\033[?25h") }()
		for idx := 0; ; idx = (idx + 1) % len(theme) {
			_, _ = fmt.Fprintf(w, "%c\b", theme[idx])
			select {
			case <-ctx.Done():
				_, _ = fmt.Fprint(w, " \b")
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// Done stops the display and waits for it to be erased. It can be called more than once.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
