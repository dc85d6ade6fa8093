package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const (
	spinnerTick = 80 * time.Millisecond
	// Loads shorter than this do not show the elapsed time.
	spinnerShowElapsed = time.Second
)

// Spinner animates one terminal line while the kiosk loads its catalog and
// knowledge base.
type Spinner struct {
	out     io.Writer
	message string

	once sync.Once
	stop chan struct{}
	done chan struct{}
}

func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:     out,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start draws frames until Stop is called.
func (s *Spinner) Start() {
	started := time.Now()
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(spinnerTick)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.stop:
				fmt.Fprint(s.out, "\r\033[K")
				return
			case now := <-ticker.C:
				line := StyleGreen.Render(spinnerFrames[i%len(spinnerFrames)]) + " " + Dim(s.message)
				if elapsed := now.Sub(started); elapsed >= spinnerShowElapsed {
					line += Dim(fmt.Sprintf(" (%.0fs)", elapsed.Seconds()))
				}
				fmt.Fprint(s.out, "\r  "+line)
			}
		}
	}()
}

// Stop clears the line and waits for the animation to end. Extra calls do
// nothing.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		<-s.done
	})
}

// StartSpinner starts a spinner on out and returns its Stop.
func StartSpinner(out io.Writer, message string) func() {
	s := NewSpinner(out, message)
	s.Start()
	return s.Stop
}
