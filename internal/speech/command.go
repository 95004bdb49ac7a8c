package speech

import (
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/charmbracelet/log"
)

// engine describes a command-line speech synthesizer.
type engine struct {
	name string
	args func(text string) []string
}

// engines are tried in order by FindCommand.
var engines = []engine{
	{"espeak-ng", func(text string) []string { return []string{text} }},
	{"espeak", func(text string) []string { return []string{text} }},
	{"spd-say", func(text string) []string { return []string{"--wait", text} }},
	{"say", func(text string) []string { return []string{text} }},
}

// queueSize bounds pending announcements. When full the oldest pending line
// is dropped, since stale menu focus or volume lines are worthless.
const queueSize = 4

// Command speaks through an external program, one utterance at a time.
// Speak returns immediately; a worker goroutine runs the program.
type Command struct {
	path   string
	args   func(text string) []string
	logger *log.Logger

	mu      sync.Mutex
	queue   chan string
	stop    chan struct{}
	stopped bool
	wg      sync.WaitGroup
	run     func(path string, args ...string) error
}

// FindCommand returns a synthesizer for the first installed engine.
func FindCommand(logger *log.Logger) (*Command, error) {
	for _, e := range engines {
		p, err := exec.LookPath(e.name)
		if err != nil {
			continue
		}
		return NewCommand(p, e.args, logger), nil
	}
	return nil, ErrNoSynthesizer
}

// NewCommand starts a synthesizer worker running path with args(text).
func NewCommand(path string, args func(text string) []string, logger *log.Logger) *Command {
	return newCommand(path, args, logger, runCommand)
}

func newCommand(path string, args func(text string) []string, logger *log.Logger, run func(string, ...string) error) *Command {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Command{
		path:   path,
		args:   args,
		logger: logger,
		queue:  make(chan string, queueSize),
		stop:   make(chan struct{}),
		run:    run,
	}
	c.wg.Add(1)
	go c.loop()
	return c
}

// Name returns the program path.
func (c *Command) Name() string {
	return c.path
}

// Speak queues text. It never blocks.
func (c *Command) Speak(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return fmt.Errorf("speech: %s is closed", c.path)
	}
	for {
		select {
		case c.queue <- text:
			return nil
		default:
		}
		// Full: drop the oldest pending line and retry.
		select {
		case dropped := <-c.queue:
			c.logger.Debug("speech dropped", "text", dropped)
		default:
		}
	}
}

// Close stops the worker after the current utterance.
func (c *Command) Close() error {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return nil
	}
	c.stopped = true
	close(c.stop)
	c.mu.Unlock()
	c.wg.Wait()
	return nil
}

func (c *Command) loop() {
	defer c.wg.Done()
	for {
		select {
		case <-c.stop:
			return
		case text := <-c.queue:
			if err := c.run(c.path, c.args(text)...); err != nil {
				c.logger.Warn("speech command failed", "command", c.path, "error", err)
			}
		}
	}
}

func runCommand(path string, args ...string) error {
	return exec.Command(path, args...).Run()
}
