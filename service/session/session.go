package session

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/toolbox"

	"github.com/barline/barline/runtime/dispatcher"
	"github.com/barline/barline/service/meta"
	"github.com/barline/barline/tracing"
)

const farewell = "Break time!"

// Sentinel lines for input the engine never sees. The driver has no
// access to the dispatcher clock before calling it, hence time=?.
const (
	badArgsLine        = "time=? event=error reason=bad_args"
	unknownCommandLine = "time=? event=error reason=unknown_command"
)

// Service drives a dispatcher from line-oriented command input and
// forwards engine log lines verbatim to its output.
type Service struct {
	dispatcher  *dispatcher.Service
	metaService *meta.Service
	out         io.Writer
}

// Option customises a session.
type Option func(*Service)

// WithOutput sets the writer log lines are forwarded to.
func WithOutput(out io.Writer) Option {
	return func(s *Service) {
		s.out = out
	}
}

// WithMetaService sets the loader used for command scripts.
func WithMetaService(metaService *meta.Service) Option {
	return func(s *Service) {
		s.metaService = metaService
	}
}

// New creates a session around the supplied dispatcher.
func New(service *dispatcher.Service, options ...Option) *Service {
	ret := &Service{dispatcher: service, out: os.Stdout}
	for _, option := range options {
		option(ret)
	}
	if ret.metaService == nil {
		ret.metaService = meta.New(nil, "")
	}
	return ret
}

// Run consumes commands from reader until EOF or a blank line, which
// ends the session with a farewell.
func (s *Service) Run(ctx context.Context, reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Fprintln(s.out, farewell)
			return nil
		}
		s.handle(ctx, line)
	}
	return scanner.Err()
}

// RunScript loads a command script from the supplied URL and replays it.
func (s *Service) RunScript(ctx context.Context, URL string) error {
	data, err := s.metaService.Download(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to load script from %s: %w", URL, err)
	}
	return s.Run(ctx, bytes.NewReader(data))
}

func (s *Service) handle(ctx context.Context, raw string) {
	cmd := parseLine(raw)
	if cmd == nil {
		return
	}
	ctx, span := tracing.StartSpan(ctx, "session."+strings.ToLower(cmd.name), "INTERNAL")
	logs := s.dispatch(ctx, cmd)
	tracing.EndSpan(span, nil)
	for _, entry := range logs {
		fmt.Fprintln(s.out, entry)
	}
}

// dispatch maps a parsed command onto an engine operation. Arity and
// numeric conversion failures stay in the driver and surface as
// sentinel lines.
func (s *Service) dispatch(ctx context.Context, cmd *command) []string {
	switch cmd.name {
	case "CREATE":
		if len(cmd.args) != 2 {
			return []string{badArgsLine}
		}
		capacity, ok := asInt(cmd.args[1])
		if !ok {
			return []string{badArgsLine}
		}
		logs, err := s.dispatcher.CreateQueue(ctx, cmd.args[0], capacity)
		if err != nil {
			return []string{badArgsLine}
		}
		return logs
	case "ENQ":
		if len(cmd.args) != 2 {
			return []string{badArgsLine}
		}
		return s.dispatcher.Admit(ctx, cmd.args[0], cmd.args[1])
	case "SKIP":
		if len(cmd.args) != 1 {
			return []string{badArgsLine}
		}
		return s.dispatcher.RequestSkip(ctx, cmd.args[0])
	case "RUN":
		if len(cmd.args) < 1 || len(cmd.args) > 2 {
			return []string{badArgsLine}
		}
		quantum, ok := asInt(cmd.args[0])
		if !ok {
			return []string{badArgsLine}
		}
		if len(cmd.args) == 2 {
			steps, ok := asInt(cmd.args[1])
			if !ok {
				return []string{badArgsLine}
			}
			return s.dispatcher.RunTurns(ctx, quantum, steps)
		}
		return s.dispatcher.Run(ctx, quantum)
	default:
		return []string{unknownCommandLine}
	}
}

func asInt(text string) (int, bool) {
	var value int
	if err := toolbox.DefaultConverter.AssignConverted(&value, text); err != nil {
		return 0, false
	}
	return value, true
}
