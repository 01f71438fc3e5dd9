package textproc

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/danmuck/labkit/internal/console"
)

var (
	// ErrQuit is returned by nextJob when the user types quit.
	ErrQuit      = errors.New("quit requested")
	errCancelled = errors.New("operation cancelled")
)

// SessionConfig tunes the interactive loop.
type SessionConfig struct {
	ConfirmOverwrite bool
}

// Session is the interactive file processor console.
type Session struct {
	prompt *console.Prompter
	proc   *Processor
	cfg    SessionConfig
}

func NewSession(prompt *console.Prompter, proc *Processor, cfg SessionConfig) *Session {
	return &Session{prompt: prompt, proc: proc, cfg: cfg}
}

// Run loops until the user quits, declines another file, or input ends.
func (s *Session) Run(ctx context.Context) error {
	s.prompt.Println("File Processor Program")
	s.prompt.Println("---------------------")
	s.prompt.Println()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := s.nextJob(ctx)
		switch {
		case errors.Is(err, ErrQuit):
			s.prompt.Println("Exiting program...")
			return nil
		case errors.Is(err, errCancelled):
			s.prompt.Println("Operation cancelled.")
			continue
		case errors.Is(err, io.EOF):
			s.prompt.Println()
			s.prompt.Println("Exiting program...")
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case err != nil:
			s.prompt.Printf("\nError: %v\n", err)
			s.prompt.Println("Please try again.")
			s.prompt.Println()
			continue
		}

		s.prompt.Printf("\nSuccessfully processed file! Output saved to '%s'\n", res.Output)
		s.prompt.Printf("Modified %d lines.\n\n", res.Lines)

		another, err := s.prompt.Confirm("Process another file? (y/n): ")
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !another {
			s.prompt.Println("Exiting program...")
			return nil
		}
	}
}

func (s *Session) nextJob(ctx context.Context) (Result, error) {
	in, err := s.prompt.Line("Enter the input file name (or 'quit' to exit): ")
	if err != nil {
		return Result{}, err
	}
	in = strings.TrimSpace(in)
	if strings.EqualFold(in, "quit") {
		return Result{}, ErrQuit
	}
	if err := CheckInput(in); err != nil {
		return Result{}, err
	}

	out, err := s.prompt.Line("Enter the output file name: ")
	if err != nil {
		return Result{}, err
	}
	out = strings.TrimSpace(out)

	if s.cfg.ConfirmOverwrite && exists(out) {
		ok, err := s.prompt.Confirm("File '" + out + "' already exists. Overwrite? (y/n): ")
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{}, errCancelled
		}
	}

	return s.proc.Process(ctx, in, out)
}
