package textproc

import (
	"context"
	"time"

	"github.com/danmuck/labkit/internal/logging"
	"github.com/danmuck/labkit/internal/observability"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Result describes one completed transform job.
type Result struct {
	JobID  string
	Input  string
	Output string
	Lines  int
}

// Processor runs read-transform-write jobs.
type Processor struct {
	log   zerolog.Logger
	newID func() string
}

func NewProcessor() *Processor {
	return &Processor{
		log:   logging.Logger("textproc"),
		newID: uuid.NewString,
	}
}

// Process transforms in and writes the result to out. out is only replaced on success.
func (p *Processor) Process(ctx context.Context, in, out string) (Result, error) {
	res := Result{JobID: p.newID(), Input: in, Output: out}
	start := time.Now()

	lines, err := p.run(ctx, in, out)
	if err != nil {
		observability.RecordTransform(false, 0)
		p.log.Warn().
			Str("job", res.JobID).
			Str("input", in).
			Str("output", out).
			Err(err).
			Msg("transform failed")
		return res, err
	}
	res.Lines = lines

	observability.RecordTransform(true, lines)
	p.log.Info().
		Str("job", res.JobID).
		Str("input", in).
		Str("output", out).
		Int("lines", lines).
		Dur("duration", time.Since(start)).
		Msg("transform complete")
	return res, nil
}

func (p *Processor) run(ctx context.Context, in, out string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := CheckInput(in); err != nil {
		return 0, err
	}
	if err := CheckOutputDir(out); err != nil {
		return 0, err
	}
	doc, err := ReadDocument(in)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := WriteDocument(out, doc.Transformed()); err != nil {
		return 0, err
	}
	return len(doc.Lines), nil
}
