// Package batch generates many invoices with bounded concurrency.
//
// Jobs are pulled one at a time from a Source, so the source may be backed
// by files, DB records, a queue consumer, etc. Results are reported in the
// order the source produced the jobs.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/alapierre/go-invoicegen-client/invoicegen"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var logger = logrus.WithField("component", "invoicegen.batch")

const defaultWorkers = 4

// Generator is implemented by *invoicegen.Client.
type Generator interface {
	Generate(ctx context.Context, q *invoicegen.QueryOptions) (*invoicegen.Response, error)
}

// Job is a single invoice to generate. Options must not be modified after
// the job is returned from Source.Next.
type Job struct {
	ID      string
	Options *invoicegen.QueryOptions
}

// Source is a generic source of jobs (iterator). Next returns io.EOF when
// there are no more jobs.
type Source interface {
	Next() (*Job, error)
}

type Config struct {
	// Workers is the number of concurrent requests, 4 when <= 0.
	Workers int
	// StopOnError stops pulling jobs and cancels the running ones after the
	// first failure.
	StopOnError bool
}

type Outcome struct {
	Job      *Job
	Response *invoicegen.Response
	Err      error
}

type Result struct {
	// Outcomes has one entry per job pulled from the source, in source order.
	Outcomes []Outcome
}

// Failed returns outcomes with a non-nil Err.
func (r *Result) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Run pulls jobs from src and generates them with g.
//
// Without StopOnError individual failures are only recorded in the result
// and Run returns a nil error unless the source fails or ctx is done.
func Run(ctx context.Context, g Generator, src Source, cfg Config) (*Result, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.Workers)

	var (
		mu     sync.Mutex
		result Result
		srcErr error
	)

	for gctx.Err() == nil {
		job, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			srcErr = errors.Wrapf(err, "read job %d", len(result.Outcomes))
			break
		}
		if job == nil {
			srcErr = errors.Errorf("read job %d: source returned nil job", len(result.Outcomes))
			break
		}
		if job.ID == "" {
			job.ID = jobID(job.Options, len(result.Outcomes))
		}

		mu.Lock()
		i := len(result.Outcomes)
		result.Outcomes = append(result.Outcomes, Outcome{Job: job})
		mu.Unlock()

		grp.Go(func() error {
			resp, err := g.Generate(gctx, job.Options)

			mu.Lock()
			result.Outcomes[i].Response = resp
			result.Outcomes[i].Err = err
			mu.Unlock()

			if err != nil {
				logger.WithError(err).WithField("job", job.ID).Warn("invoice generation failed")
				if cfg.StopOnError {
					return errors.Wrapf(err, "job %s", job.ID)
				}
				return nil
			}

			logger.WithField("job", job.ID).Debug("invoice generated")
			return nil
		})
	}

	werr := grp.Wait()

	logger.WithFields(logrus.Fields{
		"jobs":   len(result.Outcomes),
		"failed": len(result.Failed()),
	}).Info("batch finished")

	switch {
	case srcErr != nil:
		return &result, srcErr
	case werr != nil:
		return &result, werr
	case ctx.Err() != nil:
		return &result, ctx.Err()
	}
	return &result, nil
}

func jobID(q *invoicegen.QueryOptions, index int) string {
	if q != nil {
		if v, ok := q.InvoiceNumber.Get(); ok && v != "" {
			return v
		}
	}
	return fmt.Sprintf("job-%06d", index)
}

// sliceSource implements Source for a fixed list of options.
type sliceSource struct {
	opts []*invoicegen.QueryOptions
	idx  int
}

func NewSliceSource(opts ...*invoicegen.QueryOptions) Source {
	return &sliceSource{opts: opts}
}

func (s *sliceSource) Next() (*Job, error) {
	if s.idx >= len(s.opts) {
		return nil, io.EOF
	}
	q := s.opts[s.idx]
	s.idx++
	if q == nil {
		q = invoicegen.NewQueryOptions()
	}
	return &Job{Options: q}, nil
}

// fileSource implements Source for JSON files holding wire objects.
type fileSource struct {
	paths []string
	idx   int
}

// NewFileSource reads one JSON object per file, keyed by wire keys, and uses
// the file name as job ID.
func NewFileSource(paths []string) Source {
	return &fileSource{paths: paths}
}

func (s *fileSource) Next() (*Job, error) {
	if s.idx >= len(s.paths) {
		return nil, io.EOF
	}
	path := s.paths[s.idx]
	s.idx++

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %q", path)
	}

	q := invoicegen.NewQueryOptions()
	if err := q.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrapf(err, "decode %q", path)
	}

	return &Job{ID: filepath.Base(path), Options: q}, nil
}
