package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type TaskFunc func(ctx context.Context) error

// Scheduler runs named tasks on standard five-field cron expressions
// evaluated in the clinic time zone.
type Scheduler struct {
	cron  *cron.Cron
	log   zerolog.Logger
	tasks map[string]cron.EntryID
	mu    sync.Mutex
}

func NewScheduler(loc *time.Location, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(loc)),
		log:   log.With().Str("component", "scheduler").Logger(),
		tasks: make(map[string]cron.EntryID),
	}
}

// Add registers task under name, replacing any task with the same name.
func (s *Scheduler) Add(name, spec string, task TaskFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.tasks[name]; ok {
		s.cron.Remove(id)
		delete(s.tasks, name)
	}

	id, err := s.cron.AddFunc(spec, func() { s.run(name, task) })
	if err != nil {
		return err
	}

	s.tasks[name] = id
	s.log.Info().Str("task", name).Str("schedule", spec).Msg("task scheduled")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running tasks to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

// Next reports when name runs next.
func (s *Scheduler) Next(name string) (time.Time, bool) {
	s.mu.Lock()
	id, ok := s.tasks[name]
	s.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}

func (s *Scheduler) run(name string, task TaskFunc) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := task(ctx); err != nil {
		s.log.Error().Err(err).Str("task", name).Dur("duration", time.Since(start)).Msg("task failed")
		return
	}
	s.log.Debug().Str("task", name).Dur("duration", time.Since(start)).Msg("task finished")
}
