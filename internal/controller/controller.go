// Package controller отслеживает жизненный цикл загрузки ресурса для представления:
// Loading -> Ready | Error.
package controller

import (
	"context"
	"sync"

	"github.com/shenikar/campus_connect/internal/apierr"
	"github.com/sirupsen/logrus"
)

// Phase - состояние ресурса
type Phase string

const (
	Loading Phase = "loading"
	Ready   Phase = "ready"
	Error   Phase = "error"
)

// State - снимок состояния контроллера.
// Data заполнена только в Ready, Message, Kind и Err - только в Error.
type State[T any] struct {
	Phase   Phase
	Data    T
	Message string
	Kind    apierr.Kind
	Err     error
	// Seq - номер refresh, результат которого отражен в состоянии
	Seq uint64
}

// Fetcher загружает ресурс
type Fetcher[T any] func(ctx context.Context) (T, error)

// Option настраивает Controller
type Option func(*options)

type options struct {
	staleGuard bool
	logger     *logrus.Logger
}

// WithStaleGuard отбрасывает ответы refresh, после которых был начат более новый
func WithStaleGuard() Option {
	return func(o *options) {
		o.staleGuard = true
	}
}

// WithLogger задает логгер
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

type Controller[T any] struct {
	name  string
	fetch Fetcher[T]
	opts  options

	mu          sync.Mutex
	state       State[T]
	issued      uint64
	generation  uint64
	subscribers []func(State[T])
}

// New создает контроллер в состоянии Loading; загрузку запускает Refresh
func New[T any](name string, fetch Fetcher[T], opts ...Option) *Controller[T] {
	c := &Controller[T]{
		name:  name,
		fetch: fetch,
		state: State[T]{Phase: Loading},
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	if c.opts.logger == nil {
		c.opts.logger = logrus.StandardLogger()
	}
	return c
}

// State возвращает текущий снимок
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe регистрирует наблюдателя за каждым переходом.
// Наблюдатель вызывается синхронно и не должен вызывать методы контроллера.
func (c *Controller[T]) Subscribe(fn func(State[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Refresh переводит контроллер в Loading и заново загружает ресурс.
// Параллельные вызовы не объединяются и не отменяются: без WithStaleGuard
// побеждает ответ, пришедший последним. Возвращает состояние после завершения.
func (c *Controller[T]) Refresh(ctx context.Context) State[T] {
	c.mu.Lock()
	seq, gen := c.beginLocked()
	c.mu.Unlock()
	return c.run(ctx, seq, gen)
}

// Load выполняет первую загрузку, если ее еще не было.
// Иначе возвращает текущее состояние без запроса.
func (c *Controller[T]) Load(ctx context.Context) State[T] {
	c.mu.Lock()
	if c.state.Seq != 0 {
		state := c.state
		c.mu.Unlock()
		return state
	}
	seq, gen := c.beginLocked()
	c.mu.Unlock()
	return c.run(ctx, seq, gen)
}

// Reset возвращает контроллер в исходное состояние; следующий Load загрузит ресурс заново.
// Ответы refresh, начатых до Reset, отбрасываются независимо от WithStaleGuard.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	c.generation++
	c.setLocked(State[T]{Phase: Loading})
}

func (c *Controller[T]) beginLocked() (uint64, uint64) {
	c.issued++
	seq := c.issued
	c.setLocked(State[T]{Phase: Loading, Seq: seq})
	return seq, c.generation
}

func (c *Controller[T]) run(ctx context.Context, seq, gen uint64) State[T] {
	log := c.opts.logger.WithFields(logrus.Fields{
		"controller": c.name,
		"seq":        seq,
	})
	log.Debug("Refreshing resource")

	data, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		log.WithField("generation", c.generation).Debug("Discarding response issued before reset")
		return c.state
	}
	if c.opts.staleGuard && seq != c.issued {
		log.WithField("latest_seq", c.issued).Debug("Discarding stale response")
		return c.state
	}

	if err != nil {
		log.WithError(err).Warn("Resource fetch failed")
		c.setLocked(State[T]{
			Phase:   Error,
			Message: apierr.Message(err),
			Kind:    apierr.KindOf(err),
			Err:     err,
			Seq:     seq,
		})
		return c.state
	}

	c.setLocked(State[T]{Phase: Ready, Data: data, Seq: seq})
	log.Debug("Resource ready")
	return c.state
}

func (c *Controller[T]) setLocked(state State[T]) {
	c.state = state
	for _, fn := range c.subscribers {
		fn(state)
	}
}
