package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/rewind/internal/logging"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/ports"
)

// ErrDocumentExists is returned by Create when the ID is already taken.
var ErrDocumentExists = errors.New("document already exists")

// DefaultLockTTL bounds how long a distributed lock is held per command.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Factory builds the initial history of a new document.
// It is where the equality policy of a document is chosen.
type Factory[T any] func(initial T) history.History[T]

// Manager orchestrates document access, ensuring every command against a
// document runs alone. It uses Reference Counting to garbage collect unused locks.
type Manager[T any] struct {
	store   ports.Store[T]
	factory Factory[T]

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker  ports.DistributedLocker // Optional distributed locker
	lockTTL time.Duration
	hooks   history.LifecycleHooks
	onClose CloseHook
	logger  *slog.Logger
}

// CloseHook is notified after a document has been removed.
type CloseHook func(ctx context.Context, documentID string)

type settings struct {
	locker  ports.DistributedLocker
	lockTTL time.Duration
	hooks   history.LifecycleHooks
	onClose CloseHook
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*settings)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(s *settings) {
		s.locker = locker
	}
}

// WithLockTTL overrides DefaultLockTTL. Non-positive values are ignored.
func WithLockTTL(ttl time.Duration) Option {
	return func(s *settings) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// WithHooks registers observability hooks fired after every Dispatch.
// They run while the document lock is held and must not call back into the
// Manager for the same document.
func WithHooks(hooks history.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// WithCloseHook registers fn to run after Close, under the document lock.
func WithCloseHook(fn CloseHook) Option {
	return func(s *settings) {
		s.onClose = fn
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// NewManager creates a Manager over store. A nil factory uses
// history.NewFunc with structural equality.
func NewManager[T any](store ports.Store[T], factory Factory[T], opts ...Option) *Manager[T] {
	s := settings{
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(&s)
	}
	if factory == nil {
		factory = func(v T) history.History[T] { return history.NewFunc(v, nil) }
	}
	return &Manager[T]{
		store:   store,
		factory: factory,
		locks:   make(map[string]*lockEntry),
		locker:  s.locker,
		lockTTL: s.lockTTL,
		hooks:   s.hooks,
		onClose: s.onClose,
		logger:  s.logger,
	}
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(documentID) after unlocking.
func (m *Manager[T]) acquire(documentID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[documentID]
	if !exists {
		entry = &lockEntry{}
		m.locks[documentID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager[T]) release(documentID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[documentID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, documentID)
	}
}

// activeLocks reports how many lock entries are held, for leak checks.
func (m *Manager[T]) activeLocks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

// Get retrieves the current history of a document.
func (m *Manager[T]) Get(ctx context.Context, documentID string) (history.History[T], error) {
	var h history.History[T]
	err := m.WithLock(ctx, documentID, func(ctx context.Context) error {
		var err error
		h, err = m.store.Load(ctx, documentID)
		return err
	})
	return h, err
}

// Open loads a document, creating it from initial if it does not exist yet.
func (m *Manager[T]) Open(ctx context.Context, documentID string, initial T) (history.History[T], error) {
	var h history.History[T]
	err := m.WithLock(ctx, documentID, func(ctx context.Context) error {
		var err error
		h, err = m.store.Load(ctx, documentID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ports.ErrDocumentNotFound) {
			return fmt.Errorf("failed to check document existence: %w", err)
		}

		h = m.factory(initial)
		if err := m.store.Save(ctx, documentID, h); err != nil {
			return fmt.Errorf("failed to initialize document: %w", err)
		}
		m.logger.Info("Document created", "document", documentID)
		return nil
	})
	return h, err
}

// Create starts a new document and fails with ErrDocumentExists if the ID is taken.
func (m *Manager[T]) Create(ctx context.Context, documentID string, initial T) (history.History[T], error) {
	var h history.History[T]
	err := m.WithLock(ctx, documentID, func(ctx context.Context) error {
		_, err := m.store.Load(ctx, documentID)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrDocumentExists, documentID)
		}
		if !errors.Is(err, ports.ErrDocumentNotFound) {
			return fmt.Errorf("failed to check document existence: %w", err)
		}

		h = m.factory(initial)
		if err := m.store.Save(ctx, documentID, h); err != nil {
			return fmt.Errorf("failed to initialize document: %w", err)
		}
		m.logger.Info("Document created", "document", documentID)
		return nil
	})
	return h, err
}

// Dispatch applies cmd to a document and stores the result.
// Guarded Undo/Redo return history.ErrNothingToUndo / history.ErrNothingToRedo
// together with the unchanged history.
func (m *Manager[T]) Dispatch(ctx context.Context, documentID string, cmd history.Command[T]) (history.History[T], error) {
	var (
		next    history.History[T]
		outcome history.Outcome
	)
	err := m.WithLock(ctx, documentID, func(ctx context.Context) error {
		current, err := m.store.Load(ctx, documentID)
		if err != nil {
			return err
		}

		next, outcome = history.Step(current, cmd)
		if outcome == history.OutcomeApplied {
			if err := m.store.Save(ctx, documentID, next); err != nil {
				return fmt.Errorf("failed to store document: %w", err)
			}
		}

		// Still under the document lock, so observers see commits in order.
		m.logger.Debug("Command dispatched",
			"document", documentID,
			"kind", cmd.Kind,
			"outcome", outcome,
			"past", next.PastLen(),
			"future", next.FutureLen(),
		)
		m.hooks.Fire(ctx, history.NewEvent(documentID, cmd.Kind, outcome, next))
		return nil
	})
	if err != nil {
		return next, err
	}

	return next, history.OutcomeError(cmd.Kind, outcome)
}

// Close removes the document.
func (m *Manager[T]) Close(ctx context.Context, documentID string) error {
	return m.WithLock(ctx, documentID, func(ctx context.Context) error {
		if _, err := m.store.Load(ctx, documentID); err != nil {
			return err
		}
		if err := m.store.Delete(ctx, documentID); err != nil {
			return err
		}
		if m.onClose != nil {
			m.onClose(ctx, documentID)
		}
		return nil
	})
}

// List delegates to the store.
func (m *Manager[T]) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying store.
func (m *Manager[T]) Store() ports.Store[T] {
	return m.store
}

// WithLock executes a function while holding the lock for the document.
func (m *Manager[T]) WithLock(ctx context.Context, documentID string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := m.acquire(documentID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(documentID)
	}()

	// Distributed Locking
	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, documentID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"document", documentID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
