package livepage

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"elaundry/internal/carousel"
	"elaundry/internal/directory"
	"elaundry/internal/entities"
	"elaundry/internal/services"
	"elaundry/pkg/config"
	"elaundry/pkg/scheduler"
)

// Manager opens and tracks the live sessions of all connected pages.
type Manager struct {
	branchService *services.BranchService
	orderService  *services.OrderService
	carousel      config.CarouselConfig
	clock         scheduler.Clock
	logger        *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(
	branchService *services.BranchService,
	orderService *services.OrderService,
	carouselCfg config.CarouselConfig,
	clock scheduler.Clock,
	logger *zap.Logger,
) *Manager {
	if clock == nil {
		clock = scheduler.RealClock
	}
	return &Manager{
		branchService: branchService,
		orderService:  orderService,
		carousel:      carouselCfg,
		clock:         clock,
		logger:        logger,
		sessions:      make(map[string]*Session),
	}
}

// Open starts a session writing to out and sends the ready message.
// A non-empty preselect opens the map on that branch.
func (m *Manager) Open(ctx context.Context, out Sender, preselect entities.BranchID) (*Session, error) {
	branches, err := m.branchService.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	opts := m.branchService.DirectoryOptions()
	opts.Clock = m.clock
	opts.Preselect = preselect

	s := newSession(
		uuid.NewString(),
		directory.New(branches, opts),
		m.orderService.NewForm(branches),
		carousel.New(m.carousel.Images, m.carousel.Interval, m.clock),
		out,
		m.logger,
	)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	s.ready()
	m.logger.Debug("live session opened", zap.String("session", s.ID), zap.Int("branches", len(branches)))
	return s, nil
}

// Close ends the session with the given id. Unknown ids are ignored.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.Close()
		m.logger.Debug("live session closed", zap.String("session", id))
	}
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CloseAll ends every session, for shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	if len(sessions) > 0 {
		m.logger.Info("closed live sessions", zap.Int("count", len(sessions)))
	}
}
