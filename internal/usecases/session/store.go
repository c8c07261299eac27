package session

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"github.com/vfg2006/returns-insights-api/pkg/log"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// State é o estado da sessão de análise
type State string

const (
	AwaitingInput State = "awaiting_input"
	Ready         State = "ready"
)

// Snapshot é a visão pública da sessão, sem o dataset
type Snapshot struct {
	ID         string                `json:"id,omitempty"`
	State      State                 `json:"state"`
	Dataset    *domain.DatasetCounts `json:"dataset,omitempty"`
	LastAccess time.Time             `json:"last_access"`
}

// Store guarda a única sessão de análise do processo
type Store interface {
	// Load lê as planilhas e, se tudo der certo, substitui o dataset atual.
	// Em caso de falha o estado anterior é mantido.
	Load(ctx context.Context, sales, returns ingesting.Upload) (*Snapshot, error)
	Reset(ctx context.Context) Snapshot
	Current() (*domain.Dataset, error)
	Snapshot() Snapshot
	Touch()
	IdleSince() time.Duration
	// ResetIfIdle volta para AwaitingInput quando a sessão está pronta e ociosa há mais de ttl
	ResetIfIdle(ctx context.Context, ttl time.Duration) bool
}

type Manager struct {
	mu         sync.RWMutex
	ingester   ingesting.Ingester
	newID      func() (string, error)
	now        func() time.Time
	id         string
	state      State
	dataset    *domain.Dataset
	lastAccess time.Time
}

func NewStore(ingester ingesting.Ingester) Store {
	return newManager(ingester, utils.GenerateID, time.Now)
}

func newManager(ingester ingesting.Ingester, newID func() (string, error), now func() time.Time) *Manager {
	return &Manager{
		ingester:   ingester,
		newID:      newID,
		now:        now,
		state:      AwaitingInput,
		lastAccess: now(),
	}
}

func (m *Manager) Load(ctx context.Context, sales, returns ingesting.Upload) (*Snapshot, error) {
	ds, err := m.ingester.Load(ctx, sales, returns)
	if err != nil {
		return nil, err
	}

	id, err := m.newID()
	if err != nil {
		return nil, NewSessionError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	m.mu.Lock()
	m.id = id
	m.state = Ready
	m.dataset = ds
	m.lastAccess = m.now()
	snap := m.snapshotLocked()
	m.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"session_id": id,
		"rows_sales": len(ds.Sales),
	}).Info("sessão: dados carregados")

	return &snap, nil
}

func (m *Manager) Reset(ctx context.Context) Snapshot {
	m.mu.Lock()
	previous := m.id
	m.reset()
	snap := m.snapshotLocked()
	m.mu.Unlock()

	if previous != "" {
		log.ForContext(ctx).WithField("session_id", previous).Info("sessão: dados descartados")
	}

	return snap
}

func (m *Manager) reset() {
	m.id = ""
	m.state = AwaitingInput
	m.dataset = nil
	m.lastAccess = m.now()
}

// Current retorna o dataset pronto, ou SessionError com ErrNotReady
func (m *Manager) Current() (*domain.Dataset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != Ready || m.dataset == nil {
		return nil, notReady()
	}
	return m.dataset, nil
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:         m.id,
		State:      m.state,
		LastAccess: m.lastAccess,
	}
	if m.dataset != nil {
		counts := m.dataset.Counts()
		snap.Dataset = &counts
	}
	return snap
}

func (m *Manager) Touch() {
	m.mu.Lock()
	m.lastAccess = m.now()
	m.mu.Unlock()
}

func (m *Manager) IdleSince() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now().Sub(m.lastAccess)
}

func (m *Manager) ResetIfIdle(ctx context.Context, ttl time.Duration) bool {
	m.mu.Lock()
	if m.state != Ready || m.now().Sub(m.lastAccess) < ttl {
		m.mu.Unlock()
		return false
	}
	previous := m.id
	idle := m.now().Sub(m.lastAccess)
	m.reset()
	m.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"session_id": previous,
		"idle":       idle.String(),
	}).Info("sessão: dados descartados por inatividade")

	return true
}
