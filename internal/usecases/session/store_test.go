package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/returns-insights-api/internal/usecases/ingesting/mocks"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func uploads() (ingesting.Upload, ingesting.Upload) {
	return ingesting.Upload{Name: "vendas.xlsx", Reader: strings.NewReader("")},
		ingesting.Upload{Name: "devolucoes.xlsx", Reader: strings.NewReader("")}
}

func newTestManager(t *testing.T) (*Manager, *mocks.MockIngester, *fakeClock) {
	ctrl := gomock.NewController(t)
	ingester := mocks.NewMockIngester(ctrl)
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}

	ids := 0
	newID := func() (string, error) {
		ids++
		return "sessao-" + string(rune('0'+ids)), nil
	}

	return newManager(ingester, newID, clock.Now), ingester, clock
}

func TestManager_InitialState(t *testing.T) {
	m, _, _ := newTestManager(t)

	snap := m.Snapshot()
	assert.Equal(t, AwaitingInput, snap.State)
	assert.Empty(t, snap.ID)
	assert.Nil(t, snap.Dataset)

	ds, err := m.Current()
	assert.Nil(t, ds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotReady))

	var sessionErr *SessionError
	require.True(t, errors.As(err, &sessionErr))
	assert.Equal(t, apiErrors.ErrSessionNotReady, sessionErr.Code)
}

func TestManager_LoadAndReset(t *testing.T) {
	m, ingester, _ := newTestManager(t)
	sales, returns := uploads()
	ds := &domain.Dataset{Sales: make([]domain.SaleRecord, 3), SalesFileName: "vendas.xlsx"}

	ingester.EXPECT().Load(gomock.Any(), sales, returns).Return(ds, nil)

	snap, err := m.Load(context.Background(), sales, returns)
	require.NoError(t, err)
	assert.Equal(t, Ready, snap.State)
	assert.Equal(t, "sessao-1", snap.ID)
	require.NotNil(t, snap.Dataset)
	assert.Equal(t, 3, snap.Dataset.Sales)

	current, err := m.Current()
	require.NoError(t, err)
	assert.Same(t, ds, current)

	reset := m.Reset(context.Background())
	assert.Equal(t, AwaitingInput, reset.State)
	assert.Empty(t, reset.ID)

	_, err = m.Current()
	assert.True(t, errors.Is(err, ErrNotReady))
}

func TestManager_FailedLoadKeepsState(t *testing.T) {
	sales, returns := uploads()
	parseErr := ingesting.NewParseError(ingesting.ErrSalesFile, apiErrors.ErrParseSales, "vendas.xlsx", "", nil)

	t.Run("primeiro envio continua aguardando", func(t *testing.T) {
		m, ingester, _ := newTestManager(t)
		ingester.EXPECT().Load(gomock.Any(), sales, returns).Return(nil, parseErr)

		_, err := m.Load(context.Background(), sales, returns)
		assert.True(t, errors.Is(err, ingesting.ErrSalesFile))
		assert.Equal(t, AwaitingInput, m.Snapshot().State)
	})

	t.Run("dataset anterior é mantido", func(t *testing.T) {
		m, ingester, _ := newTestManager(t)
		ds := &domain.Dataset{}
		gomock.InOrder(
			ingester.EXPECT().Load(gomock.Any(), sales, returns).Return(ds, nil),
			ingester.EXPECT().Load(gomock.Any(), sales, returns).Return(nil, parseErr),
		)

		_, err := m.Load(context.Background(), sales, returns)
		require.NoError(t, err)
		_, err = m.Load(context.Background(), sales, returns)
		require.Error(t, err)

		current, err := m.Current()
		require.NoError(t, err)
		assert.Same(t, ds, current)
		assert.Equal(t, "sessao-1", m.Snapshot().ID)
	})
}

func TestManager_GenerateIDError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingester := mocks.NewMockIngester(ctrl)
	m := newManager(ingester, func() (string, error) { return "", errors.New("sem entropia") }, time.Now)
	sales, returns := uploads()

	ingester.EXPECT().Load(gomock.Any(), sales, returns).Return(&domain.Dataset{}, nil)

	_, err := m.Load(context.Background(), sales, returns)
	assert.True(t, errors.Is(err, ErrGenerateID))
	assert.Equal(t, AwaitingInput, m.Snapshot().State)
}

func TestManager_ResetIfIdle(t *testing.T) {
	m, ingester, clock := newTestManager(t)
	sales, returns := uploads()
	ctx := context.Background()

	// sessão aguardando nunca é descartada
	clock.Advance(2 * time.Hour)
	assert.False(t, m.ResetIfIdle(ctx, time.Hour))

	ingester.EXPECT().Load(gomock.Any(), sales, returns).Return(&domain.Dataset{}, nil)
	_, err := m.Load(ctx, sales, returns)
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	assert.Equal(t, 30*time.Minute, m.IdleSince())
	assert.False(t, m.ResetIfIdle(ctx, time.Hour))

	m.Touch()
	assert.Equal(t, time.Duration(0), m.IdleSince())

	clock.Advance(61 * time.Minute)
	assert.True(t, m.ResetIfIdle(ctx, time.Hour))
	assert.Equal(t, AwaitingInput, m.Snapshot().State)
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m, ingester, _ := newTestManager(t)
	sales, returns := uploads()
	ingester.EXPECT().Load(gomock.Any(), sales, returns).Return(&domain.Dataset{}, nil)

	_, err := m.Load(context.Background(), sales, returns)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Current()
			m.Touch()
			_ = m.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, Ready, m.Snapshot().State)
}
