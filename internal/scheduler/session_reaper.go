package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/returns-insights-api/internal/config"
	"github.com/vfg2006/returns-insights-api/internal/usecases/session"
)

// SessionReaperConfig representa a configuração da limpeza de sessões ociosas
type SessionReaperConfig struct {
	CronSchedule string
	IdleTTL      time.Duration
	Enabled      bool
}

// SessionReaperService descarta o dataset da sessão quando ela fica ociosa por muito tempo
type SessionReaperService struct {
	scheduler        *gocron.Scheduler
	config           SessionReaperConfig
	store            session.Store
	running          bool
	mutex            sync.Mutex
	lastRunStartedAt time.Time
	lastRunEndedAt   time.Time
	lastRunReset     bool
	resets           int
}

// NewSessionReaperService cria o serviço de limpeza a partir da config global
func NewSessionReaperService(store session.Store, appConfig *config.Config) *SessionReaperService {
	reaperConfig := SessionReaperConfig{
		CronSchedule: appConfig.SessionReaper.CronSchedule,
		IdleTTL:      appConfig.SessionReaper.IdleTTL,
		Enabled:      appConfig.SessionReaper.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reaperConfig.CronSchedule,
		"idle_ttl":      reaperConfig.IdleTTL.String(),
		"enabled":       reaperConfig.Enabled,
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionReaperService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reaperConfig,
		store:     store,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto é cancelado
func (s *SessionReaperService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões ociosas desabilitada por configuração")
		return nil
	}

	if s.config.IdleTTL <= 0 {
		return fmt.Errorf("tempo de ociosidade inválido para limpeza de sessões: %s", s.config.IdleTTL)
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reap(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// reap executa uma rodada de limpeza. Rodadas concorrentes são ignoradas.
func (s *SessionReaperService) reap(ctx context.Context) bool {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return false
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.mutex.Unlock()

	reset := s.store.ResetIfIdle(ctx, s.config.IdleTTL)

	s.mutex.Lock()
	s.running = false
	s.lastRunEndedAt = time.Now()
	s.lastRunReset = reset
	if reset {
		s.resets++
	}
	s.mutex.Unlock()

	if reset {
		logrus.WithField("idle_ttl", s.config.IdleTTL.String()).Info("Sessão ociosa descartada")
	} else {
		logrus.Debug("Nenhuma sessão ociosa para descartar")
	}

	return reset
}

// TriggerManualSync dispara uma rodada de limpeza fora do agendamento
func (s *SessionReaperService) TriggerManualSync(ctx context.Context) error {
	s.mutex.Lock()
	running := s.running
	s.mutex.Unlock()

	if running {
		return fmt.Errorf("limpeza de sessões já está em andamento")
	}

	go s.reap(context.WithoutCancel(ctx))
	return nil
}

// GetStatus retorna o estado atual do agendador
func (s *SessionReaperService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := map[string]any{
		"enabled":        s.config.Enabled,
		"cron_schedule":  s.config.CronSchedule,
		"idle_ttl":       s.config.IdleTTL.String(),
		"running":        s.running,
		"resets":         s.resets,
		"last_run_reset": s.lastRunReset,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt.Format(time.RFC3339)
	}
	if !s.lastRunEndedAt.IsZero() {
		status["last_run_ended_at"] = s.lastRunEndedAt.Format(time.RFC3339)
	}

	if s.config.Enabled && s.scheduler.IsRunning() {
		_, next := s.scheduler.NextRun()
		if !next.IsZero() {
			status["next_run_at"] = next.Format(time.RFC3339)
		}
	}

	return status
}
