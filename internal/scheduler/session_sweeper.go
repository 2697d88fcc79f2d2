package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cloutjet/admin-dashboard/internal/config"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// JobTypeSessionSweep identifica a limpeza de sessões nas rotas de jobs
const JobTypeSessionSweep = "session-sweep"

// SessionSweeper é implementado por session.Manager
type SessionSweeper interface {
	Sweep(now time.Time) int
	Len() int
}

// SessionSweepConfig representa a configuração do agendador de limpeza de sessões
type SessionSweepConfig struct {
	CronSchedule string
	TTL          time.Duration
	SweepEnabled bool
}

// SessionSweepService remove periodicamente as sessões ociosas há mais que o TTL
type SessionSweepService struct {
	scheduler            *gocron.Scheduler
	config               SessionSweepConfig
	sessions             SessionSweeper
	now                  func() time.Time
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepRemoved     int
}

func NewSessionSweepService(sessions SessionSweeper, appConfig *config.Config) *SessionSweepService {
	sweepConfig := SessionSweepConfig{
		CronSchedule: appConfig.Session.SweepCron,
		TTL:          appConfig.Session.TTL,
		SweepEnabled: appConfig.Session.SweepEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"session_ttl":   sweepConfig.TTL.String(),
		"sweep_enabled": sweepConfig.SweepEnabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionSweepService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    sweepConfig,
		sessions:  sessions,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *SessionSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep()
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

// sweep retorna false quando já havia uma limpeza em andamento
func (s *SessionSweepService) sweep() bool {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return false
	}
	s.sweepRunning = true
	s.lastSweepStartedAt = s.now()
	s.sweepMutex.Unlock()

	removed := s.sessions.Sweep(s.now())

	s.sweepMutex.Lock()
	s.sweepRunning = false
	s.lastSweepRemoved = removed
	s.lastSweepCompletedAt = s.now()
	s.sweepMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed": removed,
		"active":  s.sessions.Len(),
	}).Info("Limpeza de sessões concluída")

	return true
}

// TriggerManualSync inicia manualmente uma limpeza de sessões
func (s *SessionSweepService) TriggerManualSync() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões")
	go s.sweep()
}

// GetStatus retorna o status atual do agendador
func (s *SessionSweepService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"session_ttl":             s.config.TTL.String(),
		"sweep_running":           s.sweepRunning,
		"active_sessions":         s.sessions.Len(),
		"last_sweep_removed":      s.lastSweepRemoved,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}
}
