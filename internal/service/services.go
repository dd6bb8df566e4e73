package service

import (
	"github.com/akovalev/go-field-sync/internal/adapter"
	"github.com/akovalev/go-field-sync/internal/config"
	"github.com/akovalev/go-field-sync/internal/connectivity"
	"github.com/akovalev/go-field-sync/internal/crypto"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/store"
	"github.com/akovalev/go-field-sync/models"
)

type Services struct {
	Submit    SubmitService
	Queue     QueueService
	Reconcile ReconcileService
	SyncJob   SyncJob
	AppInfo   AppInfoService
}

// NewServices wires the agent's service layer. The resolution cache is
// shared between the reconciler (which fills it as records deliver) and the
// write path (which reads it when attachments arrive); the sync job doubles
// as the drain trigger poked after every enqueue.
func NewServices(
	storages *store.Storages,
	remote adapter.RemoteAdapter,
	sealer crypto.PayloadSealer,
	monitor connectivity.Monitor,
	cfg *config.AgentConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Services {
	resolution := newResolutionCache()
	reconciler := NewReconcileService(storages, remote, sealer, monitor, resolution, cfg.Workers.MaxRetries, logger)
	job := NewSyncJob(reconciler, monitor, cfg.Workers.DrainInterval)

	return &Services{
		Submit:    NewSubmitService(storages, remote, sealer, monitor, resolution, job, logger),
		Queue:     NewQueueService(storages, sealer, monitor, job, logger),
		Reconcile: reconciler,
		SyncJob:   job,
		AppInfo:   NewAppInfoService(buildInfo),
	}
}
