package moderation

import (
	"github.com/stagepass/core-service/internal/audit"
)

type Service struct {
	demerits DemeritRepo
	appeals  AppealRepo
	settings SettingsRepo
	pub      NotificationPublisher
	clock    Clock
	audit    *audit.Logger
}

func New(demerits DemeritRepo, appeals AppealRepo, settings SettingsRepo, pub NotificationPublisher, clock Clock, auditLog *audit.Logger) *Service {
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{
		demerits: demerits,
		appeals:  appeals,
		settings: settings,
		pub:      pub,
		clock:    clock,
		audit:    auditLog,
	}
}
