package waitlist

import (
	"github.com/stagepass/core-service/internal/audit"
)

type Service struct {
	repo  WaitlistRepo
	pub   NotificationPublisher
	clock Clock
	audit *audit.Logger
}

func New(repo WaitlistRepo, pub NotificationPublisher, clock Clock, auditLog *audit.Logger) *Service {
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{repo: repo, pub: pub, clock: clock, audit: auditLog}
}
