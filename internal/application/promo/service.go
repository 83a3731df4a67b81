package promo

import (
	"github.com/stagepass/core-service/internal/audit"
)

type Service struct {
	repo  DiscountRepo
	clock Clock
	audit *audit.Logger
}

func New(repo DiscountRepo, clock Clock, auditLog *audit.Logger) *Service {
	return &Service{repo: repo, clock: clock, audit: auditLog}
}
