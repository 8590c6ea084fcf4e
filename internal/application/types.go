package application

import (
	"time"

	"github.com/mergington/activities/internal/ports"
)

type Config struct {
	ServiceName string
}

type Service struct {
	cfg        Config
	activities ports.ActivityRepository
	events     ports.EventPublisher
	nowFn      func() time.Time
}

type Dependencies struct {
	Config     Config
	Activities ports.ActivityRepository
	Events     ports.EventPublisher
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "activities-api"
	}
	return &Service{
		cfg:        cfg,
		activities: deps.Activities,
		events:     deps.Events,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}
