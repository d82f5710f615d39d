package sendmessage

import (
	"context"
	e "notifyme/internal/core/domain/errors"
	"notifyme/internal/core/domain/logging"
	"notifyme/internal/core/domain/notification"
	"notifyme/internal/core/services"
)

type Input struct {
	Text string
}

type Result struct {
	Sent bool
}

type service struct {
	log      logging.Logger
	notifier notification.Notifier
	platform string
}

func New(
	log logging.Logger,
	notifier notification.Notifier,
	platform string,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{log: log, notifier: notifier, platform: platform}
}

func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	sent := s.notifier.SendMessage(ctx, input.Text)
	if !sent {
		s.log.Warning(
			ctx,
			"Notification has not been delivered.",
			logging.Entry("platform", s.platform),
		)
		return Result{Sent: false}, nil
	}
	s.log.Info(
		ctx,
		"Notification has been sent.",
		logging.Entry("platform", s.platform),
	)
	return Result{Sent: true}, nil
}
