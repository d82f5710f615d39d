package sendmessage

import (
	"context"
	"notifyme/internal/core/domain/logging"
	"notifyme/internal/core/domain/notification"
	"notifyme/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger   *logging.FakeLogger
	Notifier *notification.FakeNotifier
	Service  services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Notifier = notification.NewFakeNotifier(true)
	suite.Service = New(suite.Logger, suite.Notifier, "discord")
}

func TestSendMessageService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.Service.Run(context.Background(), Input{Text: "hi"})

	s.Nil(err)
	s.True(result.Sent)
	s.Equal([]string{"hi"}, s.Notifier.Sent)
	s.Len(s.Logger.Records(logging.INFO), 1)
	s.Len(s.Logger.Records(logging.WARNING), 0)
}

func (s *testSuite) TestDeliveryFailed() {
	s.Notifier.SendResult = false

	result, err := s.Service.Run(context.Background(), Input{Text: "hi"})

	s.Nil(err)
	s.False(result.Sent)
	s.Len(s.Logger.Records(logging.WARNING), 1)
	s.Len(s.Logger.Records(logging.INFO), 0)
}
