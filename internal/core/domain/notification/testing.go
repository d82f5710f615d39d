package notification

import (
	"context"
	"sync"
)

type FakeNotifier struct {
	SendResult bool
	Sent       []string
	lock       sync.Mutex
}

func NewFakeNotifier(sendResult bool) *FakeNotifier {
	return &FakeNotifier{SendResult: sendResult}
}

func (n *FakeNotifier) SendMessage(ctx context.Context, text string) bool {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Sent = append(n.Sent, text)
	return n.SendResult
}
