//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"session-ledger/internal/usecase/commands"
	"session-ledger/internal/usecase/shared"
	sharedmock "session-ledger/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// uowHarness wires a mocked unit of work whose transactions run against mocked repositories.
type uowHarness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	grants        *sharedmock.MockGrantRepository
	clients       *sharedmock.MockClientRepository
	bookings      *sharedmock.MockBookingRepository
	policies      *sharedmock.MockPolicyRepository
	cancellations *sharedmock.MockCancellationRepository
	purchases     *sharedmock.MockPurchaseRepository
}

func newUoWHarness(ctrl *gomock.Controller) *uowHarness {
	h := &uowHarness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		grants:        sharedmock.NewMockGrantRepository(ctrl),
		clients:       sharedmock.NewMockClientRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		policies:      sharedmock.NewMockPolicyRepository(ctrl),
		cancellations: sharedmock.NewMockCancellationRepository(ctrl),
		purchases:     sharedmock.NewMockPurchaseRepository(ctrl),
	}

	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Grants().Return(h.grants).AnyTimes()
	h.tx.EXPECT().Clients().Return(h.clients).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Policies().Return(h.policies).AnyTimes()
	h.tx.EXPECT().Cancellations().Return(h.cancellations).AnyTimes()
	h.tx.EXPECT().Purchases().Return(h.purchases).AnyTimes()
	return h
}

// expectTx runs the transaction body once against the mocked repositories.
func (h *uowHarness) expectTx() *gomock.Call {
	return h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		})
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent chan commands.Notification
	err  error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan commands.Notification, 8)}
}

func (n *recordingNotifier) Notify(_ context.Context, msg commands.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent <- msg
	return n.err
}

func (n *recordingNotifier) wait(timeout time.Duration) (commands.Notification, bool) {
	select {
	case msg := <-n.sent:
		return msg, true
	case <-time.After(timeout):
		return commands.Notification{}, false
	}
}
