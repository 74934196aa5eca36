package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOutboxUoW(t *testing.T) (*MockOutboxRepository, *MockUoW, *MockUoWFactory[commands.OutboxUoW]) {
	t.Helper()
	ctx := t.Context()
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.OutboxUoW])

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outboxRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	return outboxRepo, uow, factory
}

func TestRelayOutboxCommandHandler_Handle(t *testing.T) {
	messages := []ports.OutboxMessage{
		{ID: kernel.NewUUID(), AggregateID: kernel.NewUUID(), EventType: "order.status_changed", Payload: []byte(`{}`)},
		{ID: kernel.NewUUID(), AggregateID: kernel.NewUUID(), EventType: "order.status_changed", Payload: []byte(`{}`)},
	}

	t.Run("publishes and marks a batch", func(t *testing.T) {
		// Given
		ctx := t.Context()
		cmd, err := commands.NewRelayOutboxCommand(10)
		require.NoError(t, err)
		publisher := new(MockEventPublisher)

		outboxRepo, uow, factory := setupOutboxUoW(t)
		mock.InOrder(
			outboxRepo.On("FetchPending", ctx, 10).Return(messages, nil).Once(),
			publisher.On("Publish", ctx, messages).Return(nil).Once(),
			outboxRepo.On("MarkPublished", ctx, []kernel.UUID{messages[0].ID, messages[1].ID}, mock.Anything).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)

		// When
		n, err := commands.NewRelayOutboxCommandHandler(factory, publisher).Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		outboxRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRelayOutboxCommand(10)
		require.NoError(t, err)
		publisher := new(MockEventPublisher)

		outboxRepo, _, factory := setupOutboxUoW(t)
		outboxRepo.On("FetchPending", ctx, 10).Return([]ports.OutboxMessage{}, nil).Once()

		n, err := commands.NewRelayOutboxCommandHandler(factory, publisher).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, n)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("publish failure keeps messages pending", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRelayOutboxCommand(10)
		require.NoError(t, err)
		publisher := new(MockEventPublisher)

		outboxRepo, uow, factory := setupOutboxUoW(t)
		outboxRepo.On("FetchPending", ctx, 10).Return(messages, nil).Once()
		publisher.On("Publish", ctx, messages).Return(errors.New("broker down")).Once()

		n, err := commands.NewRelayOutboxCommandHandler(factory, publisher).Handle(ctx, cmd)

		require.EqualError(t, err, "broker down")
		assert.Zero(t, n)
		outboxRepo.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
