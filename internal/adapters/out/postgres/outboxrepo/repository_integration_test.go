package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func TestOutboxRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = outboxrepo.NewGormOutboxRepository(db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestFetchPending_OldestFirstAndMarked() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)
	older := suite.message(base.Add(-time.Minute))
	newer := suite.message(base)
	suite.Require().NoError(suite.repository.Append(ctx, newer, older))

	pending, err := suite.repository.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID.IsEqual(older.ID))
	suite.JSONEq(`{"to":"confirmed"}`, string(pending[0].Payload))

	suite.Require().NoError(suite.repository.MarkPublished(ctx, []kernel.UUID{older.ID}, time.Now()))

	pending, err = suite.repository.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID.IsEqual(newer.ID))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestFetchPending_SkipsLockedRows() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Append(ctx, suite.message(time.Now().Add(-time.Minute)), suite.message(time.Now())))

	tx := suite.db.Begin()
	defer tx.Rollback()
	locked, err := outboxrepo.NewGormOutboxRepository(tx).FetchPending(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)

	other, err := suite.repository.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(other, 1)
	suite.False(other[0].ID.IsEqual(locked[0].ID))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestFetchPending_SameInstantKeepsVersionOrder() {
	// Given
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Second)
	orderID := kernel.NewUUID()
	preparing := suite.versionedMessage(orderID, 3, at)
	confirmed := suite.versionedMessage(orderID, 2, at)
	ready := suite.versionedMessage(orderID, 4, at)
	suite.Require().NoError(suite.repository.Append(ctx, preparing, ready))
	suite.Require().NoError(suite.repository.Append(ctx, confirmed))

	// When
	pending, err := suite.repository.FetchPending(ctx, 10)

	// Then
	suite.Require().NoError(err)
	suite.Require().Len(pending, 3)
	for i, want := range []ports.OutboxMessage{confirmed, preparing, ready} {
		suite.True(pending[i].ID.IsEqual(want.ID), "position %d", i)
		suite.Equal(want.Version, pending[i].Version)
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) message(at time.Time) ports.OutboxMessage {
	return suite.versionedMessage(kernel.NewUUID(), 1, at)
}

func (suite *OutboxRepositoryIntegrationTestSuite) versionedMessage(
	aggregateID kernel.UUID,
	version int64,
	at time.Time,
) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		AggregateID: aggregateID,
		Version:     version,
		EventType:   "order.status_changed",
		Payload:     []byte(`{"to":"confirmed"}`),
		OccurredAt:  at,
	}
}
