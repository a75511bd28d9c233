package queries_test

import (
	"context"
	"testing"
	"time"

	"depot/internal/adapters/out/postgres/failurereasonrepo"
	"depot/internal/adapters/out/postgres/manifestrepo"
	"depot/internal/adapters/out/postgres/parcelrepo"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/failurereason"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/manifest"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetManifestSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetManifestSummaryQueryHandler
	manifestRepo *manifestrepo.GormManifestRepository
	parcelRepo   *parcelrepo.GormParcelRepository
	reasonRepo   *failurereasonrepo.GormFailureReasonRepository
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&manifestrepo.ManifestDTO{},
		&manifestrepo.LineItemDTO{},
		&failurereasonrepo.FailureReasonDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetManifestSummaryQueryHandler(db)
	suite.manifestRepo = manifestrepo.NewGormManifestRepository(db, &mockAggregateTracker{})
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
	suite.reasonRepo = failurereasonrepo.NewGormFailureReasonRepository(db, &mockAggregateTracker{})
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE manifests, line_items, parcels, failure_reasons CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) TestHandle_UnknownManifest_ReturnsNotFound() {
	query, err := queries.NewGetManifestSummaryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) TestHandle_EmptyManifest_ReturnsZeroTotal() {
	m := suite.createManifest("PL-Q-001")

	query, err := queries.NewGetManifestSummaryQuery(m.ID())
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(m.ID(), summary.ManifestID)
	suite.Equal("PL-Q-001", summary.Number)
	suite.Empty(summary.Items)
	suite.InDelta(0.0, summary.TotalWeightGrams, 0.001)
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) TestHandle_WithItems_ReturnsItemsInPositionOrder() {
	ctx := context.Background()
	m := suite.createManifest("PL-Q-002")

	p1 := suite.createParcel("TRK-SUM-001", 500)
	p2 := suite.createParcel("TRK-SUM-002", 1500)
	p3 := suite.createParcel("TRK-SUM-003", 3500)

	locked, err := suite.manifestRepo.GetForUpdate(ctx, m.ID())
	suite.Require().NoError(err)
	for _, p := range []*parcel.Parcel{p1, p2, p3} {
		_, err = locked.Assign(p, parcel.DefaultCeilingGrams)
		suite.Require().NoError(err)
	}
	err = suite.manifestRepo.Update(ctx, locked)
	suite.Require().NoError(err)

	query, err := queries.NewGetManifestSummaryQuery(m.ID())
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Items, 3)
	suite.InDelta(5500.0, summary.TotalWeightGrams, 0.001)

	suite.Equal(1, summary.Items[0].Position)
	suite.Equal("TRK-SUM-001", summary.Items[0].Tracking)
	suite.InDelta(500.0, summary.Items[0].WeightGrams, 0.001)
	suite.Equal("IN_DEPOT", summary.Items[0].State)
	suite.Empty(summary.Items[0].FailureReasonCode)

	suite.Equal(2, summary.Items[1].Position)
	suite.Equal(p2.ID(), summary.Items[1].ParcelID)

	suite.Equal(3, summary.Items[2].Position)
	suite.InDelta(3500.0, summary.Items[2].WeightGrams, 0.001)
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) TestHandle_TotalReflectsCurrentParcelWeight() {
	ctx := context.Background()
	m := suite.createManifest("PL-Q-003")
	p := suite.createParcel("TRK-SUM-010", 1000)

	locked, err := suite.manifestRepo.GetForUpdate(ctx, m.ID())
	suite.Require().NoError(err)
	_, err = locked.Assign(p, parcel.DefaultCeilingGrams)
	suite.Require().NoError(err)
	err = suite.manifestRepo.Update(ctx, locked)
	suite.Require().NoError(err)

	err = p.ChangeWeight(2000, parcel.DefaultWeightPolicy())
	suite.Require().NoError(err)
	err = suite.parcelRepo.Update(ctx, p)
	suite.Require().NoError(err)

	query, err := queries.NewGetManifestSummaryQuery(m.ID())
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.InDelta(2000.0, summary.TotalWeightGrams, 0.001)
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) TestHandle_IncludesFailureReasonCode() {
	ctx := context.Background()
	m := suite.createManifest("PL-Q-004")
	p := suite.createParcel("TRK-SUM-020", 800)

	reason, err := failurereason.NewSimple(kernel.NewUUID(), "ABSENT", "Recipient absent", "Nobody home", true)
	suite.Require().NoError(err)
	err = suite.reasonRepo.Add(ctx, reason)
	suite.Require().NoError(err)

	locked, err := suite.manifestRepo.GetForUpdate(ctx, m.ID())
	suite.Require().NoError(err)
	item, err := locked.Assign(p, parcel.DefaultCeilingGrams)
	suite.Require().NoError(err)
	err = locked.AssignFailureReason(item.ID(), reason.ID(), reason)
	suite.Require().NoError(err)
	err = suite.manifestRepo.Update(ctx, locked)
	suite.Require().NoError(err)

	query, err := queries.NewGetManifestSummaryQuery(m.ID())
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Items, 1)
	suite.Equal("ABSENT", summary.Items[0].FailureReasonCode)
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetManifestSummaryQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetManifestSummaryQuery constructor")
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) createManifest(number string) *manifest.Manifest {
	m, err := manifest.NewManifest(kernel.NewUUID(), number, time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.manifestRepo.Add(context.Background(), m)
	suite.Require().NoError(err)
	return m
}

func (suite *GetManifestSummaryQueryHandlerTestSuite) createParcel(tracking string, weightGrams float64) *parcel.Parcel {
	recipient, err := parcel.NewRecipient("Ana Soto", "555-0101", "Calle Norte 7")
	suite.Require().NoError(err)
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), tracking,
		recipient, weightGrams, 20, parcel.DefaultWeightPolicy())
	suite.Require().NoError(err)
	err = suite.parcelRepo.Add(context.Background(), p)
	suite.Require().NoError(err)
	return p
}

func TestGetManifestSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetManifestSummaryQueryHandlerTestSuite))
}
