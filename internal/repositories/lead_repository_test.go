package repositories

import (
	"errors"
	"testing"
	"time"

	"avoqado-web/internal/database"
	"avoqado-web/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLeadRepository(t *testing.T) {
	suite.Run(t, new(LeadRepositorySuite))
}

type LeadRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo LeadRepositoryInterface
}

func (s *LeadRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewLeadRepository(s.db.DB)
}

func (s *LeadRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func newLead(email string) *models.Lead {
	return &models.Lead{
		FirstName:   gofakeit.FirstName(),
		LastName:    gofakeit.LastName(),
		Email:       email,
		Phone:       gofakeit.Numerify("55########"),
		CompanyName: gofakeit.Company(),
	}
}

func (s *LeadRepositorySuite) TestCreate() {
	lead := newLead("ana@example.com")

	err := s.repo.Create(lead)
	s.NoError(err)
	s.NotEqual(uuid.Nil, lead.ID)
	s.NotZero(lead.CreatedAt)
	s.Equal(models.LeadStatusReceived, lead.Status)
	s.Equal(models.LeadSourceContactForm, lead.Source)
}

func (s *LeadRepositorySuite) TestCreate_Nil() {
	s.EqualError(s.repo.Create(nil), "lead cannot be nil")
}

func (s *LeadRepositorySuite) TestGetByID() {
	created := database.CreateTestLead(s.T(), s.db, "luis@example.com")

	lead, err := s.repo.GetByID(created.ID)
	s.Require().NoError(err)
	s.Equal(created.Email, lead.Email)
	s.Equal(created.CompanyName, lead.CompanyName)
}

func (s *LeadRepositorySuite) TestGetByID_NotFound() {
	lead, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrLeadNotFound)
	s.Nil(lead)
}

func (s *LeadRepositorySuite) TestCountByEmailSince() {
	database.CreateTestLead(s.T(), s.db, "repeat@example.com")
	database.CreateTestLead(s.T(), s.db, "repeat@example.com")
	database.CreateTestLead(s.T(), s.db, "other@example.com")

	old := newLead("repeat@example.com")
	old.CreatedAt = time.Now().Add(-2 * time.Hour)
	s.Require().NoError(s.repo.Create(old))

	count, err := s.repo.CountByEmailSince("repeat@example.com", time.Now().Add(-time.Hour))
	s.NoError(err)
	s.Equal(int64(2), count)

	count, err = s.repo.CountByEmailSince("nobody@example.com", time.Now().Add(-time.Hour))
	s.NoError(err)
	s.Zero(count)
}

func newMockedRepository(t *testing.T) (LeadRepositoryInterface, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewLeadRepository(db), mock
}

func TestLeadRepository_DatabaseErrors(t *testing.T) {
	dbErr := errors.New("connection reset by peer")

	t.Run("GetByID", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(`SELECT \* FROM "leads"`).WillReturnError(dbErr)

		lead, err := repo.GetByID(uuid.New())
		assert.Nil(t, lead)
		assert.ErrorIs(t, err, dbErr)
		assert.ErrorContains(t, err, "failed to get lead by ID")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CountByEmailSince", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "leads"`).WillReturnError(dbErr)

		count, err := repo.CountByEmailSince("ana@example.com", time.Now())
		assert.Zero(t, count)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
