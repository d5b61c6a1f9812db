package seeds

import (
	"fmt"
	"os"
	"testing"

	"github.com/storefront-services/storefront-backend/pkg/config"
	"github.com/storefront-services/storefront-backend/pkg/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type SeedSuite struct {
	suite.Suite
	db *gorm.DB
	tx *gorm.DB
}

func getDbConnection() *gorm.DB {
	c := config.Get()
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil
	}
	return db
}

func (s *SeedSuite) SetupSuite() {
	os.Setenv("CONFIG_PATH", "../../configs")
	config.Load()
	s.db = getDbConnection()
}

func (s *SeedSuite) TearDownSuite() {
	s.db = nil
}

func (s *SeedSuite) SetupTest() {
	s.tx = s.db.Begin()
}

func (s *SeedSuite) TearDownTest() {
	s.tx.Rollback()
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedSuite))
}

func (s *SeedSuite) TestSeedBusinesses() {
	businesses, err := SeedBusinesses(s.tx, 5, SeedOptions{})
	s.Require().NoError(err)
	s.Require().Len(businesses, 5)
	for _, business := range businesses {
		s.NotEmpty(business.UUID)
		s.NotEmpty(business.Subdomain)
		s.Equal(models.DomainStatusNone, business.DomainStatus)
		s.NotEmpty(business.ApiKeyDigest)
	}
}

func (s *SeedSuite) TestSeedBusinessesWithOptions() {
	status := models.BusinessStatusSuspended
	businesses, err := SeedBusinesses(s.tx, 3, SeedOptions{Template: "minimal", Status: &status})
	s.Require().NoError(err)
	for _, business := range businesses {
		s.Equal("minimal", business.Template)
		s.Equal(models.BusinessStatusSuspended, business.Status)
	}
}

func (s *SeedSuite) TestSeedDiscountCodes() {
	businesses, err := SeedBusinesses(s.tx, 1, SeedOptions{})
	s.Require().NoError(err)

	codes, err := SeedDiscountCodes(s.tx, businesses[0].UUID, 10)
	s.Require().NoError(err)
	s.Require().Len(codes, 10)
	for _, code := range codes {
		s.Equal(businesses[0].UUID, code.BusinessUUID)
		s.NotEmpty(code.Code)
		s.Greater(code.Value, int64(0))
	}
}
