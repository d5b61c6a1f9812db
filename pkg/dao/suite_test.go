package dao

import (
	"log"
	"os"
	"testing"

	"github.com/storefront-services/storefront-backend/pkg/db"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DaoSuite struct {
	suite.Suite
	db                        *gorm.DB
	tx                        *gorm.DB
	skipDefaultTransactionOld bool
}

func (s *DaoSuite) SetupTest() {
	if db.DB == nil {
		if err := db.Connect(); err != nil {
			s.FailNow(err.Error())
		}
	}
	s.skipDefaultTransactionOld = db.DB.SkipDefaultTransaction
	s.db = db.DB.Session(&gorm.Session{
		SkipDefaultTransaction: false,
		Logger: logger.New(
			log.New(os.Stderr, "\r\n", log.LstdFlags),
			logger.Config{
				LogLevel: logger.Warn,
			}),
	})
	s.tx = s.db.Begin()
}

func (s *DaoSuite) TearDownTest() {
	// Rollback and reset db.DB
	s.tx.Rollback()
	s.db.SkipDefaultTransaction = s.skipDefaultTransactionOld
}

func TestMain(m *testing.M) {
	os.Setenv("CONFIG_PATH", "../../configs")
	os.Exit(m.Run())
}
