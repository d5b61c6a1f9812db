package dao

import (
	"testing"
)

type MockDaoRegistry struct {
	Business     MockBusinessDao
	DomainQueue  MockDomainQueueDao
	DiscountCode MockDiscountCodeDao
}

func (m *MockDaoRegistry) ToDaoRegistry() *DaoRegistry {
	r := DaoRegistry{
		Business:     &m.Business,
		DomainQueue:  &m.DomainQueue,
		DiscountCode: &m.DiscountCode,
	}
	return &r
}

func GetMockDaoRegistry(t *testing.T) *MockDaoRegistry {
	reg := MockDaoRegistry{
		Business:     *NewMockBusinessDao(t),
		DomainQueue:  *NewMockDomainQueueDao(t),
		DiscountCode: *NewMockDiscountCodeDao(t),
	}
	return &reg
}
