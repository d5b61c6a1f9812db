package seeds

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/storefront-services/storefront-backend/pkg/models"
	"github.com/storefront-services/storefront-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SeedOptions struct {
	Template string
	Status   *models.BusinessStatus
	ApiKey   string
}

var templates = []string{"classic", "minimal", "boutique", "gallery"}

// SeedBusinesses inserts size random businesses and returns them.
func SeedBusinesses(db *gorm.DB, size int, options SeedOptions) ([]models.Business, error) {
	var businesses []models.Business

	apiKey := options.ApiKey
	if apiKey == "" {
		apiKey = "sk_seed_" + RandStringBytes(16)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	for i := 0; i < size; i++ {
		business := models.Business{
			Name:         fmt.Sprintf("%s %s", RandStringBytes(6), "Store"),
			Subdomain:    strings.ToLower(RandStringBytes(12)),
			Template:     createTemplate(options.Template),
			Status:       createStatus(options.Status),
			ApiKeyDigest: string(digest),
		}
		businesses = append(businesses, business)
	}
	result := db.Create(&businesses)
	if result.Error != nil {
		return nil, errors.New("could not save seed")
	}
	return businesses, nil
}

// SeedDiscountCodes inserts size random discount codes for a business.
func SeedDiscountCodes(db *gorm.DB, businessUUID string, size int) ([]models.DiscountCode, error) {
	var codes []models.DiscountCode

	for i := 0; i < size; i++ {
		code := models.DiscountCode{
			BusinessUUID: businessUUID,
			Code:         strings.ToUpper(RandStringBytes(8)),
			Type:         createDiscountType(),
			Value:        int64(rand.Intn(50) + 1),
			Active:       rand.Intn(10) != 0,
		}
		if rand.Intn(3) == 0 {
			code.UsageLimit = utils.Ptr(int64(rand.Intn(200) + 1))
		}
		if rand.Intn(3) == 0 {
			code.MinPurchaseCents = utils.Ptr(int64(rand.Intn(10000) + 100))
		}
		if code.Type == models.DiscountTypePercentage && rand.Intn(2) == 0 {
			code.MaxDiscountCents = utils.Ptr(int64(rand.Intn(5000) + 100))
		}
		codes = append(codes, code)
	}
	result := db.Create(&codes)
	if result.Error != nil {
		return nil, errors.New("could not save seed")
	}
	return codes, nil
}

func createTemplate(existing string) string {
	if existing != "" {
		return existing
	}
	return templates[rand.Intn(len(templates))]
}

func createStatus(existing *models.BusinessStatus) models.BusinessStatus {
	if existing != nil {
		return *existing
	}
	status := models.BusinessStatusActive
	if rand.Intn(10) == 0 {
		status = models.BusinessStatusSuspended
	}
	return status
}

func createDiscountType() models.DiscountType {
	if rand.Intn(2) == 0 {
		return models.DiscountTypeFixed
	}
	return models.DiscountTypePercentage
}

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func RandStringBytes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}
