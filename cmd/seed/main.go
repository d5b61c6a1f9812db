package main

import (
	"flag"

	"github.com/rs/zerolog/log"
	"github.com/storefront-services/storefront-backend/pkg/config"
	"github.com/storefront-services/storefront-backend/pkg/db"
	"github.com/storefront-services/storefront-backend/pkg/seeds"
)

func main() {
	businessCount := flag.Int("businesses", 20, "number of businesses to seed")
	discountCount := flag.Int("discounts", 10, "number of discount codes per business")
	flag.Parse()

	config.Load()
	config.ConfigureLogging()

	if err := db.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	businesses, err := seeds.SeedBusinesses(db.DB, *businessCount, seeds.SeedOptions{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed businesses")
	}
	for _, business := range businesses {
		if _, err := seeds.SeedDiscountCodes(db.DB, business.UUID, *discountCount); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed discount codes")
		}
	}
	log.Info().Msgf("Seeded %d businesses with %d discount codes each", len(businesses), *discountCount)
}
