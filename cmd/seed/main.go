package main

import (
	"fmt"
	"log"

	"github.com/dcwlabs/candleworks-backend/config"
	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/internal/db"
)

// Seeds the material catalogs with the workshop's current suppliers: scent
// oils priced per bottle, wicks priced per piece with shipping spread across
// the order, and the stock container lineup.

// 34 wicks per order, $7.50 shipping.
const shippingPerWick = 7.50 / 34.0

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := db.EnsureSettings(&cfg.Calculator); err != nil {
		log.Fatal("Failed to seed calculator settings:", err)
	}

	scentRepo := repository.NewScentRepository(db.GetDB())
	wickRepo := repository.NewWickTypeRepository(db.GetDB())
	containerRepo := repository.NewContainerRepository(db.GetDB())

	seedScents(scentRepo)
	seedWicks(wickRepo)
	seedContainers(containerRepo)

	fmt.Println("Seed completed successfully!")
}

func seedScents(repo repository.ScentRepository) {
	// Bottle price plus shipping, divided by bottle size.
	scents := []struct {
		key, name string
		costPerOz float64
	}{
		{"bonfire_embers", "Bonfire Embers", 38.87 / 16},
		{"lavender", "Lavender", 24.71 / 15},
		{"leather", "Leather", 27.63 / 16},
		{"white_eucalyptus", "White Eucalyptus", 32.20 / 16},
		{"sandalwood", "Sandalwood", 25.91 / 15},
	}

	for _, s := range scents {
		if existing, err := repo.FindByKey(s.key); err == nil && existing != nil {
			continue
		}
		cost := s.costPerOz
		scent := model.GlobalScent{Key: s.key, Name: s.name, CostPerOz: &cost}
		if err := repo.Create(&scent); err != nil {
			log.Printf("Failed to seed scent %s: %v", s.key, err)
			continue
		}
		fmt.Printf("Seeded scent %s ($%.4f/oz)\n", s.key, cost)
	}
}

func seedWicks(repo repository.WickTypeRepository) {
	wicks := []model.WickType{
		{Key: "wood_30mm", Name: "Wood 30mm", CostPerWick: 1.25 + shippingPerWick},
		{Key: "wood_20mm", Name: "Wood 20mm", CostPerWick: 8.25/10 + shippingPerWick},
		{Key: "cdn12", Name: "CDN 12", CostPerWick: 7.50/10 + shippingPerWick},
		{Key: "cdn16", Name: "CDN 16", CostPerWick: 5.00/10 + shippingPerWick},
	}

	for _, w := range wicks {
		if existing, err := repo.FindByKey(w.Key); err == nil && existing != nil {
			continue
		}
		wick := w
		if err := repo.Create(&wick); err != nil {
			log.Printf("Failed to seed wick %s: %v", w.Key, err)
			continue
		}
		fmt.Printf("Seeded wick %s ($%.4f each)\n", w.Key, w.CostPerWick)
	}
}

func seedContainers(repo repository.ContainerRepository) {
	containers := []model.Container{
		{
			Key:             "8oz_amber",
			Name:            "8oz Amber Jar",
			WaterCapacityOz: 8.0,
			Shape:           model.ShapeRound,
			Supplier:        "CandleScience",
			CostPerUnit:     1.40,
		},
		{
			Key:             "10oz_straight",
			Name:            "10oz Straight-Sided Tumbler",
			WaterCapacityOz: 10.0,
			Shape:           model.ShapeRound,
			Supplier:        "CandleScience",
			CostPerUnit:     1.85,
		},
		{
			Key:             "6oz_hex",
			Name:            "6oz Hexagon Jar",
			WaterCapacityOz: 6.0,
			Shape:           model.ShapeHexagonal,
			Supplier:        "Fillmore",
			CostPerUnit:     1.10,
		},
	}

	for _, c := range containers {
		if existing, err := repo.FindByKey(c.Key); err == nil && existing != nil {
			continue
		}
		container := c
		if err := repo.Create(&container); err != nil {
			log.Printf("Failed to seed container %s: %v", c.Key, err)
			continue
		}
		fmt.Printf("Seeded container %s (%.1f oz water)\n", c.Key, c.WaterCapacityOz)
	}
}
