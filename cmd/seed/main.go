package main

import (
	"flag"
	"log"

	"commission-app/config"
	"commission-app/database"
	"commission-app/internal/seed"
)

func main() {
	file := flag.String("f", "seed.yaml", "path to the YAML fixture")
	flag.Parse()

	config.LoadEnv()

	fixture, err := seed.Load(*file)
	if err != nil {
		log.Fatal("❌ ", err)
	}

	database.InitDB()

	res, err := seed.Apply(database.DB, fixture)
	if err != nil {
		log.Fatal("❌ Seeding failed: ", err)
	}
	log.Printf("🌱 Seeded %d users, %d categories, %d artists", res.Users, res.Categories, res.Artists)
}
