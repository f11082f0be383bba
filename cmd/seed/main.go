package main

import (
	"log"

	"blogsite/database"
	"blogsite/seeds"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using env vars")
	}

	database.Connect()

	if err := seeds.Run(database.DB); err != nil {
		log.Fatal("Seeding failed: ", err)
	}
	log.Println("Sample data ready")
}
