package main

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"log"
	"os"
	"time"

	"marketing-calendar-be/internal/model"
	"marketing-calendar-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

//go:embed dates.csv
var datesCSV []byte

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding commemorative dates...")

	reader := csv.NewReader(bytes.NewReader(datesCSV))
	reader.FieldsPerRecord = 6

	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Fatalf("Error: Failed to read CSV header: %v", err)
	}

	created, skipped := 0, 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error: Failed to read CSV record: %v", err)
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			color.Red("Invalid date %q, skipping", record[0])
			continue
		}

		var existing model.CommemorativeDate
		if err := db.Where("date = ? AND description = ?", date, record[1]).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		entry := model.CommemorativeDate{
			Date:        date,
			Description: record[1],
			Type:        record[2],
			Niche1:      record[3],
			Niche2:      record[4],
			Niche3:      record[5],
		}
		if err := db.Create(&entry).Error; err != nil {
			color.Red("Failed to create %q: %v", record[1], err)
			continue
		}
		created++
		color.Green("Created: %s (%s)", record[1], record[0])
	}

	color.Cyan("Seeding completed: %d created, %d already present.", created, skipped)
}
