package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/darshilDishu/academiq/app/config"
)

func main() {
	log.Println("Applying portal schema...")

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	executeSQLFile(db, "schema.sql")

	log.Println("Schema applied successfully")
}

func executeSQLFile(db *sql.DB, filePath string) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("Cannot read %s: %v", filePath, err)
	}

	log.Printf("Executing %s...", filePath)
	if _, err := db.Exec(string(content)); err != nil {
		log.Fatalf("Error executing %s: %v", filePath, err)
	}
	log.Printf("Successfully executed %s", filePath)
}
