// Command import-jobs runs the markdown import pipeline once against the
// configured database and prints a summary. Useful for seeding a fresh
// deployment without going through the API.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"JobOrganizer-backend/internal/database"
	"JobOrganizer-backend/internal/importer"
)

func main() {
	path := flag.String("source", "", "path to the jobs source document (default $JOBS_SOURCE_PATH or JOBS_SOURCE.md)")
	flag.Parse()

	sourcePath := *path
	if sourcePath == "" {
		sourcePath = os.Getenv("JOBS_SOURCE_PATH")
	}
	if sourcePath == "" {
		sourcePath = importer.DefaultSourcePath
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	count, err := importer.New(db.DB).Run(sourcePath)
	if err != nil {
		log.Fatal("import failed: ", err)
	}

	fmt.Printf("Successfully imported %d jobs from %s\n", count, sourcePath)

	if err := db.Close(); err != nil {
		log.Fatal("failed to close database: ", err)
	}
}
