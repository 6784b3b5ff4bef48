package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
	"os"
)

func main() {
	log.SetLevel(log.InfoLevel)
	log.Println("starting migrate")

	dir := flag.String("dir", "./migrations", "directory holding the migration files")
	down := flag.Bool("down", false, "roll every migration back instead of applying them")
	flag.Parse()

	dbConn := os.Getenv("APP_DB_CONN")

	if dbConn == "" {
		dbConn = "user=ps_user password=ps_password dbname=clasi sslmode=disable host=0.0.0.0"
	}

	log.Println("connecting to db")

	db, err := sql.Open("postgres", dbConn)

	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			log.Errorf("closing the db: %v", err)
		}
	}(db)

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", *dir),
		"postgres", driver)

	if err != nil {
		log.Fatal(err)
	}

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{"version": version, "dirty": dirty}).Info("migrations complete")
}
