package main

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wavevault/catalog"
	"wavevault/config"
)

func initDb(config *config.Config) *gorm.DB {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(getLogLevel(config)),
	}

	return connect(config.DBPath, gormConfig)
}

func getLogLevel(config *config.Config) logger.LogLevel {
	if config.IsDebug {
		return logger.Info
	}

	return logger.Silent
}

func testDB() *gorm.DB {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	return connect("file::memory:?cache=shared", gormConfig)
}

func connect(dsn string, gormConfig *gorm.Config) *gorm.DB {
	db, err := GetDriver(dsn, gormConfig)

	if err != nil {
		log.Fatalf("failed to connect to the database: %v", err)
	}

	err = catalog.AutoMigrate(db)

	if err != nil {
		log.Fatalf("failed to migrate the database")
	}

	return db
}
