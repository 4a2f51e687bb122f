package models

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect connects to the database and migrates the schema.
//
// If DB_HOST is set, a PostgreSQL connection is opened from the DB_*
// environment variables. Otherwise, dsn is used as the path to a sqlite
// database file.
func Connect(dsn string) error {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &dbLogger{log: log.Logger},
	}

	host, usePostgres := os.LookupEnv("DB_HOST")
	if usePostgres {
		log.Debug().Str("host", host).Str("database", os.Getenv("DB_NAME")).Msg("DB_HOST is set, using postgresql")
		pgDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		if port, ok := os.LookupEnv("DB_PORT"); ok {
			pgDSN = fmt.Sprintf("%s port=%s", pgDSN, port)
		}
		db, err = gorm.Open(postgres.Open(pgDSN), config)
	} else {
		log.Debug().Str("path", dsn).Msg("DB_HOST is not set, using sqlite database")
		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	if !usePostgres {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("outlay:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("outlay:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("outlay:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("outlay:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("outlay:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("outlay:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("outlay:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Migrate the schema. Models must be migrated before the models
	// referencing them.
	err = db.AutoMigrate(User{}, Category{}, RecurringRule{}, Budget{}, Expense{})
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	DB = db
	return nil
}

// Wait blocks until the database answers pings, retrying with a fixed
// interval until the timeout elapses.
//
// This only matters for container orchestration where the backend can come
// up faster than its database; a sqlite database is always available.
func Wait(timeout, interval time.Duration) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	deadline := time.Now().Add(timeout)
	for {
		err = sqlDB.Ping()
		if err == nil {
			log.Debug().Msg("database is available")
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("database not available before timeout: %w", err)
		}

		log.Warn().Err(err).Dur("interval", interval).Msg("waiting for database")
		time.Sleep(interval)
	}
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// Category names need to be unique per user
	if strings.Contains(msg, "categories.user_id, categories.name") || strings.Contains(msg, "category_owner_name") {
		db.Error = ErrCategoryNameNotUnique
	}

	// Recurring rule names need to be unique per user
	if strings.Contains(msg, "recurring_rules.user_id, recurring_rules.name") || strings.Contains(msg, "recurring_rule_owner_name") {
		db.Error = ErrRecurringRuleNameNotUnique
	}

	// Usernames are globally unique
	if strings.Contains(msg, "users.username") || strings.Contains(msg, "user_name") {
		db.Error = ErrUsernameNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}
