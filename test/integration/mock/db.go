package mock

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
	models map[string]any
	schema string
}

// NewDb class is used to configure DB and create a connection pool using gorm.
// Every caller shares the same in-memory database.
func NewDb(schema string, models map[string]any) *Db {
	once.Do(
		func() {
			db = open(schema, models)
		},
	)

	return db
}

func open(schema string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		schema: schema,
		models: models,
	}

	if err := newDbMock.init(); err != nil {
		panic(fmt.Sprintf("failed to create schema. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB empties every table while keeping the schema. Tables are retried
// until foreign keys stop blocking, since the models map has no order.
func (d *Db) ClearDB() error {
	pending := make([]any, 0, len(d.models))
	for _, model := range d.models {
		pending = append(pending, model)
	}

	for attempt := 0; attempt <= len(d.models) && len(pending) > 0; attempt++ {
		var failed []any
		var lastErr error
		for _, model := range pending {
			err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
			if err != nil {
				failed = append(failed, model)
				lastErr = fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}
		if len(failed) == 0 {
			return nil
		}
		if attempt == len(d.models) {
			return lastErr
		}
		pending = failed
	}
	return nil
}

func (d *Db) init() error {
	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)

		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(model); err != nil {
			return err
		}

		if err := d.DbConn.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", stmt.Schema.Table)).Error; err != nil {
			return err
		}
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, model := range modelList {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}

	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
