// Package persistence provides database storage implementations.
package persistence

import (
	"fmt"
	"strings"

	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/internal/database"
	"gorm.io/gorm"
)

// allModels returns every model in table creation order.
func allModels() []any {
	models := make([]any, 0, len(dataset.Kinds()))
	for _, kind := range dataset.Kinds() {
		model, _ := modelFor(kind)
		models = append(models, model)
	}
	return models
}

// AutoMigrate creates every missing table and column. Tables are migrated
// one at a time in creation order so parents exist before their children.
func AutoMigrate(db database.Database) error {
	gdb := db.GORM()
	for _, model := range allModels() {
		if err := gdb.AutoMigrate(model); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSchema verifies every model field of the existing tables has a
// corresponding column. Missing tables are not an error: they are created
// on demand by the schema service.
func ValidateSchema(db database.Database) error {
	gdb := db.GORM()
	migrator := gdb.Migrator()

	var missing []string
	for _, model := range allModels() {
		if !migrator.HasTable(model) {
			continue
		}

		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parse model schema: %w", err)
		}

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return fmt.Errorf("get column types for %s: %w", stmt.Table, err)
		}

		actual := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			actual[ct.Name()] = true
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" || field.DBName == "-" {
				continue
			}
			if !actual[field.DBName] {
				missing = append(missing, stmt.Table+"."+field.DBName)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema validation failed, missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
