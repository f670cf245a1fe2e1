package database

import (
	"fmt"

	"github.com/helixml/periodic/domain/repository"
	"gorm.io/gorm"
)

// ApplyOptions applies the conditions and ordering of options to a GORM session.
func ApplyOptions(db *gorm.DB, options ...repository.Option) *gorm.DB {
	q := repository.Build(options...)

	db = applyConditions(db, q.Conditions())

	for _, ord := range q.Orders() {
		dir := "ASC"
		if !ord.Ascending() {
			dir = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", ord.Field(), dir))
	}

	return db
}

// ApplyConditions applies only the WHERE conditions, for COUNT and DELETE.
func ApplyConditions(db *gorm.DB, options ...repository.Option) *gorm.DB {
	return applyConditions(db, repository.Build(options...).Conditions())
}

func applyConditions(db *gorm.DB, conditions []repository.Condition) *gorm.DB {
	for _, cond := range conditions {
		switch cond.Match() {
		case repository.MatchIn:
			db = db.Where(fmt.Sprintf("%s IN ?", cond.Field()), cond.Value())
		case repository.MatchContains:
			db = db.Where(containsClause(db, cond.Field()), cond.Value())
		default:
			db = db.Where(fmt.Sprintf("%s = ?", cond.Field()), cond.Value())
		}
	}
	return db
}

// containsClause returns a case-sensitive substring predicate. LIKE cannot be
// used because SQLite compares ASCII letters case-insensitively.
func containsClause(db *gorm.DB, field string) string {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return fmt.Sprintf("strpos(%s, ?) > 0", field)
	}
	return fmt.Sprintf("instr(%s, ?) > 0", field)
}
