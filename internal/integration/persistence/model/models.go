// Package model defines database models for persistence layer.
package model

// All returns every model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&CategoryModel{},
		&TransactionModel{},
		&GoalModel{},
	}
}
