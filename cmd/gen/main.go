package main

import (
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the marketplace tables.
func main() {
	models := []any{
		model.UserModel{},
		model.BookModel{},
		model.StationeryModel{},
		model.UniformModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
