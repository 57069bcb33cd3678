// Command gen writes typed GORM Gen query builders for the persistence models.
package main

import (
	"flag"

	"salesinsight/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "directory for the generated query package")
	flag.Parse()

	models := []any{
		model.CompanyModel{},
		model.UserModel{},
		model.ProductModel{},
		model.SaleRecordModel{},
		model.OfferModel{},
		model.TrainingRunModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
