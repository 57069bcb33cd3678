package impl

import (
	"context"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/domain/service"

	"github.com/pkg/errors"
)

// buildHistories turns products into model inputs, keeping the given product order. Products without any
// sale record are left out and counted as skipped.
func buildHistories(
	ctx context.Context,
	sales repository.SaleRepository,
	products []*entity.Product,
) ([]service.ProductHistory, int, error) {
	histories := make([]service.ProductHistory, 0, len(products))
	skipped := 0

	for _, product := range products {
		records, err := sales.ListSalesByProduct(ctx, product.ID)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "failed to list sales of product %s", product.ID)
		}
		if len(records) == 0 {
			skipped++

			continue
		}

		history := service.ProductHistory{
			ProductID:      product.ID,
			CompanyID:      product.CompanyID,
			ModelName:      product.ModelName,
			Region:         product.Region,
			Price:          product.Price.InexactFloat64(),
			EffectivePrice: product.EffectivePrice().InexactFloat64(),
			BatteryLife:    product.BatteryLife,
			Features:       product.Features,
			History:        make([]service.HistoryPoint, 0, len(records)),
		}
		for _, record := range records {
			history.History = append(history.History, service.HistoryPoint{
				Month:      record.Month,
				SalesCount: record.SalesCount,
				Revenue:    record.Revenue.InexactFloat64(),
			})
		}
		histories = append(histories, history)
	}

	return histories, skipped, nil
}

// lastMonth is the most recent month of an ascending history.
func lastMonth(history *service.ProductHistory) entity.Month {
	return history.History[len(history.History)-1].Month
}
