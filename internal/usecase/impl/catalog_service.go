package impl

import (
	"bytes"
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"salesinsight/config"
	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/access"
	"salesinsight/internal/domain/catalog"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/ingest"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/domain/service"
	"salesinsight/internal/usecase"
	"salesinsight/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultSalesLimit = 100
	maxSalesLimit     = 1000
	topProductsCount  = 5
	unspecifiedRegion = "Unspecified"
)

type catalogService struct {
	txManager  repository.TransactionManager
	locker     service.TenantLocker
	archiver   service.Archiver
	publisher  service.EventPublisher
	metrics    service.MetricsRecorder
	normalizer *ingest.Normalizer
	now        func() time.Time
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Locker    service.TenantLocker
	Archiver  service.Archiver
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	var featureColumns []string
	if params.Config != nil {
		featureColumns = params.Config.Ingest.FeatureColumns
	}

	return &catalogService{
		txManager:  params.TxManager,
		locker:     params.Locker,
		archiver:   params.Archiver,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		normalizer: ingest.NewNormalizer(featureColumns...),
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type ingestedEvent struct {
	Filename        string `json:"filename,omitempty"`
	UploadKey       string `json:"upload_key,omitempty"`
	RowsSucceeded   int    `json:"rows_succeeded"`
	RowsFailed      int    `json:"rows_failed"`
	ProductsCreated int    `json:"products_created"`
	ProductsUpdated int    `json:"products_updated"`
	UnitsAdded      int64  `json:"units_added"`
}

// IngestCSV archives the raw file, normalizes it, then reconciles every good row in one transaction
// while holding the tenant's lease.
func (srv *catalogService) IngestCSV(
	ctx context.Context,
	caller *entity.Identity,
	companyID uuid.UUID,
	upload *usecase.UploadInput,
) (*entity.IngestResult, error) {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return nil, err
	}
	started := srv.now()
	logger := srv.log(ctx).With(
		slog.Any("companyID", companyID),
		slog.String("filename", upload.Filename),
		slog.String("size", util.FormatBytes(int64(len(upload.Data)))),
	)

	uploadKey, err := srv.archiver.Store(ctx, companyID, upload.Filename, upload.Data)
	if err != nil {
		logger.Warn("Failed to archive upload", slog.Any("error", err))
	}

	parsed, err := srv.normalizer.ParseCSV(bytes.NewReader(upload.Data))
	if err != nil {
		logger.Info("Upload rejected", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	if len(parsed.Records) == 0 {
		result := &entity.IngestResult{
			Failures:       parsed.Failures,
			IgnoredColumns: parsed.IgnoredColumns,
			UploadKey:      uploadKey,
		}
		srv.metrics.ObserveIngest(0, len(parsed.Failures), srv.now().Sub(started))
		logger.Info("Upload had no usable rows", slog.Int("failures", len(parsed.Failures)))

		return nil, &domainerrors.IngestionFailedError{Result: finishResult(result)}
	}

	result, err := srv.reconcile(ctx, companyID, parsed.Records)
	if err != nil {
		return nil, err
	}
	result.Failures = parsed.Failures
	result.IgnoredColumns = parsed.IgnoredColumns
	result.UploadKey = uploadKey
	finishResult(result)

	srv.metrics.ObserveIngest(result.RowsSucceeded, len(result.Failures), srv.now().Sub(started))
	logger.Info("Upload ingested",
		slog.Int("rowsSucceeded", result.RowsSucceeded),
		slog.Int("rowsFailed", len(result.Failures)),
		slog.Int("productsCreated", result.ProductsCreated),
		slog.Int("productsUpdated", result.ProductsUpdated),
	)

	srv.publishIngested(ctx, companyID, upload.Filename, result)

	return result, nil
}

// AddSale applies one manually entered row. Parse problems are returned as errors since there is no
// batch to report them in.
func (srv *catalogService) AddSale(
	ctx context.Context,
	caller *entity.Identity,
	companyID uuid.UUID,
	fields map[string]string,
) (*entity.IngestResult, error) {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return nil, err
	}
	started := srv.now()

	record, ignored, err := srv.normalizer.NormalizeFields(fields)
	if err != nil {
		srv.metrics.ObserveIngest(0, 1, srv.now().Sub(started))

		return nil, errors.WithStack(err)
	}

	result, err := srv.reconcile(ctx, companyID, []ingest.Record{record})
	if err != nil {
		return nil, err
	}
	result.IgnoredColumns = ignored
	finishResult(result)

	srv.metrics.ObserveIngest(result.RowsSucceeded, 0, srv.now().Sub(started))
	srv.log(ctx).Info("Manual sale recorded",
		slog.Any("companyID", companyID),
		slog.String("model", record.Model),
		slog.String("month", record.Month.String()),
		slog.Int64("units", record.SalesCount),
	)

	srv.publishIngested(ctx, companyID, "", result)

	return result, nil
}

func (srv *catalogService) ListProducts(ctx context.Context, caller *entity.Identity, companyID uuid.UUID) ([]*entity.Product, error) {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return nil, err
	}

	var products []*entity.Product
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var listErr error
		products, listErr = snapshot.ProductRepo().ListProductsByCompany(ctx, companyID)

		return errors.Wrap(listErr, "failed to list products")
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// DeleteProduct removes a product and its sale records. It takes the tenant lease so that it never
// interleaves with an ingestion of the same company.
func (srv *catalogService) DeleteProduct(ctx context.Context, caller *entity.Identity, companyID, productID uuid.UUID) error {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return err
	}

	err := srv.withLease(ctx, companyID, func(ctx context.Context) error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			deleteErr := repoFactory.ProductRepo().DeleteProduct(ctx, companyID, productID)
			if errors.Is(deleteErr, repository.ErrProductNotFound) {
				return domainerrors.NotFound("product", productID)
			}

			return errors.Wrap(deleteErr, "failed to delete product")
		})
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Product deleted", slog.Any("companyID", companyID), slog.Any("productID", productID))

	return nil
}

// UpdateProduct corrects a product's attributes under the tenant lease.
func (srv *catalogService) UpdateProduct(
	ctx context.Context,
	caller *entity.Identity,
	companyID, productID uuid.UUID,
	input *usecase.UpdateProductInput,
) (*entity.Product, error) {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return nil, err
	}
	features, err := validateProductUpdate(input)
	if err != nil {
		return nil, err
	}

	var product *entity.Product
	err = srv.withLease(ctx, companyID, func(ctx context.Context) error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var findErr error
			product, findErr = repoFactory.ProductRepo().FindProductByID(ctx, companyID, productID)
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return domainerrors.NotFound("product", productID)
			}
			if findErr != nil {
				return errors.Wrap(findErr, "failed to find product")
			}

			applyProductUpdate(product, input, features)
			if updateErr := repoFactory.ProductRepo().UpdateProduct(ctx, product); updateErr != nil {
				if errors.Is(updateErr, repository.ErrProductNotFound) {
					return domainerrors.NotFound("product", productID)
				}

				return errors.Wrap(updateErr, "failed to update product")
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Product updated", slog.Any("companyID", companyID), slog.Any("productID", productID))

	return product, nil
}

// validateProductUpdate checks the input and returns its feature flags under canonical names.
func validateProductUpdate(input *usecase.UpdateProductInput) (map[string]bool, error) {
	if input == nil || (input.Price == nil && input.DiscountPrice == nil && !input.ClearDiscountPrice &&
		input.BatteryLife == nil && len(input.Features) == 0) {
		return nil, domainerrors.Validation("at least one product attribute must be given")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, domainerrors.Validation("price must not be negative")
	}
	if input.DiscountPrice != nil {
		if input.ClearDiscountPrice {
			return nil, domainerrors.Validation("discount_price cannot be set and cleared at once")
		}
		if input.DiscountPrice.IsNegative() {
			return nil, domainerrors.Validation("discount_price must not be negative")
		}
	}
	if input.BatteryLife != nil && *input.BatteryLife < 0 {
		return nil, domainerrors.Validation("battery_life must not be negative")
	}

	features := make(map[string]bool, len(input.Features))
	for name, flag := range input.Features {
		canonical := ingest.FeatureName(name)
		if canonical == "" {
			return nil, domainerrors.Validation("feature names must not be empty")
		}
		features[canonical] = flag
	}

	return features, nil
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput, features map[string]bool) {
	if input.Price != nil {
		product.Price = *input.Price
	}
	switch {
	case input.ClearDiscountPrice:
		product.DiscountPrice = nil
	case input.DiscountPrice != nil:
		discount := *input.DiscountPrice
		product.DiscountPrice = &discount
	}
	if input.BatteryLife != nil {
		days := *input.BatteryLife
		product.BatteryLife = &days
	}
	if len(features) > 0 && product.Features == nil {
		product.Features = make(map[string]bool, len(features))
	}
	for name, flag := range features {
		product.Features[name] = flag
	}
}

func (srv *catalogService) ListSales(
	ctx context.Context,
	caller *entity.Identity,
	companyID uuid.UUID,
	limit int,
) ([]*entity.CompanySale, error) {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultSalesLimit
	case limit > maxSalesLimit:
		limit = maxSalesLimit
	}

	var sales []*entity.CompanySale
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var listErr error
		sales, listErr = snapshot.SaleRepo().ListSalesByCompany(ctx, companyID, limit)

		return errors.Wrap(listErr, "failed to list sales")
	})
	if err != nil {
		return nil, err
	}

	return sales, nil
}

// Analytics aggregates the tenant's whole sales history.
func (srv *catalogService) Analytics(ctx context.Context, caller *entity.Identity, companyID uuid.UUID) (*usecase.Analytics, error) {
	if err := access.RequireCompany(caller, companyID); err != nil {
		return nil, err
	}

	var (
		products []*entity.Product
		sales    []*entity.CompanySale
	)
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var err error
		if products, err = snapshot.ProductRepo().ListProductsByCompany(ctx, companyID); err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		sales, err = snapshot.SaleRepo().ListSalesByCompany(ctx, companyID, 0)

		return errors.Wrap(err, "failed to list sales")
	})
	if err != nil {
		return nil, err
	}

	return summarizeSales(products, sales), nil
}

func (srv *catalogService) reconcile(ctx context.Context, companyID uuid.UUID, records []ingest.Record) (*entity.IngestResult, error) {
	var result *entity.IngestResult

	err := srv.withLease(ctx, companyID, func(ctx context.Context) error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			_, findErr := repoFactory.CompanyRepo().FindCompanyByID(ctx, companyID)
			if errors.Is(findErr, repository.ErrCompanyNotFound) {
				return domainerrors.NotFound("company", companyID)
			}
			if findErr != nil {
				return errors.Wrap(findErr, "failed to find company")
			}

			var reconcileErr error
			result, reconcileErr = catalog.Reconcile(ctx, repoFactory, companyID, records, srv.now().UTC())

			return reconcileErr
		})
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// withLease runs fn under the lease context of the company's ingestion lease. The lease is released
// on every path; losing it mid-run aborts fn and its transaction.
func (srv *catalogService) withLease(ctx context.Context, companyID uuid.UUID, fn func(ctx context.Context) error) error {
	leaseCtx, release, err := srv.locker.Acquire(ctx, ingestLockKey(companyID))
	if errors.Is(err, service.ErrLockNotAcquired) {
		return domainerrors.ErrIngestionBusy.WithDetails("company " + companyID.String() + " is ingesting another upload")
	}
	if err != nil {
		return errors.Wrap(err, "failed to acquire tenant lease")
	}
	defer release()

	err = fn(leaseCtx)
	if err != nil && errors.Is(context.Cause(leaseCtx), service.ErrLockLost) {
		srv.log(ctx).Warn("Tenant lease lost during ingestion", slog.Any("companyID", companyID), slog.Any("error", err))

		return domainerrors.ErrIngestionBusy.WithDetails("the lease of company " + companyID.String() + " was lost before the write finished")
	}

	return err
}

func (srv *catalogService) publishIngested(ctx context.Context, companyID uuid.UUID, filename string, result *entity.IngestResult) {
	publishAfterCommit(ctx, srv.publisher, srv.log(ctx), service.EventCatalogIngested, &companyID, ingestedEvent{
		Filename:        filename,
		UploadKey:       result.UploadKey,
		RowsSucceeded:   result.RowsSucceeded,
		RowsFailed:      len(result.Failures),
		ProductsCreated: result.ProductsCreated,
		ProductsUpdated: result.ProductsUpdated,
		UnitsAdded:      result.UnitsAdded,
	})
}

func ingestLockKey(companyID uuid.UUID) string {
	return "ingest:" + companyID.String()
}

// finishResult replaces nil slices so results always serialize lists.
func finishResult(result *entity.IngestResult) *entity.IngestResult {
	if result.Failures == nil {
		result.Failures = []entity.RowFailure{}
	}
	if result.IgnoredColumns == nil {
		result.IgnoredColumns = []string{}
	}

	return result
}

func summarizeSales(products []*entity.Product, sales []*entity.CompanySale) *usecase.Analytics {
	type monthTotal struct {
		units   int64
		revenue decimal.Decimal
	}
	type productTotal struct {
		usecase.ProductSales
		revenue decimal.Decimal
	}

	byRegion := usecase.RegionSales{}
	byMonth := map[entity.Month]*monthTotal{}
	byProduct := map[uuid.UUID]*productTotal{}
	totalRevenue := decimal.Zero
	var totalUnits int64

	for _, sale := range sales {
		region := sale.Region
		if region == "" {
			region = unspecifiedRegion
		}
		byRegion[region] += sale.SalesCount

		month, ok := byMonth[sale.Month]
		if !ok {
			month = &monthTotal{revenue: decimal.Zero}
			byMonth[sale.Month] = month
		}
		month.units += sale.SalesCount
		month.revenue = month.revenue.Add(sale.Revenue)

		product, ok := byProduct[sale.ProductID]
		if !ok {
			product = &productTotal{
				ProductSales: usecase.ProductSales{
					ProductID: sale.ProductID,
					ModelName: sale.ModelName,
					Region:    sale.Region,
				},
				revenue: decimal.Zero,
			}
			byProduct[sale.ProductID] = product
		}
		product.Sales += sale.SalesCount
		product.revenue = product.revenue.Add(sale.Revenue)

		totalUnits += sale.SalesCount
		totalRevenue = totalRevenue.Add(sale.Revenue)
	}

	analytics := &usecase.Analytics{
		SalesByRegion: byRegion,
		SalesByMonth:  make([]usecase.MonthlySales, 0, len(byMonth)),
		TopProducts:   make([]usecase.ProductSales, 0, topProductsCount),
	}

	for month, total := range byMonth {
		analytics.SalesByMonth = append(analytics.SalesByMonth, usecase.MonthlySales{
			Month:   month,
			Sales:   total.units,
			Revenue: money(total.revenue),
		})
	}
	slices.SortFunc(analytics.SalesByMonth, func(a, b usecase.MonthlySales) int {
		return compareMonths(a.Month, b.Month)
	})

	ranked := make([]usecase.ProductSales, 0, len(byProduct))
	for _, total := range byProduct {
		total.Revenue = money(total.revenue)
		ranked = append(ranked, total.ProductSales)
	}
	slices.SortFunc(ranked, func(a, b usecase.ProductSales) int {
		if c := cmp.Compare(b.Sales, a.Sales); c != 0 {
			return c
		}
		if c := cmp.Compare(a.ModelName, b.ModelName); c != 0 {
			return c
		}

		return cmp.Compare(a.Region, b.Region)
	})
	analytics.TopProducts = append(analytics.TopProducts, ranked[:min(topProductsCount, len(ranked))]...)

	analytics.RevenueStats = usecase.RevenueStats{
		TotalRevenue:  money(totalRevenue),
		TotalUnits:    totalUnits,
		ProductCount:  len(products),
		MonthsCovered: len(byMonth),
	}
	if totalUnits > 0 {
		analytics.RevenueStats.AverageSellingPrice = money(totalRevenue.Div(decimal.NewFromInt(totalUnits)))
	}

	return analytics
}

func compareMonths(a, b entity.Month) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}

	return cmp.Compare(a.Month, b.Month)
}

// money rounds to cents for presentation.
func money(amount decimal.Decimal) float64 {
	return amount.Round(2).InexactFloat64()
}
