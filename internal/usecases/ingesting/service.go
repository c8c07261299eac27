package ingesting

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/returns-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"github.com/vfg2006/returns-insights-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_ingester.go -package=mocks

// Upload é um arquivo recebido para análise
type Upload struct {
	Name   string
	Reader io.Reader
}

// Ingester define a leitura das planilhas de vendas e devoluções
type Ingester interface {
	// Load lê as duas planilhas em paralelo e monta o dataset tipado.
	// Qualquer falha aborta a leitura e nenhum dataset parcial é retornado.
	Load(ctx context.Context, sales Upload, returns Upload) (*domain.Dataset, error)
}

type opener func(name string, r io.Reader) (spreadsheet.Workbook, error)

type Service struct {
	open opener
	now  func() time.Time
}

func NewService() Ingester {
	return &Service{
		open: spreadsheet.Open,
		now:  time.Now,
	}
}

func (s *Service) Load(ctx context.Context, sales Upload, returns Upload) (*domain.Dataset, error) {
	logger := log.ForContext(ctx)
	startedAt := s.now()

	var (
		salesData   *salesTable
		returnsData *returnsTables
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		table, err := s.loadSales(gctx, sales)
		if err != nil {
			return err
		}
		salesData = table
		return nil
	})
	g.Go(func() error {
		tables, err := s.loadReturns(gctx, returns)
		if err != nil {
			return err
		}
		returnsData = tables
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("ingestão: falha ao ler planilhas")
		return nil, err
	}

	ds := &domain.Dataset{
		Sales:           salesData.records,
		ReturnsA:        returnsData.channelA.records,
		ReturnsB:        returnsData.channelB.records,
		SalesColumns:    salesData.columns,
		ReturnColumnsA:  returnsData.channelA.columns,
		ReturnColumnsB:  returnsData.channelB.columns,
		SalesRaw:        salesData.raw,
		ReturnsRawA:     returnsData.channelA.raw,
		ReturnsRawB:     returnsData.channelB.raw,
		ReferenceDate:   referenceDate(salesData.records, startedAt),
		LoadedAt:        startedAt,
		SalesFileName:   sales.Name,
		ReturnsFileName: returns.Name,
	}

	logger.WithFields(log.Fields{
		"file_sales":     sales.Name,
		"file_returns":   returns.Name,
		"rows_sales":     len(ds.Sales),
		"rows_returns_a": len(ds.ReturnsA),
		"rows_returns_b": len(ds.ReturnsB),
		"reference_date": ds.ReferenceDate.Format(time.DateOnly),
	}).Info("ingestão: planilhas carregadas")

	return ds, nil
}

func (s *Service) loadSales(ctx context.Context, up Upload) (*salesTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wb, err := s.open(up.Name, up.Reader)
	if err != nil {
		return nil, NewParseError(ErrSalesFile, openErrorCode(err, apiErrors.ErrParseSales), up.Name, "não foi possível abrir o arquivo", err)
	}
	defer wb.Close()

	table, err := readSales(wb)
	if err != nil {
		return nil, NewParseError(ErrSalesFile, apiErrors.ErrParseSales, up.Name, "", err)
	}

	return table, nil
}

func (s *Service) loadReturns(ctx context.Context, up Upload) (*returnsTables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wb, err := s.open(up.Name, up.Reader)
	if err != nil {
		return nil, NewParseError(ErrReturnsFile, openErrorCode(err, apiErrors.ErrParseReturns), up.Name, "não foi possível abrir o arquivo", err)
	}
	defer wb.Close()

	tables, err := readReturns(wb)
	if err != nil {
		return nil, NewParseError(ErrReturnsFile, apiErrors.ErrParseReturns, up.Name, "", err)
	}

	return tables, nil
}

func openErrorCode(err error, fallback string) string {
	if errors.Is(err, spreadsheet.ErrUnsupportedFormat) {
		return apiErrors.ErrUnsupportedFile
	}
	return fallback
}

// referenceDate é a maior data de venda; sem datas válidas usa o momento da carga
func referenceDate(sales []domain.SaleRecord, fallback time.Time) time.Time {
	var latest *time.Time
	for i := range sales {
		d := sales[i].SaleDate
		if d != nil && (latest == nil || d.After(*latest)) {
			latest = d
		}
	}
	if latest == nil {
		return fallback
	}
	return *latest
}
