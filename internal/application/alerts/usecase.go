// Package alerts contiene el motor de alertas de stock bajo: combina inventario, umbrales,
// ventas recientes y proveedores para producir la lista paginada y el resumen por categoría.
package alerts

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/internal/domain/stock"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// LowStockUseCase calcula alertas de stock bajo para una empresa.
// Fuente de datos: AlertRepository (solo lectura). Nunca devuelve resultados parciales.
type LowStockUseCase struct {
	alertRepo   repository.AlertRepository
	companyRepo repository.CompanyRepository
	cache       Cache // opcional
	log         *logger.Logger
	now         func() time.Time
}

// NewLowStockUseCase construye el caso de uso. cache puede ser nil.
func NewLowStockUseCase(
	alertRepo repository.AlertRepository,
	companyRepo repository.CompanyRepository,
	cache Cache,
	log *logger.Logger,
) *LowStockUseCase {
	return &LowStockUseCase{
		alertRepo:   alertRepo,
		companyRepo: companyRepo,
		cache:       cache,
		log:         log,
		now:         time.Now,
	}
}

// ListAlerts devuelve la página solicitada de alertas y el total de alertas que califican.
func (uc *LowStockUseCase) ListAlerts(ctx context.Context, companyID string, page dto.PageRequest) (*dto.LowStockAlertsResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	key := fmt.Sprintf("alerts:list:%s:%s:%d:%d", companyID, now.Format(time.DateOnly), page.Page, page.PageSize)

	var cached dto.LowStockAlertsResponse
	if uc.cacheGet(ctx, key, &cached) {
		if err := uc.ensureCompany(ctx, companyID); err != nil {
			return nil, err
		}
		return &cached, nil
	}

	all, err := uc.load(ctx, companyID, now)
	if err != nil {
		return nil, err
	}

	out := &dto.LowStockAlertsResponse{
		Alerts:      paginate(all, page),
		TotalAlerts: len(all),
		Pagination:  dto.NewPageResponse(page, len(all)),
	}
	uc.cacheSet(ctx, key, out)
	return out, nil
}

// Summary devuelve el resumen de alertas agrupado por categoría, de mayor a menor número de alertas.
func (uc *LowStockUseCase) Summary(ctx context.Context, companyID string) (*dto.LowStockSummaryResponse, error) {
	now := uc.now().UTC()
	key := fmt.Sprintf("alerts:summary:%s:%s", companyID, now.Format(time.DateOnly))

	var cached dto.LowStockSummaryResponse
	if uc.cacheGet(ctx, key, &cached) {
		if err := uc.ensureCompany(ctx, companyID); err != nil {
			return nil, err
		}
		return &cached, nil
	}

	all, err := uc.load(ctx, companyID, now)
	if err != nil {
		return nil, err
	}

	summary := summarize(all)
	out := &dto.LowStockSummaryResponse{Summary: summary, TotalCategories: len(summary)}
	uc.cacheSet(ctx, key, out)
	return out, nil
}

// load verifica la empresa y obtiene los candidatos en paralelo, luego evalúa.
func (uc *LowStockUseCase) load(ctx context.Context, companyID string, now time.Time) ([]evaluatedAlert, error) {
	var (
		company    *entity.Company
		candidates []repository.AlertCandidate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := uc.companyRepo.GetByID(gctx, companyID)
		if err != nil {
			return fmt.Errorf("alertas: empresa: %w", err)
		}
		company = c
		return nil
	})
	g.Go(func() error {
		list, err := uc.alertRepo.ListLowStockCandidates(gctx, companyID, stock.WindowStart(now), stock.WindowEnd(now), stock.DefaultThreshold)
		if err != nil {
			return fmt.Errorf("alertas: candidatos: %w", err)
		}
		candidates = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("calcular alertas", err)
	}

	if err := activeCompany(company); err != nil {
		return nil, err
	}
	return evaluate(candidates), nil
}

// ensureCompany verifica la empresa cuando la respuesta sale de caché: una empresa
// desactivada dentro del TTL deja de recibir alertas.
func (uc *LowStockUseCase) ensureCompany(ctx context.Context, companyID string) error {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return domain.NewInternalError("calcular alertas", fmt.Errorf("alertas: empresa: %w", err))
	}
	return activeCompany(company)
}

func activeCompany(company *entity.Company) error {
	if company == nil || !company.IsActive {
		return domain.NewNotFoundError("company", "empresa no encontrada")
	}
	return nil
}

func (uc *LowStockUseCase) cacheGet(ctx context.Context, key string, dst any) bool {
	if uc.cache == nil {
		return false
	}
	ok, err := uc.cache.Get(ctx, key, dst)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("lectura de caché de alertas")
		return false
	}
	return ok
}

func (uc *LowStockUseCase) cacheSet(ctx context.Context, key string, value any) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, key, value); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("escritura de caché de alertas")
	}
}
