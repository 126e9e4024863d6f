package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

const companyID = "11111111-1111-1111-1111-111111111111"

type fakeAlertRepo struct {
	candidates []repository.AlertCandidate
	err        error
	calls      int
	since      time.Time
	until      time.Time
	threshold  int
	mu         sync.Mutex
}

func (f *fakeAlertRepo) ListLowStockCandidates(_ context.Context, _ string, since, until time.Time, defaultThreshold int) ([]repository.AlertCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.since = since
	f.until = until
	f.threshold = defaultThreshold
	return f.candidates, f.err
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	err       error
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.companies[id], nil
}

// memCache guarda JSON como lo haría Redis.
type memCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
}

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memCache) Set(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func newTestUseCase(repo *fakeAlertRepo, cache Cache) *LowStockUseCase {
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		companyID: {ID: companyID, Name: "Acme", IsActive: true},
	}}
	uc := NewLowStockUseCase(repo, companies, cache, logger.Nop())
	uc.now = func() time.Time { return time.Date(2026, 3, 31, 15, 4, 5, 0, time.UTC) }
	return uc
}

func lowStockCandidates(n int) []repository.AlertCandidate {
	out := make([]repository.AlertCandidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, candidate(fmt.Sprintf("p%02d", i), i%10, 0))
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// ListAlerts
// ──────────────────────────────────────────────────────────────────────────────

func TestListAlerts_Paginacion(t *testing.T) {
	repo := &fakeAlertRepo{candidates: lowStockCandidates(25)}
	uc := newTestUseCase(repo, nil)

	out, err := uc.ListAlerts(context.Background(), companyID, dto.PageRequest{Page: 2, PageSize: 10})
	require.NoError(t, err)

	assert.Len(t, out.Alerts, 10)
	assert.Equal(t, 25, out.TotalAlerts)
	assert.Equal(t, dto.PageResponse{Page: 2, PageSize: 10, TotalCount: 25, TotalPages: 3}, out.Pagination)
	for i := 1; i < len(out.Alerts); i++ {
		assert.LessOrEqual(t, out.Alerts[i-1].CurrentStock, out.Alerts[i].CurrentStock)
	}
}

func TestListAlerts_VentanaYUmbralPorDefecto(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := newTestUseCase(repo, nil)

	out, err := uc.ListAlerts(context.Background(), companyID, dto.PageRequest{Page: 1, PageSize: 100})
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)
	assert.NotNil(t, out.Alerts)
	assert.Equal(t, 0, out.Pagination.TotalPages)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), repo.since)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), repo.until)
	assert.Equal(t, 10, repo.threshold)
}

func TestListAlerts_VentanaYClaveEnUTC(t *testing.T) {
	repo := &fakeAlertRepo{candidates: lowStockCandidates(1)}
	cache := &memCache{data: map[string][]byte{}}
	uc := newTestUseCase(repo, cache)
	// 22:00 en Bogotá es 03:00 del día siguiente en UTC.
	uc.now = func() time.Time { return time.Date(2026, 3, 31, 22, 0, 0, 0, time.FixedZone("COT", -5*60*60)) }

	_, err := uc.ListAlerts(context.Background(), companyID, dto.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), repo.since)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), repo.until)
	assert.Contains(t, cache.data, "alerts:list:"+companyID+":2026-04-01:1:10")
}

func TestListAlerts_PaginacionInvalida(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := newTestUseCase(repo, nil)

	_, err := uc.ListAlerts(context.Background(), companyID, dto.PageRequest{Page: 0, PageSize: 5000})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 2)
	assert.Equal(t, 0, repo.calls)
}

func TestListAlerts_EmpresaInexistenteOInactiva(t *testing.T) {
	repo := &fakeAlertRepo{candidates: lowStockCandidates(3)}
	uc := newTestUseCase(repo, nil)
	uc.companyRepo = &fakeCompanyRepo{companies: map[string]*entity.Company{
		"inactiva": {ID: "inactiva", IsActive: false},
	}}

	for _, id := range []string{"inactiva", "no-existe"} {
		_, err := uc.ListAlerts(context.Background(), id, dto.PageRequest{Page: 1, PageSize: 10})
		var nfErr *domain.NotFoundError
		require.ErrorAs(t, err, &nfErr, id)
	}
}

func TestListAlerts_FalloDeRepositorioEsInterno(t *testing.T) {
	repo := &fakeAlertRepo{err: errors.New("connection reset")}
	uc := newTestUseCase(repo, nil)

	out, err := uc.ListAlerts(context.Background(), companyID, dto.PageRequest{Page: 1, PageSize: 10})
	assert.Nil(t, out)
	var iErr *domain.InternalError
	require.ErrorAs(t, err, &iErr)
	assert.False(t, domain.IsClientError(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Caché
// ──────────────────────────────────────────────────────────────────────────────

func TestListAlerts_UsaCache(t *testing.T) {
	repo := &fakeAlertRepo{candidates: lowStockCandidates(5)}
	cache := &memCache{data: map[string][]byte{}}
	uc := newTestUseCase(repo, cache)
	page := dto.PageRequest{Page: 1, PageSize: 10}

	first, err := uc.ListAlerts(context.Background(), companyID, page)
	require.NoError(t, err)
	second, err := uc.ListAlerts(context.Background(), companyID, page)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first.TotalAlerts, second.TotalAlerts)
	assert.Equal(t, first.Alerts, second.Alerts)
}

func TestListAlerts_CacheNoOcultaEmpresaDesactivada(t *testing.T) {
	repo := &fakeAlertRepo{candidates: lowStockCandidates(5)}
	cache := &memCache{data: map[string][]byte{}}
	uc := newTestUseCase(repo, cache)
	company := &entity.Company{ID: companyID, Name: "Acme", IsActive: true}
	uc.companyRepo = &fakeCompanyRepo{companies: map[string]*entity.Company{companyID: company}}
	page := dto.PageRequest{Page: 1, PageSize: 10}

	_, err := uc.ListAlerts(context.Background(), companyID, page)
	require.NoError(t, err)
	_, err = uc.Summary(context.Background(), companyID)
	require.NoError(t, err)

	company.IsActive = false

	_, err = uc.ListAlerts(context.Background(), companyID, page)
	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	_, err = uc.Summary(context.Background(), companyID)
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, 2, repo.calls)
}

func TestListAlerts_FalloDeCacheNoRompe(t *testing.T) {
	repo := &fakeAlertRepo{candidates: lowStockCandidates(5)}
	cache := &memCache{data: map[string][]byte{}, getErr: errors.New("redis down")}
	uc := newTestUseCase(repo, cache)

	out, err := uc.ListAlerts(context.Background(), companyID, dto.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, out.TotalAlerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_OrdenPorNumeroDeAlertas(t *testing.T) {
	var cands []repository.AlertCandidate
	for i, qty := range []int{0, 3, 8} {
		c := candidate(fmt.Sprintf("e%d", i), qty, 0)
		c.CategoryName = "Electronics"
		cands = append(cands, c)
	}
	tool := candidate("t1", 1, 0)
	tool.CategoryName = "Tools"
	cands = append(cands, tool)

	uc := newTestUseCase(&fakeAlertRepo{candidates: cands}, nil)
	out, err := uc.Summary(context.Background(), companyID)
	require.NoError(t, err)

	require.Equal(t, 2, out.TotalCategories)
	assert.Equal(t, "Electronics", out.Summary[0].Category)
	assert.Equal(t, "3.67", out.Summary[0].AvgStockLevel.StringFixed(2))
	assert.Equal(t, "Tools", out.Summary[1].Category)
	assert.Equal(t, 1, out.Summary[1].Critical)
}

func TestSummary_SinAlertas(t *testing.T) {
	uc := newTestUseCase(&fakeAlertRepo{}, nil)
	out, err := uc.Summary(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalCategories)
	assert.NotNil(t, out.Summary)
}
