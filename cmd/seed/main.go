// seed carga datos de demostración: empresas, bodegas, catálogo, productos con stock inicial
// y ventas de los últimos días. Los productos se crean con el mismo caso de uso que la API.
//
// Uso: go run ./cmd/seed [-sales ventas.csv] [-latin1]
// El CSV de ventas tiene columnas sku,bodega,dias_atras,cantidad. Sin -sales se usan
// las ventas incluidas. Con -latin1 el archivo se decodifica como ISO-8859-1.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/provisioning"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-alerts-api/pkg/config"
	"github.com/jhoicas/stock-alerts-api/pkg/jwt"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

const (
	acmeID    = "0b6f3c1e-6a51-4c55-9a47-1f0e6a3d2c01"
	globexID  = "0b6f3c1e-6a51-4c55-9a47-1f0e6a3d2c02"
	seedUser  = "0b6f3c1e-6a51-4c55-9a47-1f0e6a3d2c99"
	whBogota  = "5d1c8a7e-2b3f-4e0a-8c6d-000000000001"
	whMedell  = "5d1c8a7e-2b3f-4e0a-8c6d-000000000002"
	whCali    = "5d1c8a7e-2b3f-4e0a-8c6d-000000000003"
	whGlobex  = "5d1c8a7e-2b3f-4e0a-8c6d-000000000004"
	catElec   = "9e2a4b6c-1d3f-4a5b-8c7d-000000000001"
	catTools  = "9e2a4b6c-1d3f-4a5b-8c7d-000000000002"
	catFood   = "9e2a4b6c-1d3f-4a5b-8c7d-000000000003"
	supAcme   = "7c3e5a1b-9d2f-4b6a-8e0c-000000000001"
	supLegacy = "7c3e5a1b-9d2f-4b6a-8e0c-000000000002"
)

// Ventas incluidas. Café solo vendió hace 45 días: queda fuera de la ventana.
const defaultSales = `sku,bodega,dias_atras,cantidad
ELEC-HDMI-2M,Bogotá Central,1,4
ELEC-HDMI-2M,Bogotá Central,3,2
ELEC-MOUSE-01,Bogotá Central,2,3
ELEC-MOUSE-01,Medellín Norte,5,1
TOOL-DRILL-18V,Bogotá Central,7,2
TOOL-HAMMER-16,Bogotá Central,1,6
FOOD-RICE-5KG,Medellín Norte,1,5
FOOD-RICE-5KG,Medellín Norte,2,4
FOOD-COFFEE-500,Bogotá Central,45,10
`

type seedProduct struct {
	sku, name, price string
	category         *string
	supplier         *string
	threshold        *int
	warehouse        string
	qty              int
}

func main() {
	salesPath := flag.String("sales", "", "CSV de ventas (sku,bodega,dias_atras,cantidad)")
	latin1 := flag.Bool("latin1", false, "decodificar el CSV como ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	if err := seedReference(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("datos de referencia")
	}

	uc := provisioning.NewCreateProductUseCase(postgres.NewUnitOfWork(pool), log)
	skus := make(map[string]string)
	for _, p := range demoProducts() {
		id, err := createProduct(ctx, pool, uc, p)
		if err != nil {
			log.Fatal().Err(err).Str("sku", p.sku).Msg("crear producto")
		}
		skus[p.sku] = id
	}

	// El proveedor heredado se desactiva después de vincularlo: sus alertas salen sin proveedor.
	if _, err := pool.Exec(ctx, `UPDATE suppliers SET is_active = FALSE WHERE id = $1`, supLegacy); err != nil {
		log.Fatal().Err(err).Msg("desactivar proveedor")
	}

	var src io.Reader = strings.NewReader(defaultSales)
	if *salesPath != "" {
		f, err := os.Open(*salesPath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir CSV de ventas")
		}
		defer f.Close()
		src = f
		if *latin1 {
			src = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
		}
	}
	n, err := loadSales(ctx, pool, src, skus, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("cargar ventas")
	}
	log.Info().Int("products", len(skus)).Int("sales_facts", n).Msg("datos de demostración cargados")

	for _, role := range []string{entity.RoleAdmin, entity.RoleManager, entity.RoleStaff} {
		tok, err := jwt.Generate(cfg.JWT.Secret, seedUser, acmeID, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			log.Warn().Err(err).Msg("no se pudo emitir token de prueba (¿JWT_SECRET vacío?)")
			break
		}
		fmt.Printf("%-8s Bearer %s\n", role, tok)
	}
}

func seedReference(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO companies (id, name) VALUES ($1, 'Acme Distribución'), ($2, 'Globex') ON CONFLICT (id) DO NOTHING`,
			[]any{acmeID, globexID}},
		{`INSERT INTO warehouses (id, company_id, name, address, is_active) VALUES
			($1, $5, 'Bogotá Central', 'Cra 7 # 12-40', TRUE),
			($2, $5, 'Medellín Norte', 'Cl 50 # 45-10', TRUE),
			($3, $5, 'Cali Sur', 'Av 6N # 23-15', FALSE),
			($4, $6, 'Globex Main', '', TRUE)
			ON CONFLICT (id) DO NOTHING`,
			[]any{whBogota, whMedell, whCali, whGlobex, acmeID, globexID}},
		{`INSERT INTO categories (id, name, default_threshold) VALUES
			($1, 'Electronics', 5), ($2, 'Tools', NULL), ($3, 'Food', 20)
			ON CONFLICT (id) DO NOTHING`,
			[]any{catElec, catTools, catFood}},
		{`INSERT INTO suppliers (id, name, contact_email, lead_time_days, is_active) VALUES
			($1, 'Acme Supply', 'pedidos@acmesupply.test', 7, TRUE),
			($2, 'Legacy Foods', 'ventas@legacyfoods.test', 14, TRUE)
			ON CONFLICT (id) DO UPDATE SET is_active = TRUE`,
			[]any{supAcme, supLegacy}},
	}
	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s.sql, s.args...); err != nil {
			return err
		}
	}
	return nil
}

func demoProducts() []seedProduct {
	ptr := func(s string) *string { return &s }
	n := func(v int) *int { return &v }
	return []seedProduct{
		// override de producto: 12 <= 15
		{sku: "ELEC-HDMI-2M", name: "Cable HDMI 2m", price: "8.90", category: ptr(catElec), supplier: ptr(supAcme), threshold: n(15), warehouse: whBogota, qty: 12},
		// umbral de categoría: 3 <= 5
		{sku: "ELEC-MOUSE-01", name: "Mouse inalámbrico", price: "15.00", category: ptr(catElec), supplier: ptr(supAcme), warehouse: whBogota, qty: 3},
		// categoría sin umbral: cae al valor por defecto, agotado
		{sku: "TOOL-DRILL-18V", name: "Taladro 18V", price: "120.00", category: ptr(catTools), supplier: ptr(supAcme), warehouse: whBogota, qty: 0},
		// sin categoría y con stock alto: no alerta
		{sku: "TOOL-HAMMER-16", name: "Martillo 16oz", price: "22.50", warehouse: whBogota, qty: 40},
		// proveedor que se desactiva después: alerta sin proveedor
		{sku: "FOOD-RICE-5KG", name: "Arroz 5kg", price: "9.75", category: ptr(catFood), supplier: ptr(supLegacy), warehouse: whMedell, qty: 18},
		// stock bajo pero sin ventas recientes
		{sku: "FOOD-COFFEE-500", name: "Café 500g", price: "11.20", category: ptr(catFood), warehouse: whBogota, qty: 5},
	}
}

// createProduct usa el caso de uso de alta. Si el SKU ya existe (seed repetido) devuelve el id existente.
func createProduct(ctx context.Context, pool *pgxpool.Pool, uc *provisioning.CreateProductUseCase, p seedProduct) (string, error) {
	price := decimal.RequireFromString(p.price)
	qty := p.qty
	out, err := uc.Create(ctx, acmeID, seedUser, dto.CreateProductRequest{
		Name:              p.name,
		SKU:               p.sku,
		Price:             &price,
		CategoryID:        p.category,
		SupplierID:        p.supplier,
		LowStockThreshold: p.threshold,
		WarehouseID:       p.warehouse,
		InitialQuantity:   &qty,
	})
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		existing, err := postgres.NewProductRepository(pool).GetBySKU(ctx, p.sku)
		if err != nil || existing == nil {
			return "", fmt.Errorf("SKU %s en conflicto y no encontrado: %v", p.sku, err)
		}
		return existing.ID, nil
	}
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

// loadSales reemplaza las ventas de los productos sembrados con las del CSV.
func loadSales(ctx context.Context, pool *pgxpool.Pool, src io.Reader, skus map[string]string, now time.Time) (int, error) {
	warehouses := map[string]string{
		"Bogotá Central": whBogota,
		"Medellín Norte": whMedell,
		"Cali Sur":       whCali,
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = 4
	rows, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("leer CSV: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make([]string, 0, len(skus))
	for _, id := range skus {
		ids = append(ids, id)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sales_facts WHERE product_id = ANY($1::uuid[])`, ids); err != nil {
		return 0, fmt.Errorf("limpiar ventas: %w", err)
	}

	inserted := 0
	for i, row := range rows {
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "sku") {
			continue
		}
		productID, ok := skus[strings.TrimSpace(row[0])]
		if !ok {
			return 0, fmt.Errorf("fila %d: SKU desconocido %q", i+1, row[0])
		}
		warehouseID, ok := warehouses[strings.TrimSpace(row[1])]
		if !ok {
			return 0, fmt.Errorf("fila %d: bodega desconocida %q", i+1, row[1])
		}
		daysAgo, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return 0, fmt.Errorf("fila %d: dias_atras: %w", i+1, err)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return 0, fmt.Errorf("fila %d: cantidad: %w", i+1, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO sales_facts (product_id, warehouse_id, sale_date, quantity_sold) VALUES ($1, $2, $3::date, $4)`,
			productID, warehouseID, now.AddDate(0, 0, -daysAgo), qty,
		); err != nil {
			return 0, fmt.Errorf("fila %d: %w", i+1, err)
		}
		inserted++
	}
	return inserted, tx.Commit(ctx)
}
