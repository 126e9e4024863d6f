package provisioning

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// Límites de los campos de producto.
const (
	MaxNameLength        = 255
	MaxSKULength         = 50
	MaxDescriptionLength = 2000
	MaxDimensionsLength  = 100

	// Columnas INT de umbral y cantidad.
	MaxQuantity = math.MaxInt32
)

// Máximos de las columnas NUMERIC(12,2) de precio y costo y NUMERIC(10,3) de peso.
var (
	MaxPrice  = decimal.RequireFromString("9999999999.99")
	MaxWeight = decimal.RequireFromString("9999999.999")
)

// normalizeInput recorta espacios y normaliza a NFC los textos, para que la longitud se
// cuente en caracteres y dos SKUs visualmente iguales no difieran en bytes.
func normalizeInput(in dto.CreateProductRequest) dto.CreateProductRequest {
	in.Name = norm.NFC.String(strings.TrimSpace(in.Name))
	in.SKU = norm.NFC.String(strings.TrimSpace(in.SKU))
	in.Description = norm.NFC.String(strings.TrimSpace(in.Description))
	in.Dimensions = strings.TrimSpace(in.Dimensions)
	in.WarehouseID = strings.TrimSpace(in.WarehouseID)
	return in
}

// ValidateCreateProduct valida tipos y rangos de todos los campos.
// Devuelve un *domain.ValidationError con un mensaje por campo violado, o nil.
func ValidateCreateProduct(in dto.CreateProductRequest) error {
	var fields []domain.FieldError
	add := func(field, msg string) {
		fields = append(fields, domain.FieldError{Field: field, Message: msg})
	}

	switch n := utf8.RuneCountInString(in.Name); {
	case n == 0:
		add("name", "es requerido")
	case n > MaxNameLength:
		add("name", "no puede superar 255 caracteres")
	}

	switch n := utf8.RuneCountInString(in.SKU); {
	case n == 0:
		add("sku", "es requerido")
	case n > MaxSKULength:
		add("sku", "no puede superar 50 caracteres")
	}

	if utf8.RuneCountInString(in.Description) > MaxDescriptionLength {
		add("description", "no puede superar 2000 caracteres")
	}
	if utf8.RuneCountInString(in.Dimensions) > MaxDimensionsLength {
		add("dimensions", "no puede superar 100 caracteres")
	}

	if in.Price == nil {
		add("price", "es requerido")
	} else if !in.Price.GreaterThan(decimal.Zero) {
		add("price", "debe ser mayor que 0")
	} else if in.Price.GreaterThan(MaxPrice) {
		add("price", "no puede superar "+MaxPrice.String())
	} else if !hasAtMostNDecimals(*in.Price, 2) {
		add("price", "admite como máximo 2 decimales")
	}

	if in.Cost != nil {
		switch {
		case in.Cost.IsNegative():
			add("cost", "no puede ser negativo")
		case in.Cost.GreaterThan(MaxPrice):
			add("cost", "no puede superar "+MaxPrice.String())
		case !hasAtMostNDecimals(*in.Cost, 2):
			add("cost", "admite como máximo 2 decimales")
		}
	}
	if in.Weight != nil {
		switch {
		case in.Weight.IsNegative():
			add("weight", "no puede ser negativo")
		case in.Weight.GreaterThan(MaxWeight):
			add("weight", "no puede superar "+MaxWeight.String())
		case !hasAtMostNDecimals(*in.Weight, 3):
			add("weight", "admite como máximo 3 decimales")
		}
	}

	if in.CategoryID != nil && !isUUID(*in.CategoryID) {
		add("category_id", "debe ser un UUID válido")
	}
	if in.SupplierID != nil && !isUUID(*in.SupplierID) {
		add("supplier_id", "debe ser un UUID válido")
	}

	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			add("low_stock_threshold", "no puede ser negativo")
		} else if *in.LowStockThreshold > MaxQuantity {
			add("low_stock_threshold", "no puede superar 2147483647")
		}
	}

	if in.WarehouseID == "" {
		add("warehouse_id", "es requerido")
	} else if !isUUID(in.WarehouseID) {
		add("warehouse_id", "debe ser un UUID válido")
	}

	if in.InitialQuantity == nil {
		add("initial_quantity", "es requerido")
	} else if *in.InitialQuantity < 0 {
		add("initial_quantity", "no puede ser negativo")
	} else if *in.InitialQuantity > MaxQuantity {
		add("initial_quantity", "no puede superar 2147483647")
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

func hasAtMostNDecimals(d decimal.Decimal, n int32) bool {
	return d.Equal(d.Truncate(n))
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
