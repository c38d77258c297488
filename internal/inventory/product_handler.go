package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"eczane-backend/internal/audit"
	"eczane-backend/internal/auth"
	"eczane-backend/internal/cache"
	"eczane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	productListCacheKey = "products:list"
	productCacheTTL     = 5 * time.Minute
)

type CreateProductRequest struct {
	Name        string  `json:"name"`
	StockCode   string  `json:"stock_code"`
	Barcode     string  `json:"barcode"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	ShelfRow    string  `json:"shelf_row"`
	ShelfColumn string  `json:"shelf_column"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	StockCode   *string  `json:"stock_code"`
	Barcode     *string  `json:"barcode"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Brand       *string  `json:"brand"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	ShelfRow    *string  `json:"shelf_row"`
	ShelfColumn *string  `json:"shelf_column"`
}

// invalidateProductCache senkron çalışır: yanıt dönmeden önce silme
// tamamlanmış olmalı, yoksa eş zamanlı bir GET bayat listeyi TTL boyunca
// geri yazabilir.
func invalidateProductCache() {
	if cache.Client != nil {
		cache.Client.Del(context.Background(), productListCacheKey)
	}
}

// storeErr depo hatalarını HTTP'ye çevirir; ErrNotFound 404, bağlantı
// hataları 503 olur ki istemci "katalogda yok" ile "tekrar dene"yi ayırabilsin.
func storeErr(err error, notFoundMsg string) error {
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	}
	return fiber.NewError(fiber.StatusServiceUnavailable, "Veri deposuna ulaşılamadı, lütfen tekrar deneyin")
}

// GET /api/products (tüm authenticated kullanıcılar görebilir)
func ListProductsHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		// Önce cache'e bak
		if cache.Client != nil {
			if cached, err := cache.Client.Get(ctx, productListCacheKey).Result(); err == nil {
				var products []Product
				if json.Unmarshal([]byte(cached), &products) == nil {
					return c.JSON(products)
				}
			}
		}

		recs, err := store.List(ctx)
		if err != nil {
			return storeErr(err, "Ürünler listelenemedi")
		}

		products := make([]Product, 0, len(recs))
		for _, rec := range recs {
			products = append(products, Normalize(rec.ID, rec.Data))
		}

		if cache.Client != nil {
			if b, err := json.Marshal(products); err == nil {
				go cache.Client.Set(context.Background(), productListCacheKey, b, productCacheTTL)
			}
		}

		return c.JSON(products)
	}
}

// GET /api/products/resolve?code=XYZ
// Barkod, stok kodu veya doğrudan id kabul eder.
func ResolveProductHandler(resolver *Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.TrimSpace(c.Query("code"))
		if code == "" {
			return fiber.NewError(fiber.StatusBadRequest, "code parametresi zorunlu")
		}

		product, err := resolver.Resolve(c.UserContext(), code)
		if err != nil {
			return storeErr(err, "Aradığınız ürün bulunamadı")
		}

		return c.JSON(product)
	}
}

// GET /api/products/:id
func GetProductHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		rec, err := store.GetByID(c.UserContext(), uint(id))
		if err != nil {
			return storeErr(err, "Ürün bulunamadı")
		}

		product := Normalize(rec.ID, rec.Data)
		return c.JSON(product)
	}
}

// POST /api/products (sadece admin)
// Yeni kayıtlar her zaman İngilizce anahtarlarla yazılır; Türkçe anahtarlar
// yalnızca eski belgelerden gelir.
func CreateProductHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.StockCode = strings.TrimSpace(body.StockCode)
		body.Barcode = strings.TrimSpace(body.Barcode)

		if body.Name == "" || body.StockCode == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün adı ve stok kodu zorunlu")
		}
		if body.Quantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stok miktarı negatif olamaz")
		}

		if body.ShelfRow == "" {
			body.ShelfRow = "1"
		}
		if body.ShelfColumn == "" {
			body.ShelfColumn = "A"
		}

		data := map[string]any{
			KeyName:        body.Name,
			KeyStockCode:   body.StockCode,
			KeyBarcode:     body.Barcode,
			KeyQuantity:    body.Quantity,
			KeyPrice:       body.Price,
			KeyBrand:       body.Brand,
			KeyDescription: body.Description,
			KeyImageURL:    body.ImageURL,
			KeyShelfRow:    body.ShelfRow,
			KeyShelfColumn: body.ShelfColumn,
		}

		rec, err := store.Create(c.UserContext(), data)
		if err != nil {
			return storeErr(err, "Ürün oluşturulamadı")
		}

		product := Normalize(rec.ID, rec.Data)

		userID, email, _ := auth.ActorFromContext(c)
		if err := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    email,
			EntityType:  "product",
			EntityID:    rec.ID,
			Action:      models.AuditActionCreate,
			Description: "Ürün oluşturuldu: " + product.Name,
			After:       product,
		}); err != nil {
			log.Printf("Audit log yazılamadı: %v", err)
		}

		invalidateProductCache()

		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// PUT /api/products/:id (sadece admin)
// Güncellenen her alan belgede zaten var olan dialect anahtar(lar)ına yazılır;
// kayıt hangi dialect ile oluşturulduysa o dialect'te kalır.
func UpdateProductHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		rec, err := store.GetByID(c.UserContext(), uint(id))
		if err != nil {
			return storeErr(err, "Ürün bulunamadı")
		}
		before := Normalize(rec.ID, rec.Data)

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		updates := make(map[string]any)

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Ürün adı boş olamaz")
			}
			dialectUpdateField(rec.Data, KeyName, KeyNameTR, name, updates)
		}
		if body.StockCode != nil {
			stockCode := strings.TrimSpace(*body.StockCode)
			if stockCode == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Stok kodu boş olamaz")
			}
			dialectUpdateField(rec.Data, KeyStockCode, KeyStockCodeTR, stockCode, updates)
		}
		if body.Barcode != nil {
			dialectUpdateField(rec.Data, KeyBarcode, KeyBarcodeTR, strings.TrimSpace(*body.Barcode), updates)
		}
		if body.Quantity != nil {
			if *body.Quantity < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Stok miktarı negatif olamaz")
			}
			dialectUpdateField(rec.Data, KeyQuantity, KeyQuantityTR, *body.Quantity, updates)
		}
		if body.Price != nil {
			dialectUpdateField(rec.Data, KeyPrice, KeyPriceTR, *body.Price, updates)
		}
		if body.Brand != nil {
			dialectUpdateField(rec.Data, KeyBrand, KeyBrandTR, *body.Brand, updates)
		}
		if body.Description != nil {
			dialectUpdateField(rec.Data, KeyDescription, KeyDescriptionTR, *body.Description, updates)
		}
		if body.ImageURL != nil {
			dialectUpdateField(rec.Data, KeyImageURL, KeyImageURLTR, *body.ImageURL, updates)
		}
		if body.ShelfRow != nil {
			updates[KeyShelfRow] = *body.ShelfRow
		}
		if body.ShelfColumn != nil {
			updates[KeyShelfColumn] = *body.ShelfColumn
		}

		if len(updates) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Güncellenecek alan yok")
		}

		if err := store.UpdateFields(c.UserContext(), uint(id), updates); err != nil {
			return storeErr(err, "Ürün bulunamadı")
		}

		updated, err := store.GetByID(c.UserContext(), uint(id))
		if err != nil {
			return storeErr(err, "Ürün bulunamadı")
		}
		after := Normalize(updated.ID, updated.Data)

		userID, email, _ := auth.ActorFromContext(c)
		if err := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    email,
			EntityType:  "product",
			EntityID:    updated.ID,
			Action:      models.AuditActionUpdate,
			Description: "Ürün güncellendi: " + after.Name,
			Before:      before,
			After:       after,
		}); err != nil {
			log.Printf("Audit log yazılamadı: %v", err)
		}

		invalidateProductCache()

		return c.JSON(after)
	}
}

// DELETE /api/products/:id (sadece admin)
// Satış kayıtları snapshot taşıdığı için ürün silinse de geçmiş bozulmaz.
func DeleteProductHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		rec, err := store.GetByID(c.UserContext(), uint(id))
		if err != nil {
			return storeErr(err, "Ürün bulunamadı")
		}
		before := Normalize(rec.ID, rec.Data)

		if err := store.Delete(c.UserContext(), uint(id)); err != nil {
			return storeErr(err, "Ürün bulunamadı")
		}

		userID, email, _ := auth.ActorFromContext(c)
		if err := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    email,
			EntityType:  "product",
			EntityID:    uint(id),
			Action:      models.AuditActionDelete,
			Description: "Ürün silindi: " + before.Name,
			Before:      before,
		}); err != nil {
			log.Printf("Audit log yazılamadı: %v", err)
		}

		invalidateProductCache()

		return c.SendStatus(fiber.StatusNoContent)
	}
}
