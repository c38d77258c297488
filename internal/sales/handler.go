package sales

import (
	"errors"
	"log"
	"strings"
	"time"

	"eczane-backend/internal/audit"
	"eczane-backend/internal/auth"
	"eczane-backend/internal/inventory"
	"eczane-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DispenseRequest struct {
	Code               string `json:"code"`
	CustomerName       string `json:"customer_name"`
	CustomerNationalID string `json:"customer_national_id"`
	CustomerPhone      string `json:"customer_phone"`
	Nonce              string `json:"nonce"`
}

// POST /api/dispense
// Kod çözümlenir, müşteri bilgileri doğrulanır ve teslim işlemi yürütülür.
// Executor stok ön koşulunu burada ne doğrulanırsa doğrulansın kendisi
// yeniden kontrol eder.
func DispenseHandler(resolver *inventory.Resolver, exec *Executor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DispenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Code = strings.TrimSpace(body.Code)
		body.CustomerName = strings.TrimSpace(body.CustomerName)
		body.CustomerNationalID = strings.TrimSpace(body.CustomerNationalID)
		body.CustomerPhone = strings.TrimSpace(body.CustomerPhone)

		if body.Code == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Barkod veya stok kodu zorunlu")
		}
		if body.CustomerName == "" || body.CustomerNationalID == "" || body.CustomerPhone == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri ad soyad, TC kimlik no ve telefon zorunlu")
		}
		if len(body.CustomerNationalID) > 11 {
			return fiber.NewError(fiber.StatusBadRequest, "TC kimlik no en fazla 11 karakter olabilir")
		}

		product, err := resolver.Resolve(c.UserContext(), body.Code)
		if err != nil {
			if errors.Is(err, inventory.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Aradığınız ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusServiceUnavailable, "Veri deposuna ulaşılamadı, lütfen tekrar deneyin")
		}

		userID, email, err := auth.ActorFromContext(c)
		if err != nil {
			return err
		}

		customer := Customer{
			Name:       body.CustomerName,
			NationalID: body.CustomerNationalID,
			Phone:      body.CustomerPhone,
		}

		sale, err := exec.Dispense(c.UserContext(), product, customer, Actor{ID: userID, Email: email}, body.Nonce)
		if err != nil {
			switch {
			case errors.Is(err, ErrOutOfStock):
				return fiber.NewError(fiber.StatusConflict, "Ürün stokta yok")
			case errors.Is(err, ErrPartialWrite):
				// Satış kaydı var ama stok düşmedi; istemci tekrar DENEMEMELİ
				log.Printf("Stok düşümü başarısız (sale_id=%d, product_id=%d): %v", sale.ID, product.ID, err)
				return fiber.NewError(fiber.StatusInternalServerError,
					"Satış kaydedildi ancak stok güncellenemedi. Lütfen işlemi TEKRARLAMAYIN, stok kaydını manuel kontrol edin.")
			case errors.Is(err, inventory.ErrStoreUnavailable):
				return fiber.NewError(fiber.StatusServiceUnavailable, "Veri deposuna ulaşılamadı, lütfen tekrar deneyin")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Teslim işlemi tamamlanamadı")
			}
		}

		if err := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    email,
			EntityType:  "sale",
			EntityID:    sale.ID,
			Action:      models.AuditActionDispense,
			Description: "Ürün teslim edildi: " + sale.ProductName,
			After:       sale,
		}); err != nil {
			log.Printf("Audit log yazılamadı: %v", err)
		}

		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// GET /api/sales
func ListSalesHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := store.ListAll(c.UserContext())
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Satış kayıtları listelenemedi")
		}
		return c.JSON(list)
	}
}

// GET /api/sales/statistics
// İstatistikler her istekte log'un tamamından yeniden hesaplanır.
func StatisticsHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := store.ListAll(c.UserContext())
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Satış kayıtları listelenemedi")
		}
		return c.JSON(Aggregate(list, time.Now()))
	}
}
