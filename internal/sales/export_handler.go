package sales

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/sales/export
// Satış log'unu xlsx olarak indirir.
func ExportSalesHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := store.ListAll(c.UserContext())
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Satış kayıtları listelenemedi")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Satışlar"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Tarih", "Ürün", "Stok Kodu", "Barkod", "Müşteri", "TC", "Telefon", "Teslim Eden"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, sale := range list {
			values := []any{
				sale.SoldAt.Format("2006-01-02 15:04"),
				sale.ProductName,
				sale.StockCode,
				sale.Barcode,
				sale.CustomerName,
				sale.CustomerNationalID,
				sale.CustomerPhone,
				sale.SoldBy,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="satislar.xlsx"`)

		if err := f.Write(c.Response().BodyWriter()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Excel dosyası oluşturulamadı: %v", err))
		}
		return nil
	}
}
