package controller

import (
	"cafeapi/model"
	"cafeapi/utils"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const importSheet = "Sheet1"

// Spreadsheet columns, in order, after the header row.
const (
	colName = iota
	colMapURL
	colImgURL
	colLocation
	colSeats
	colToilet
	colWifi
	colSockets
	colCalls
	colCoffeePrice
)

// ImportCafes bulk-adds cafes from an uploaded .xlsx file. Incomplete
// rows, rows with bad flags and duplicate names are skipped; each valid
// row is committed on its own.
func (h *CafeController) ImportCafes(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorJSON(c, http.StatusBadRequest, "Bad Request", "Excel file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		internalError(c, "open uploaded file", err)
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		utils.ErrorJSON(c, http.StatusBadRequest, "Bad Request", "Failed to parse Excel file")
		return
	}
	defer xl.Close()

	rows, err := xl.GetRows(importSheet)
	if err != nil || len(rows) < 2 {
		utils.ErrorJSON(c, http.StatusBadRequest, "Bad Request", "Excel must have a header row and at least one row of data")
		return
	}

	added, skipped := 0, 0
	for i, row := range rows[1:] {
		cafe, err := cafeFromRow(row)
		if err != nil {
			log.Printf("import row %d skipped: %v", i+2, err)
			skipped++
			continue
		}

		if err := h.DB.Create(&cafe).Error; err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				internalError(c, "import cafes", err)
				return
			}
			log.Printf("import row %d skipped: duplicate name %q", i+2, cafe.Name)
			skipped++
			continue
		}
		added++
	}

	utils.SuccessJSON(c, "successfully imported cafes", gin.H{
		"added":   added,
		"skipped": skipped,
	})
}

func cafeFromRow(row []string) (model.Cafe, error) {
	if len(row) < colCoffeePrice {
		return model.Cafe{}, errors.New("incomplete row")
	}

	cell := func(i int) string { return strings.TrimSpace(row[i]) }
	req := addCafeRequest{
		Name:     cell(colName),
		MapURL:   cell(colMapURL),
		ImgURL:   cell(colImgURL),
		Location: cell(colLocation),
		Seats:    cell(colSeats),
		Toilet:   cell(colToilet),
		Wifi:     cell(colWifi),
		Sockets:  cell(colSockets),
		Calls:    cell(colCalls),
	}
	if req.Name == "" || req.MapURL == "" || req.ImgURL == "" || req.Location == "" || req.Seats == "" {
		return model.Cafe{}, errors.New("missing required cell")
	}
	if len(row) > colCoffeePrice {
		if price := cell(colCoffeePrice); price != "" {
			req.CoffeePrice = &price
		}
	}

	return req.toCafe()
}
