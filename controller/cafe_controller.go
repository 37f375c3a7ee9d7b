package controller

import (
	"cafeapi/model"
	"cafeapi/utils"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgCafeNotFound     = "Cafe with that ID does not exist"
	msgLocationNotFound = "Sorry we don't have a cafe at that location"
)

// CafeController serves the cafe routes against an injected store handle.
type CafeController struct {
	DB *gorm.DB

	// pick returns an index in [0, n); replaced in tests.
	pick func(n int) int
}

func NewCafeController(db *gorm.DB) *CafeController {
	return &CafeController{DB: db, pick: rand.Intn}
}

type addCafeRequest struct {
	Name        string  `form:"name" binding:"required"`
	MapURL      string  `form:"map_url" binding:"required"`
	ImgURL      string  `form:"img_url" binding:"required"`
	Location    string  `form:"loc" binding:"required"`
	Seats       string  `form:"seats" binding:"required"`
	Sockets     string  `form:"sockets"`
	Toilet      string  `form:"toilet"`
	Wifi        string  `form:"wifi"`
	Calls       string  `form:"calls"`
	CoffeePrice *string `form:"coffee_price"`
}

// toCafe builds an unsaved record. The location is stored title-cased so
// that it matches the normalized search term.
func (r addCafeRequest) toCafe() (model.Cafe, error) {
	cafe := model.Cafe{
		Name:        r.Name,
		MapURL:      r.MapURL,
		ImgURL:      r.ImgURL,
		Location:    utils.TitleCase(r.Location),
		Seats:       r.Seats,
		CoffeePrice: r.CoffeePrice,
	}

	flags := []struct {
		field string
		value string
		dst   *bool
	}{
		{"sockets", r.Sockets, &cafe.HasSockets},
		{"toilet", r.Toilet, &cafe.HasToilet},
		{"wifi", r.Wifi, &cafe.HasWifi},
		{"calls", r.Calls, &cafe.CanTakeCalls},
	}
	for _, f := range flags {
		v, err := utils.ParseFlag(f.value)
		if err != nil {
			return model.Cafe{}, fmt.Errorf("%s must be an integer (0 or 1)", f.field)
		}
		*f.dst = v
	}
	return cafe, nil
}

func (h *CafeController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"title": "Cafe & Wifi API"})
}

func (h *CafeController) GetRandomCafe(c *gin.Context) {
	var count int64
	if err := h.DB.Model(&model.Cafe{}).Count(&count).Error; err != nil {
		internalError(c, "count cafes", err)
		return
	}
	if count == 0 {
		utils.ErrorJSON(c, http.StatusNotFound, "Not Found", "There are no cafes in the database yet")
		return
	}

	var cafe model.Cafe
	err := h.DB.Offset(h.pick(int(count))).First(&cafe).Error
	if err != nil {
		// A concurrent delete can shrink the table between count and fetch.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorJSON(c, http.StatusNotFound, "Not Found", "There are no cafes in the database yet")
		} else {
			internalError(c, "fetch random cafe", err)
		}
		return
	}

	c.JSON(http.StatusOK, cafe.ToMap())
}

func (h *CafeController) GetAllCafes(c *gin.Context) {
	var cafes []model.Cafe
	if err := h.DB.Find(&cafes).Error; err != nil {
		internalError(c, "list cafes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafes": toMaps(cafes)})
}

// SearchCafes matches the title-cased loc query parameter exactly. A
// missing parameter and an empty result both answer 200 with an error body.
func (h *CafeController) SearchCafes(c *gin.Context) {
	loc := c.Query("loc")
	if loc == "" {
		utils.ErrorJSON(c, http.StatusOK, "not found", msgLocationNotFound)
		return
	}

	var cafes []model.Cafe
	if err := h.DB.Where("location = ?", utils.TitleCase(loc)).Find(&cafes).Error; err != nil {
		internalError(c, "search cafes", err)
		return
	}
	if len(cafes) == 0 {
		utils.ErrorJSON(c, http.StatusOK, "not found", msgLocationNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafe": toMaps(cafes)})
}

func (h *CafeController) AddCafe(c *gin.Context) {
	var req addCafeRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorJSON(c, http.StatusBadRequest, "Bad Request", "name, map_url, img_url, loc and seats are required")
		return
	}

	cafe, err := req.toCafe()
	if err != nil {
		utils.ErrorJSON(c, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	if err := h.DB.Create(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.ErrorJSON(c, http.StatusConflict, "Conflict", "A cafe with that name already exists")
		} else {
			internalError(c, "create cafe", err)
		}
		return
	}

	utils.SuccessJSON(c, "successfully added new cafe", nil)
}

// UpdatePrice sets coffee_price from the new_price query parameter; an
// absent parameter clears the price.
func (h *CafeController) UpdatePrice(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		return
	}

	var cafe model.Cafe
	if err := h.DB.First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorJSON(c, http.StatusNotFound, "Not Found", msgCafeNotFound)
		} else {
			internalError(c, "fetch cafe", err)
		}
		return
	}

	var price any
	if newPrice, ok := c.GetQuery("new_price"); ok {
		price = newPrice
	}
	if err := h.DB.Model(&cafe).Update("coffee_price", price).Error; err != nil {
		internalError(c, "update coffee price", err)
		return
	}

	utils.SuccessJSON(c, "successfully updated coffee price", nil)
}

// ReportClosed deletes the cafe. The route is expected to sit behind
// utils.RequireAPIKey.
func (h *CafeController) ReportClosed(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		return
	}

	result := h.DB.Delete(&model.Cafe{}, id)
	if result.Error != nil {
		internalError(c, "delete cafe", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.ErrorJSON(c, http.StatusNotFound, "Not Found", msgCafeNotFound)
		return
	}

	utils.SuccessJSON(c, "You reported the cafe closed", nil)
}

// cafeID parses the cafe_id path parameter. A non-numeric id can never
// match a row, so it is answered as not found.
func cafeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("cafe_id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorJSON(c, http.StatusNotFound, "Not Found", msgCafeNotFound)
		return 0, false
	}
	return uint(id), true
}

func toMaps(cafes []model.Cafe) []map[string]any {
	out := make([]map[string]any, 0, len(cafes))
	for _, cafe := range cafes {
		out = append(out, cafe.ToMap())
	}
	return out
}

func internalError(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	utils.ErrorJSON(c, http.StatusInternalServerError, "Internal", "Failed to "+op)
}
