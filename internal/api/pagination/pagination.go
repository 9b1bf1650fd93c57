package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Page struct {
	Items      interface{} `json:"results"`
	Total      int64       `json:"count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// Params reads ?page= and ?page_size=, clamping bad values.
func Params(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// Paginate counts q and loads one page of it into out. finish is applied to
// the page query only (ordering, preloads).
func Paginate(c *gin.Context, q *gorm.DB, out interface{}, finish ...func(*gorm.DB) *gorm.DB) (*Page, error) {
	page, size := Params(c)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	find := q.Session(&gorm.Session{})
	for _, f := range finish {
		find = f(find)
	}
	if err := find.Offset((page - 1) * size).Limit(size).Find(out).Error; err != nil {
		return nil, err
	}

	return &Page{
		Items:      out,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: TotalPages(total, size),
	}, nil
}

func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
