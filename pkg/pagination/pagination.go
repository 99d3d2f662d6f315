package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	MinLimit     = 1

	// DefaultTopN and MaxTopN bound the number of ranked rows a summary returns.
	DefaultTopN = 5
	MaxTopN     = 100
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse extracts and validates page/limit from query parameters
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = DefaultPage
	}
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// ParseTopN reads the "limit" query parameter of a ranking endpoint. Missing or
// non-numeric values give DefaultTopN; the result is clamped to [1, MaxTopN].
func ParseTopN(c *gin.Context) int {
	return ClampTopN(c.Query("limit"))
}

// ClampTopN applies the ParseTopN rules to a raw value.
func ClampTopN(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultTopN
	}
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxTopN {
		return MaxTopN
	}
	return n
}

// TotalPages is the number of pages needed for total items.
func TotalPages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
