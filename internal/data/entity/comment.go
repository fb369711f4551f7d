package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// Rating is a 1-5 score. Values outside that range are kept as-is and
// treated as "no rating" by consumers.
type Rating int

func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// UnmarshalJSON accepts a number or a numeric string ("4"). Anything else
// decodes to 0 instead of failing the surrounding document.
func (r *Rating) UnmarshalJSON(b []byte) error {
	*r = ParseRating(string(bytes.TrimSpace(b)))
	return nil
}

// ParseRating parses a raw rating value, returning 0 when it is not an integer
func ParseRating(raw string) Rating {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return 0
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return 0
		}
		raw = strings.TrimSpace(s)
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return Rating(n)
	}

	// 4.0 is still a whole rating
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return Rating(int(f))
}

// Comment is a stored piece of customer feedback
type Comment struct {
	BaseSimple
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Rating     Rating    `db:"rating"`
	Text       string    `db:"comment"`
	DatePosted time.Time `db:"date_posted"`
}
