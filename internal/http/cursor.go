package http

import (
	"cmp"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"time"

	"librarycatalog/internal/entity"
	"librarycatalog/internal/httpx"
	"librarycatalog/internal/validation"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxPageSize = 100

// cursorData is the position of the last item on the previous page.
type cursorData struct {
	AfterID   string `json:"after_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func encodeCursor(data cursorData) string {
	if data.AfterID == "" {
		return ""
	}
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(jsonBytes)
}

func decodeCursor(cursor string) (cursorData, error) {
	if cursor == "" {
		return cursorData{}, nil
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return cursorData{}, err
	}

	var data cursorData
	if err := json.Unmarshal(decoded, &data); err != nil {
		return cursorData{}, err
	}
	return data, nil
}

// page is a parsed keyset page request. A zero limit means everything.
type page struct {
	limit     int
	afterID   string
	afterTime time.Time
	hasCursor bool
}

func parsePage(r *http.Request) (page, []validation.FieldError) {
	var p page
	q := r.URL.Query()

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return page{}, []validation.FieldError{{Field: "limit", Message: "limit must be a positive integer"}}
		}
		p.limit = min(n, maxPageSize)
	}

	if raw := q.Get("cursor"); raw != "" {
		data, err := decodeCursor(raw)
		if err == nil && data.AfterID == "" {
			err = errors.New("empty cursor")
		}
		var at time.Time
		if err == nil {
			at, err = time.Parse(time.RFC3339Nano, data.CreatedAt)
		}
		if err != nil {
			return page{}, []validation.FieldError{{Field: "cursor", Message: "cursor is invalid"}}
		}
		p.afterID, p.afterTime, p.hasCursor = data.AfterID, at, true
		if p.limit == 0 {
			p.limit = 20
		}
	}
	return p, nil
}

// paginate slices items, which must already be in creation order, and
// returns the cursor of the following page or "".
func paginate[T entity.Record](items []T, p page) ([]T, string) {
	start := 0
	if p.hasCursor {
		start = len(items)
		for i, item := range items {
			c := item.Created().Compare(p.afterTime)
			if c == 0 {
				c = cmp.Compare(item.Key(), p.afterID)
			}
			if c > 0 {
				start = i
				break
			}
		}
	}
	if p.limit == 0 {
		return items[start:], ""
	}

	end := min(start+p.limit, len(items))
	if end == len(items) {
		return items[start:end], ""
	}
	last := items[end-1]
	return items[start:end], encodeCursor(cursorData{
		AfterID:   last.Key(),
		CreatedAt: last.Created().UTC().Format(time.RFC3339Nano),
	})
}

// writePage answers a list request with one page of items.
func writePage[T entity.Record](w http.ResponseWriter, r *http.Request, items []T) {
	p, fields := parsePage(r)
	if fields != nil {
		writeInvalid(w, r, fields)
		return
	}

	pageItems, next := paginate(items, p)
	meta := map[string]interface{}{"total": len(items)}
	if p.limit > 0 {
		meta["limit"] = p.limit
	}
	if next != "" {
		meta["next_cursor"] = next
	}
	httpx.JSONSuccess(w, r, pageItems, meta)
}
