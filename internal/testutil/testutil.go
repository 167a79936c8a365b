package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"librarycatalog/internal/entity"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FixedTime is the creation time used by every fixture.
var FixedTime = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// TestAuthor is a fixture author owning TestBook.
var TestAuthor = entity.Author{
	ID:        "test-author-id-123",
	Name:      "Ursula K. Le Guin",
	Books:     []string{"test-book-id-789"},
	CreatedAt: entity.At(FixedTime),
	UpdatedAt: entity.At(FixedTime),
}

// TestBook is an available fixture book written by TestAuthor.
var TestBook = entity.Book{
	ID:        "test-book-id-789",
	Title:     "The Left Hand of Darkness",
	AuthorID:  "test-author-id-123",
	ISBN:      "978-0-441-47812-5",
	Pages:     304,
	Status:    entity.StatusAvailable,
	CreatedAt: entity.At(FixedTime),
	UpdatedAt: entity.At(FixedTime),
}

// TestMember is a fixture member with no loans.
var TestMember = entity.Member{
	ID:            "test-member-id-456",
	Name:          "Genly Ai",
	Email:         "genly@example.com",
	MembershipID:  "EKU-0001",
	BorrowedBooks: []string{},
	CreatedAt:     entity.At(FixedTime),
	UpdatedAt:     entity.At(FixedTime),
}

// NewCatalog returns a fresh document holding copies of the fixtures.
func NewCatalog() *entity.Catalog {
	doc := entity.NewCatalog()
	author := TestAuthor
	author.Books = append([]string(nil), TestAuthor.Books...)
	member := TestMember
	member.BorrowedBooks = []string{}
	doc.Authors[author.ID] = author
	doc.Books[TestBook.ID] = TestBook
	doc.Members[member.ID] = member
	return doc
}

// NewRequest creates a new HTTP request for testing. A string body is sent
// verbatim; anything else is JSON encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(b)
	default:
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// Data returns the envelope's data object, or nil.
func (r RecordResponse) Data() map[string]interface{} {
	data, _ := r.Body["data"].(map[string]interface{})
	return data
}

// List returns the envelope's data array, or nil.
func (r RecordResponse) List() []interface{} {
	data, _ := r.Body["data"].([]interface{})
	return data
}

// ErrorCode returns the envelope's error code, or "".
func (r RecordResponse) ErrorCode() string {
	e, _ := r.Body["error"].(map[string]interface{})
	code, _ := e["code"].(string)
	return code
}

// ErrorFields returns the field names listed in the error details.
func (r RecordResponse) ErrorFields() []string {
	e, _ := r.Body["error"].(map[string]interface{})
	details, _ := e["details"].([]interface{})
	fields := make([]string, 0, len(details))
	for _, d := range details {
		if m, ok := d.(map[string]interface{}); ok {
			if f, ok := m["field"].(string); ok {
				fields = append(fields, f)
			}
		}
	}
	return fields
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %v for key %q, want %v", value, key, expectedValue)
	}
}
