package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationFromOffset(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		offset, limit int
		wantPage      int
		wantPages     int
		wantNext      bool
		wantPrev      bool
	}{
		{"first_page", 45, 0, 20, 1, 3, true, false},
		{"middle_page", 45, 20, 20, 2, 3, true, true},
		{"last_page", 45, 40, 20, 3, 3, false, true},
		{"empty_result", 0, 0, 20, 1, 1, false, false},
		{"zero_limit_falls_back", 5, 0, 0, 1, 1, false, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := BuildPaginationFromOffset(test.total, test.offset, test.limit)
			if p.Page != test.wantPage || p.TotalPages != test.wantPages {
				t.Errorf("page/total_pages = %d/%d, want %d/%d",
					p.Page, p.TotalPages, test.wantPage, test.wantPages)
			}
			if p.HasNext != test.wantNext || p.HasPrev != test.wantPrev {
				t.Errorf("has_next/has_prev = %v/%v, want %v/%v",
					p.HasNext, p.HasPrev, test.wantNext, test.wantPrev)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(101, 2, 50)
	if p.TotalPages != 3 || !p.HasNext || !p.HasPrev {
		t.Errorf("pagination = %+v", p)
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/list", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name string
		url  string
		want Paging
	}{
		{"defaults", "/list", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"page_and_per_page", "/list?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit_alias", "/list?limit=30", Paging{Page: 1, PerPage: 30, Offset: 0, Limit: 30}},
		{"clamped_to_max", "/list?per_page=999", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"garbage_falls_back", "/list?page=-2&per_page=abc", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := app.Test(httptest.NewRequest("GET", test.url, nil)); err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if got != test.want {
				t.Errorf("ResolvePaging = %+v, want %+v", got, test.want)
			}
		})
	}
}

// JsonList harus mengisi count dari panjang data dan menyertakan
// per_page_options default.
func TestJsonListEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		data := []string{"a", "b", "c"}
		return JsonList(c, "", data, BuildPaginationFromPage(3, 1, 20))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/list", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Success    bool       `json:"success"`
		Message    string     `json:"message"`
		Data       []string   `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success || body.Message != "ok" {
		t.Errorf("envelope = %+v", body)
	}
	if body.Pagination.Count != 3 {
		t.Errorf("count = %d, want 3", body.Pagination.Count)
	}
	if len(body.Pagination.PerPageOptions) == 0 {
		t.Error("per_page_options kosong")
	}
}
