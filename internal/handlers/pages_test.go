package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolvePage(t *testing.T) {
	cases := []struct {
		fragment string
		want     string
	}{
		{"home", "home"},
		{"ask", "ask"},
		{"plans", "plans"},
		{"connect", "connect"},
		{"teacher", "teacher"},
		{"admin", "admin"},
		{"", "home"},
		{"module", "home"},
		{"settings", "home"},
	}
	for _, tc := range cases {
		if got := ResolvePage(tc.fragment); got != tc.want {
			t.Fatalf("ResolvePage(%q) = %q, want %q", tc.fragment, got, tc.want)
		}
	}
}

func TestPageHandlerGatesTeacherAndAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/api/pages/:fragment", NewPageHandler().Resolve)

	cases := []struct {
		fragment  string
		wantPage  string
		wantGated bool
	}{
		{"home", "home", false},
		{"unknown", "home", false},
		{"teacher", "teacher", true},
		{"admin", "admin", true},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/pages/"+tc.fragment, nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", tc.fragment, rec.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: %v", tc.fragment, err)
		}
		if body["page"] != tc.wantPage {
			t.Fatalf("%s: page = %v, want %q", tc.fragment, body["page"], tc.wantPage)
		}
		if body["role"] != "public" {
			t.Fatalf("%s: role = %v, want public", tc.fragment, body["role"])
		}
		_, gated := body["accessRequired"]
		if gated != tc.wantGated {
			t.Fatalf("%s: accessRequired present = %v, want %v", tc.fragment, gated, tc.wantGated)
		}
	}
}
