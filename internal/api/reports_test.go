package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileNameFromDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"quoted", `attachment; filename="sales-2026.pdf"`, "sales-2026.pdf"},
		{"unquoted", `attachment; filename=sales-2026.pdf`, "sales-2026.pdf"},
		{"mixed case", `Attachment; FILENAME="Report.PDF"`, "Report.PDF"},
		{"with params after", `attachment; filename="r.pdf"; size=100`, "r.pdf"},
		{"empty header", "", ""},
		{"no filename", "attachment", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fileNameFromDisposition(tt.header))
		})
	}
}

func TestReportRequestReturnsBinaryBody(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reports", r.URL.Path)
		w.Header().Set("Content-Disposition", `attachment; filename="stats.pdf"`)
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("tok"))
	download, err := client.Reports.Request(context.Background(), ReportRequest{
		Type: ReportSalesStats,
		From: "2026-01-01",
		To:   "2026-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "stats.pdf", download.FileName)
	assert.Equal(t, pdf, download.Data)
}

func TestReportRequestErrorHasFixedMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"generator offline"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Reports.RequestMine(context.Background(), ReportRequest{Type: ReportRevenue})
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "failed to request report", apiErr.Message)
	// Binary endpoint: the body is never attached, even when it is JSON.
	assert.Nil(t, apiErr.Details)
}
