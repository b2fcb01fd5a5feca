package api

import (
	"context"
	"net/http"
	"regexp"
)

// ReportsService requests generated PDF reports. Unlike the JSON endpoints
// the response body is binary, so failures carry a fixed message and never
// the server's error body.
type ReportsService struct {
	c *Client
}

// ReportDownload is the binary result of a report request. FileName is the
// server's Content-Disposition hint and may be empty.
type ReportDownload struct {
	FileName string
	Data     []byte
}

// Request performs POST /reports (admin endpoint).
func (s *ReportsService) Request(ctx context.Context, payload ReportRequest) (*ReportDownload, error) {
	return s.download(ctx, "/reports", payload)
}

// RequestMine performs POST /reports/me for the current franchisee.
func (s *ReportsService) RequestMine(ctx context.Context, payload ReportRequest) (*ReportDownload, error) {
	return s.download(ctx, "/reports/me", payload)
}

func (s *ReportsService) download(ctx context.Context, path string, payload ReportRequest) (*ReportDownload, error) {
	resp, body, err := s.c.send(ctx, request{method: http.MethodPost, path: path, body: payload})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Message: "failed to request report", Status: resp.StatusCode}
	}

	return &ReportDownload{
		FileName: fileNameFromDisposition(resp.Header.Get("Content-Disposition")),
		Data:     body,
	}, nil
}

var dispositionFileName = regexp.MustCompile(`(?i)filename="?([^";]+)"?`)

// fileNameFromDisposition extracts the suggested filename from a
// Content-Disposition header. Absent or malformed headers yield "".
func fileNameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	if m := dispositionFileName.FindStringSubmatch(header); m != nil {
		return m[1]
	}
	return ""
}
