// ABOUTME: Natural-language report operations against the backend
// ABOUTME: Submits report prompts and downloads generated files

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Report file formats the backend can generate
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ReportQuery is the backend's answer to a report prompt: an ID to download
// the rendered file with, plus inline rows for on-screen display.
type ReportQuery struct {
	QueryID int                      `json:"query_id"`
	Results []map[string]interface{} `json:"results"`
	Message string                   `json:"message"`
}

type reportPrompt struct {
	Prompt string `json:"prompt"`
}

// GenerateReportQuery submits a natural-language prompt via
// POST /reportes/query/. Interpretation happens entirely on the backend.
func (c *Client) GenerateReportQuery(ctx context.Context, prompt string) (*ReportQuery, error) {
	var query ReportQuery
	if err := c.post(ctx, "/reportes/query/", reportPrompt{Prompt: prompt}, &query); err != nil {
		return nil, err
	}
	return &query, nil
}

// DownloadReportFile fetches the rendered report via
// GET /reportes/generate/?query_id&formato as raw file bytes.
func (c *Client) DownloadReportFile(ctx context.Context, queryID int, format string) ([]byte, error) {
	if format != FormatPDF && format != FormatXLSX {
		return nil, fmt.Errorf("format must be %s or %s", FormatPDF, FormatXLSX)
	}

	query := url.Values{}
	query.Set("query_id", strconv.Itoa(queryID))
	query.Set("formato", format)

	return c.doBlob(ctx, http.MethodGet, "/reportes/generate/", query)
}
