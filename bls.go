package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

const defaultBLSBaseURL = "https://api.bls.gov/publicAPI/v2"

// BLSClient is a thin wrapper over the BLS public data API plus a local SOC
// occupation catalog for title search. Every method degrades gracefully:
// callers must tolerate partial or empty results.
type BLSClient struct {
	apiKey  string
	baseURL string
	catalog []Occupation
	client  *http.Client
}

func NewBLSClient(apiKey, baseURL string) *BLSClient {
	if baseURL == "" {
		baseURL = defaultBLSBaseURL
	}
	return &BLSClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		catalog: socCatalog,
		client:  externalHTTPClient,
	}
}

// SearchOccupations matches a free-text query against the occupation
// catalog. Exact title matches rank first, then prefix matches, then
// substring matches. A query that looks like a SOC code or major-group
// prefix ("29", "29-1141") matches on code instead, which is how
// similar-job lookups find siblings within a group.
func (c *BLSClient) SearchOccupations(query string) ([]Occupation, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	if isCodeQuery(q) {
		var matches []Occupation
		for _, occ := range c.catalog {
			if strings.HasPrefix(occ.Code, q) {
				matches = append(matches, occ)
			}
		}
		return matches, nil
	}

	var exact, prefix, substring []Occupation
	for _, occ := range c.catalog {
		title := strings.ToLower(occ.Title)
		switch {
		case title == q:
			exact = append(exact, occ)
		case strings.HasPrefix(title, q):
			prefix = append(prefix, occ)
		case strings.Contains(title, q) || strings.Contains(q, title):
			substring = append(substring, occ)
		}
	}

	matches := append(exact, prefix...)
	matches = append(matches, substring...)
	return matches, nil
}

func isCodeQuery(q string) bool {
	for _, r := range q {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return len(q) >= 2
}

// AnnualEmployment is one year of OES employment data.
type AnnualEmployment struct {
	Year       int
	Employment int
}

// OccupationData is the OES employment series for one occupation.
type OccupationData struct {
	LatestValue string
	Series      []AnnualEmployment
}

// blsSeriesRequest is the POST body for the v2 timeseries endpoint.
type blsSeriesRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear,omitempty"`
	EndYear         string   `json:"endyear,omitempty"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type blsSeriesResponse struct {
	Status  string `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []struct {
			SeriesID string `json:"seriesID"`
			Data     []struct {
				Year   string `json:"year"`
				Period string `json:"period"`
				Value  string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

// oesSeriesID builds the national OES employment series id for a SOC code:
// survey OEU, area N/0000000, industry 000000, occupation digits, datatype 01.
func oesSeriesID(occCode string) string {
	digits := strings.ReplaceAll(occCode, "-", "")
	return "OEUN0000000000000" + digits + "01"
}

// GetOccupationData fetches the national employment series for an
// occupation code.
func (c *BLSClient) GetOccupationData(occCode string) (OccupationData, error) {
	payload, err := json.Marshal(blsSeriesRequest{
		SeriesID:        []string{oesSeriesID(occCode)},
		RegistrationKey: c.apiKey,
	})
	if err != nil {
		return OccupationData{}, fmt.Errorf("encoding series request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/timeseries/data/", bytes.NewReader(payload))
	if err != nil {
		return OccupationData{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := doWithRetry(c.client, req)
	if err != nil {
		return OccupationData{}, fmt.Errorf("executing request: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return OccupationData{}, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != 200 {
		return OccupationData{}, fmt.Errorf("BLS API returned %d: %s", resp.StatusCode, string(body))
	}

	var result blsSeriesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return OccupationData{}, fmt.Errorf("parsing response: %w", err)
	}
	if result.Status != "REQUEST_SUCCEEDED" {
		return OccupationData{}, fmt.Errorf("BLS API status %s: %s", result.Status, strings.Join(result.Message, "; "))
	}
	if len(result.Results.Series) == 0 {
		return OccupationData{}, nil
	}

	var data OccupationData
	for _, point := range result.Results.Series[0].Data {
		var year, value int
		if _, err := fmt.Sscanf(point.Year, "%d", &year); err != nil {
			continue
		}
		if _, err := fmt.Sscanf(point.Value, "%d", &value); err != nil {
			continue
		}
		data.Series = append(data.Series, AnnualEmployment{Year: year, Employment: value})
	}
	// BLS returns newest first.
	if len(result.Results.Series[0].Data) > 0 {
		data.LatestValue = result.Results.Series[0].Data[0].Value
	}
	return data, nil
}

type blsProjectionResponse struct {
	Projections EmploymentProjection `json:"projections"`
}

// GetEmploymentProjection fetches the ten-year employment projection for an
// occupation code. Missing fields stay nil; callers treat them as unknown.
func (c *BLSClient) GetEmploymentProjection(occCode string) (EmploymentProjection, error) {
	url := fmt.Sprintf("%s/projections/occupation/%s", c.baseURL, occCode)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return EmploymentProjection{}, fmt.Errorf("creating request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := doWithRetry(c.client, req)
	if err != nil {
		return EmploymentProjection{}, fmt.Errorf("executing request: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return EmploymentProjection{}, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode == 404 {
		// No projection published for this occupation.
		return EmploymentProjection{}, nil
	}
	if resp.StatusCode != 200 {
		return EmploymentProjection{}, fmt.Errorf("projection API returned %d: %s", resp.StatusCode, string(body))
	}

	var result blsProjectionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return EmploymentProjection{}, fmt.Errorf("parsing response: %w", err)
	}
	log.Printf("bls projection code=%s known_change=%t", occCode, result.Projections.PercentChange != nil)
	return result.Projections, nil
}
