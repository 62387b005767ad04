package jsearch

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	searchPath = "/search"

	contentType     = "application/json"
	contentEncoding = "gzip, deflate, br"

	employmentTypeIntern   = "INTERN"
	employmentTypeFulltime = "FULLTIME"
)

// Placeholders used when the provider omits a field.
const (
	noTitle       = "N/A"
	noCompany     = "N/A"
	noDescription = "No description provided."
	noLink        = "#"
)

type SearchParams struct {
	Query          string `yaml:"query" mapstructure:"query"`
	Location       string `yaml:"location" mapstructure:"location"`
	InternshipOnly bool   `yaml:"internship-only" mapstructure:"internship-only"`
	EntryLevelOnly bool   `yaml:"entry-level-only" mapstructure:"entry-level-only"`
	Page           int    `yaml:"page" mapstructure:"page"`
}

// providerJob mirrors one item of the JSearch response. Pointer fields
// keep absent keys distinguishable from present-but-empty values.
type providerJob struct {
	Title       *string `json:"job_title"`
	Company     *string `json:"employer_name"`
	Description *string `json:"job_description"`
	Link        *string `json:"job_apply_link"`
}

type searchResponse struct {
	Data []any `json:"data"`
}

// Search fetches one page of postings matching the params. A transport
// failure, timeout, non-200 status or unparseable body degrades to an
// empty list: callers always get a usable, possibly empty, result.
func (c *Client) Search(params *SearchParams) *Jobs {
	jobs, err := c.search(params)
	if err != nil {
		c.logger.Warn("job search failed, returning no postings", zap.Error(err))
		return &Jobs{}
	}

	return jobs
}

func (c *Client) search(params *SearchParams) (*Jobs, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, c.APIURL+searchPath, nil)
	if err != nil {
		return nil, err
	}

	req = c.setHeaders(req)
	req.URL.RawQuery = buildParams(params).Encode()

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	var response searchResponse
	if err := json.NewDecoder(reader).Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return decodeJobs(response.Data)
}

// buildParams translates SearchParams into the provider's query string.
// The entry-level filter also augments the text query, since the
// provider treats "entry level fresher" as search terms rather than a
// structured filter.
func buildParams(params *SearchParams) url.Values {
	query := params.Query
	if params.EntryLevelOnly {
		query = fmt.Sprintf("%s entry level fresher", query)
	}

	var employmentTypes []string
	if params.InternshipOnly {
		employmentTypes = append(employmentTypes, employmentTypeIntern)
	}
	if params.EntryLevelOnly && !params.InternshipOnly {
		employmentTypes = append(employmentTypes, employmentTypeFulltime)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("query", fmt.Sprintf("%s in %s", query, params.Location))
	q.Set("page", strconv.Itoa(page))
	if len(employmentTypes) > 0 {
		q.Set("employment_types", strings.Join(employmentTypes, ","))
	}

	return q
}

func decodeJobs(items []any) (*Jobs, error) {
	var raw []*providerJob

	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &raw,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding postings: %w", err)
	}

	jobs := &Jobs{}
	for _, item := range raw {
		if item == nil {
			continue
		}

		jobs.Items = append(jobs.Items, &Job{
			Title:       stringOr(item.Title, noTitle),
			Company:     stringOr(item.Company, noCompany),
			Description: stringOr(item.Description, noDescription),
			Link:        stringOr(item.Link, noLink),
		})
	}

	return jobs, nil
}

func stringOr(v *string, placeholder string) string {
	if v == nil {
		return placeholder
	}

	return *v
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.Host)
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)

	return req
}
