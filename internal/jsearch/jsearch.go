// Package jsearch is a client for the JSearch job search API on RapidAPI.
package jsearch

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/skillsift/skillsift/internal/util"
)

const (
	apiURL    = "https://jsearch.p.rapidapi.com"
	apiHost   = "jsearch.p.rapidapi.com"
	userAgent = "skillsift/resume-matcher"

	// The provider can be slow on broad queries.
	requestTimeout = 30 * time.Second
)

type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
	Host       string
}

func New(ctx context.Context, logger *zap.Logger, apiKey string) *Client {
	return &Client{
		ctx:    ctx,
		apiKey: apiKey,
		APIURL: apiURL,
		Host:   apiHost,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger:    util.WithProviderFields(logger, "jsearch", apiHost),
		UserAgent: userAgent,
	}
}
