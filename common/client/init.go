package client

import (
	"net/http"
	"net/url"
	"time"

	"github.com/Laisky/zap"

	"github.com/studioforge/relay/common/config"
	"github.com/studioforge/relay/common/logger"
)

// HTTPClient is the shared client for outbound relay requests. All upstream
// provider calls go through it so tests can swap the transport.
var HTTPClient *http.Client

func Init() {
	HTTPClient = &http.Client{}

	if config.RelayProxy != "" {
		proxyURL, err := url.Parse(config.RelayProxy)
		if err != nil {
			logger.Logger.Fatal("invalid RELAY_PROXY", zap.String("proxy", config.RelayProxy), zap.Error(err))
		}
		HTTPClient.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
		logger.Logger.Info("using proxy for relay requests", zap.String("proxy", config.RelayProxy))
	}

	if config.RelayTimeout > 0 {
		HTTPClient.Timeout = time.Duration(config.RelayTimeout) * time.Second
	}
}
