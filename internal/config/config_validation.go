// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig] before it is mapped into a
// client view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Dashboard.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval", ErrInvalidDashboardConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	raw := strings.TrimSpace(cfg.API.BaseURL)
	if raw == "" {
		return fmt.Errorf("%w: empty base url", ErrInvalidAPIConfigs)
	}
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: malformed base url %q", ErrInvalidAPIConfigs, raw)
		}
	}

	if cfg.Session.DSN == "" {
		return ErrInvalidSessionConfigs
	}

	if cfg.Dashboard.RefreshInterval == 0 {
		return ErrInvalidDashboardConfigs
	}

	return nil
}
