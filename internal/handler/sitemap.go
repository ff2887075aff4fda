package handler

import (
	"context"
	"encoding/xml"
	"net/http"
	"strconv"

	"groomer-directory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SitemapHandler serves sitemap.xml
type SitemapHandler struct {
	service SitemapService
}

// Service interface for dependency injection
type SitemapService interface {
	Entries(ctx context.Context) []service.SitemapEntry
}

// NewSitemapHandler creates a new sitemap handler
func NewSitemapHandler(svc SitemapService) *SitemapHandler {
	return &SitemapHandler{service: svc}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap handles GET /sitemap.xml
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	entries := h.service.Entries(c.Request.Context())

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: make([]sitemapURL, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        e.Loc,
			LastMod:    e.LastModified.Format("2006-01-02"),
			ChangeFreq: e.ChangeFrequency,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("failed to encode sitemap")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
