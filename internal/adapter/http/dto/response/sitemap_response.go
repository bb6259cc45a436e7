package response

import (
	"encoding/xml"
	"strconv"

	"socialdots/internal/usecase"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// FromSitemap turns site-relative entries into absolute urls under baseURL.
func FromSitemap(baseURL string, entries []usecase.SitemapEntry) SitemapURLSet {
	set := SitemapURLSet{Xmlns: sitemapNamespace, URLs: make([]SitemapURL, 0, len(entries))}
	for _, e := range entries {
		u := SitemapURL{Loc: baseURL + e.Path, ChangeFreq: e.ChangeFreq}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.Format("2006-01-02")
		}
		if e.Priority > 0 {
			u.Priority = strconv.FormatFloat(e.Priority, 'f', 1, 64)
		}
		set.URLs = append(set.URLs, u)
	}
	return set
}
