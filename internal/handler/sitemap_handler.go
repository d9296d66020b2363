package handler

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"
)

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap 输出静态页面与启用研究方向组成的站点地图。
func (a *API) Sitemap(c *gin.Context) {
	areas, err := a.areas.ActiveAreas()
	if err != nil {
		a.log.Error("failed to list research areas for sitemap", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to build sitemap")
		return
	}

	pages := []string{"/", "/research", "/publications", "/awards", "/conferences", "/cv"}
	urlset := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range pages {
		urlset.URLs = append(urlset.URLs, sitemapURL{Loc: a.siteBaseURL + page})
	}
	for _, area := range areas {
		urlset.URLs = append(urlset.URLs, sitemapURL{Loc: a.siteBaseURL + "/research/" + area.Slug})
	}

	body, err := xml.Marshal(urlset)
	if err != nil {
		a.log.Error("failed to marshal sitemap", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to build sitemap")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
