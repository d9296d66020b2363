package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/db"
	"github.com/joohoonkim/portfolio-backend/internal/service"
)

// publicationPatch 描述稀疏更新，nil 字段表示请求中未提交。
type publicationPatch struct {
	Number                *int     `json:"number"`
	Title                 *string  `json:"title"`
	Authors               *string  `json:"authors"`
	Journal               *string  `json:"journal"`
	Volume                *string  `json:"volume"`
	Pages                 *string  `json:"pages"`
	Year                  *string  `json:"year"`
	Month                 *string  `json:"month"`
	DOI                   *string  `json:"doi"`
	Arxiv                 *string  `json:"arxiv"`
	IsFirstAuthor         *bool    `json:"is_first_author"`
	IsCorrespondingAuthor *bool    `json:"is_corresponding_author"`
	IsEqualContribution   *bool    `json:"is_equal_contribution"`
	ContributionType      *string  `json:"contribution_type"`
	Status                *string  `json:"status"`
	ImpactFactor          *float64 `json:"impact_factor"`
	FeaturedInfo          *string  `json:"featured_info"`
}

func (p publicationPatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if p.Number != nil {
		u["number"] = *p.Number
	}
	if p.Title != nil {
		u["title"] = *p.Title
	}
	if p.Authors != nil {
		u["authors"] = *p.Authors
	}
	if p.Journal != nil {
		u["journal"] = *p.Journal
	}
	if p.Volume != nil {
		u["volume"] = *p.Volume
	}
	if p.Pages != nil {
		u["pages"] = *p.Pages
	}
	if p.Year != nil {
		u["year"] = *p.Year
	}
	if p.Month != nil {
		u["month"] = *p.Month
	}
	if p.DOI != nil {
		u["doi"] = *p.DOI
	}
	if p.Arxiv != nil {
		u["arxiv"] = *p.Arxiv
	}
	if p.IsFirstAuthor != nil {
		u["is_first_author"] = *p.IsFirstAuthor
	}
	if p.IsCorrespondingAuthor != nil {
		u["is_corresponding_author"] = *p.IsCorrespondingAuthor
	}
	if p.IsEqualContribution != nil {
		u["is_equal_contribution"] = *p.IsEqualContribution
	}
	if p.ContributionType != nil {
		u["contribution_type"] = *p.ContributionType
	}
	if p.Status != nil {
		u["status"] = *p.Status
	}
	if p.ImpactFactor != nil {
		u["impact_factor"] = *p.ImpactFactor
	}
	if p.FeaturedInfo != nil {
		u["featured_info"] = *p.FeaturedInfo
	}
	return u
}

// GetPublications 按年份、贡献类型与状态筛选出版物列表。
func (a *API) GetPublications(c *gin.Context) {
	items, err := a.publications.Filter(service.PublicationFilter{
		Year:         c.Query("year"),
		Contribution: c.Query("contribution"),
		Status:       c.Query("status"),
	})
	if err != nil {
		a.log.Error("failed to list publications", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to list publications")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetPublicationYears 返回去重后的年份集合，降序排列。
func (a *API) GetPublicationYears(c *gin.Context) {
	years, err := a.publications.Years()
	if err != nil {
		a.log.Error("failed to list publication years", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to list publication years")
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": years})
}

// GetPublicationStats 返回出版物统计信息。
func (a *API) GetPublicationStats(c *gin.Context) {
	stats, err := a.publications.Stats()
	if err != nil {
		a.log.Error("failed to compute publication stats", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to compute publication stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetPublication 获取单条出版物。
func (a *API) GetPublication(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid publication id")
		return
	}

	item, err := a.publications.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			respondError(c, http.StatusNotFound, "Publication not found")
			return
		}
		a.log.Error("failed to get publication", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to get publication")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreatePublication 新建出版物。
func (a *API) CreatePublication(c *gin.Context) {
	var item db.Publication
	if !bindJSON(c, &item, "Invalid publication payload") {
		return
	}
	item.ID = 0

	if err := a.publications.Create(&item); err != nil {
		a.log.Error("failed to create publication", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to create publication")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdatePublication 对出版物应用稀疏更新。
func (a *API) UpdatePublication(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid publication id")
		return
	}

	var patch publicationPatch
	if !bindJSON(c, &patch, "Invalid publication payload") {
		return
	}

	item, err := a.publications.Update(id, patch.updates())
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			respondError(c, http.StatusNotFound, "Publication not found")
			return
		}
		a.log.Error("failed to update publication", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to update publication")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeletePublication 删除出版物。
func (a *API) DeletePublication(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid publication id")
		return
	}

	if err := a.publications.Delete(id); err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			respondError(c, http.StatusNotFound, "Publication not found")
			return
		}
		a.log.Error("failed to delete publication", "id", id, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to delete publication")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Publication deleted successfully"})
}
