package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joohoonkim/portfolio-backend/internal/db"
	"github.com/joohoonkim/portfolio-backend/internal/service"
)

// RegisterRoutes 挂载全部 API 路由。
// 写操作统一经过 AdminRequired，读接口全部公开。
func (a *API) RegisterRoutes(r *gin.Engine) {
	admin := AdminRequired()

	r.GET("/health", a.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", a.Login)
		auth.POST("/logout", a.Logout)
		auth.GET("/me", a.Me)
	}

	publications := api.Group("/publications")
	{
		publications.GET("", a.GetPublications)
		publications.GET("/years", a.GetPublicationYears)
		publications.GET("/stats", a.GetPublicationStats)
		publications.GET("/:id", a.GetPublication)
		publications.POST("", admin, a.CreatePublication)
		publications.PUT("/:id", admin, a.UpdatePublication)
		publications.DELETE("/:id", admin, a.DeletePublication)
	}

	awards := resourceRoutes[db.Award, awardPatch]{
		api: a, svc: a.awards, noun: "Award", notFound: service.ErrAwardNotFound,
		prepare: func(item *db.Award) { item.ID = 0 },
	}
	awards.register(api.Group("/awards"), admin)

	conferences := resourceRoutes[db.Conference, conferencePatch]{
		api: a, svc: a.conferences, noun: "Conference", notFound: service.ErrConferenceNotFound,
		prepare: func(item *db.Conference) { item.ID = 0 },
	}
	conferences.register(api.Group("/conferences"), admin)

	media := resourceRoutes[db.Media, mediaPatch]{
		api: a, svc: a.media, noun: "Media item", notFound: service.ErrMediaNotFound,
		prepare: func(item *db.Media) { item.ID = 0 },
	}
	media.register(api.Group("/media"), admin)

	education := resourceRoutes[db.Education, educationPatch]{
		api: a, svc: a.education, noun: "Education item", notFound: service.ErrEducationNotFound,
		prepare: func(item *db.Education) { item.ID = 0 },
	}
	education.register(api.Group("/education"), admin)

	experience := resourceRoutes[db.Experience, experiencePatch]{
		api: a, svc: a.experience, noun: "Experience item", notFound: service.ErrExperienceNotFound,
		prepare: func(item *db.Experience) { item.ID = 0 },
	}
	experience.register(api.Group("/experience"), admin)

	works := resourceRoutes[db.RepresentativeWork, representativeWorkPatch]{
		api: a, svc: a.works, noun: "Representative work", notFound: service.ErrRepresentativeWorkNotFound,
		listArgs: activeOnlyFilter(true),
		prepare:  func(item *db.RepresentativeWork) { item.ID = 0 },
		uploads: map[string]uploadEndpoint{
			"upload-image": {subdir: "representative-works", key: "image_path"},
		},
	}
	works.register(api.Group("/representative-works"), admin)

	highlights := resourceRoutes[db.ResearchHighlight, researchHighlightPatch]{
		api: a, svc: a.highlights, noun: "Research highlight", notFound: service.ErrResearchHighlightNotFound,
		listArgs: activeOnlyFilter(false),
		prepare:  func(item *db.ResearchHighlight) { item.ID = 0 },
		uploads: map[string]uploadEndpoint{
			"upload-image": {subdir: "research-highlights", key: "image_path"},
		},
	}
	highlights.register(api.Group("/research-highlights"), admin)

	coverArts := resourceRoutes[db.CoverArt, coverArtPatch]{
		api: a, svc: a.coverArts, noun: "Cover art", notFound: service.ErrCoverArtNotFound,
		listArgs: activeOnlyFilter(false),
		prepare:  func(item *db.CoverArt) { item.ID = 0 },
		uploads: map[string]uploadEndpoint{
			"upload-image": {subdir: "cover-arts", key: "image_path"},
		},
	}
	coverArts.register(api.Group("/cover-arts"), admin)

	gallery := resourceRoutes[db.GalleryImage, galleryImagePatch]{
		api: a, svc: a.gallery, noun: "Gallery image", notFound: service.ErrGalleryImageNotFound,
		listArgs: galleryFilter,
		prepare:  func(item *db.GalleryImage) { item.ID = 0 },
	}
	galleryGroup := api.Group("/gallery-images")
	gallery.register(galleryGroup, admin)
	galleryGroup.POST("/upload-image", admin, a.UploadGalleryImage)

	a.registerResearchAreaRoutes(api.Group("/research-areas"), admin)
	a.registerCVRoutes(api.Group("/cv"), admin)
	a.registerMarkdownCVRoutes(api.Group("/cv-markdown"), admin)

	api.GET("/search/sitemap.xml", a.Sitemap)
}

// activeOnlyFilter 构造 active_only 查询参数的过滤器，fallback 为缺省行为。
func activeOnlyFilter(fallback bool) func(*gin.Context) map[string]interface{} {
	return func(c *gin.Context) map[string]interface{} {
		if queryFlag(c, "active_only", fallback) {
			return map[string]interface{}{"is_active": true}
		}
		return nil
	}
}

func galleryFilter(c *gin.Context) map[string]interface{} {
	filters := map[string]interface{}{}
	if queryFlag(c, "active_only", true) {
		filters["is_active"] = true
	}
	if category := c.Query("category"); category != "" {
		filters["category"] = category
	}
	return filters
}

// UploadGalleryImage 上传图库图片并回传探测到的像素尺寸。
func (a *API) UploadGalleryImage(c *gin.Context) {
	path, ok := a.saveUploadedImage(c, "gallery")
	if !ok {
		return
	}

	width, height := 0, 0
	if file, err := c.FormFile("file"); err == nil {
		width, height = probeImageDimensions(file)
	}

	c.JSON(http.StatusOK, gin.H{
		"image_path":   path,
		"image_width":  width,
		"image_height": height,
	})
}
