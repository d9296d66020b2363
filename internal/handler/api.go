package handler

import (
	"github.com/joohoonkim/portfolio-backend/internal/config"
	"github.com/joohoonkim/portfolio-backend/internal/db"
	"github.com/joohoonkim/portfolio-backend/internal/logger"
	"github.com/joohoonkim/portfolio-backend/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	log          *logger.Logger
	publications *service.PublicationService
	awards       *service.ResourceService[db.Award]
	conferences  *service.ResourceService[db.Conference]
	media        *service.ResourceService[db.Media]
	education    *service.ResourceService[db.Education]
	experience   *service.ResourceService[db.Experience]
	areas        *service.ResearchAreaService
	cv           *service.CVService
	markdown     *service.MarkdownCVService
	works        *service.ResourceService[db.RepresentativeWork]
	gallery      *service.ResourceService[db.GalleryImage]
	highlights   *service.ResourceService[db.ResearchHighlight]
	coverArts    *service.ResourceService[db.CoverArt]

	uploadDir         string
	uploadURL         string
	siteBaseURL       string
	adminUsername     string
	adminPasswordHash string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, log *logger.Logger, cfg config.AppConfig) *API {
	return &API{
		db:           gdb,
		log:          log,
		publications: service.NewPublicationService(gdb),
		awards:       service.NewResourceService[db.Award](gdb, service.ErrAwardNotFound, "year desc"),
		conferences:  service.NewResourceService[db.Conference](gdb, service.ErrConferenceNotFound, "date desc"),
		media:        service.NewResourceService[db.Media](gdb, service.ErrMediaNotFound, "date desc"),
		education:    service.NewResourceService[db.Education](gdb, service.ErrEducationNotFound, "id asc"),
		experience:   service.NewResourceService[db.Experience](gdb, service.ErrExperienceNotFound, "id asc"),
		areas:        service.NewResearchAreaService(gdb),
		cv:           service.NewCVService(gdb),
		markdown:     service.NewMarkdownCVService(gdb),
		works: service.NewResourceService[db.RepresentativeWork](
			gdb, service.ErrRepresentativeWorkNotFound, "order_index asc", "id desc"),
		gallery: service.NewResourceService[db.GalleryImage](
			gdb, service.ErrGalleryImageNotFound, "order_index asc", "id desc"),
		highlights: service.NewResourceService[db.ResearchHighlight](
			gdb, service.ErrResearchHighlightNotFound, "order_index asc", "id desc"),
		coverArts: service.NewResourceService[db.CoverArt](
			gdb, service.ErrCoverArtNotFound, "order_index asc", "id desc"),

		uploadDir:         cfg.UploadDir,
		uploadURL:         cfg.UploadURLPath,
		siteBaseURL:       cfg.SiteBaseURL,
		adminUsername:     cfg.AdminUsername,
		adminPasswordHash: cfg.AdminPasswordHash,
	}
}
