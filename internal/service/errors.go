package service

import "errors"

// 各内容类型的哨兵错误，handler 据此映射 404。
var (
	ErrPublicationNotFound        = errors.New("publication not found")
	ErrAwardNotFound              = errors.New("award not found")
	ErrConferenceNotFound         = errors.New("conference not found")
	ErrMediaNotFound              = errors.New("media item not found")
	ErrEducationNotFound          = errors.New("education item not found")
	ErrExperienceNotFound         = errors.New("experience item not found")
	ErrResearchAreaNotFound       = errors.New("research area not found")
	ErrCVProfileNotFound          = errors.New("no active cv profile found")
	ErrMarkdownCVNotFound         = errors.New("markdown cv document not found")
	ErrRepresentativeWorkNotFound = errors.New("representative work not found")
	ErrGalleryImageNotFound       = errors.New("gallery image not found")
	ErrResearchHighlightNotFound  = errors.New("research highlight not found")
	ErrCoverArtNotFound           = errors.New("cover art not found")
)
