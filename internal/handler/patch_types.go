package handler

// 各实体的稀疏补丁类型。字段一律用指针区分"未提交"与"提交了零值"，
// updates 只收集非 nil 字段，id 与时间戳永远不进入补丁。

type awardPatch struct {
	Title        *string `json:"title"`
	Organization *string `json:"organization"`
	Location     *string `json:"location"`
	Year         *string `json:"year"`
	Rank         *string `json:"rank"`
	Description  *string `json:"description"`
}

func (p awardPatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "title", p.Title)
	setIfPresent(u, "organization", p.Organization)
	setIfPresent(u, "location", p.Location)
	setIfPresent(u, "year", p.Year)
	setIfPresent(u, "rank", p.Rank)
	setIfPresent(u, "description", p.Description)
	return u
}

type conferencePatch struct {
	Title          *string `json:"title"`
	Authors        *string `json:"authors"`
	ConferenceName *string `json:"conference_name"`
	Type           *string `json:"type"`
	Location       *string `json:"location"`
	Date           *string `json:"date"`
}

func (p conferencePatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "title", p.Title)
	setIfPresent(u, "authors", p.Authors)
	setIfPresent(u, "conference_name", p.ConferenceName)
	setIfPresent(u, "type", p.Type)
	setIfPresent(u, "location", p.Location)
	setIfPresent(u, "date", p.Date)
	return u
}

type mediaPatch struct {
	Title    *string `json:"title"`
	Outlet   *string `json:"outlet"`
	Date     *string `json:"date"`
	URL      *string `json:"url"`
	ImageURL *string `json:"image_url"`
}

func (p mediaPatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "title", p.Title)
	setIfPresent(u, "outlet", p.Outlet)
	setIfPresent(u, "date", p.Date)
	setIfPresent(u, "url", p.URL)
	setIfPresent(u, "image_url", p.ImageURL)
	return u
}

type educationPatch struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Location    *string `json:"location"`
	StartYear   *string `json:"start_year"`
	EndYear     *string `json:"end_year"`
	Advisor     *string `json:"advisor"`
}

func (p educationPatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "degree", p.Degree)
	setIfPresent(u, "institution", p.Institution)
	setIfPresent(u, "location", p.Location)
	setIfPresent(u, "start_year", p.StartYear)
	setIfPresent(u, "end_year", p.EndYear)
	setIfPresent(u, "advisor", p.Advisor)
	return u
}

type experiencePatch struct {
	Position     *string `json:"position"`
	Organization *string `json:"organization"`
	Location     *string `json:"location"`
	StartYear    *string `json:"start_year"`
	EndYear      *string `json:"end_year"`
	HostAdvisor  *string `json:"host_advisor"`
	Description  *string `json:"description"`
}

func (p experiencePatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "position", p.Position)
	setIfPresent(u, "organization", p.Organization)
	setIfPresent(u, "location", p.Location)
	setIfPresent(u, "start_year", p.StartYear)
	setIfPresent(u, "end_year", p.EndYear)
	setIfPresent(u, "host_advisor", p.HostAdvisor)
	setIfPresent(u, "description", p.Description)
	return u
}

type researchAreaPatch struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	IconPath    *string `json:"icon_path"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}

func (p researchAreaPatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "title", p.Title)
	setIfPresent(u, "slug", p.Slug)
	setIfPresent(u, "description", p.Description)
	setIfPresent(u, "content", p.Content)
	setIfPresent(u, "icon_path", p.IconPath)
	setIfPresent(u, "order_index", p.OrderIndex)
	setIfPresent(u, "is_active", p.IsActive)
	return u
}

type representativeWorkPatch struct {
	Title        *string `json:"title"`
	Journal      *string `json:"journal"`
	Volume       *string `json:"volume"`
	Pages        *string `json:"pages"`
	Year         *string `json:"year"`
	ImagePath    *string `json:"image_path"`
	OrderIndex   *int    `json:"order_index"`
	IsActive     *bool   `json:"is_active"`
	IsInRevision *bool   `json:"is_in_revision"`
}

func (p representativeWorkPatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "title", p.Title)
	setIfPresent(u, "journal", p.Journal)
	setIfPresent(u, "volume", p.Volume)
	setIfPresent(u, "pages", p.Pages)
	setIfPresent(u, "year", p.Year)
	setIfPresent(u, "image_path", p.ImagePath)
	setIfPresent(u, "order_index", p.OrderIndex)
	setIfPresent(u, "is_active", p.IsActive)
	setIfPresent(u, "is_in_revision", p.IsInRevision)
	return u
}

type galleryImagePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ImagePath   *string `json:"image_path"`
	ImageWidth  *int    `json:"image_width"`
	ImageHeight *int    `json:"image_height"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}

func (p galleryImagePatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "title", p.Title)
	setIfPresent(u, "description", p.Description)
	setIfPresent(u, "category", p.Category)
	setIfPresent(u, "image_path", p.ImagePath)
	setIfPresent(u, "image_width", p.ImageWidth)
	setIfPresent(u, "image_height", p.ImageHeight)
	setIfPresent(u, "order_index", p.OrderIndex)
	setIfPresent(u, "is_active", p.IsActive)
	return u
}

type researchHighlightPatch struct {
	Description *string `json:"description"`
	Link        *string `json:"link"`
	AltText     *string `json:"alt_text"`
	ImagePath   *string `json:"image_path"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}

func (p researchHighlightPatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "description", p.Description)
	setIfPresent(u, "link", p.Link)
	setIfPresent(u, "alt_text", p.AltText)
	setIfPresent(u, "image_path", p.ImagePath)
	setIfPresent(u, "order_index", p.OrderIndex)
	setIfPresent(u, "is_active", p.IsActive)
	return u
}

type coverArtPatch struct {
	Journal     *string `json:"journal"`
	Description *string `json:"description"`
	AltText     *string `json:"alt_text"`
	Link        *string `json:"link"`
	ImagePath   *string `json:"image_path"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}

func (p coverArtPatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	setIfPresent(u, "journal", p.Journal)
	setIfPresent(u, "description", p.Description)
	setIfPresent(u, "alt_text", p.AltText)
	setIfPresent(u, "link", p.Link)
	setIfPresent(u, "image_path", p.ImagePath)
	setIfPresent(u, "order_index", p.OrderIndex)
	setIfPresent(u, "is_active", p.IsActive)
	return u
}

func setIfPresent[V any](u map[string]interface{}, column string, value *V) {
	if value != nil {
		u[column] = *value
	}
}
