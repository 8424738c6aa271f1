package contentapi

// Form shapes for the admin content editors. The admin UI posts classic
// form-encoded bodies; repeated groups arrive as indexed fields and are
// parsed separately in the handlers.

type aboutForm struct {
	Title             string `form:"title"`
	BoldsenImageURL   string `form:"boldsen_image_url" binding:"required,url"`
	BoldsenContent    string `form:"boldsen_content"`
	ZeniaImageURL     string `form:"zenia_image_url" binding:"required,url"`
	ZeniaContent      string `form:"zenia_content"`
	BoldsenWebsiteURL string `form:"boldsen_website_url" binding:"omitempty,url"`
	ZeniaWebsiteURL   string `form:"zenia_website_url" binding:"omitempty,url"`
}

type galleryForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type contactPageForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Address     string `form:"address"`

	BoldsenEmail string `form:"boldsen_email" binding:"required,email"`
	BoldsenPhone string `form:"boldsen_phone"`
	BoldsenCVR   string `form:"boldsen_cvr"`

	ZeniaEmail string `form:"zenia_email" binding:"required,email"`
	ZeniaPhone string `form:"zenia_phone"`
	ZeniaCVR   string `form:"zenia_cvr"`
}

type seoForm struct {
	DefaultTitle      string `form:"defaultTitle"`
	TitleTemplate     string `form:"titleTemplate"`
	Description       string `form:"description"`
	Keywords          string `form:"keywords"` // comma-separated
	GoogleAnalyticsID string `form:"googleAnalyticsId"`
	HeaderScript      string `form:"headerScript"`
	OgImageURL        string `form:"ogImageUrl" binding:"omitempty,url"`
}

type lagersalgForm struct {
	SecondaryGalleryActive      string `form:"secondaryGalleryActive"`
	SecondaryGalleryName        string `form:"secondaryGalleryName"`
	SecondaryGalleryTitle       string `form:"secondaryGalleryTitle"`
	SecondaryGalleryDescription string `form:"secondaryGalleryDescription"`
}
