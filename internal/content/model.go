package content

// PageContent is the single JSON document holding every piece of editable
// site copy. All top-level keys are always populated; admin edits merge into
// one sub-document at a time and never replace the whole file.
type PageContent struct {
	About       AboutContent       `json:"about"`
	Home        HomeContent        `json:"home"`
	Gallery     GalleryContent     `json:"gallery"`
	Contact     ContactContent     `json:"contact"`
	Footer      FooterContent      `json:"footer"`
	Exhibitions ExhibitionsContent `json:"exhibitions"`
	Seo         SeoContent         `json:"seo"`
}

type PromoCarouselSlide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
	MediaType   string `json:"media_type"` // "image" or "video"
	ButtonText  string `json:"button_text"`
	ButtonLink  string `json:"button_link"`
}

type HomeContent struct {
	HeroImageURL        string               `json:"home_hero_image_url"`
	HeroTitle           string               `json:"home_hero_title"`
	HeroSubtitle        string               `json:"home_hero_subtitle"`
	IntroTitle          string               `json:"home_intro_title"`
	IntroContent        string               `json:"home_intro_content"`
	IntroSignature      string               `json:"home_intro_signature"`
	IntroImageURL       string               `json:"home_intro_image_url"`
	PromoCarouselSlides []PromoCarouselSlide `json:"promo_carousel_slides"`
	PromoCarouselActive bool                 `json:"promo_carousel_active"`
}

type AboutContent struct {
	Title             string `json:"title"`
	BoldsenImageURL   string `json:"boldsen_image_url"`
	BoldsenContent    string `json:"boldsen_content"`
	ZeniaImageURL     string `json:"zenia_image_url"`
	ZeniaContent      string `json:"zenia_content"`
	// No omitempty on section-level fields: a cleared value must reach the
	// merge as an explicit empty, or the stored value survives the update.
	BoldsenWebsiteURL string `json:"boldsen_website_url"`
	ZeniaWebsiteURL   string `json:"zenia_website_url"`
}

type GalleryContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SocialLink struct {
	Platform string `json:"platform"` // instagram, facebook, linkedin, twitter, youtube
	URL      string `json:"url"`
}

type ContactPerson struct {
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	CVR         string       `json:"cvr"`
	SocialLinks []SocialLink `json:"social_links,omitempty"`
}

type ContactContent struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Address     string        `json:"address"`
	Boldsen     ContactPerson `json:"boldsen"`
	Zenia       ContactPerson `json:"zenia"`
}

type FooterContent struct {
	Copyright   string       `json:"copyright"`
	SocialLinks []SocialLink `json:"social_links"`
}

type ExhibitionPartner struct {
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website,omitempty"`
}

type ExhibitionGalleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	Date    string `json:"date,omitempty"`
}

type ExhibitionsContent struct {
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	GalleryTitle  string                   `json:"gallery_title"`
	Partners      []ExhibitionPartner      `json:"partners"`
	GalleryImages []ExhibitionGalleryImage `json:"gallery_images"`
}

type SeoContent struct {
	DefaultTitle      string   `json:"defaultTitle"`
	TitleTemplate     string   `json:"titleTemplate"`
	Description       string   `json:"description"`
	Keywords          []string `json:"keywords"`
	GoogleAnalyticsID string   `json:"googleAnalyticsId"`
	HeaderScript      string   `json:"headerScript"`
	OgImageURL        string   `json:"ogImageUrl"`

	SecondaryGalleryActive      bool   `json:"secondaryGalleryActive"`
	SecondaryGalleryName        string `json:"secondaryGalleryName"`
	SecondaryGalleryTitle       string `json:"secondaryGalleryTitle"`
	SecondaryGalleryDescription string `json:"secondaryGalleryDescription"`
}
