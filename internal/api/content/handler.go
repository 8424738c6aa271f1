package contentapi

import (
	"net/http"
	"strings"

	"galleri-app/internal/api/forms"
	"galleri-app/internal/content"
	"galleri-app/internal/pagecache"

	"github.com/gin-gonic/gin"
)

const contentPath = "/api/content"

type Handler struct {
	store *content.Store
	cache *pagecache.Cache
}

func NewHandler(store *content.Store, cache *pagecache.Cache) *Handler {
	return &Handler{store: store, cache: cache}
}

// GET /api/content
func (h *Handler) Get(c *gin.Context) {
	if cached, ok := h.cache.Get(contentPath); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	doc := h.store.Read()
	h.cache.Set(contentPath, doc)
	c.JSON(http.StatusOK, doc)
}

// persistSection validates nothing; it is the shared tail of every section
// update: build the patch, write it, invalidate, answer with the section's
// Danish confirmation.
func (h *Handler) persistSection(c *gin.Context, section string, doc interface{}, confirmation string) {
	patch, err := content.SectionPatch(section, doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fejl: " + err.Error()})
		return
	}
	if err := h.store.Update(patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fejl: " + err.Error()})
		return
	}

	h.cache.Invalidate(contentPath)
	c.JSON(http.StatusOK, gin.H{"message": confirmation})
}

// PUT /admin/api/content/about
func (h *Handler) UpdateAbout(c *gin.Context) {
	var form aboutForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data er ugyldig.", "errors": forms.FieldErrors(err)})
		return
	}

	h.persistSection(c, "about", content.AboutContent{
		Title:             form.Title,
		BoldsenImageURL:   form.BoldsenImageURL,
		BoldsenContent:    form.BoldsenContent,
		ZeniaImageURL:     form.ZeniaImageURL,
		ZeniaContent:      form.ZeniaContent,
		BoldsenWebsiteURL: form.BoldsenWebsiteURL,
		ZeniaWebsiteURL:   form.ZeniaWebsiteURL,
	}, "Siden 'Om Os' er blevet opdateret.")
}

// PUT /admin/api/content/home
func (h *Handler) UpdateHome(c *gin.Context) {
	heroURL := c.PostForm("home_hero_image_url")
	introURL := c.PostForm("home_intro_image_url")
	if heroURL != "" && !strings.HasPrefix(heroURL, "http") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Hero billede URL er ugyldig."})
		return
	}
	if introURL != "" && !strings.HasPrefix(introURL, "http") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Intro billede URL er ugyldig."})
		return
	}

	slideItems := forms.ParseIndexedGroup(
		c.PostForm,
		"promo_carousel_slides",
		[]string{"title", "description", "media_url", "media_type", "button_text", "button_link"},
		"title",
		4,
	)
	slides := make([]content.PromoCarouselSlide, 0, len(slideItems))
	for _, item := range slideItems {
		slides = append(slides, content.PromoCarouselSlide{
			Title:       item["title"],
			Description: item["description"],
			MediaURL:    item["media_url"],
			MediaType:   item["media_type"],
			ButtonText:  item["button_text"],
			ButtonLink:  item["button_link"],
		})
	}

	h.persistSection(c, "home", content.HomeContent{
		HeroImageURL:        heroURL,
		HeroTitle:           c.PostForm("home_hero_title"),
		HeroSubtitle:        c.PostForm("home_hero_subtitle"),
		IntroTitle:          c.PostForm("home_intro_title"),
		IntroContent:        c.PostForm("home_intro_content"),
		IntroSignature:      c.PostForm("home_intro_signature"),
		IntroImageURL:       introURL,
		PromoCarouselSlides: slides,
		PromoCarouselActive: c.PostForm("promo_carousel_active") == "on",
	}, "Forsiden er blevet opdateret.")
}

// PUT /admin/api/content/gallery
func (h *Handler) UpdateGallery(c *gin.Context) {
	var form galleryForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data er ugyldig.", "errors": forms.FieldErrors(err)})
		return
	}

	h.persistSection(c, "gallery", content.GalleryContent{
		Title:       form.Title,
		Description: form.Description,
	}, "Gallerisiden er blevet opdateret.")
}

// PUT /admin/api/content/contact
func (h *Handler) UpdateContact(c *gin.Context) {
	var form contactPageForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data er ugyldig.", "errors": forms.FieldErrors(err)})
		return
	}

	h.persistSection(c, "contact", content.ContactContent{
		Title:       form.Title,
		Description: form.Description,
		Address:     form.Address,
		Boldsen: content.ContactPerson{
			Email: form.BoldsenEmail,
			Phone: form.BoldsenPhone,
			CVR:   form.BoldsenCVR,
		},
		Zenia: content.ContactPerson{
			Email: form.ZeniaEmail,
			Phone: form.ZeniaPhone,
			CVR:   form.ZeniaCVR,
		},
	}, "Kontaktsiden er blevet opdateret.")
}

// PUT /admin/api/content/footer
func (h *Handler) UpdateFooter(c *gin.Context) {
	h.persistSection(c, "footer", content.FooterContent{
		Copyright:   c.PostForm("copyright"),
		SocialLinks: parseSocialLinks(c.PostForm),
	}, "Footer er blevet opdateret.")
}

// PUT /admin/api/content/exhibitions
func (h *Handler) UpdateExhibitions(c *gin.Context) {
	partnerItems := forms.ParseIndexedGroup(
		c.PostForm,
		"partners",
		[]string{"name", "image_url", "website", "description", "address", "email", "phone"},
		"name",
		4,
	)
	partners := make([]content.ExhibitionPartner, 0, len(partnerItems))
	for _, item := range partnerItems {
		partners = append(partners, content.ExhibitionPartner{
			Name:        item["name"],
			ImageURL:    item["image_url"],
			Website:     item["website"],
			Description: item["description"],
			Address:     item["address"],
			Email:       item["email"],
			Phone:       item["phone"],
		})
	}

	imageItems := forms.ParseIndexedGroup(
		c.PostForm,
		"gallery_images",
		[]string{"url", "date", "caption"},
		"url",
		12,
	)
	images := make([]content.ExhibitionGalleryImage, 0, len(imageItems))
	for _, item := range imageItems {
		images = append(images, content.ExhibitionGalleryImage{
			URL:     item["url"],
			Date:    item["date"],
			Caption: item["caption"],
		})
	}

	h.persistSection(c, "exhibitions", content.ExhibitionsContent{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		GalleryTitle:  c.PostForm("gallery_title"),
		Partners:      partners,
		GalleryImages: images,
	}, "Siden 'Udstillinger' er blevet opdateret.")
}

// PUT /admin/api/content/seo
//
// The SEO editor only covers the metadata half of the seo sub-document; the
// secondary-gallery half is merged in from the persisted document so the two
// editors do not clobber each other.
func (h *Handler) UpdateSeo(c *gin.Context) {
	var form seoForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data er ugyldig.", "errors": forms.FieldErrors(err)})
		return
	}

	keywords := []string{}
	for _, k := range strings.Split(form.Keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	seo := h.store.Read().Seo
	seo.DefaultTitle = form.DefaultTitle
	seo.TitleTemplate = form.TitleTemplate
	seo.Description = form.Description
	seo.Keywords = keywords
	seo.GoogleAnalyticsID = form.GoogleAnalyticsID
	seo.HeaderScript = form.HeaderScript
	seo.OgImageURL = form.OgImageURL

	h.persistSection(c, "seo", seo, "SEO & Indstillinger er blevet opdateret.")
}

// PUT /admin/api/content/lagersalg
//
// Counterpart to UpdateSeo: edits only the secondary-gallery fields.
func (h *Handler) UpdateLagersalg(c *gin.Context) {
	var form lagersalgForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data er ugyldig.", "errors": true})
		return
	}

	seo := h.store.Read().Seo
	seo.SecondaryGalleryActive = form.SecondaryGalleryActive == "on"
	seo.SecondaryGalleryName = form.SecondaryGalleryName
	seo.SecondaryGalleryTitle = form.SecondaryGalleryTitle
	seo.SecondaryGalleryDescription = form.SecondaryGalleryDescription

	h.persistSection(c, "seo", seo, "Lagersalg indstillinger er blevet opdateret.")
}

// parseSocialLinks keeps a link only when both platform and url are set.
func parseSocialLinks(get func(string) string) []content.SocialLink {
	items := forms.ParseIndexedGroup(get, "social_links", []string{"platform", "url"}, "platform", 4)
	links := make([]content.SocialLink, 0, len(items))
	for _, item := range items {
		if item["url"] == "" {
			continue
		}
		links = append(links, content.SocialLink{Platform: item["platform"], URL: item["url"]})
	}
	return links
}
