package content

import (
	"fmt"
	"time"
)

// Default is the document served when the content file is missing or corrupt.
// The site must always render, so reads never fail to the caller.
func Default() PageContent {
	return PageContent{
		About: AboutContent{
			Title:           "Om Kunstnerne",
			BoldsenImageURL: "https://picsum.photos/seed/boldsen-artist/800/800",
			BoldsenContent:  "Indhold for Martin Boldsen mangler.",
			ZeniaImageURL:   "https://picsum.photos/seed/zenia-artist/800/800",
			ZeniaContent:    "Indhold for Anja Zenia mangler.",
		},
		Home: HomeContent{
			HeroImageURL:        "https://picsum.photos/seed/hero-gallery/1600/600",
			HeroTitle:           "Velkommen til Zenia & Boldsen",
			HeroSubtitle:        "Unikke kunstværker og keramik",
			IntroTitle:          "To kunstnere, et univers",
			IntroContent:        "Indhold mangler...",
			IntroSignature:      "Zenia & Boldsen",
			IntroImageURL:       "https://picsum.photos/seed/rolig-vildskab/800/800",
			PromoCarouselSlides: []PromoCarouselSlide{},
			PromoCarouselActive: true,
		},
		Gallery: GalleryContent{
			Title:       "Udforsk Værkerne",
			Description: "Velkommen til vores fælles galleri. Her kan du dykke ned i Martins malerier og Anjas keramiske værker.",
		},
		Contact: ContactContent{
			Title:       "Kontakt Os",
			Description: "Har du spørgsmål, er interesseret i et værk, eller ønsker du at diskutere en kommission? Tøv ikke med at række ud.",
			Address:     "Atelier i Slagelse (Besøg efter aftale)",
			Boldsen: ContactPerson{
				Email: "boldsen@email.dk",
				Phone: "+45 00 00 00 01",
				CVR:   "11111111",
			},
			Zenia: ContactPerson{
				Email: "zenia@email.dk",
				Phone: "+45 00 00 00 02",
				CVR:   "22222222",
			},
		},
		Footer: FooterContent{
			Copyright: fmt.Sprintf("© %d Zenia & Boldsen. Alle rettigheder forbeholdes.", time.Now().Year()),
		},
		Exhibitions: ExhibitionsContent{
			Title:         "Udstillinger & Samarbejder",
			Description:   "Her kan du se vores nuværende og tidligere udstillinger.",
			GalleryTitle:  "Galleri fra Udstillinger",
			Partners:      []ExhibitionPartner{},
			GalleryImages: []ExhibitionGalleryImage{},
		},
		Seo: SeoContent{
			DefaultTitle:  "Zenia & Boldsen | Kunst og Keramik",
			TitleTemplate: "%s | Zenia & Boldsen",
			Description:   "Udforsk de unikke malerier af Martin Boldsen og keramik af Anja Zenia.",
			Keywords: []string{
				"kunst",
				"galleri",
				"malerier",
				"keramik",
				"martin boldsen",
				"anja zenia",
			},
			SecondaryGalleryName:        "Lagersalg",
			SecondaryGalleryTitle:       "Lagersalg",
			SecondaryGalleryDescription: "Her finder du et udvalg af værker til nedsat pris.",
		},
	}
}
