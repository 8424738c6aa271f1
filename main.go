package main

import (
	"context"
	"log"
	"time"

	"galleri-app/config"
	artworksapi "galleri-app/internal/api/artworks"
	calendarapi "galleri-app/internal/api/calendar"
	contactapi "galleri-app/internal/api/contact"
	contentapi "galleri-app/internal/api/content"
	printsapi "galleri-app/internal/api/prints"
	routes "galleri-app/internal/app/http"
	"galleri-app/internal/artworks"
	"galleri-app/internal/calendar"
	"galleri-app/internal/content"
	"galleri-app/internal/infra/sheets"
	"galleri-app/internal/pagecache"
	"galleri-app/internal/prints"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	var client *sheets.Client
	if config.GOOGLE_SERVICE_ACCOUNT_JSON == "" {
		log.Println("GOOGLE_SERVICE_ACCOUNT_JSON not set. Serving mock artwork data.")
	} else {
		c, err := sheets.New(context.Background(), config.GOOGLE_SERVICE_ACCOUNT_JSON)
		if err != nil {
			log.Printf("Could not initialise Sheets client: %v. Serving mock artwork data.", err)
		} else {
			client = c
		}
	}

	// A typed nil must not end up in the interface fields, or the mock-mode
	// checks stop firing.
	var artworkAPI artworks.SheetsAPI
	var calendarAPI calendar.SheetsAPI
	if client != nil {
		artworkAPI = client
		calendarAPI = client
	}

	artworkRepo := artworks.NewRepository(artworkAPI, config.BOLDSEN_SHEET_ID, config.ZENIA_SHEET_ID)
	calendarRepo := calendar.NewRepository(calendarAPI, config.BOLDSEN_SHEET_ID)
	contentStore := content.NewStore(config.CONTENT_FILE)
	printCatalog := prints.NewCatalog(config.ART_PRINTS_FILE)
	cache := pagecache.New(5 * time.Minute)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Handlers{
		Artworks: artworksapi.NewHandler(artworkRepo, cache),
		Calendar: calendarapi.NewHandler(calendarRepo, cache),
		Content:  contentapi.NewHandler(contentStore, cache),
		Prints:   printsapi.NewHandler(printCatalog, cache),
		Contact:  contactapi.NewHandler(contactapi.NewSMTPMailer()),
	})

	r.Run(":" + config.PORT)
}
