package calendarapi

import (
	"net/http"
	"time"

	"galleri-app/internal/api/forms"
	"galleri-app/internal/calendar"
	"galleri-app/internal/pagecache"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Admin forms submit at most this many events.
const maxEvents = 10

type Handler struct {
	repo  *calendar.Repository
	cache *pagecache.Cache
}

func NewHandler(repo *calendar.Repository, cache *pagecache.Cache) *Handler {
	return &Handler{repo: repo, cache: cache}
}

// GET /api/calendar
//
// Public view: only events that have not ended yet, ascending by start date.
func (h *Handler) ListUpcoming(c *gin.Context) {
	if cached, ok := h.cache.Get("/api/calendar"); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	events, errMsg := h.repo.GetAll(c.Request.Context())
	res := gin.H{"events": calendar.Upcoming(events, time.Now())}
	if errMsg != "" {
		res["error"] = errMsg
	}

	h.cache.Set("/api/calendar", res)
	c.JSON(http.StatusOK, res)
}

// GET /admin/api/calendar
//
// Admin view: every stored event, past ones included, for editing.
func (h *Handler) ListAll(c *gin.Context) {
	events, errMsg := h.repo.GetAll(c.Request.Context())
	res := gin.H{"events": events}
	if errMsg != "" {
		res["error"] = errMsg
	}
	c.JSON(http.StatusOK, res)
}

// PUT /admin/api/calendar
//
// Whole-table replace: the form's indexed event groups become the new
// CalendarEvents tab content. An event without a title is dropped.
func (h *Handler) Update(c *gin.Context) {
	items := forms.ParseIndexedGroup(
		c.PostForm,
		"events",
		[]string{"id", "title", "description", "imageUrl", "link", "startDate", "endDate"},
		"title",
		maxEvents,
	)

	events := make([]calendar.Event, 0, len(items))
	for _, item := range items {
		id := item["id"]
		if id == "" {
			id = uuid.NewString()
		}
		events = append(events, calendar.Event{
			ID:          id,
			Title:       item["title"],
			Description: item["description"],
			ImageURL:    item["imageUrl"],
			Link:        item["link"],
			StartDate:   item["startDate"],
			EndDate:     item["endDate"],
		})
	}

	if err := h.repo.ReplaceAll(c.Request.Context(), events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Fejl: " + err.Error(), "errors": true})
		return
	}

	h.cache.Invalidate("/api/calendar")
	c.JSON(http.StatusOK, gin.H{"message": "Kalenderen er blevet opdateret."})
}
