package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/anime-api/internal/api/shared"
	"github.com/phrazzld/anime-api/internal/config"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/phrazzld/anime-api/internal/service"
)

// AnimeHandler handles the /animes routes.
type AnimeHandler struct {
	animeService service.AnimeService
	pagination   config.PaginationConfig
	logger       *slog.Logger
	now          func() time.Time
}

// NewAnimeHandler creates a new AnimeHandler.
func NewAnimeHandler(
	animeService service.AnimeService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *AnimeHandler {
	if animeService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("animeService cannot be nil for AnimeHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AnimeHandler{
		animeService: animeService,
		pagination:   pagination,
		logger:       logger.With(slog.String("component", "anime_handler")),
		now:          time.Now,
	}
}

// List handles GET /animes.
func (h *AnimeHandler) List(w http.ResponseWriter, r *http.Request) {
	pageable, err := parsePageable(r, h.pagination)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := h.animeService.ListAll(r.Context(), pageable)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// ListAll handles GET /animes/all.
func (h *AnimeHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	animes, err := h.animeService.ListAllNonPaginated(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, animes)
}

// Search handles GET /animes/search?name=.
func (h *AnimeHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		HandleAPIError(w, r, domain.NewValidationError("name", "name query parameter is required", nil))
		return
	}

	anime, err := h.animeService.FindByName(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, anime)
}

// Get handles GET /animes/{id}.
func (h *AnimeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	anime, err := h.animeService.FindByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, anime)
}

// Create handles POST /animes.
func (h *AnimeHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req domain.AnimeRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("saving anime", slog.String("timestamp", h.timestamp()))

	anime, err := h.animeService.Save(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, anime)
}

// Replace handles PUT /animes/{id}.
func (h *AnimeHandler) Replace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req domain.AnimeRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("replacing anime",
		slog.Int64("anime_id", id),
		slog.String("timestamp", h.timestamp()))

	if err := h.animeService.Replace(r.Context(), id, req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /animes/admin/{id}.
func (h *AnimeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("deleting anime",
		slog.Int64("anime_id", id),
		slog.String("timestamp", h.timestamp()))

	if err := h.animeService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// timestamp formats the current time the way the database renders it.
func (h *AnimeHandler) timestamp() string {
	return h.now().Format(time.DateTime)
}
