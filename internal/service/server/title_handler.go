package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/animeta/internal/business"
	"github.com/Agurato/animeta/internal/infrastructure"
	"github.com/Agurato/animeta/internal/model"
)

type TitleGetter interface {
	GetFullTitleDetails(ctx context.Context, id int) (*model.Title, error)
	FindTitleID(ctx context.Context, name string) (int, error)
}

type TitleHandler struct {
	TitleGetter
}

func NewTitleHandler(tg TitleGetter) *TitleHandler {
	return &TitleHandler{
		TitleGetter: tg,
	}
}

// GETTitle returns the full details of a title
func (th TitleHandler) GETTitle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title id"})
		return
	}
	title, err := th.TitleGetter.GetFullTitleDetails(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Int("malID", id).Msg("Could not fetch title details")
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, title)
}

// GETTitleSearch returns the ID of the title best matching the "q" query parameter
func (th TitleHandler) GETTitleSearch(c *gin.Context) {
	name, ok := c.GetQuery("q")
	if !ok || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	id, err := th.TitleGetter.FindTitleID(c.Request.Context(), name)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("Could not search title")
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// errorStatus chooses the HTTP status sent back for an error of the pipeline
func errorStatus(err error) int {
	var upstreamErr *infrastructure.UpstreamError
	switch {
	case errors.Is(err, business.ErrTitleNotFound):
		return http.StatusNotFound
	case errors.As(err, &upstreamErr):
		if upstreamErr.StatusCode == http.StatusNotFound || upstreamErr.StatusCode == http.StatusTooManyRequests {
			return upstreamErr.StatusCode
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
