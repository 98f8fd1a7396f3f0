package api

import (
	"net/http"
	"strconv"

	resdto "roombooking/internal/handler/dto/response"
	"roombooking/internal/handler/httperr"
	"roombooking/internal/infra/seed"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/commands"
	"roombooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingLocation = errs.New("missing location parameter")

type RoomHandler struct {
	commands commands.RoomCommands
	queries  queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, qrs queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		commands: cmds,
		queries:  qrs,
	}
}

func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context(), queries.RoomFilter{})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(views),
		"rooms": resdto.FromRoomViews(views),
	})
}

func (h *RoomHandler) Get(c *gin.Context) {
	view, err := h.queries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

func (h *RoomHandler) FilterByCapacity(c *gin.Context) {
	filter := queries.RoomFilter{
		MinCapacity: queryInt(c, "min"),
		MaxCapacity: queryInt(c, "max"),
	}
	h.listFiltered(c, filter)
}

func (h *RoomHandler) FilterByLocation(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingLocation, "location parameter is required")
		return
	}
	h.listFiltered(c, queries.RoomFilter{Location: location})
}

func (h *RoomHandler) FilterByPrice(c *gin.Context) {
	filter := queries.RoomFilter{
		MinPrice: queryFloat(c, "min"),
		MaxPrice: queryFloat(c, "max"),
	}
	h.listFiltered(c, filter)
}

func (h *RoomHandler) Seed(c *gin.Context) {
	count, err := h.commands.Seed(c.Request.Context(), seed.Rooms())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.SeedResponse{
		Message: "Room catalog seeded",
		Count:   count,
	})
}

func (h *RoomHandler) listFiltered(c *gin.Context, filter queries.RoomFilter) {
	views, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(views),
		"rooms": resdto.FromRoomViews(views),
	})
}

func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

func queryFloat(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return v
}
