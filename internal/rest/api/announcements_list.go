package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcherald/mcherald/internal/core/usecases/listannouncements"
	"github.com/mcherald/mcherald/internal/rest/model"
)

// ListAnnouncements godoc
// @Summary      List announcements
// @Description  List the most recently delivered status announcements, newest first
// @Tags         history
// @Produce      json
// @Param        limit  query  int  false  "Maximum number of announcements to return"
// @Success      200 {array} model.Announcement
// @Router       /announcements [get]
func (a *API) ListAnnouncements(c *gin.Context) {
	var form HistoryForm
	if err := c.ShouldBindQuery(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	limit := form.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	ucRequest := listannouncements.NewRequest(limit)
	announcements, err := a.container.ListAnnouncements.Execute(c, ucRequest)
	if err != nil {
		a.logger.Err(err).Msg("Failed to obtain announcements")
		c.Status(http.StatusInternalServerError)
		return
	}

	result := make([]model.Announcement, 0, len(announcements))
	for _, ann := range announcements {
		result = append(result, model.NewAnnouncementFromDomain(ann))
	}
	c.JSON(http.StatusOK, result)
}
