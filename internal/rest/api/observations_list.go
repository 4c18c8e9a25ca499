package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcherald/mcherald/internal/core/usecases/listobservations"
	"github.com/mcherald/mcherald/internal/rest/model"
)

const defaultHistoryLimit = 100

type HistoryForm struct {
	Limit int `binding:"omitempty,gte=1,lte=1000" form:"limit"`
}

// ListObservations godoc
// @Summary      List observations
// @Description  List the most recent check cycle outcomes, newest first
// @Tags         history
// @Produce      json
// @Param        limit  query  int  false  "Maximum number of observations to return"
// @Success      200 {array} model.Observation
// @Router       /observations [get]
func (a *API) ListObservations(c *gin.Context) {
	var form HistoryForm
	if err := c.ShouldBindQuery(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	limit := form.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	ucRequest := listobservations.NewRequest(limit)
	observations, err := a.container.ListObservations.Execute(c, ucRequest)
	if err != nil {
		a.logger.Err(err).Msg("Failed to obtain observations")
		c.Status(http.StatusInternalServerError)
		return
	}

	result := make([]model.Observation, 0, len(observations))
	for _, obs := range observations {
		result = append(result, model.NewObservationFromDomain(obs))
	}
	c.JSON(http.StatusOK, result)
}
