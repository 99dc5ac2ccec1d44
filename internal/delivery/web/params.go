package web

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"siegestats/internal/application"
)

// parseRequest reads the roster and thresholds from the query string.
// players may repeat, one value per ticked dashboard checkbox, and each value
// may hold a comma-separated list. Without players the whole directory is
// selected, unless the dashboard form was submitted: then the roster stays
// empty so the run rejects it.
func (s *Server) parseRequest(c *gin.Context) (application.Request, error) {
	values, present := c.GetQueryArray(paramPlayers)
	_, fromForm := c.GetQuery(paramRosterForm)

	var roster []string
	switch {
	case present:
		for _, v := range values {
			roster = append(roster, application.ParseRoster(v)...)
		}
	case fromForm:
	default:
		all, err := s.services.Analysis.Participants()
		if err != nil {
			return application.Request{}, err
		}
		roster = all
	}

	req := s.services.Analysis.DefaultRequest(roster)

	var err error
	if req.MinOperatorMatches, err = intParam(c, paramMinOperator, req.MinOperatorMatches); err != nil {
		return application.Request{}, err
	}
	if req.MinMapMatches, err = intParam(c, paramMinMap, req.MinMapMatches); err != nil {
		return application.Request{}, err
	}
	if req.TopN, err = intParam(c, paramTop, req.TopN); err != nil {
		return application.Request{}, err
	}
	return req, nil
}

func intParam(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s=%q", application.ErrInvalidThreshold, name, raw)
	}
	return v, nil
}
