// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/entres/candidates"
	"github.com/katalvlaran/entres/clustering"
)

// ErrTooLarge reports a request beyond server.max_entities or
// server.max_cells.
var ErrTooLarge = errors.New("server: request exceeds size limits")

// MethodInfo describes one registered strategy.
type MethodInfo struct {
	Method         clustering.Method `json:"method"`
	Name           string            `json:"name"`
	Info           string            `json:"info"`
	Config         string            `json:"config"`
	CleanCleanOnly bool              `json:"clean_clean_only"`
}

// ClusterRequest is the body of POST /v1/cluster. Zero-valued strategy
// fields fall back to the server configuration.
type ClusterRequest struct {
	Method        string   `json:"method"`
	Threshold     *float64 `json:"threshold"`
	PreferredSide string   `json:"preferred_side"`
	MoveBudget    int      `json:"move_budget"`
	TimeLimit     string   `json:"time_limit"`
	Seed          int64    `json:"seed"`

	CleanClean   bool                   `json:"clean_clean"`
	Dataset1Size int                    `json:"dataset1_size"`
	Dataset2Size int                    `json:"dataset2_size"`
	Candidates   []candidates.Candidate `json:"candidates"`
}

// Health answers the liveness probe.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListMethods returns every registered strategy with its default config.
func (s *Server) ListMethods(c *gin.Context) {
	out := make([]MethodInfo, 0, len(clustering.Methods()))
	for _, m := range clustering.Methods() {
		st := clustering.MustNew(m)
		out = append(out, MethodInfo{
			Method:         m,
			Name:           st.Name(),
			Info:           st.Info(),
			Config:         st.Config(),
			CleanCleanOnly: st.CleanCleanOnly(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Cluster runs one strategy over the posted candidates and returns a
// clustering.Result.
func (s *Server) Cluster(c *gin.Context) {
	var req ClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	cfg := *s.cfg
	if req.Method != "" {
		cfg.Method = req.Method
	}
	if req.Threshold != nil {
		cfg.Threshold = req.Threshold
	}
	if req.PreferredSide != "" {
		cfg.PreferredSide = req.PreferredSide
	}
	if req.MoveBudget != 0 {
		cfg.MoveBudget = req.MoveBudget
	}
	if req.TimeLimit != "" {
		cfg.TimeLimit = req.TimeLimit
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	strategy, err := cfg.Strategy(s.log)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := candidates.FromSlice(req.CleanClean, req.Dataset1Size, req.Dataset2Size, req.Candidates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err = s.checkSize(strategy.Method(), set); err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}

	res, err := strategy.Run(c.Request.Context(), set)
	switch {
	case errors.Is(err, clustering.ErrScenarioMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case err != nil:
		s.log.Error("server: clustering failed", "method", string(strategy.Method()), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "clustering failed"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// checkSize rejects sets whose entity count or cost matrix exceeds the
// configured limits. Sizes are checked before any per-entity allocation.
func (s *Server) checkSize(m clustering.Method, set *candidates.Pairs) error {
	maxEntities, maxCells := s.cfg.Server.Limits()
	n1, n2 := set.Dataset1Size(), set.Dataset2Size()
	if n1 > maxEntities || n2 > maxEntities || n1+n2 > maxEntities {
		return fmt.Errorf("%d+%d entities, limit %d: %w", n1, n2, maxEntities, ErrTooLarge)
	}

	var cells int64
	switch m {
	case clustering.MethodRowColumn:
		cells = int64(n1) * int64(n2)
	case clustering.MethodBestAssignment:
		k := int64(max(n1, n2))
		cells = k * k
	}
	if cells > maxCells {
		return fmt.Errorf("%s needs %d matrix cells, limit %d: %w", m, cells, maxCells, ErrTooLarge)
	}

	return nil
}
