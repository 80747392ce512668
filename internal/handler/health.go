package handler

import (
	"context"

	"github.com/planner-app/planner/internal/handler/gen"
)

// GetHealth handles GET /healthz. It only reports that the process is up;
// database reachability is checked once at startup.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}
