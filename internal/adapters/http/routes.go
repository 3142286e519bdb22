package httpadapter

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches the API to the router.
//
//	POST   /api/solve       - exhaustive solve or solution count
//	POST   /api/hint        - easiest deductive move for a state
//	POST   /api/humansolve  - full technique replay with move report
//	POST   /api/rate        - difficulty grade for a puzzle
//	POST   /api/validate    - constraint check with conflict list
//	POST   /api/puzzles     - store a puzzle record
//	GET    /api/puzzles     - list stored puzzle metadata
//	GET    /api/puzzles/:id - fetch one stored record
//	DELETE /api/puzzles/:id - remove a stored record
//	GET    /healthz         - liveness probe
func RegisterRoutes(r gin.IRouter, h *Handlers) {
	api := r.Group("/api")
	{
		api.POST("/solve", h.HandleSolve)
		api.POST("/hint", h.HandleHint)
		api.POST("/humansolve", h.HandleSolveHuman)
		api.POST("/rate", h.HandleRate)
		api.POST("/validate", h.HandleValidate)

		api.POST("/puzzles", h.HandleSavePuzzle)
		api.GET("/puzzles", h.HandleListPuzzles)
		api.GET("/puzzles/:id", h.HandleGetPuzzle)
		api.DELETE("/puzzles/:id", h.HandleDeletePuzzle)
	}
	r.GET("/healthz", h.HandleHealth)
}
