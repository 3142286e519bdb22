package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/puzzle"
	"svw.info/sudoku-engine/internal/usecase"
)

// Handlers exposes the engine facade over JSON endpoints.
type Handlers struct {
	uc *usecase.Service
}

func NewHandlers(uc *usecase.Service) *Handlers { return &Handlers{uc: uc} }

// ErrorResponse is the JSON body for every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// boardRequest carries a grid either as a flat string ("..53...."
// style, one rune per cell) or as a cell slice. The slice wins when
// both are present and is the only form for grids above 9x9.
type boardRequest struct {
	Grid  string `json:"grid,omitempty"`
	Cells []int  `json:"cells,omitempty"`
}

var errNoBoard = errors.New("request needs a grid string or a cells array")

func (r boardRequest) values() ([]int, error) {
	if len(r.Cells) > 0 {
		return r.Cells, nil
	}
	if r.Grid == "" {
		return nil, errNoBoard
	}
	runes := []rune(r.Grid)
	values := make([]int, len(runes))
	for i, c := range runes {
		if c >= '0' && c <= '9' {
			values[i] = int(c - '0')
		}
	}
	return values, nil
}

type cellValuesDTO struct {
	Index  int   `json:"index"`
	Values []int `json:"values"`
}

type moveDTO struct {
	Method  string            `json:"method"`
	Used    []cellValuesDTO   `json:"used,omitempty"`
	Removed []cellValuesDTO   `json:"removed,omitempty"`
	Set     *puzzle.CellValue `json:"set,omitempty"`
}

func toMoveDTO(m puzzle.Move) moveDTO {
	dto := moveDTO{Method: m.Method, Set: m.Set}
	for _, u := range m.Used {
		dto.Used = append(dto.Used, cellValuesDTO{Index: u.Index, Values: u.Values.Digits()})
	}
	for _, r := range m.Removed {
		dto.Removed = append(dto.Removed, cellValuesDTO{Index: r.Index, Values: r.Values.Digits()})
	}
	return dto
}

func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

// statusFor maps engine errors onto HTTP status codes. Malformed
// boards are the caller's fault; boards that are well formed but have
// no unique solution are unprocessable.
func statusFor(err error) (int, string) {
	var lengthErr *puzzle.InputLengthError
	var conflictErr *puzzle.ConflictError
	var valueErr *puzzle.ValueNotPossibleError
	var multiErr *puzzle.MultipleSolutionError
	var capErr *puzzle.ExcessiveSolutionsError
	switch {
	case errors.As(err, &lengthErr), errors.As(err, &conflictErr),
		errors.As(err, &valueErr), errors.Is(err, errNoBoard):
		return http.StatusBadRequest, "bad_input"
	case errors.As(err, &multiErr), errors.As(err, &capErr),
		errors.Is(err, puzzle.ErrNoSolution), errors.Is(err, puzzle.ErrHumanSolve):
		return http.StatusUnprocessableEntity, "unsolvable"
	case errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func abortWithError(c *gin.Context, logger *slog.Logger, err error) {
	status, code := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	} else {
		logger.Debug("request rejected", "status", status, "error", err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

type solveRequest struct {
	boardRequest
	CountOnly bool `json:"countOnly,omitempty"`
}

type solveResponse struct {
	Solution   []int `json:"solution,omitempty"`
	Count      int   `json:"count"`
	Nodes      int   `json:"nodes"`
	DurationMs int64 `json:"durationMs"`
}

// HandleSolve runs the exhaustive solver. With countOnly it reports
// the number of solutions instead of requiring a unique one.
func (h *Handlers) HandleSolve(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleSolve")

	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: "bad_input"})
		return
	}
	givens, err := req.values()
	if err != nil {
		abortWithError(c, logger, err)
		return
	}

	if req.CountOnly {
		count, stats, err := h.uc.Count(c.Request.Context(), givens)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, solveResponse{Count: count, Nodes: stats.Nodes, DurationMs: stats.Duration.Milliseconds()})
		return
	}

	sol, stats, err := h.uc.Solve(c.Request.Context(), givens)
	if err != nil {
		abortWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, solveResponse{Solution: sol, Count: 1, Nodes: stats.Nodes, DurationMs: stats.Duration.Milliseconds()})
}

type hintResponse struct {
	Found bool     `json:"found"`
	Move  *moveDTO `json:"move,omitempty"`
}

// HandleHint returns the easiest deductive move for the posted state.
func (h *Handlers) HandleHint(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleHint")

	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: "bad_input"})
		return
	}
	state, err := req.values()
	if err != nil {
		abortWithError(c, logger, err)
		return
	}

	move, found, err := h.uc.Hint(c.Request.Context(), state)
	if err != nil {
		abortWithError(c, logger, err)
		return
	}
	resp := hintResponse{Found: found}
	if found {
		dto := toMoveDTO(move)
		resp.Move = &dto
	}
	c.JSON(http.StatusOK, resp)
}

type humanSolveResponse struct {
	Solution []int     `json:"solution"`
	Moves    []moveDTO `json:"moves"`
}

// HandleSolveHuman replays the technique catalogue and returns the
// full move report alongside the solution.
func (h *Handlers) HandleSolveHuman(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleSolveHuman")

	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: "bad_input"})
		return
	}
	givens, err := req.values()
	if err != nil {
		abortWithError(c, logger, err)
		return
	}

	sol, moves, err := h.uc.SolveHuman(c.Request.Context(), givens)
	if err != nil {
		abortWithError(c, logger, err)
		return
	}
	resp := humanSolveResponse{Solution: sol, Moves: make([]moveDTO, 0, len(moves))}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, toMoveDTO(m))
	}
	c.JSON(http.StatusOK, resp)
}

type rateResponse struct {
	Difficulty string  `json:"difficulty"`
	Rating     float64 `json:"rating"`
}

// HandleRate grades the puzzle by the hardest technique its human
// solve needs.
func (h *Handlers) HandleRate(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleRate")

	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: "bad_input"})
		return
	}
	givens, err := req.values()
	if err != nil {
		abortWithError(c, logger, err)
		return
	}

	grade, rating, err := h.uc.Rate(c.Request.Context(), givens)
	if err != nil {
		abortWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, rateResponse{Difficulty: grade.String(), Rating: rating})
}

type validateResponse struct {
	Valid     bool              `json:"valid"`
	Conflicts []domain.Conflict `json:"conflicts,omitempty"`
}

// HandleValidate runs the constraint check. A conflicting board is a
// 200 with valid=false; only malformed input is an error.
func (h *Handlers) HandleValidate(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleValidate")

	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: "bad_input"})
		return
	}
	givens, err := req.values()
	if err != nil {
		abortWithError(c, logger, err)
		return
	}

	ok, conflicts, err := h.uc.Validate(c.Request.Context(), givens)
	if err != nil {
		abortWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, validateResponse{Valid: ok, Conflicts: conflicts})
}

type savePuzzleRequest struct {
	boardRequest
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// HandleSavePuzzle stores a puzzle record. Unrated submissions are
// graded before they hit storage.
func (h *Handlers) HandleSavePuzzle(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleSavePuzzle")

	var req savePuzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error(), Code: "bad_input"})
		return
	}
	givens, err := req.values()
	if err != nil {
		abortWithError(c, logger, err)
		return
	}

	rec := domain.PuzzleRecord{Name: req.Name, Givens: givens, Notes: req.Notes}
	if err := h.uc.Save(c.Request.Context(), &rec); err != nil {
		abortWithError(c, logger, err)
		return
	}
	logger.Info("puzzle saved", "id", rec.ID, "difficulty", rec.Difficulty.String())
	c.JSON(http.StatusCreated, rec)
}

// HandleListPuzzles returns metadata for every stored puzzle.
func (h *Handlers) HandleListPuzzles(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleListPuzzles")

	metas, err := h.uc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, logger, err)
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	c.JSON(http.StatusOK, metas)
}

// HandleGetPuzzle returns one stored record by ID.
func (h *Handlers) HandleGetPuzzle(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleGetPuzzle")

	rec, err := h.uc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// HandleDeletePuzzle removes a stored record by ID.
func (h *Handlers) HandleDeletePuzzle(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleDeletePuzzle")

	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, logger, err)
		return
	}
	logger.Info("puzzle deleted", "id", c.Param("id"))
	c.Status(http.StatusNoContent)
}

// HandleHealth is the liveness probe.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
