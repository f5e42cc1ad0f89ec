package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/mazebot-solver/api/identity"
	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/beka-birhanu/mazebot-solver/service"
	"github.com/beka-birhanu/mazebot-solver/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Config holds the dependencies of a Controller.
type Config struct {
	Solver         i.Solver
	DefaultMinSize int
	DefaultMaxSize int
}

// Controller serves maze solving and solution lookups.
type Controller struct {
	solver         i.Solver
	defaultMinSize int
	defaultMaxSize int
}

// NewController initializes a Controller.
func NewController(c Config) (*Controller, error) {
	if c.Solver == nil {
		return nil, errors.New("solver is required")
	}
	return &Controller{
		solver:         c.Solver,
		defaultMinSize: c.DefaultMinSize,
		defaultMaxSize: c.DefaultMaxSize,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *Controller) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *Controller) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/solve", mc.solve)
		mazes.POST("/random/solve", mc.solveRandom)
		mazes.POST("/generate", mc.generate)
	}

	solutions := route.Group("/solutions")
	{
		solutions.GET("", mc.history)
		solutions.GET("/:ID", mc.solution)
	}
}

func (mc *Controller) solve(ctx *gin.Context) {
	solverID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	problem := &dmn.Problem{Name: request.Name, Rows: request.Map}
	if request.StartingPosition != nil {
		if len(request.StartingPosition) != 2 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "startingPosition must be [x, y]"})
			return
		}
		problem.Start = &dmn.Position{request.StartingPosition[0], request.StartingPosition[1]}
	}

	solution, err := mc.solver.Solve(ctx.Request.Context(), solverID, problem)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, solution)
}

func (mc *Controller) solveRandom(ctx *gin.Context) {
	solverID, ok := requireUser(ctx)
	if !ok {
		return
	}

	minSize, err := intQuery(ctx, "minSize", mc.defaultMinSize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	maxSize, err := intQuery(ctx, "maxSize", mc.defaultMaxSize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if minSize <= 0 || maxSize < minSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid size range"})
		return
	}

	submit := false
	if raw := ctx.Query("submit"); raw != "" {
		submit, err = strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "submit must be a boolean"})
			return
		}
	}

	solution, err := mc.solver.SolveRandom(ctx.Request.Context(), solverID, minSize, maxSize, submit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, solution)
}

func (mc *Controller) generate(ctx *gin.Context) {
	width, err := intQuery(ctx, "width", 10)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	height, err := intQuery(ctx, "height", width)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	problem, err := mc.solver.Generate(width, height)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProblemResponse(problem))
}

func (mc *Controller) solution(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid solution id"})
		return
	}

	solution, err := mc.solver.Solution(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, solution)
}

func (mc *Controller) history(ctx *gin.Context) {
	solverID, ok := requireUser(ctx)
	if !ok {
		return
	}

	limit, err := intQuery(ctx, "limit", 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solutions, err := mc.solver.History(solverID, int64(limit))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"solutions": solutions})
}

func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}
	return id, true
}

func intQuery(ctx *gin.Context, key string, fallback int) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return v, nil
}

func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidProblem), errors.Is(err, service.ErrNoStart):
		status = http.StatusBadRequest
	case errors.Is(err, i.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrSource), errors.Is(err, service.ErrSubmit):
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrNoSource), errors.Is(err, service.ErrNoFactory):
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
