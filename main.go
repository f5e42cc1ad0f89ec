package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/beka-birhanu/mazebot-solver/api"
	api_i "github.com/beka-birhanu/mazebot-solver/api/i"
	"github.com/beka-birhanu/mazebot-solver/api/identity"
	mazeapi "github.com/beka-birhanu/mazebot-solver/api/maze"
	"github.com/beka-birhanu/mazebot-solver/config"
	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/beka-birhanu/mazebot-solver/generator"
	"github.com/beka-birhanu/mazebot-solver/infrastruture/cache"
	logger "github.com/beka-birhanu/mazebot-solver/infrastruture/log"
	"github.com/beka-birhanu/mazebot-solver/infrastruture/mazebot"
	"github.com/beka-birhanu/mazebot-solver/infrastruture/repo"
	"github.com/beka-birhanu/mazebot-solver/infrastruture/token"
	"github.com/beka-birhanu/mazebot-solver/service"
	"github.com/beka-birhanu/mazebot-solver/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	cfg            config.Config
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazebotClient  *mazebot.Client
	userRepo       i.UserRepo
	solutionRepo   i.SolutionRepo
	solutionCache  i.SolutionCache
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	solverService  i.Solver
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	users := repo.NewUserRepo(client, cfg.DBName, "users")
	if err := users.EnsureIndexes(ctx); err != nil {
		appLogger.Warning(fmt.Sprintf("Creating user indexes: %v", err))
	}
	userRepo = users

	solutions := repo.NewSolutionRepo(client, cfg.DBName, "solutions")
	if err := solutions.EnsureIndexes(ctx); err != nil {
		appLogger.Warning(fmt.Sprintf("Creating solution indexes: %v", err))
	}
	solutionRepo = solutions
	appLogger.Info("Repositories initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initSolutionCache() {
	var err error
	solutionCache, err = cache.NewRedisSolutionCache(redisClient, cfg.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solution cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solution cache initialized")
}

func initMazebotClient() {
	var err error
	mazebotClient, err = mazebot.NewClient(mazebot.Config{BaseURL: cfg.MazebotURL})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating mazebot client: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Mazebot client initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initSolverService() {
	solverLogger, err := logger.New("SOLVER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver logger: %v", err))
		os.Exit(1)
	}

	solverService, err = service.NewSolverService(&service.SolverConfig{
		Source:          mazebotClient,
		Solutions:       solutionRepo,
		Users:           userRepo,
		Cache:           solutionCache,
		MazeFactory:     generateProblem,
		Logger:          solverLogger,
		MoveLimitFactor: cfg.MoveLimitFactor,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solver service initialized")
}

func generateProblem(width, height int) (*dmn.Problem, error) {
	seed := rand.Uint64()
	m, err := generator.New(width, height, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return nil, err
	}
	return m.Problem(fmt.Sprintf("Generated %dx%d #%x", width, height, seed)), nil
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewController(mazeapi.Config{
		Solver:         solverService,
		DefaultMinSize: cfg.MazeMinSize,
		DefaultMaxSize: cfg.MazeMaxSize,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(cfg.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
		AllowedOrigins:          cfg.CORSOrigins,
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}
	cfg = config.Load()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRepos(ctx, mongoClient)

	initRedis(ctx)
	defer redisClient.Close()
	initSolutionCache()

	initMazebotClient()
	defer mazebotClient.Close()

	initJWTTokenizer()
	initAuthService()
	initSolverService()
	initControllers()
	initRouter(jwtTokenizer)

	appLogger.Info(fmt.Sprintf("Listening on %s:%d", cfg.HostIP, cfg.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
