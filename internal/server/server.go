package server

import (
	"github.com/Ultro163/city-guide/internal/attraction"
	"github.com/Ultro163/city-guide/internal/category"
	"github.com/Ultro163/city-guide/internal/city"
	"github.com/Ultro163/city-guide/internal/config"
	"github.com/Ultro163/city-guide/internal/review"
	"github.com/Ultro163/city-guide/internal/stream"
	"github.com/Ultro163/city-guide/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const logFormat = "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n"

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{Format: logFormat}))

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	categories := category.NewService(s.DB)
	cities := city.NewService(s.DB)
	users := user.NewService(s.DB)
	attractions := attraction.NewService(s.DB, categories, cities)

	category.RegisterRoutes(s.App.Group("/categories"), categories)
	city.RegisterRoutes(s.App.Group("/cities"), cities)
	user.RegisterRoutes(s.App.Group("/users"), users)
	attraction.RegisterRoutes(s.App.Group("/attractions"), attractions)
	review.RegisterRoutes(s.App.Group("/reviews"), review.NewService(s.DB, users, attractions, s.Stream))
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
