package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"estatehub/internal/auth"
	"estatehub/internal/config"
	"estatehub/internal/gateway"
	"estatehub/internal/middleware"
	"estatehub/internal/version"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	mongo  *mongo.Client
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	verifier, err := auth.NewFirebaseVerifier(context.Background(), cfg.Auth.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity verifier: %w", err)
	}
	gw := gateway.NewStripeGateway(cfg.Stripe.SecretKey)

	repos := InitRepositories(db)
	services := InitServices(repos, gw)
	handlers := InitHandlers(services, verifier)

	router := setupRouter(cfg, handlers, verifier)

	return &Server{
		cfg:    cfg,
		router: router,
		mongo:  mongoClient,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	fmt.Printf("Real Estate server %s running on %s\n", version.Version, s.cfg.Server.Address())
	return s.router.Run(s.cfg.Server.Address())
}

// route binds one verb+path to a handler with its access policy. Routes are
// declared in one table so nothing is gated (or left open) by accident.
type route struct {
	method  string
	path    string
	public  bool
	handler gin.HandlerFunc
}

func routeTable(h *Handlers) []route {
	return []route{
		// users
		{http.MethodGet, "/users", false, h.User.List},
		{http.MethodGet, "/users/:email", true, h.User.Get},
		{http.MethodGet, "/users/:email/role", false, h.User.GetRole},
		{http.MethodPost, "/users", false, h.User.RecordLogin},
		{http.MethodPut, "/users/:email/role", false, h.User.SetRole},
		{http.MethodPut, "/users/:email/fraud", false, h.User.MarkFraud},
		{http.MethodPut, "/users/:email", false, h.User.Update},
		{http.MethodDelete, "/users/:email", false, h.User.Delete},

		// properties
		{http.MethodGet, "/properties", false, h.Property.List},
		{http.MethodGet, "/advertised-properties", true, h.Property.Advertised},
		{http.MethodGet, "/properties/:id", false, h.Property.Get},
		{http.MethodGet, "/properties/agent/:email", false, h.Property.ByAgent},
		{http.MethodPost, "/properties", false, h.Property.Create},
		{http.MethodPatch, "/properties/:id", false, h.Property.Update},
		{http.MethodPatch, "/properties/update/:id", false, h.Property.SetStatus},
		{http.MethodPatch, "/properties/verify/:id", false, h.Property.Verify},
		{http.MethodPatch, "/properties/reject/:id", false, h.Property.Reject},
		{http.MethodPatch, "/advertise-property/:id", false, h.Property.Advertise},
		{http.MethodDelete, "/properties/:id", false, h.Property.Delete},

		// wishlist
		{http.MethodGet, "/wishlist", false, h.Wishlist.List},
		{http.MethodGet, "/wishlist/:id", false, h.Wishlist.Get},
		{http.MethodPost, "/wishlist", false, h.Wishlist.Add},
		{http.MethodDelete, "/wishlist/:id", false, h.Wishlist.Remove},

		// offers
		{http.MethodGet, "/make-offer", false, h.Offer.List},
		{http.MethodGet, "/make-offer/:id", false, h.Offer.Get},
		{http.MethodPost, "/make-offer", false, h.Offer.Create},
		{http.MethodPut, "/offers/:id/accept", false, h.Offer.Accept},
		{http.MethodPut, "/offers/:id/reject", false, h.Offer.Reject},
		{http.MethodDelete, "/make-offer/:id", false, h.Offer.Delete},

		// reviews
		{http.MethodGet, "/reviews", false, h.Review.List},
		{http.MethodGet, "/reviews/:email", false, h.Review.ByReviewer},
		{http.MethodGet, "/latest-review", true, h.Review.Latest},
		{http.MethodPost, "/reviews", false, h.Review.Create},
		{http.MethodDelete, "/reviews/:id", false, h.Review.Delete},

		// payments
		{http.MethodGet, "/payment-history", false, h.Payment.History},
		{http.MethodPut, "/payment/:id/paid", false, h.Payment.MarkPaid},
		{http.MethodPost, "/create-payment-intent", true, h.Payment.CreateIntent},

		// identity accounts
		{http.MethodDelete, "/firebase-users/:uid", false, h.Account.DeleteIdentity},
	}
}

func setupRouter(cfg *config.Config, h *Handlers, verifier auth.Verifier) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Timeout(time.Duration(cfg.RequestTimeoutSec) * time.Second))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Real Estate server is running",
			"version": version.Get(),
		})
	})

	requireAuth := middleware.RequireAuth(verifier)
	for _, rt := range routeTable(h) {
		if rt.public {
			r.Handle(rt.method, rt.path, rt.handler)
			continue
		}
		r.Handle(rt.method, rt.path, requireAuth, rt.handler)
	}

	return r
}
