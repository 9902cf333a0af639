package server

import (
	"estatehub/internal/auth"
	"estatehub/internal/gateway"
	"estatehub/internal/handler"
	"estatehub/internal/repository"
	"estatehub/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories groups the per-collection persistence layers
type Repositories struct {
	Users      repository.IUserRepository
	Properties repository.IPropertyRepository
	Wishlist   repository.IWishlistRepository
	Offers     repository.IOfferRepository
	Reviews    repository.IReviewRepository
	Payments   repository.IPaymentRepository
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:      repository.NewUserRepository(db),
		Properties: repository.NewPropertyRepository(db),
		Wishlist:   repository.NewWishlistRepository(db),
		Offers:     repository.NewOfferRepository(db),
		Reviews:    repository.NewReviewRepository(db),
		Payments:   repository.NewPaymentRepository(db),
	}
}

// Services groups the business-logic layer
type Services struct {
	Users      *service.UserService
	Properties *service.PropertyService
	Wishlist   *service.WishlistService
	Offers     *service.OfferService
	Reviews    *service.ReviewService
	Payments   *service.PaymentService
}

func InitServices(repos *Repositories, gw gateway.PaymentGateway) *Services {
	return &Services{
		Users:      service.NewUserService(repos.Users, repos.Properties),
		Properties: service.NewPropertyService(repos.Properties, repos.Users),
		Wishlist:   service.NewWishlistService(repos.Wishlist, repos.Properties),
		Offers:     service.NewOfferService(repos.Offers, repos.Properties),
		Reviews:    service.NewReviewService(repos.Reviews, repos.Properties),
		Payments:   service.NewPaymentService(repos.Payments, repos.Offers, gw),
	}
}

// Handlers groups the HTTP layer
type Handlers struct {
	User     *handler.UserHandler
	Property *handler.PropertyHandler
	Wishlist *handler.WishlistHandler
	Offer    *handler.OfferHandler
	Review   *handler.ReviewHandler
	Payment  *handler.PaymentHandler
	Account  *handler.AccountHandler
}

func InitHandlers(services *Services, verifier auth.Verifier) *Handlers {
	return &Handlers{
		User:     handler.NewUserHandler(services.Users),
		Property: handler.NewPropertyHandler(services.Properties),
		Wishlist: handler.NewWishlistHandler(services.Wishlist),
		Offer:    handler.NewOfferHandler(services.Offers),
		Review:   handler.NewReviewHandler(services.Reviews),
		Payment:  handler.NewPaymentHandler(services.Payments),
		Account:  handler.NewAccountHandler(verifier),
	}
}
