package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/roomly/booking-backend/internal/api"
	"github.com/roomly/booking-backend/internal/auth"
	"github.com/roomly/booking-backend/internal/booking"
	"github.com/roomly/booking-backend/internal/identity"
	"github.com/roomly/booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	DBPool            *pgxpool.Pool
	JWTSecret         string
	JWTTTL            time.Duration
	BcryptCost        int
	RecheckPastOnEdit bool
	Logger            *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Holder     *identity.Holder

	stopWatch func()
}

// Close releases background resources, currently the identity watcher
// subscription. Safe to call more than once.
func (c *Container) Close() {
	if c.stopWatch != nil {
		c.stopWatch()
	}
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Identity Holder: observes sign-in/sign-out events, resolving the
	// profile once per change. Identity transitions are logged.
	holder := identity.NewHolder(func(ctx context.Context, uid string) (identity.Identity, error) {
		u, err := userService.GetByID(ctx, uid)
		if err != nil {
			return identity.Identity{}, err
		}
		return identity.Identity{
			UID:       u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
		}, nil
	})
	stopWatch := watchIdentity(holder, logger)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, booking.Config{
		RecheckPastOnEdit: cfg.RecheckPastOnEdit,
	})

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		BookingService: bookingService,
		JWTManager:     jwtManager,
		Holder:         holder,
		Logger:         logger,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Holder:     holder,
		stopWatch:  stopWatch,
	}
}

// watchIdentity logs identity transitions until the returned stop function
// is called, which closes the subscription channel and ends the goroutine.
func watchIdentity(holder *identity.Holder, logger *zap.Logger) func() {
	ch, cancel := holder.Subscribe()
	go func() {
		for snap := range ch {
			if snap.Identity != nil {
				logger.Info("identity change",
					zap.String("state", snap.State.String()),
					zap.String("uid", snap.Identity.UID),
					zap.String("role", snap.Identity.Role),
				)
				continue
			}
			logger.Info("identity change", zap.String("state", snap.State.String()))
		}
	}()
	return cancel
}
