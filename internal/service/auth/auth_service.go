package auth

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/ougirez/dayrate/internal/pkg/constants"
	"github.com/ougirez/dayrate/internal/pkg/logger"
	"github.com/ougirez/dayrate/internal/pkg/utils"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultLockoutLimit    = 5
	defaultLockoutCooldown = 5 * time.Minute
)

// Service gates the whole app behind one shared password. A bcrypt hash is
// preferred (auth_password_hash); a plain password from config is compared in
// constant time. Repeated failures lock the gate for a cooldown — the same
// local lockout counter the desk terminal had, held in memory.
type Service struct {
	mu          sync.Mutex
	failed      int
	lockedUntil time.Time

	limit    int
	cooldown time.Duration
}

func NewService() *Service {
	svc := &Service{
		limit:    viper.GetInt(constants.ViperLockoutLimit),
		cooldown: viper.GetDuration(constants.ViperLockoutCooldown),
	}
	if svc.limit <= 0 {
		svc.limit = defaultLockoutLimit
	}
	if svc.cooldown <= 0 {
		svc.cooldown = defaultLockoutCooldown
	}

	return svc
}

// Login checks the shared password and issues a session token.
func (svc *Service) Login(ctx context.Context, password string) (string, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if time.Now().Before(svc.lockedUntil) {
		return "", constants.ErrTooManyAttempts
	}

	if !checkPassword(password) {
		svc.failed++
		if svc.failed >= svc.limit {
			svc.lockedUntil = time.Now().Add(svc.cooldown)
			svc.failed = 0
			logger.Warnf(ctx, "login locked out until %s", svc.lockedUntil.Format(time.RFC3339))
		}
		return "", constants.ErrInvalidPassword
	}

	svc.failed = 0
	svc.lockedUntil = time.Time{}

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{})
	if err != nil {
		return "", err
	}

	return token, nil
}

func checkPassword(password string) bool {
	if hash := viper.GetString(constants.ViperPasswordHash); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	want := viper.GetString(constants.ViperPassword)
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(password)) == 1
}
