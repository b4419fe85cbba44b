package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Varun5711/promokit/internal/auth"
	usermodel "github.com/Varun5711/promokit/internal/models/user"
	"github.com/Varun5711/promokit/internal/storage"
	"github.com/Varun5711/promokit/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() (*UserService, *storage.MemoryUserStore) {
	store := storage.NewMemoryUserStore()
	hasher := auth.NewHasher(bcrypt.MinCost)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewUserService(store, hasher, jwtManager), store
}

func TestRegister(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	err := svc.Register(ctx, usermodel.SignupRequest{
		Email:    "a@b.com",
		Password: "secret1",
		Name:     "A",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := store.GetUserByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil {
		t.Fatal("expected account to be stored")
	}
	if stored.PasswordHash == "secret1" {
		t.Error("password must not be stored in plaintext")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	req := usermodel.SignupRequest{Email: "a@b.com", Password: "secret1", Name: "A"}
	if err := svc.Register(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.Register(ctx, req)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	if store.Count() != 1 {
		t.Errorf("expected exactly one stored account, got %d", store.Count())
	}
}

func TestRegister_ConcurrentDuplicates(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Register(ctx, usermodel.SignupRequest{
				Email:    "race@b.com",
				Password: "secret1",
				Name:     "R",
			})
		}()
	}
	wg.Wait()
	close(errs)

	var successes int
	for err := range errs {
		if err == nil {
			successes++
		} else if !errors.Is(err, ErrDuplicateEmail) {
			t.Errorf("unexpected error: %v", err)
		}
	}

	if successes != 1 {
		t.Errorf("expected exactly one successful registration, got %d", successes)
	}
	if store.Count() != 1 {
		t.Errorf("expected exactly one stored account, got %d", store.Count())
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Register(context.Background(), usermodel.SignupRequest{
		Email:    "not-an-email",
		Password: "secret1",
		Name:     "A",
	})
	if !validation.IsInputError(err) {
		t.Errorf("expected input error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.Register(ctx, usermodel.SignupRequest{Email: "a@b.com", Password: "secret1", Name: "A"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := svc.Login(ctx, usermodel.LoginRequest{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected non-empty token")
	}
	if resp.Name != "A" {
		t.Errorf("expected name 'A', got '%s'", resp.Name)
	}
}

func TestLogin_MergedErrorBranches(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.Register(ctx, usermodel.SignupRequest{Email: "a@b.com", Password: "secret1", Name: "A"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unknown account and wrong password must be indistinguishable.
	_, errMissing := svc.Login(ctx, usermodel.LoginRequest{Email: "nobody@b.com", Password: "secret1"})
	_, errWrongPw := svc.Login(ctx, usermodel.LoginRequest{Email: "a@b.com", Password: "wrong-password"})

	if !errors.Is(errMissing, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", errMissing)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPw)
	}
	if errMissing.Error() != errWrongPw.Error() {
		t.Error("both failure branches must return the identical error")
	}
}

func TestProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.Register(ctx, usermodel.SignupRequest{Email: "a@b.com", Password: "secret1", Name: "A"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := svc.Login(ctx, usermodel.LoginRequest{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Profile(resp.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "a@b.com" || claims.Name != "A" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestProfile_GarbledToken(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Profile("garbled.token.value")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestProfile_ExpiredToken(t *testing.T) {
	store := storage.NewMemoryUserStore()
	hasher := auth.NewHasher(bcrypt.MinCost)
	expired := auth.NewJWTManager("test-secret", -time.Hour)
	svc := NewUserService(store, hasher, expired)
	ctx := context.Background()

	if err := svc.Register(ctx, usermodel.SignupRequest{Email: "a@b.com", Password: "secret1", Name: "A"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := svc.Login(ctx, usermodel.LoginRequest{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Profile(resp.Token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
