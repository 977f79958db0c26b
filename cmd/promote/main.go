// Command promote changes a user's role by email address. It is how
// specialists (who may verify publications) and admins are provisioned.
//
// Usage:
//
//	promote --email=coach@example.com [--role=SPECIALIST|ADMIN|USER]
//	        [--specialty="Sports nutrition" --certificate-url=URL --bio=TEXT]
//
// The profile flags are accepted only with --role=SPECIALIST.
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote")
	roleFlag := flag.String("role", string(domain.UserRoleSpecialist), "role to assign")
	specialty := flag.String("specialty", "", "specialist profile: declared specialty")
	certificateURL := flag.String("certificate-url", "", "specialist profile: certificate link")
	bio := flag.String("bio", "", "specialist profile: short bio")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=coach@example.com [--role=SPECIALIST]")
		os.Exit(1)
	}

	role := domain.UserRole(strings.ToUpper(strings.TrimSpace(*roleFlag)))
	if !role.IsValid() {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *roleFlag)
		os.Exit(1)
	}

	profile := profileFromFlags(*specialty, *certificateURL, *bio)
	if profile != nil && role != domain.UserRoleSpecialist {
		fmt.Fprintln(os.Stderr, "profile flags require --role=SPECIALIST")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	user, err := users.GetByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("find user: %v", err)
	}

	if user.Role == role && profile == nil {
		fmt.Printf("User %q is already %s.\n", *email, role)
		return
	}

	err = postgres.NewTxManager(pool).RunInTx(ctx, func(txCtx context.Context) error {
		if err := users.SetRole(txCtx, user.ID, role); err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		if profile == nil {
			return nil
		}
		profile.UserID = user.ID
		if err := users.UpsertSpecialistProfile(txCtx, *profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("promote: %v", err)
	}

	fmt.Printf("User %q is now %s.\n", *email, role)
}

// profileFromFlags returns nil when no specialty was given.
func profileFromFlags(specialty, certificateURL, bio string) *domain.SpecialistProfile {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return nil
	}
	p := &domain.SpecialistProfile{Specialty: specialty}
	if v := strings.TrimSpace(certificateURL); v != "" {
		p.CertificateURL = &v
	}
	if v := strings.TrimSpace(bio); v != "" {
		p.Bio = &v
	}
	return p
}
