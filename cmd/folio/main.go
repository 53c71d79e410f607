package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/eringen/folio"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "version" || os.Args[1] == "-v") {
		log.Printf("folio %s", version)
		return
	}

	cfg := folio.SiteConfig{
		Name:              folio.EnvOr("SITE_NAME", "Portfolio"),
		URL:               folio.EnvOr("SITE_URL", "http://localhost:8080"),
		Description:       folio.EnvOr("SITE_DESCRIPTION", ""),
		Author:            folio.EnvOr("SITE_AUTHOR", ""),
		Addr:              folio.EnvOr("ADDR", ":8080"),
		DatabasePath:      folio.EnvOr("DATABASE_PATH", "folio.db"),
		SessionSecret:     folio.MustEnv("SESSION_SECRET"),
		AdminPasswordHash: passwordHash(),
		CookieSecure:      folio.EnvOr("COOKIE_SECURE", "") == "true",
		OwnerEmail:        folio.EnvOr("OWNER_EMAIL", ""),
	}

	var opts []folio.Option
	if apiKey := folio.EnvOr("RESEND_API_KEY", ""); apiKey != "" {
		from := folio.EnvOr("MAIL_FROM", "Portfolio <onboarding@resend.dev>")
		opts = append(opts, folio.WithMailer(folio.NewResendMailer(apiKey, from)))
	}

	app := folio.New(cfg, opts...)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("folio: %v", err)
	}
}

// passwordHash accepts either a precomputed bcrypt hash via
// ADMIN_PASSWORD_HASH or a plain ADMIN_PASSWORD hashed at startup.
func passwordHash() string {
	if h := os.Getenv("ADMIN_PASSWORD_HASH"); h != "" {
		return h
	}
	pw := folio.MustEnv("ADMIN_PASSWORD")
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("folio: hashing admin password: %v", err)
	}
	return string(hash)
}
