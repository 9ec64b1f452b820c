package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"strings"

	"firedept-backoffice/internal/config"
	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/repository/postgres"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a staff user or supplier account. Example:
//
//	adduser -email chief@station12.example -name "Station Chief" -roles finance_manager,supply_manager -password secret
//	adduser -supplier -email sales@hosesupply.example -name "Hose Supply Co" -password secret
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	email := flag.String("email", "", "Account email")
	name := flag.String("name", "", "Display name or company name")
	password := flag.String("password", "", "Plaintext password to hash")
	roles := flag.String("roles", "", "Comma-separated roles (staff accounts only)")
	supplier := flag.Bool("supplier", false, "Create a supplier account instead of a staff user")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		log.Fatal("email, name and password are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	store := postgres.NewStore(db)

	if *supplier {
		s := &domain.Supplier{
			CompanyName:  *name,
			Email:        *email,
			PasswordHash: string(hash),
		}
		if err := store.SupplierRepository.Create(ctx, s); err != nil {
			log.Fatalf("Failed to create supplier: %v", err)
		}
		log.Printf("Created supplier %d (%s)", s.ID, s.Email)
		return
	}

	var roleList []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	u := &domain.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		Roles:        roleList,
	}
	if err := store.UserRepository.Create(ctx, u); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	log.Printf("Created user %d (%s) roles=%v", u.ID, u.Email, u.Roles)
}
