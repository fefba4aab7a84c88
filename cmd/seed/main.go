// Command seed loads demo members and reports from a YAML fixture into
// Postgres. Intended for local development and staging resets.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// CLI flags
var (
	filePath    = flag.String("file", "", "Path to the YAML fixture (required)")
	dsn         = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
	dryRun      = flag.Bool("dry-run", false, "Parse + validate only; no DB writes")
	confirm     = flag.Bool("confirm", false, "Required to perform DB writes")
	advisoryKey = flag.Int64("advisory-lock", 0, "Optional Postgres advisory lock key (e.g., 424242). 0 = disabled")
)

// Fixture contract: members with plaintext passwords (hashed on insert)
// and optional reports. Days must be >= 1; emails must be unique.

type Fixture struct {
	Members []MemberFixture `yaml:"members"`
}

type MemberFixture struct {
	Name     string          `yaml:"name"`
	Email    string          `yaml:"email"`
	Password string          `yaml:"password"`
	Reports  []ReportFixture `yaml:"reports"`
}

type ReportFixture struct {
	Date    string `yaml:"date"`
	Day     int    `yaml:"day"`
	Content string `yaml:"content"`
}

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()
	if *filePath == "" {
		fatalf("--file is required")
	}
	if *dsn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}

	fixture, err := loadFixture(*filePath)
	if err != nil {
		fatalf("load fixture: %v", err)
	}
	if err := validate(fixture); err != nil {
		fatalf("invalid fixture: %v", err)
	}

	reportCount := 0
	for _, m := range fixture.Members {
		reportCount += len(m.Reports)
	}
	fmt.Printf("Parsed %d members, %d reports\n", len(fixture.Members), reportCount)

	if *dryRun {
		fmt.Println("Dry run; nothing written")
		return
	}
	if !*confirm {
		fatalf("refusing to write without --confirm")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := seed(ctx, db, fixture); err != nil {
		fatalf("seed: %v", err)
	}
	fmt.Println("Done")
}

func loadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func validate(f *Fixture) error {
	if len(f.Members) == 0 {
		return fmt.Errorf("no members in fixture")
	}
	seen := map[string]struct{}{}
	for i, m := range f.Members {
		if m.Name == "" || m.Email == "" || m.Password == "" {
			return fmt.Errorf("member %d: name, email and password are required", i)
		}
		if _, dup := seen[m.Email]; dup {
			return fmt.Errorf("duplicate email %q", m.Email)
		}
		seen[m.Email] = struct{}{}
		for j, r := range m.Reports {
			if r.Date == "" {
				return fmt.Errorf("member %q report %d: date is required", m.Email, j)
			}
			if r.Day < 1 {
				return fmt.Errorf("member %q report %d: day must be >= 1", m.Email, j)
			}
		}
	}
	return nil
}

func seed(ctx context.Context, db *sql.DB, f *Fixture) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if *advisoryKey != 0 {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, *advisoryKey); err != nil {
			return fmt.Errorf("advisory lock: %w", err)
		}
	}

	for _, m := range f.Members {
		userID, err := upsertMember(ctx, tx, m)
		if err != nil {
			return fmt.Errorf("member %q: %w", m.Email, err)
		}
		for _, r := range m.Reports {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO "reports"."daily_reports" (id, user_id, date, day, content, created_at)
				 VALUES ($1, $2, $3, $4, $5, now())`,
				uuid.NewString(), userID, r.Date, r.Day, r.Content)
			if err != nil {
				return fmt.Errorf("member %q day %d: %w", m.Email, r.Day, err)
			}
		}
	}

	return tx.Commit()
}

// upsertMember inserts the member and returns its id; an existing email
// keeps its row and id.
func upsertMember(ctx context.Context, tx *sql.Tx, m MemberFixture) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	var userID string
	err = tx.QueryRowContext(ctx,
		`INSERT INTO "app_auth"."users" (user_id, name, email, hashed_password, created_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (email) DO NOTHING
		 RETURNING user_id`,
		uuid.NewString(), m.Name, m.Email, string(hashed)).Scan(&userID)
	if err == sql.ErrNoRows {
		// Conflict path: the member already exists, reuse the row.
		err = tx.QueryRowContext(ctx,
			`SELECT user_id FROM "app_auth"."users" WHERE email = $1`, m.Email).Scan(&userID)
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
