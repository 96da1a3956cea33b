package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"bootcamp-signup.backend/internal/config"
	"bootcamp-signup.backend/internal/domain/entities"
	"bootcamp-signup.backend/internal/infrastructure/datasources"
	"bootcamp-signup.backend/internal/infrastructure/repositories"
	"bootcamp-signup.backend/internal/usecases"
)

var openSignupDB = datasources.NewConnection

var openSignupSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type signupCLIDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (usecases.SignupWorkflow, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultSignupCLIDeps() signupCLIDeps {
	return signupCLIDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (usecases.SignupWorkflow, io.Closer, error) {
			if cfg.Database.Driver == datasources.DriverMemory {
				return usecases.NewSignupUsecase(repositories.NewMemorySignupRepository(), nil, nil), nopCloser{}, nil
			}

			db, err := openSignupDB(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openSignupSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			if cfg.Database.AutoMigrate {
				if err := datasources.Migrate(db); err != nil {
					_ = sqlDB.Close()
					return nil, nil, err
				}
			}

			return usecases.NewSignupUsecase(repositories.NewSignupRepository(db), nil, nil), sqlDB, nil
		},
		out: os.Stdout,
	}
}

// runSignupCLI submits one signup through the same form flow the page uses
func runSignupCLI(args []string, deps signupCLIDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		deps.prepare = defaultSignupCLIDeps().prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("signup-cli", flag.ContinueOnError)
	fullName := fs.String("full-name", "", "applicant full name (required)")
	email := fs.String("email", "", "applicant email (required)")
	phone := fs.String("phone", "", "applicant phone (required)")
	level := fs.String("experience-level", string(entities.ExperienceBeginner), "beginner, intermediate or advanced")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	workflow, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	form := usecases.NewSignupForm(workflow)
	fields := []struct{ name, value string }{
		{usecases.FieldFullName, *fullName},
		{usecases.FieldEmail, *email},
		{usecases.FieldPhone, *phone},
		{usecases.FieldExperienceLevel, *level},
	}
	for _, f := range fields {
		if err := form.UpdateField(f.name, f.value); err != nil {
			return err
		}
	}

	outcome, err := form.Submit(context.Background())
	if err != nil {
		return err
	}

	notification := usecases.NotificationFor(outcome)
	_, _ = fmt.Fprintf(deps.out, "%s: %s\n", notification.Kind, notification.Message)
	switch outcome.Kind {
	case entities.OutcomeCreated:
		_, _ = fmt.Fprintf(deps.out, "signup_id=%s\n", outcome.Signup.ID.String())
		return nil
	case entities.OutcomeDuplicate:
		return fmt.Errorf("email %s is already registered", *email)
	default:
		return fmt.Errorf("signup failed: %w", outcome.Reason)
	}
}

func main() {
	if err := runSignupCLI(os.Args[1:], defaultSignupCLIDeps()); err != nil {
		log.Fatal(err)
	}
}
