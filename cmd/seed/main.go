package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/studybridge/backend/internal/config"
	"github.com/studybridge/backend/internal/repository"
	"github.com/studybridge/backend/internal/seed"
	"github.com/studybridge/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation (1: insert random accounts, 2: insert random submissions, 3: insert demo data)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not touch the database, so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		if n <= 0 {
			slog.Error("account count must be positive")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				account, err := utils.GenerateRandomAccount(cfg.Seed.Password, "studybridge.local")
				if err != nil {
					slog.Error("unable to generate random account", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateAccount(account); err != nil {
					slog.Error("unable to insert account", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("accounts inserted", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("submission count must be positive")
			return
		}

		// submissions need owners, so pick from the accounts already seeded
		accounts, err := repo.GetAllAccounts()
		if err != nil {
			slog.Error("unable to load accounts", slog.String("error", err.Error()))
			return
		}
		if len(accounts) == 0 {
			slog.Error("no accounts to attach submissions to, run -op 1 first")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			account := accounts[rand.Intn(len(accounts))]
			submission := utils.GenerateRandomSubmission(account)
			if err := repo.CreateSubmission(submission); err != nil {
				slog.Error("unable to insert submission", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}
		slog.Info("submissions inserted", slog.Int("count", n-cnt))
	case 3:
		seed.SeedDemoData(repo, cfg.Seed.Password)
	default:
		slog.Error("invalid operation")
	}
}
