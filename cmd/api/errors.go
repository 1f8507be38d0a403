package main

import "errors"

var (
	errDatabaseURLRequired = errors.New("database-url is required (set via --database-url, DB_DSN or DATABASE_URL)")
	errWeightRequired      = errors.New("--grams must be a positive weight")
)
