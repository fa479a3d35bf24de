// Package db встраивает SQL-миграции в бинарный файл.
package db

import "embed"

// MigrationsDir — каталог миграций внутри Migrations.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS
