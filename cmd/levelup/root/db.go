package root

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dacosmicgiant/LevelUp/internal/engine"
	"github.com/Dacosmicgiant/LevelUp/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db), cleanup, nil
}

// resolveDay normalizes a --date flag: empty means today.
func resolveDay(flag string) (string, error) {
	if flag == "" {
		return engine.FormatDay(time.Now()), nil
	}
	if _, err := engine.ParseDay(flag); err != nil {
		return "", err
	}
	return flag, nil
}
