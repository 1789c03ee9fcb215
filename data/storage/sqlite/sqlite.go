package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/xhd2015/text-animate/data/storage"
	"github.com/xhd2015/text-animate/models"
)

type SQLiteStore struct {
	db *sql.DB
}

type ProfileSQLiteStore struct {
	*SQLiteStore
}

func New(filePath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) createTables() error {
	createProfilesTable := `
	CREATE TABLE IF NOT EXISTS profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		text TEXT NOT NULL,
		preset TEXT NOT NULL DEFAULT '',
		split_by TEXT NOT NULL DEFAULT '',
		delay REAL NOT NULL DEFAULT 0,
		exit_delay REAL NOT NULL DEFAULT 0,
		duration REAL NOT NULL DEFAULT 0,
		stagger REAL NOT NULL DEFAULT 0,
		once BOOLEAN NOT NULL DEFAULT 0,
		loop BOOLEAN NOT NULL DEFAULT 0,
		fps REAL NOT NULL DEFAULT 0,
		color TEXT NOT NULL DEFAULT '',
		background TEXT NOT NULL DEFAULT '',
		create_time DATETIME NOT NULL,
		update_time DATETIME NOT NULL
	);`

	_, err := s.db.Exec(createProfilesTable)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func NewProfileService(filePath string) (storage.ProfileService, error) {
	store, err := New(filePath)
	if err != nil {
		return nil, err
	}
	return &ProfileSQLiteStore{SQLiteStore: store}, nil
}

const profileColumns = "id, name, text, preset, split_by, delay, exit_delay, duration, stagger, once, loop, fps, color, background, create_time, update_time"

func scanProfile(scan func(dest ...interface{}) error) (models.Profile, error) {
	var p models.Profile
	var createTime, updateTime string
	err := scan(&p.ID, &p.Name, &p.Text, &p.Preset, &p.By, &p.Delay, &p.ExitDelay,
		&p.Duration, &p.Stagger, &p.Once, &p.Loop, &p.FPS, &p.Color, &p.Background,
		&createTime, &updateTime)
	if err != nil {
		return p, err
	}
	if p.CreateTime, err = tryParseTime(createTime); err != nil {
		return p, err
	}
	if p.UpdateTime, err = tryParseTime(updateTime); err != nil {
		return p, err
	}
	return p, nil
}

func (ps *ProfileSQLiteStore) List(options storage.ProfileListOptions) ([]models.Profile, int64, error) {
	var whereClause []string
	var args []interface{}

	if options.Filter != "" {
		whereClause = append(whereClause, "(name LIKE ? OR text LIKE ?)")
		args = append(args, "%"+options.Filter+"%", "%"+options.Filter+"%")
	}

	where := ""
	if len(whereClause) > 0 {
		where = "WHERE " + strings.Join(whereClause, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM profiles %s", where)
	var total int64
	if err := ps.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := "ORDER BY name ASC"
	if options.SortBy != "" {
		direction := "ASC"
		if options.SortOrder == "desc" {
			direction = "DESC"
		}
		column := options.SortBy
		if column == "by" {
			column = "split_by"
		}
		orderBy = fmt.Sprintf("ORDER BY %s %s", column, direction)
	}

	limit := ""
	if options.Limit > 0 {
		limit = fmt.Sprintf("LIMIT %d", options.Limit)
		if options.Offset > 0 {
			limit += fmt.Sprintf(" OFFSET %d", options.Offset)
		}
	}

	query := fmt.Sprintf("SELECT %s FROM profiles %s %s %s", profileColumns, where, orderBy, limit)

	rows, err := ps.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (ps *ProfileSQLiteStore) Get(name string) (*models.Profile, error) {
	query := fmt.Sprintf("SELECT %s FROM profiles WHERE name = ?", profileColumns)
	p, err := scanProfile(ps.db.QueryRow(query, name).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (ps *ProfileSQLiteStore) Add(profile models.Profile) (int64, error) {
	if profile.CreateTime.IsZero() {
		profile.CreateTime = time.Now()
	}
	if profile.UpdateTime.IsZero() {
		profile.UpdateTime = time.Now()
	}

	query := `INSERT INTO profiles (name, text, preset, split_by, delay, exit_delay, duration, stagger, once, loop, fps, color, background, create_time, update_time)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := ps.db.Exec(query, profile.Name, profile.Text, profile.Preset, profile.By,
		profile.Delay, profile.ExitDelay, profile.Duration, profile.Stagger,
		profile.Once, profile.Loop, profile.FPS, profile.Color, profile.Background,
		formatTime(profile.CreateTime),
		formatTime(profile.UpdateTime))
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (ps *ProfileSQLiteStore) Update(name string, update models.ProfileOptional) error {
	var setParts []string
	var args []interface{}

	if update.Name != nil {
		setParts = append(setParts, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Text != nil {
		setParts = append(setParts, "text = ?")
		args = append(args, *update.Text)
	}
	if update.Preset != nil {
		setParts = append(setParts, "preset = ?")
		args = append(args, *update.Preset)
	}
	if update.By != nil {
		setParts = append(setParts, "split_by = ?")
		args = append(args, *update.By)
	}
	if update.Delay != nil {
		setParts = append(setParts, "delay = ?")
		args = append(args, *update.Delay)
	}
	if update.ExitDelay != nil {
		setParts = append(setParts, "exit_delay = ?")
		args = append(args, *update.ExitDelay)
	}
	if update.Duration != nil {
		setParts = append(setParts, "duration = ?")
		args = append(args, *update.Duration)
	}
	if update.Stagger != nil {
		setParts = append(setParts, "stagger = ?")
		args = append(args, *update.Stagger)
	}
	if update.Once != nil {
		setParts = append(setParts, "once = ?")
		args = append(args, *update.Once)
	}
	if update.Loop != nil {
		setParts = append(setParts, "loop = ?")
		args = append(args, *update.Loop)
	}
	if update.FPS != nil {
		setParts = append(setParts, "fps = ?")
		args = append(args, *update.FPS)
	}
	if update.Color != nil {
		setParts = append(setParts, "color = ?")
		args = append(args, *update.Color)
	}
	if update.Background != nil {
		setParts = append(setParts, "background = ?")
		args = append(args, *update.Background)
	}
	if update.CreateTime != nil {
		setParts = append(setParts, "create_time = ?")
		args = append(args, formatTime(*update.CreateTime))
	}
	if update.UpdateTime != nil {
		setParts = append(setParts, "update_time = ?")
		args = append(args, formatTime(*update.UpdateTime))
	} else {
		setParts = append(setParts, "update_time = ?")
		args = append(args, formatTime(time.Now()))
	}

	args = append(args, name)
	query := fmt.Sprintf("UPDATE profiles SET %s WHERE name = ?", strings.Join(setParts, ", "))

	result, err := ps.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return storage.ErrProfileNotFound
	}

	return nil
}

func (ps *ProfileSQLiteStore) Delete(name string) error {
	result, err := ps.db.Exec("DELETE FROM profiles WHERE name = ?", name)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return storage.ErrProfileNotFound
	}

	return nil
}
