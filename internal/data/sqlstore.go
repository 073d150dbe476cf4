package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"intrack/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

/*
A SQLStore keeps the internship list in sqlite. Rows carry their position so the stored order
survives a round trip.
*/

// to avoid concurrency issues with background saves
var mutex sync.Mutex

var schema string = `
	CREATE TABLE internship (
		id TEXT PRIMARY KEY,
		position INTEGER,
		company TEXT,
		role TEXT,
		status TEXT,
		location TEXT,
		deadline TEXT,
		remark TEXT,
		updated_date TEXT
 	);
	CREATE TABLE config (
		key TEXT UNIQUE,
		value TEXT
	);
	`

const (
	SORT_PREFIX      = "sort_prefix"
	SORT_ORDER       = "sort_order"
	FILTER_PARAMETER = "filter_parameter"
	FILTER_VALUE     = "filter_value"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore() *SQLStore {
	s := &SQLStore{}
	return s
}

// OpenOrCreate opens the data file, creating it (and its directory) from scratch when missing
func (s *SQLStore) OpenOrCreate(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create the data directory: %w", err)
			}
		}
		return s.Create(path)
	}
	return s.Open(path)
}

func (s *SQLStore) Open(filepath string) error {
	c, err := sql.Open("sqlite", filepath)
	if err != nil {
		return err
	}
	s.db = c
	return nil
}

func (s *SQLStore) Create(filepath string) error {
	err := s.Open(filepath)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(schema)
	if err != nil {
		return err
	}
	return nil
}

func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Return every stored internship in stored order (may return an empty book)
func (s *SQLStore) LoadInternships() (*model.InternshipBook, error) {
	if s.db == nil {
		return nil, errors.New("cannot load internships- must open this SQLStore first")
	}
	rows, err := s.db.Query("SELECT id, company, role, status, location, deadline, remark FROM internship ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Internship, 0)
	for rows.Next() {
		var id, company, role, status, location, deadline, remark string
		err = rows.Scan(&id, &company, &role, &status, &location, &deadline, &remark)
		if err != nil {
			return nil, err
		}
		i, err := decodeInternship(id, company, role, status, location, deadline, remark)
		if err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	book := model.NewInternshipBook()
	book.SetInternships(list)
	return book, nil
}

func decodeInternship(id, company, role, status, location, deadline, remark string) (model.Internship, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return model.Internship{}, fmt.Errorf("corrupt internship id %q: %w", id, err)
	}
	st, err := model.ParseStatus(status)
	if err != nil {
		return model.Internship{}, fmt.Errorf("corrupt internship %s: %w", id, err)
	}
	var d time.Time
	if deadline != "" {
		d, err = time.Parse(model.DateLayout, deadline)
		if err != nil {
			return model.Internship{}, fmt.Errorf("corrupt deadline for %s: %w", id, err)
		}
	}
	return model.Internship{
		ID:       uid,
		Company:  company,
		Role:     role,
		Status:   st,
		Location: location,
		Deadline: d,
		Remark:   remark,
	}, nil
}

// SaveInternships replaces the stored list with book, in one transaction
func (s *SQLStore) SaveInternships(book model.ReadOnlyInternshipBook) error {
	if s.db == nil {
		return errors.New("cannot save internships- must open this SQLStore first")
	}
	if book == nil {
		return fmt.Errorf("%w: nil internship book", model.ErrInvalidArgument)
	}
	ctx := context.Background()
	now := s.timeNow()

	mutex.Lock()
	defer mutex.Unlock()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM internship"); err != nil {
		tx.Rollback()
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO internship(id, position, company, role, status, location, deadline, remark, updated_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for pos, i := range book.Internships() {
		_, err = stmt.ExecContext(ctx, i.ID.String(), pos, i.Company, i.Role, string(i.Status),
			i.Location, i.DeadlineString(), i.Remark, now)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLStore) LastView() (ViewMetadata, error) {
	var v ViewMetadata
	var err error
	if v.SortPrefix, err = s.fetchConfig(SORT_PREFIX); err != nil {
		return ViewMetadata{}, err
	}
	order, err := s.fetchConfig(SORT_ORDER)
	if err != nil {
		return ViewMetadata{}, err
	}
	v.SortOrder = model.SortOrder(order)
	if v.FilterParameter, err = s.fetchConfig(FILTER_PARAMETER); err != nil {
		return ViewMetadata{}, err
	}
	if v.FilterValue, err = s.fetchConfig(FILTER_VALUE); err != nil {
		return ViewMetadata{}, err
	}
	return v, nil
}

func (s *SQLStore) SaveLastView(v ViewMetadata) error {
	values := map[string]string{
		SORT_PREFIX:      v.SortPrefix,
		SORT_ORDER:       string(v.SortOrder),
		FILTER_PARAMETER: v.FilterParameter,
		FILTER_VALUE:     v.FilterValue,
	}
	for k, val := range values {
		if err := s.saveConfig(k, val); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLStore) fetchConfig(k string) (string, error) {
	if s.db == nil {
		return "", errors.New("cannot get config value- must open this SQLStore first")
	}
	var result string
	row := s.db.QueryRow("SELECT value FROM config WHERE key = $1", k)
	err := row.Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		} else {
			return "", err
		}
	}
	return result, nil
}

func (s *SQLStore) saveConfig(k string, v string) error {
	if s.db == nil {
		return errors.New("cannot save config value- must open this SQLStore first")
	}
	mutex.Lock()
	_, err := s.db.Exec("INSERT INTO config(key, value) VALUES ($1, $2) ON CONFLICT(key) DO UPDATE SET value=$2", k, v)
	mutex.Unlock()
	return err
}

func (s *SQLStore) timeNow() string { return time.Now().Format("2006-01-02T15:04:05Z") }
