// ABOUTME: Portfolio database operations
// ABOUTME: Stores the document payload as a JSON column beside its metadata
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

func CreatePortfolio(db *sql.DB, p *models.Portfolio) error {
	if p.Kind == "" {
		p.Kind = models.KindBasic
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Title == "" {
		p.Title = p.Data.Title()
	}

	data, err := json.Marshal(p.Data)
	if err != nil {
		return fmt.Errorf("failed to encode portfolio data: %w", err)
	}

	res, err := db.Exec(`
		INSERT INTO portfolios (user_id, kind, title, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.UserID, p.Kind, p.Title, string(data), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return err
	}

	p.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	// A blank document has no derivable title until its id is known.
	if p.Title == "" {
		p.Title = fmt.Sprintf("Portfolio #%d", p.ID)
		_, err = db.Exec(`UPDATE portfolios SET title = ? WHERE id = ?`, p.Title, p.ID)
	}
	return err
}

func GetPortfolio(db *sql.DB, id int64) (*models.Portfolio, error) {
	p := &models.Portfolio{}
	var data string

	err := db.QueryRow(`
		SELECT id, user_id, kind, title, data, created_at, updated_at
		FROM portfolios WHERE id = ?
	`, id).Scan(&p.ID, &p.UserID, &p.Kind, &p.Title, &data, &p.CreatedAt, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(data), &p.Data); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio data: %w", err)
	}

	return p, nil
}

func ListPortfoliosByUser(db *sql.DB, userID int64) ([]models.Portfolio, error) {
	rows, err := db.Query(`
		SELECT id, user_id, kind, title, data, created_at, updated_at
		FROM portfolios
		WHERE user_id = ?
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var portfolios []models.Portfolio
	for rows.Next() {
		var p models.Portfolio
		var data string

		if err := rows.Scan(&p.ID, &p.UserID, &p.Kind, &p.Title, &data, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(data), &p.Data); err != nil {
			return nil, fmt.Errorf("failed to decode portfolio data: %w", err)
		}

		portfolios = append(portfolios, p)
	}

	return portfolios, rows.Err()
}

func UpdatePortfolio(db *sql.DB, p *models.Portfolio) error {
	p.UpdatedAt = time.Now()
	p.Title = p.Data.Title()
	if p.Title == "" {
		p.Title = fmt.Sprintf("Portfolio #%d", p.ID)
	}

	data, err := json.Marshal(p.Data)
	if err != nil {
		return fmt.Errorf("failed to encode portfolio data: %w", err)
	}

	_, err = db.Exec(`
		UPDATE portfolios SET kind = ?, title = ?, data = ?, updated_at = ?
		WHERE id = ?
	`, p.Kind, p.Title, string(data), p.UpdatedAt, p.ID)

	return err
}

func DeletePortfolio(db *sql.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM portfolios WHERE id = ?`, id)
	return err
}
