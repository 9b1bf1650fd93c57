// Package seed loads a YAML fixture of accounts, categories and artists and
// creates whatever is missing from the database.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/users"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type Fixture struct {
	Admin      *Account   `yaml:"admin"`
	Categories []Category `yaml:"categories"`
	Artists    []Artist   `yaml:"artists"`
}

type Account struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Order       int    `yaml:"order"`
}

type Artist struct {
	Account        `yaml:",inline"`
	DisplayName    string   `yaml:"display_name"`
	Specialty      string   `yaml:"specialty"`
	Description    string   `yaml:"description"`
	HourlyRate     string   `yaml:"hourly_rate"`
	MinimumPrice   string   `yaml:"minimum_price"`
	TurnaroundDays int      `yaml:"turnaround_days"`
	Tags           []string `yaml:"tags"`
}

// Result counts the rows a run created.
type Result struct {
	Users      int
	Categories int
	Artists    int
}

func Parse(data []byte) (*Fixture, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("seed: fixture is empty")
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: decode fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(data)
}

func (f *Fixture) validate() error {
	if f.Admin != nil {
		if err := f.Admin.validate(); err != nil {
			return fmt.Errorf("seed: admin: %w", err)
		}
	}
	for i, c := range f.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("seed: categories[%d]: name is required", i)
		}
	}
	for i, a := range f.Artists {
		if err := a.Account.validate(); err != nil {
			return fmt.Errorf("seed: artists[%d]: %w", i, err)
		}
		for _, p := range []string{a.HourlyRate, a.MinimumPrice} {
			if p == "" {
				continue
			}
			if _, err := decimal.NewFromString(p); err != nil {
				return fmt.Errorf("seed: artists[%d]: bad price %q", i, p)
			}
		}
	}
	return nil
}

func (a Account) validate() error {
	if a.Username == "" || a.Email == "" || a.Password == "" {
		return errors.New("username, email and password are required")
	}
	return nil
}

// Apply creates every missing row of f in one transaction. Existing users
// (by email) and categories (by name) are left alone.
func Apply(db *gorm.DB, f *Fixture) (Result, error) {
	var res Result
	err := db.Transaction(func(tx *gorm.DB) error {
		if f.Admin != nil {
			_, created, err := ensureUser(tx, *f.Admin, users.RoleAdmin)
			if err != nil {
				return err
			}
			if created {
				res.Users++
			}
		}

		for _, c := range f.Categories {
			created, err := ensureCategory(tx, c)
			if err != nil {
				return err
			}
			if created {
				res.Categories++
			}
		}

		for _, a := range f.Artists {
			u, created, err := ensureUser(tx, a.Account, users.RoleArtist)
			if err != nil {
				return err
			}
			if created {
				res.Users++
			}
			made, err := ensureArtist(tx, u, a)
			if err != nil {
				return err
			}
			if made {
				res.Artists++
			}
		}
		return nil
	})
	return res, err
}

func ensureUser(tx *gorm.DB, a Account, role string) (users.User, bool, error) {
	var u users.User
	err := tx.Where("email = ?", strings.ToLower(a.Email)).First(&u).Error
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return u, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return u, false, err
	}
	pw := string(hash)
	u = users.User{
		Username:     a.Username,
		Email:        strings.ToLower(a.Email),
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Password:     &pw,
		AuthProvider: "local",
		Role:         role,
		IsVerified:   true,
	}
	if err := tx.Create(&u).Error; err != nil {
		return u, false, err
	}
	if err := tx.Create(&users.Profile{UserID: u.ID}).Error; err != nil {
		return u, false, err
	}
	return u, true, nil
}

func ensureCategory(tx *gorm.DB, c Category) (bool, error) {
	var n int64
	if err := tx.Model(&commissions.Category{}).Where("name = ?", c.Name).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	cat := commissions.Category{
		Name:      c.Name,
		IsActive:  true,
		SortOrder: c.Order,
	}
	if c.Description != "" {
		cat.Description = &c.Description
	}
	if c.Icon != "" {
		cat.Icon = &c.Icon
	}
	return true, tx.Create(&cat).Error
}

func ensureArtist(tx *gorm.DB, u users.User, in Artist) (bool, error) {
	var n int64
	if err := tx.Model(&artists.Artist{}).Where("user_id = ?", u.ID).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	a := artists.Artist{
		UserID:                 u.ID,
		DisplayName:            firstNonEmpty(in.DisplayName, u.FullName()),
		Specialty:              firstNonEmpty(in.Specialty, "General"),
		Status:                 artists.StatusApproved,
		IsAcceptingCommissions: true,
		TurnaroundDays:         7,
		Tags:                   pq.StringArray(in.Tags),
	}
	if in.Description != "" {
		a.Description = &in.Description
	}
	if in.TurnaroundDays > 0 {
		a.TurnaroundDays = in.TurnaroundDays
	}
	if in.HourlyRate != "" {
		a.HourlyRate = decimal.RequireFromString(in.HourlyRate)
	}
	if in.MinimumPrice != "" {
		a.MinimumPrice = decimal.RequireFromString(in.MinimumPrice)
	}
	return true, tx.Create(&a).Error
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
