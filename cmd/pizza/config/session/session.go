package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/open"
	"github.com/pizza-net/pizza-frontend/pkg/api/types/users"
	yaml "gopkg.in/yaml.v3"
)

// ErrNotLoggedIn is returned when there is no stored session.
var ErrNotLoggedIn = errors.New("not logged in. Please try `pizza login` first")

// Session is the identity persisted after `pizza login`.
//
// The token is stored as the auth service issued it; it is never
// verified on the client side, only presented back to the gateway.
type Session struct {
	Token    string     `yaml:"token"`
	UserID   int64      `yaml:"userId"`
	Username string     `yaml:"username"`
	Role     users.Role `yaml:"role"`
}

func FromLoginResult(r users.LoginResult) Session {
	return Session{
		Token:    r.Token,
		UserID:   r.UserID,
		Username: r.Username,
		Role:     r.Role,
	}
}

func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Claims decodes the stored token's claims WITHOUT verifying the
// signature. Good enough to show the user what the server thinks of
// them; never use it for authorization.
func (s Session) Claims() (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return nil, fmt.Errorf("stored token is broken: %w", err)
	}
	return claims, nil
}

// Store reads and writes the session file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored session.
//
// # Return
//
// ErrNotLoggedIn if there is no session file.
func (st *Store) Load() (Session, error) {
	buf, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNotLoggedIn
		}
		return Session{}, err
	}

	var s Session
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return Session{}, fmt.Errorf("session file (%s) is broken: %w", st.path, err)
	}
	return s, nil
}

// Save writes the session, readable by the current user only.
func (st *Store) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), os.FileMode(0700)); err != nil {
		return err
	}

	f, err := open.NewSafeFile(st.path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = f.Write(buf)
	return err
}

// Clear removes the stored session. Clearing an absent session is
// not an error, so it is safe as a forced-logout hook.
func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
