package storefront

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MarcGrol/cakeshop/lib/myerrors"
	"github.com/MarcGrol/cakeshop/lib/mytime"
)

// Session holds the optional identity of a visitor and its token. Credentials are not verified.
type Session struct {
	nower    mytime.Nower
	identity *Identity
	token    string
}

func NewSession(nower mytime.Nower, identity *Identity, token string) *Session {
	s := &Session{
		nower: nower,
	}
	if identity != nil && identity.Email != "" {
		s.identity = &Identity{Name: identity.Name, Email: identity.Email}
		s.token = token
	}
	return s
}

func (s *Session) Login(email, password string) (Identity, error) {
	missing := missingFields(field{"email", email}, field{"password", password})
	if len(missing) > 0 {
		return Identity{}, myerrors.NewValidationErrorf("%s required", strings.Join(missing, " and "))
	}

	return s.start(Identity{Email: email}), nil
}

func (s *Session) Register(name, email, password string) (Identity, error) {
	missing := missingFields(field{"name", name}, field{"email", email}, field{"password", password})
	if len(missing) > 0 {
		return Identity{}, myerrors.NewValidationErrorf("%s required", strings.Join(missing, ", "))
	}

	return s.start(Identity{Name: name, Email: email}), nil
}

func (s *Session) start(identity Identity) Identity {
	s.identity = &identity
	s.token = s.fabricateToken(identity.Email)
	return identity
}

// fabricateToken derives an opaque marker from the email and the current time
func (s *Session) fabricateToken(email string) string {
	raw := fmt.Sprintf("%s:%d", email, s.nower.Now().UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func (s *Session) Logout() {
	s.identity = nil
	s.token = ""
}

func (s *Session) Identity() (Identity, bool) {
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	return s.identity != nil
}

type field struct {
	name  string
	value string
}

// missingFields returns the names of the blank fields
func missingFields(fields ...field) []string {
	missing := []string{}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
