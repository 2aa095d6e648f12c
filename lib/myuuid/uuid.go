package myuuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uuid.go -package myuuid -destination uuider_mock.go UUIDer
type UUIDer interface {
	Create() string
}

type RealUUIDer struct{}

func (u RealUUIDer) Create() string {
	return uuid.New().String()
}

// Compact returns a uuid without dashes, usable as a short reference
func Compact(u UUIDer) string {
	return strings.ReplaceAll(u.Create(), "-", "")
}
