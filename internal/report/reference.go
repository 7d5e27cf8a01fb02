package report

import (
	"fmt"
	"math/rand/v2"
)

const (
	DefaultReferencePrefix = "SL-2024"
	// MaxReferenceNumber - верхняя граница номера (включительно)
	MaxReferenceNumber = 9999
)

// ReferenceGenerator выдает отображаемый номер обращения
type ReferenceGenerator interface {
	Next() string
}

type randomReference struct {
	prefix string
}

// NewReferenceGenerator возвращает генератор вида <prefix>-<0..9999>.
// Номера не уникальны и не приходят с сервера.
func NewReferenceGenerator(prefix string) ReferenceGenerator {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	return &randomReference{prefix: prefix}
}

func (g *randomReference) Next() string {
	return fmt.Sprintf("%s-%d", g.prefix, rand.IntN(MaxReferenceNumber+1))
}
