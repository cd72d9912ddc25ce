// Package words holds the static word bank the round setup draws secret
// words from. Pure data plus lookup helpers; nothing here mutates.
package words

import (
	"math/rand"

	"github.com/stevenD18skz/impostor-app/domain"
)

type Category struct {
	Id    string   `json:"id"`
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Bank resolves category ids and picks secret words.
type Bank struct {
	categories map[string]Category
	order      []string
}

func NewBank() *Bank {
	b := &Bank{categories: make(map[string]Category, len(categories))}
	for _, c := range categories {
		b.categories[c.Id] = c
		b.order = append(b.order, c.Id)
	}
	return b
}

func (b *Bank) Has(categoryId string) bool {
	_, ok := b.categories[categoryId]
	return ok
}

// DefaultCategory is the category new rooms start with.
func (b *Bank) DefaultCategory() string {
	return b.order[0]
}

// Pick returns a uniformly random word from the category's word list.
func (b *Bank) Pick(categoryId string) (string, error) {
	c, ok := b.categories[categoryId]
	if !ok {
		return "", domain.ErrUnknownCategory
	}
	return c.Words[rand.Intn(len(c.Words))], nil
}

// Categories lists every category in declaration order.
func (b *Bank) Categories() []Category {
	out := make([]Category, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.categories[id])
	}
	return out
}
